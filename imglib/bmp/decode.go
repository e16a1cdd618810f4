package bmp

import (
	"io"
	"os"

	"imgconv/imglib"
	"imgconv/imglib/lbytes"
	"github.com/pkg/errors"
)

func decodeFileHeader(reader *lbytes.Reader) (*FileHeader, error) {
	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	fileHeaderInstructions := []lbytes.Instruction{
		{Key: "signature", ReadFunction: readUint16},
		{Key: "file_size", ReadFunction: readUint32},
		{Key: "reserved", ReadFunction: readUint32},
		{Key: "pixel_data_offset", ReadFunction: readUint32},
	}

	fileHeader, err := lbytes.ExecuteInstructions[FileHeader](fileHeaderInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "decodeFileHeader error")
	}
	return fileHeader, nil
}

func decodeInfoHeader(reader *lbytes.Reader) (*InfoHeader, error) {
	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)
	readInt32 := lbytes.CreateInt32ReadFunction(reader)

	infoHeaderInstructions := []lbytes.Instruction{
		{Key: "header_size", ReadFunction: readUint32},
		{Key: "width", ReadFunction: readInt32},
		{Key: "height", ReadFunction: readInt32},
		{Key: "color_planes", ReadFunction: readUint16},
		{Key: "bits_per_pixel", ReadFunction: readUint16},
		{Key: "compression", ReadFunction: readUint32},
		{Key: "image_data_size", ReadFunction: readUint32},
		{Key: "horizontal_resolution", ReadFunction: readInt32},
		{Key: "vertical_resolution", ReadFunction: readInt32},
		{Key: "used_colors", ReadFunction: readUint32},
		{Key: "important_colors", ReadFunction: readUint32},
	}

	infoHeader, err := lbytes.ExecuteInstructions[InfoHeader](infoHeaderInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "decodeInfoHeader error")
	}
	return infoHeader, nil
}

// validateHeaders rejects every header combination outside the supported
// variant: 24-bit, uncompressed, single-plane, bottom-up, pixel data at
// byte 54. Checks run in order and stop at the first violation.
func validateHeaders(fileHeader FileHeader, infoHeader InfoHeader) error {
	switch {
	case fileHeader.Signature != Signature:
		return errors.Errorf(
			`invalid signature: expected "0x%04X", got "0x%04X"`,
			Signature, fileHeader.Signature,
		)
	case fileHeader.PixelDataOffset != PixelDataOffset:
		return errors.Errorf(
			"unsupported pixel data offset %d; only %d is supported",
			fileHeader.PixelDataOffset, PixelDataOffset,
		)
	case infoHeader.HeaderSize != InfoHeaderSize:
		return errors.Errorf(
			"unsupported info header size %d; only %d is supported",
			infoHeader.HeaderSize, InfoHeaderSize,
		)
	case infoHeader.ColorPlanes != DefaultPlanes:
		return errors.Errorf("invalid number of color planes %d", infoHeader.ColorPlanes)
	case infoHeader.BitsPerPixel != DefaultBitCount:
		return errors.Errorf(
			"unsupported bit depth %d; only %d-bit pixels are supported",
			infoHeader.BitsPerPixel, DefaultBitCount,
		)
	case infoHeader.Compression != 0:
		return errors.Errorf("unsupported compression mode %d", infoHeader.Compression)
	case infoHeader.Width <= 0:
		return errors.Errorf("invalid width %d", infoHeader.Width)
	case infoHeader.Height <= 0:
		// negative height would mean top-down row storage
		return errors.Errorf("invalid height %d", infoHeader.Height)
	}
	return nil
}

// Decode parses a whole BMP file held in bs. Any validation or read failure
// returns the zero Image; a partially filled grid is never returned.
func Decode(bs []byte) (imglib.Image, error) {
	reader := lbytes.NewBytesReader(bs)

	fileHeader, err := decodeFileHeader(reader)
	if err != nil {
		return imglib.Image{}, errors.Wrap(err, "bmp.Decode error")
	}
	infoHeader, err := decodeInfoHeader(reader)
	if err != nil {
		return imglib.Image{}, errors.Wrap(err, "bmp.Decode error")
	}
	if err := validateHeaders(*fileHeader, *infoHeader); err != nil {
		return imglib.Image{}, errors.Wrap(err, "bmp.Decode error")
	}

	// width and height come from the header; stride only sizes the row
	// buffer, so padding can never leak into the pixel grid
	width := int(infoHeader.Width)
	height := int(infoHeader.Height)
	stride := Stride(width)

	image := imglib.CreateImage(width, height, imglib.Black())
	if _, err := reader.Seek(int64(fileHeader.PixelDataOffset), io.SeekStart); err != nil {
		return imglib.Image{}, errors.Wrap(err, "bmp.Decode error seeking to pixel data")
	}

	// rows are stored bottom-to-top
	for y := height - 1; y >= 0; y-- {
		row, err := reader.ReadBytes(stride)
		if err != nil {
			return imglib.Image{}, errors.Wrapf(err, "bmp.Decode error reading row %d", y)
		}
		line := image.Line(y)
		for x := 0; x < width; x++ {
			line[x].B = row[x*bytesPerPixel+0]
			line[x].G = row[x*bytesPerPixel+1]
			line[x].R = row[x*bytesPerPixel+2]
		}
	}

	return image, nil
}

// Load reads path and decodes it as BMP.
func Load(path string) (imglib.Image, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return imglib.Image{}, errors.Wrap(err, "bmp.Load error")
	}
	image, err := Decode(bs)
	if err != nil {
		return imglib.Image{}, errors.Wrap(err, "bmp.Load error")
	}
	return image, nil
}
