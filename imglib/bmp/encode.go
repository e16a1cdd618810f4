package bmp

import (
	"os"

	"imgconv/imglib"
	"imgconv/imglib/lbytes"
	"github.com/pkg/errors"
)

func encodeFileHeader(fileHeader FileHeader) []byte {
	bs := make([]byte, 0, FileHeaderSize)
	bs = append(bs, lbytes.EncodeUint16(fileHeader.Signature)...)
	bs = append(bs, lbytes.EncodeUint32(fileHeader.FileSize)...)
	bs = append(bs, lbytes.EncodeUint32(fileHeader.Reserved)...)
	bs = append(bs, lbytes.EncodeUint32(fileHeader.PixelDataOffset)...)
	return bs
}

func encodeInfoHeader(infoHeader InfoHeader) []byte {
	bs := make([]byte, 0, InfoHeaderSize)
	bs = append(bs, lbytes.EncodeUint32(infoHeader.HeaderSize)...)
	bs = append(bs, lbytes.EncodeInt32(infoHeader.Width)...)
	bs = append(bs, lbytes.EncodeInt32(infoHeader.Height)...)
	bs = append(bs, lbytes.EncodeUint16(infoHeader.ColorPlanes)...)
	bs = append(bs, lbytes.EncodeUint16(infoHeader.BitsPerPixel)...)
	bs = append(bs, lbytes.EncodeUint32(infoHeader.Compression)...)
	bs = append(bs, lbytes.EncodeUint32(infoHeader.ImageDataSize)...)
	bs = append(bs, lbytes.EncodeInt32(infoHeader.HorizontalResolution)...)
	bs = append(bs, lbytes.EncodeInt32(infoHeader.VerticalResolution)...)
	bs = append(bs, lbytes.EncodeUint32(infoHeader.UsedColors)...)
	bs = append(bs, lbytes.EncodeUint32(infoHeader.ImportantColors)...)
	return bs
}

// Encode serializes image into a complete BMP file: both headers followed
// by height rows of stride bytes, bottom row first.
func Encode(image imglib.Image) ([]byte, error) {
	if !image.IsValid() {
		return nil, errors.New("bmp.Encode error: invalid image")
	}

	width := image.Width()
	height := image.Height()
	stride := Stride(width)
	imageDataSize := uint32(stride * height)

	fileHeader := CreateFileHeader()
	fileHeader.FileSize = FileHeaderSize + InfoHeaderSize + imageDataSize
	infoHeader := CreateInfoHeader()
	infoHeader.Width = int32(width)
	infoHeader.Height = int32(height)
	infoHeader.ImageDataSize = imageDataSize

	bs := make([]byte, 0, fileHeader.FileSize)
	bs = append(bs, encodeFileHeader(fileHeader)...)
	bs = append(bs, encodeInfoHeader(infoHeader)...)

	row := make([]byte, stride)
	for y := height - 1; y >= 0; y-- {
		// zero the whole buffer so padding bytes are deterministic
		for i := range row {
			row[i] = 0
		}
		for x, pixel := range image.Line(y) {
			row[x*bytesPerPixel+0] = pixel.B
			row[x*bytesPerPixel+1] = pixel.G
			row[x*bytesPerPixel+2] = pixel.R
		}
		bs = append(bs, row...)
	}

	return bs, nil
}

// Save encodes image and writes it to path, creating or truncating the file.
func Save(path string, image imglib.Image) error {
	bs, err := Encode(image)
	if err != nil {
		return errors.Wrap(err, "bmp.Save error")
	}
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return errors.Wrap(err, "bmp.Save error")
	}
	return nil
}
