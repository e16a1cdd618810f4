// Package bmp implements the 24-bit uncompressed BITMAPINFOHEADER variant
// of the BMP container: little-endian packed headers, bottom-to-top rows of
// BGR triples, each row zero-padded to a multiple of four bytes.
package bmp

import (
	"imgconv/ds"
)

type (
	FileHeader struct {
		Signature       uint16 `json:"signature"`
		FileSize        uint32 `json:"file_size"`
		Reserved        uint32 `json:"reserved"`
		PixelDataOffset uint32 `json:"pixel_data_offset"`
	}
	InfoHeader struct {
		HeaderSize           uint32 `json:"header_size"`
		Width                int32  `json:"width"`
		Height               int32  `json:"height"`
		ColorPlanes          uint16 `json:"color_planes"`
		BitsPerPixel         uint16 `json:"bits_per_pixel"`
		Compression          uint32 `json:"compression"`
		ImageDataSize        uint32 `json:"image_data_size"`
		HorizontalResolution int32  `json:"horizontal_resolution"`
		VerticalResolution   int32  `json:"vertical_resolution"`
		UsedColors           uint32 `json:"used_colors"`
		ImportantColors      uint32 `json:"important_colors"`
	}
)

const (
	FileHeaderSize  = 14
	InfoHeaderSize  = 40
	PixelDataOffset = FileHeaderSize + InfoHeaderSize

	Signature         = 0x4D42 // "BM"
	DefaultPlanes     = 1
	DefaultBitCount   = 24
	DefaultResolution = 11811 // pixels per meter, ~300 DPI
	// Cosmetic sentinel carried over from common writers; has no effect on
	// 24-bit uncompressed data.
	DefaultImportantColors = 0x1000000

	bytesPerPixel = 3
	rowAlignment  = 4
)

func CreateFileHeader() FileHeader {
	return FileHeader{
		Signature:       Signature,
		PixelDataOffset: PixelDataOffset,
	}
}

func CreateInfoHeader() InfoHeader {
	return InfoHeader{
		HeaderSize:           InfoHeaderSize,
		ColorPlanes:          DefaultPlanes,
		BitsPerPixel:         DefaultBitCount,
		HorizontalResolution: DefaultResolution,
		VerticalResolution:   DefaultResolution,
		ImportantColors:      DefaultImportantColors,
	}
}

// Stride is the byte length of one stored row: three bytes per pixel,
// rounded up to the next multiple of four. Encode and Decode both derive
// row layout from here and nowhere else.
func Stride(width int) int {
	return ds.NearestDivisibleByM(width*bytesPerPixel, rowAlignment)
}
