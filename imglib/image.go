// Package imglib stores the in-memory pixel grid that every codec decodes
// into and encodes from.
package imglib

import (
	"imgconv/ds"
)

type (
	Color struct {
		R byte
		G byte
		B byte
	}
	Image struct {
		width  int
		height int
		pixels [][]Color
	}
)

func Black() Color {
	return Color{}
}

func White() Color {
	return Color{R: 255, G: 255, B: 255}
}

// CreateImage allocates a width x height grid filled with `fill`.
// Non-positive dimensions yield the zero Image, which reports as invalid.
func CreateImage(width int, height int, fill Color) Image {
	if width <= 0 || height <= 0 {
		return Image{}
	}
	pixels := make([][]Color, 0, height)
	for y := 0; y < height; y++ {
		pixels = append(pixels, ds.Repeat(width, fill))
	}
	return Image{
		width:  width,
		height: height,
		pixels: pixels,
	}
}

func (image Image) Width() int {
	return image.width
}

func (image Image) Height() int {
	return image.height
}

// Line returns the mutable pixel row at y; row 0 is the top of the image.
func (image Image) Line(y int) []Color {
	return image.pixels[y]
}

// IsValid distinguishes a decoded image from the zero Image that decode
// failures return. A valid image always has at least one pixel.
func (image Image) IsValid() bool {
	return image.width > 0 && image.height > 0 && image.pixels != nil
}
