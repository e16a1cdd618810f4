package ppm

import (
	"fmt"
	"os"

	"imgconv/imglib"
	"github.com/pkg/errors"
)

// Encode serializes image as binary P6.
func Encode(image imglib.Image) ([]byte, error) {
	if !image.IsValid() {
		return nil, errors.New("ppm.Encode error: invalid image")
	}

	width := image.Width()
	height := image.Height()
	header := fmt.Sprintf("%s\n%d %d\n%d\n", Magic, width, height, MaxColorValue)

	bs := make([]byte, 0, len(header)+width*height*bytesPerPixel)
	bs = append(bs, header...)
	for y := 0; y < height; y++ {
		for _, pixel := range image.Line(y) {
			bs = append(bs, pixel.R, pixel.G, pixel.B)
		}
	}

	return bs, nil
}

// Save encodes image and writes it to path, creating or truncating the file.
func Save(path string, image imglib.Image) error {
	bs, err := Encode(image)
	if err != nil {
		return errors.Wrap(err, "ppm.Save error")
	}
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return errors.Wrap(err, "ppm.Save error")
	}
	return nil
}
