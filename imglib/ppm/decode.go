package ppm

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"imgconv/ds"
	"imgconv/imglib"
	"github.com/pkg/errors"
)

// Decode parses a whole P6 file held in bs. The header fields may be
// separated by any whitespace; exactly one whitespace byte separates the
// max color value from the pixel payload.
func Decode(bs []byte) (imglib.Image, error) {
	reader := bytes.NewReader(bs)

	magic := ""
	width, height, maxValue := 0, 0, 0
	if _, err := fmt.Fscan(reader, &magic, &width, &height, &maxValue); err != nil {
		return imglib.Image{}, errors.Wrap(err, "ppm.Decode error reading header")
	}
	switch {
	case magic != Magic:
		return imglib.Image{}, errors.Errorf(`ppm.Decode error: invalid magic "%s"`, magic)
	case width <= 0:
		return imglib.Image{}, errors.Errorf("ppm.Decode error: invalid width %d", width)
	case height <= 0:
		return imglib.Image{}, errors.Errorf("ppm.Decode error: invalid height %d", height)
	case maxValue != MaxColorValue:
		return imglib.Image{}, errors.Errorf("ppm.Decode error: unsupported max color value %d", maxValue)
	}

	// the single separator byte after the max color value
	if _, err := reader.ReadByte(); err != nil {
		return imglib.Image{}, errors.Wrap(err, "ppm.Decode error")
	}

	payload := make([]byte, width*height*bytesPerPixel)
	if _, err := io.ReadFull(reader, payload); err != nil {
		return imglib.Image{}, errors.Wrap(err, "ppm.Decode error reading pixel data")
	}

	image := imglib.CreateImage(width, height, imglib.Black())
	triples := ds.MakeChunks(payload, bytesPerPixel)
	for y := 0; y < height; y++ {
		line := image.Line(y)
		for x := 0; x < width; x++ {
			triple := triples[y*width+x]
			line[x] = imglib.Color{R: triple[0], G: triple[1], B: triple[2]}
		}
	}

	return image, nil
}

// Load reads path and decodes it as P6.
func Load(path string) (imglib.Image, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return imglib.Image{}, errors.Wrap(err, "ppm.Load error")
	}
	image, err := Decode(bs)
	if err != nil {
		return imglib.Image{}, errors.Wrap(err, "ppm.Load error")
	}
	return image, nil
}
