// Package jpg bridges the standard library JPEG codec to the imglib pixel
// grid. JPEG is lossy; unlike the bmp and ppm packages there is no
// round-trip guarantee.
package jpg

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"

	"imgconv/imglib"
	"github.com/pkg/errors"
)

const DefaultQuality = 80

// Decode parses a whole JPEG file held in bs. Alpha is discarded.
func Decode(bs []byte) (imglib.Image, error) {
	source, err := jpeg.Decode(bytes.NewReader(bs))
	if err != nil {
		return imglib.Image{}, errors.Wrap(err, "jpg.Decode error")
	}

	bounds := source.Bounds()
	result := imglib.CreateImage(bounds.Dx(), bounds.Dy(), imglib.Black())
	if !result.IsValid() {
		return imglib.Image{}, errors.Errorf(
			"jpg.Decode error: invalid dimensions %dx%d",
			bounds.Dx(), bounds.Dy(),
		)
	}

	for y := 0; y < bounds.Dy(); y++ {
		line := result.Line(y)
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := source.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			line[x] = imglib.Color{
				R: byte(r >> 8),
				G: byte(g >> 8),
				B: byte(b >> 8),
			}
		}
	}

	return result, nil
}

// Encode serializes image as JPEG with the given quality in [1, 100];
// quality 0 selects DefaultQuality.
func Encode(img imglib.Image, quality int) ([]byte, error) {
	if !img.IsValid() {
		return nil, errors.New("jpg.Encode error: invalid image")
	}
	if quality == 0 {
		quality = DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return nil, errors.Errorf("jpg.Encode error: quality %d out of range [1, 100]", quality)
	}

	width := img.Width()
	height := img.Height()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x, pixel := range img.Line(y) {
			rgba.SetRGBA(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 255})
		}
	}

	buffer := bytes.Buffer{}
	if err := jpeg.Encode(&buffer, rgba, &jpeg.Options{Quality: quality}); err != nil {
		return nil, errors.Wrap(err, "jpg.Encode error")
	}
	return buffer.Bytes(), nil
}

// Load reads path and decodes it as JPEG.
func Load(path string) (imglib.Image, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return imglib.Image{}, errors.Wrap(err, "jpg.Load error")
	}
	img, err := Decode(bs)
	if err != nil {
		return imglib.Image{}, errors.Wrap(err, "jpg.Load error")
	}
	return img, nil
}

// Save encodes image and writes it to path, creating or truncating the file.
func Save(path string, img imglib.Image, quality int) error {
	bs, err := Encode(img, quality)
	if err != nil {
		return errors.Wrap(err, "jpg.Save error")
	}
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return errors.Wrap(err, "jpg.Save error")
	}
	return nil
}
