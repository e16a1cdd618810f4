// Package formats exposes every supported container behind one interface
// and maps file extensions onto it.
package formats

import (
	"path/filepath"
	"strings"

	"imgconv/imglib"
	"imgconv/imglib/bmp"
	"imgconv/imglib/jpg"
	"imgconv/imglib/ppm"
)

type (
	Interface interface {
		Save(path string, image imglib.Image) error
		Load(path string) (imglib.Image, error)
	}
	BMP  struct{}
	PPM  struct{}
	JPEG struct {
		// Quality in [1, 100]; 0 selects jpg.DefaultQuality.
		Quality int
	}
)

func (BMP) Save(path string, image imglib.Image) error {
	return bmp.Save(path, image)
}

func (BMP) Load(path string) (imglib.Image, error) {
	return bmp.Load(path)
}

func (PPM) Save(path string, image imglib.Image) error {
	return ppm.Save(path, image)
}

func (PPM) Load(path string) (imglib.Image, error) {
	return ppm.Load(path)
}

func (f JPEG) Save(path string, image imglib.Image) error {
	return jpg.Save(path, image, f.Quality)
}

func (JPEG) Load(path string) (imglib.Image, error) {
	return jpg.Load(path)
}

// ByExtension maps a file path to its container by extension,
// case-insensitively. Unknown extensions map to nil.
func ByExtension(path string) Interface {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return BMP{}
	case ".ppm":
		return PPM{}
	case ".jpg", ".jpeg":
		return JPEG{}
	default:
		return nil
	}
}
