package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByExtension(t *testing.T) {
	assert.Equal(t, BMP{}, ByExtension("image.bmp"))
	assert.Equal(t, BMP{}, ByExtension("/some/dir/IMAGE.BMP"))
	assert.Equal(t, PPM{}, ByExtension("image.ppm"))
	assert.Equal(t, JPEG{}, ByExtension("image.jpg"))
	assert.Equal(t, JPEG{}, ByExtension("image.jpeg"))
	assert.Equal(t, JPEG{}, ByExtension("image.JPeG"))

	assert.Nil(t, ByExtension("image.png"))
	assert.Nil(t, ByExtension("image"))
	assert.Nil(t, ByExtension("bmp"))
}
