package jpg

import (
	"testing"

	"imgconv/imglib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_Dimensions(t *testing.T) {
	img := imglib.CreateImage(16, 9, imglib.Color{R: 120, G: 80, B: 40})

	bs, err := Encode(img, DefaultQuality)
	require.NoError(t, err)
	require.NotEmpty(t, bs)
	// JPEG SOI marker
	require.Equal(t, []byte{0xFF, 0xD8}, bs[:2])

	decoded, err := Decode(bs)
	require.NoError(t, err)
	require.True(t, decoded.IsValid())
	assert.Equal(t, 16, decoded.Width())
	assert.Equal(t, 9, decoded.Height())
}

func TestEncodeDecode_UniformColorSurvivesApproximately(t *testing.T) {
	fill := imglib.Color{R: 200, G: 100, B: 50}
	img := imglib.CreateImage(32, 32, fill)

	bs, err := Encode(img, 100)
	require.NoError(t, err)
	decoded, err := Decode(bs)
	require.NoError(t, err)

	// lossy codec: the center pixel should stay within a small delta
	pixel := decoded.Line(16)[16]
	assert.InDelta(t, fill.R, pixel.R, 8)
	assert.InDelta(t, fill.G, pixel.G, 8)
	assert.InDelta(t, fill.B, pixel.B, 8)
}

func TestEncode_InvalidInput(t *testing.T) {
	_, err := Encode(imglib.Image{}, DefaultQuality)
	assert.Error(t, err)

	_, err = Encode(imglib.CreateImage(2, 2, imglib.Black()), 101)
	assert.Error(t, err)

	_, err = Encode(imglib.CreateImage(2, 2, imglib.Black()), -1)
	assert.Error(t, err)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	img, err := Decode([]byte("definitely not a JPEG"))
	assert.Error(t, err)
	assert.False(t, img.IsValid())
}

func TestLoadSave(t *testing.T) {
	path := t.TempDir() + "/out.jpg"
	img := imglib.CreateImage(8, 8, imglib.White())

	require.NoError(t, Save(path, img, 0))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.Width())
	assert.Equal(t, 8, loaded.Height())
}
