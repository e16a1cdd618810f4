package cli

import (
	"os"
	"path/filepath"
	"testing"

	"imgconv/config"
	"imgconv/imglib"
	"imgconv/imglib/bmp"
	"imgconv/imglib/ppm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestBMP(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "in.bmp")
	image := imglib.CreateImage(3, 2, imglib.Color{R: 10, G: 20, B: 30})
	require.NoError(t, bmp.Save(path, image))
	return path
}

func TestStartConverting(t *testing.T) {
	dir := t.TempDir()
	from := writeTestBMP(t, dir)
	to := filepath.Join(dir, "out.ppm")

	code := StartConverting(from, to, false, config.Default())
	require.Equal(t, ExitOK, code)

	converted, err := ppm.Load(to)
	require.NoError(t, err)
	assert.Equal(t, 3, converted.Width())
	assert.Equal(t, 2, converted.Height())
	assert.Equal(t, imglib.Color{R: 10, G: 20, B: 30}, converted.Line(0)[0])
}

func TestStartConverting_UnknownFormats(t *testing.T) {
	dir := t.TempDir()
	from := writeTestBMP(t, dir)

	code := StartConverting(filepath.Join(dir, "in.png"), "out.bmp", false, config.Default())
	assert.Equal(t, ExitUnknownInputFormat, code)

	code = StartConverting(from, filepath.Join(dir, "out.tiff"), false, config.Default())
	assert.Equal(t, ExitUnknownOutputFormat, code)
}

func TestStartConverting_LoadFailure(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.bmp")

	code := StartConverting(missing, filepath.Join(dir, "out.ppm"), false, config.Default())
	assert.Equal(t, ExitLoadFailed, code)
}

func TestStartConverting_OverwriteGuard(t *testing.T) {
	dir := t.TempDir()
	from := writeTestBMP(t, dir)
	to := filepath.Join(dir, "out.ppm")
	require.NoError(t, os.WriteFile(to, []byte("occupied"), 0644))

	code := StartConverting(from, to, false, config.Default())
	assert.Equal(t, ExitUsage, code)

	code = StartConverting(from, to, true, config.Default())
	assert.Equal(t, ExitOK, code)

	cfg := config.Default()
	cfg.ForceOverwrite = true
	code = StartConverting(from, to, false, cfg)
	assert.Equal(t, ExitOK, code)
}

func TestCheckExistence(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, CheckExistence(filepath.Join(dir, "nope")))

	path := writeTestBMP(t, dir)
	assert.True(t, CheckExistence(path))
}
