package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	result, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), result)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, "jpeg_quality: 95\nforce_overwrite: true\n")

	result, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 95, result.JPEGQuality)
	assert.True(t, result.ForceOverwrite)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "force_overwrite: true\n")

	result, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 80, result.JPEGQuality)
	assert.True(t, result.ForceOverwrite)
}

func TestLoad_RejectsBadContent(t *testing.T) {
	_, err := Load(writeConfig(t, "jpeg_quality: [nonsense\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "jpeg_quality: 0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "jpeg_quality: 101\n"))
	assert.Error(t, err)
}
