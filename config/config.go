// Package config loads the optional converter settings file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const DefaultFileName = "imgconv.yaml"

type Config struct {
	JPEGQuality    int  `yaml:"jpeg_quality"`
	ForceOverwrite bool `yaml:"force_overwrite"`
}

func Default() Config {
	return Config{
		JPEGQuality: 80,
	}
}

// Load reads the settings file at path on top of the defaults. A missing
// file is not an error; a malformed or out-of-range one is.
func Load(path string) (Config, error) {
	result := Default()

	bs, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return result, nil
	}
	if err != nil {
		return result, errors.Wrap(err, "config.Load error")
	}
	if err := yaml.Unmarshal(bs, &result); err != nil {
		return result, errors.Wrap(err, "config.Load error")
	}
	if result.JPEGQuality < 1 || result.JPEGQuality > 100 {
		return result, errors.Errorf(
			"config.Load error: jpeg_quality %d out of range [1, 100]",
			result.JPEGQuality,
		)
	}

	return result, nil
}
