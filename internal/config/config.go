// Package config loads the tooling configuration file (posy.yaml). The
// generation engine itself takes no configuration; this covers the CLI and
// the preview server around it.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the decoded posy.yaml.
type Config struct {
	// Listen is the preview server address, e.g. ":8080".
	Listen string `mapstructure:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// Store selects the preset backend.
	Store StoreConfig `mapstructure:"store"`
}

// StoreConfig selects and parameterizes the preset store backend.
type StoreConfig struct {
	// Backend is "file", "redis" or "memory".
	Backend string `mapstructure:"backend"`

	// Path is the preset directory for the file backend.
	Path string `mapstructure:"path"`

	// Addr, Password, DB configure the redis backend.
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:   ":8080",
		LogLevel: "info",
		Store: StoreConfig{
			Backend: "file",
			Path:    "",
		},
	}
}

// Load reads a YAML config file and decodes it over the defaults. The file
// goes through a loose map first and then mapstructure, so unknown keys are
// tolerated and partially specified sections keep their defaults. A missing
// file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
