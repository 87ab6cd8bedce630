// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generator GeneratorConfig `toml:"generator"`
	Export    ExportConfig    `toml:"export"`
}

// GeneratorConfig maps generator-related settings.
type GeneratorConfig struct {
	Length           *int  `toml:"length"`
	Uppercase        *bool `toml:"uppercase"`
	Lowercase        *bool `toml:"lowercase"`
	Numbers          *bool `toml:"numbers"`
	Symbols          *bool `toml:"symbols"`
	ExcludeSimilar   *bool `toml:"exclude-similar"`
	ExcludeAmbiguous *bool `toml:"exclude-ambiguous"`
}

// ExportConfig maps history export settings.
type ExportConfig struct {
	Path *string `toml:"path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
