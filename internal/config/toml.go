// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Play   PlayFileConfig   `toml:"play"`
	Server ServerFileConfig `toml:"server"`
}

// PlayFileConfig maps practice-related settings.
type PlayFileConfig struct {
	Username    *string  `toml:"username"`
	Lang        *string  `toml:"lang"`
	Difficulty  *string  `toml:"difficulty"`
	GoalMinutes *float64 `toml:"goal-minutes"`
}

// ServerFileConfig maps backend API settings.
type ServerFileConfig struct {
	Addr     *string `toml:"addr"`
	MongoURI *string `toml:"mongo-uri"`
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
