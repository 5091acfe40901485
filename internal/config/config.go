package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the tool configuration file looked up in the working directory
const FileName = ".screamgrd.config"

// Config represents the screamgrd configuration file
type Config struct {
	Ignores IgnoresConfig `yaml:"ignores"`
}

// IgnoresConfig contains ignore rules for detected variables
type IgnoresConfig struct {
	Missing []string `yaml:"missing"` // Variables to ignore when reporting as missing
}

// Load reads the .screamgrd.config file from the specified directory.
// A missing file yields the default (empty) config, not an error.
func Load(rootPath string) (*Config, error) {
	configPath := filepath.Join(rootPath, FileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{
			Ignores: IgnoresConfig{
				Missing: []string{},
			},
		}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// ShouldIgnoreMissing checks if a variable should be ignored when reporting as missing
func (c *Config) ShouldIgnoreMissing(varName string) bool {
	for _, ignored := range c.Ignores.Missing {
		if ignored == varName {
			return true
		}
	}
	return false
}
