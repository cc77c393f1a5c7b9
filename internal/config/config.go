// Package config loads and saves the user configuration and the list
// of recently opened files from the XDG config directory.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the global editor configuration. Pointer fields
// distinguish "unset" from an explicit value so defaults apply only
// where the user said nothing.
type Config struct {
	TabWidth   *int    `yaml:"tabwidth,omitempty"`   // Display width of a tab
	ExpandTab  *bool   `yaml:"expandtab,omitempty"`  // Insert spaces instead of tabs
	AutoIndent *bool   `yaml:"autoindent,omitempty"` // Copy indentation from the previous line
	Theme      *string `yaml:"theme,omitempty"`      // Name of the color theme
	MaxRecent  *int    `yaml:"max-recent,omitempty"` // Maximum number of recent files to track
}

// GetConfigDir returns the ved config directory.
// Follows XDG Base Directory specification on Unix-like systems
func GetConfigDir() (string, error) {
	var configDir string

	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		configDir = xdgConfig
	} else {
		// Fall back to ~/.config
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "ved"), nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Load loads the global config file.
// Returns an empty config if the file doesn't exist
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return &Config{}, nil // Return empty config on error
	}

	// If config doesn't exist, return empty config (not an error)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config file, creating the config directory when
// needed.
func Save(cfg *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}
