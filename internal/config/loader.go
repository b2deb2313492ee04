package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir returns ~/.config/paneboard, or "" when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "paneboard")
}

// Load loads configuration from ~/.config/paneboard/config.yaml.
func Load() Config {
	cfg := DefaultConfig()

	dir := Dir()
	if dir == "" {
		return cfg
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		return cfg
	}

	// Decode into a copy so a broken file keeps every default
	parsed := cfg
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg
	}
	return parsed
}
