package config

// Config holds the application configuration.
type Config struct {
	Theme    string `yaml:"theme"`
	Board    string `yaml:"board"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
	History  string `yaml:"history"` // resize history database, "-" disables
	Mouse    bool   `yaml:"mouse"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:    "catppuccin-mocha",
		Board:    "",
		LogFile:  "",
		LogLevel: "info",
		History:  "",
		Mouse:    true,
	}
}
