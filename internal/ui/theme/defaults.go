package theme

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Mauve:    lipgloss.Color("#cba6f7"),
	Red:      lipgloss.Color("#f38ba8"),
	Peach:    lipgloss.Color("#fab387"),
	Yellow:   lipgloss.Color("#f9e2af"),
	Green:    lipgloss.Color("#a6e3a1"),
	Teal:     lipgloss.Color("#94e2d5"),
	Blue:     lipgloss.Color("#89b4fa"),
	Lavender: lipgloss.Color("#b4befe"),

	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),
	HandleIdle:      lipgloss.Color("#45475a"),
	HandleActive:    lipgloss.Color("#fab387"),
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Resolve looks up a theme by name: catalog -> custom themes -> fallback to Mocha.
func Resolve(name string) Theme {
	// Try built-in catalog
	if t, ok := Get(name); ok {
		return t
	}

	// Try custom themes from ~/.config/paneboard/themes/
	home, err := os.UserHomeDir()
	if err == nil {
		customDir := filepath.Join(home, ".config", "paneboard", "themes")
		customs := LoadCustomThemes(customDir)
		if t, ok := customs[normalizeKey(name)]; ok {
			return t
		}
	}

	return CatppuccinMocha
}
