package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a theme.
type yamlTheme struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`
	Surface string `yaml:"surface"`
	Overlay string `yaml:"overlay"`

	Text    string `yaml:"text"`
	Subtext string `yaml:"subtext"`
	Muted   string `yaml:"muted"`

	Mauve    string `yaml:"mauve"`
	Red      string `yaml:"red"`
	Peach    string `yaml:"peach"`
	Yellow   string `yaml:"yellow"`
	Green    string `yaml:"green"`
	Teal     string `yaml:"teal"`
	Blue     string `yaml:"blue"`
	Lavender string `yaml:"lavender"`

	BorderFocused   string `yaml:"border_focused"`
	BorderUnfocused string `yaml:"border_unfocused"`
	HandleIdle      string `yaml:"handle_idle"`
	HandleActive    string `yaml:"handle_active"`
}

// LoadCustomTheme loads a theme from a YAML file.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	// Unset colors fall back to the default theme
	base := CatppuccinMocha
	color := func(v string, fallback lipgloss.Color) lipgloss.Color {
		if v == "" {
			return fallback
		}
		return lipgloss.Color(v)
	}

	return Theme{
		Name:            yt.Name,
		Base:            color(yt.Base, base.Base),
		Surface:         color(yt.Surface, base.Surface),
		Overlay:         color(yt.Overlay, base.Overlay),
		Text:            color(yt.Text, base.Text),
		Subtext:         color(yt.Subtext, base.Subtext),
		Muted:           color(yt.Muted, base.Muted),
		Mauve:           color(yt.Mauve, base.Mauve),
		Red:             color(yt.Red, base.Red),
		Peach:           color(yt.Peach, base.Peach),
		Yellow:          color(yt.Yellow, base.Yellow),
		Green:           color(yt.Green, base.Green),
		Teal:            color(yt.Teal, base.Teal),
		Blue:            color(yt.Blue, base.Blue),
		Lavender:        color(yt.Lavender, base.Lavender),
		BorderFocused:   color(yt.BorderFocused, base.BorderFocused),
		BorderUnfocused: color(yt.BorderUnfocused, base.BorderUnfocused),
		HandleIdle:      color(yt.HandleIdle, base.HandleIdle),
		HandleActive:    color(yt.HandleActive, base.HandleActive),
	}, nil
}

// LoadCustomThemes loads all YAML themes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}
