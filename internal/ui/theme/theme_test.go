package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNormalizeKey(t *testing.T) {
	got := normalizeKey("  Catppuccin Mocha  ")
	if got != "catppuccin-mocha" {
		t.Fatalf("normalizeKey() = %q, want catppuccin-mocha", got)
	}
}

func TestGetBuiltInTheme(t *testing.T) {
	got, ok := Get("  catppuccin mocha ")
	if !ok {
		t.Fatal("expected built-in theme to be found")
	}
	if got.Name != "Catppuccin Mocha" {
		t.Fatalf("theme name = %q, want Catppuccin Mocha", got.Name)
	}
}

func TestNamesIncludesBuiltIns(t *testing.T) {
	names := Names()
	if len(names) < 5 {
		t.Fatalf("expected at least 5 built-in themes, got %d", len(names))
	}

	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}

	for _, want := range []string{"Catppuccin Mocha", "Nord", "Tokyo Night"} {
		if !have[want] {
			t.Fatalf("theme %q not found in Names()", want)
		}
	}
}

func TestResolveBuiltInTheme(t *testing.T) {
	got := Resolve("dracula")
	if got.Name != "Dracula" {
		t.Fatalf("Resolve(dracula) returned %q, want Dracula", got.Name)
	}
}

func TestResolveCustomThemeFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	themesDir := filepath.Join(home, ".config", "paneboard", "themes")
	if err := os.MkdirAll(themesDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}

	yaml := "name: Ocean Breeze\nbase: \"#001122\"\ntext: \"#ffffff\"\n"
	path := filepath.Join(themesDir, "ocean-breeze.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got := Resolve("ocean breeze")
	if got.Name != "Ocean Breeze" {
		t.Fatalf("Resolve(custom) name = %q, want Ocean Breeze", got.Name)
	}
	if got.Base != "#001122" {
		t.Fatalf("Resolve(custom) base = %q, want #001122", got.Base)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := Resolve("not-a-real-theme")
	if got.Name != CatppuccinMocha.Name {
		t.Fatalf("Resolve(unknown) name = %q, want %q", got.Name, CatppuccinMocha.Name)
	}
}

func TestLoadCustomThemeUsesFilenameWhenNameMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my-theme.yaml")

	yaml := "base: \"#010203\"\ntext: \"#eeeeee\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("LoadCustomTheme() failed: %v", err)
	}
	if got.Name != "my-theme" {
		t.Fatalf("Name = %q, want my-theme", got.Name)
	}
}

func TestLoadCustomThemeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")

	if err := os.WriteFile(path, []byte("name: [\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadCustomTheme(path); err == nil {
		t.Fatal("expected parsing error for invalid yaml")
	}
}

func TestLoadCustomThemesSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "forest.yaml")
	invalid := filepath.Join(dir, "broken.yaml")
	nonYAML := filepath.Join(dir, "readme.txt")

	if err := os.WriteFile(valid, []byte("name: Forest\nbase: \"#102030\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile(valid) failed: %v", err)
	}
	if err := os.WriteFile(invalid, []byte("name: [\n"), 0644); err != nil {
		t.Fatalf("WriteFile(invalid) failed: %v", err)
	}
	if err := os.WriteFile(nonYAML, []byte("ignore me"), 0644); err != nil {
		t.Fatalf("WriteFile(nonYAML) failed: %v", err)
	}

	themes := LoadCustomThemes(dir)
	if len(themes) != 1 {
		t.Fatalf("LoadCustomThemes() loaded %d themes, want 1", len(themes))
	}

	if got, ok := themes[normalizeKey("Forest")]; !ok || got.Name != "Forest" {
		t.Fatalf("expected Forest theme, got %#v (ok=%v)", got, ok)
	}
}

func TestLoadCustomThemeFillsMissingColors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparse.yaml")

	if err := os.WriteFile(path, []byte("name: Sparse\nhandle_active: \"#ff0000\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("LoadCustomTheme() failed: %v", err)
	}
	if got.HandleActive != "#ff0000" {
		t.Fatalf("HandleActive = %q, want #ff0000", got.HandleActive)
	}
	if got.Text != CatppuccinMocha.Text {
		t.Fatalf("Text = %q, want default %q", got.Text, CatppuccinMocha.Text)
	}
}

func TestThemeHandleColor(t *testing.T) {
	theme := Default()

	if got := theme.HandleColor(true); got != theme.HandleActive {
		t.Fatalf("dragging color = %q, want %q", got, theme.HandleActive)
	}
	if got := theme.HandleColor(false); got != theme.HandleIdle {
		t.Fatalf("idle color = %q, want %q", got, theme.HandleIdle)
	}
}

func TestThemeWidthColor(t *testing.T) {
	theme := Default()

	if got := theme.WidthColor(30, true); got != theme.Teal {
		t.Fatalf("in-range color = %q, want %q", got, theme.Teal)
	}
	if got := theme.WidthColor(-5, true); got != theme.Yellow {
		t.Fatalf("negative color = %q, want %q", got, theme.Yellow)
	}
	if got := theme.WidthColor(140, true); got != theme.Yellow {
		t.Fatalf("over 100 color = %q, want %q", got, theme.Yellow)
	}
	if got := theme.WidthColor(0, false); got != theme.Muted {
		t.Fatalf("auto color = %q, want %q", got, theme.Muted)
	}
}

func TestNewStylesHandleStyle(t *testing.T) {
	s := NewStyles(Default())

	if s.HandleStyle(true).GetForeground() != lipgloss.Color(Default().HandleActive) {
		t.Fatal("active handle style should use HandleActive")
	}
	if s.HandleStyle(false).GetForeground() != lipgloss.Color(Default().HandleIdle) {
		t.Fatal("idle handle style should use HandleIdle")
	}
}
