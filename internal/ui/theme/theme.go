package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color
	Lavender lipgloss.Color

	// Semantic
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	HandleIdle      lipgloss.Color
	HandleActive    lipgloss.Color
}

// HandleColor returns the color of a resize handle.
func (t Theme) HandleColor(dragging bool) lipgloss.Color {
	if dragging {
		return t.HandleActive
	}
	return t.HandleIdle
}

// WidthColor returns the color used to display a panel width. Widths outside
// 0-100% are shown as warnings since the renderer clamps them.
func (t Theme) WidthColor(pct float64, ok bool) lipgloss.Color {
	switch {
	case !ok:
		return t.Muted
	case pct < 0 || pct > 100:
		return t.Yellow
	default:
		return t.Teal
	}
}
