package pane

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/ui/theme"
)

// Model renders one board panel. It is the element a resize handle drags:
// OffsetWidth reports the rendered width and SetStyleWidth installs a live
// preview width that wins over the panel's stored width until cleared.
type Model struct {
	panel *board.Panel

	width   int
	height  int
	focused bool
	preview string

	body viewport.Model

	theme  theme.Theme
	styles theme.Styles
}

// New creates a pane for p.
func New(p *board.Panel, t theme.Theme, s theme.Styles) *Model {
	return &Model{
		panel:  p,
		body:   viewport.New(0, 0),
		theme:  t,
		styles: s,
	}
}

// Panel returns the panel this pane renders.
func (m *Model) Panel() *board.Panel {
	return m.panel
}

// OffsetWidth returns the rendered width in cells, border included.
func (m *Model) OffsetWidth() int {
	return m.width
}

// SetStyleWidth sets the live preview width.
func (m *Model) SetStyleWidth(w string) {
	m.preview = w
}

// StyleWidth returns the live preview width, or "".
func (m *Model) StyleWidth() string {
	return m.preview
}

// ClearPreview drops the live preview width.
func (m *Model) ClearPreview() {
	m.preview = ""
}

// Width returns the width string layout should use.
func (m *Model) Width() string {
	if m.preview != "" {
		return m.preview
	}
	return m.panel.Width
}

// SetTheme swaps colors after a theme change.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
	m.refreshBody()
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	innerW, innerH := m.inner()
	m.body.Width = innerW
	m.body.Height = max(innerH-2, 1) // title + blank line
	m.refreshBody()
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// Focused reports whether this panel has focus.
func (m *Model) Focused() bool {
	return m.focused
}

// Update scrolls the body.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return cmd
}

func (m *Model) refreshBody() {
	innerW, _ := m.inner()
	wrapped := lipgloss.NewStyle().Width(innerW).Render(m.panel.Body)
	m.body.SetContent(wrapped)
}

// Account for border (1 cell each side)
func (m *Model) inner() (int, int) {
	return max(m.width-2, 1), max(m.height-2, 1)
}

// View renders the pane.
func (m *Model) View() string {
	if m.width <= 0 {
		return ""
	}

	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW, innerH := m.inner()

	title := m.styles.Title.Render(truncate(m.panel.Title, innerW))
	width := m.Width()
	label := width
	if label == "" {
		label = "auto"
	}
	pct, ok := board.ParseWidth(width)
	badge := lipgloss.NewStyle().Foreground(m.theme.WidthColor(pct, ok)).Render(label)

	header := title
	if gap := innerW - lipgloss.Width(title) - lipgloss.Width(badge); gap >= 1 {
		header = title + strings.Repeat(" ", gap) + badge
	}

	content := fitHeight(header+"\n\n"+m.body.View(), innerH)

	return border.
		Width(innerW).
		Height(innerH).
		Render(content)
}

// fitHeight truncates or pads content to the given height.
func fitHeight(content string, h int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)+"…") > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
