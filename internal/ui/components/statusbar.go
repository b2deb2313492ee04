package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/ui/msgs"
	"github.com/sadopc/paneboard/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	mode     msgs.AppMode
	message  string
	panel    string
	width    string
	dragging bool
	dirty    bool
	savedAt  time.Time
	cols     int
	theme    theme.Theme
	styles   theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeNormal,
	}
}

// SetFocused sets the title and width of the focused panel.
func (m *StatusBar) SetFocused(title, width string) {
	m.panel = title
	m.width = width
}

// SetDragging marks whether a resize drag is in progress.
func (m *StatusBar) SetDragging(dragging bool) {
	m.dragging = dragging
}

// SetSaveState records unsaved changes and the last save time.
func (m *StatusBar) SetSaveState(dirty bool, savedAt time.Time) {
	m.dirty = dirty
	m.savedAt = savedAt
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.cols = w
}

// SetTheme swaps the colors used for rendering.
func (m *StatusBar) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// ClearAfter returns a command that clears the message after d.
func (m StatusBar) ClearAfter(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = 3 * time.Second
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg.(type) {
	case clearStatusMsg:
		m.message = ""
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.cols)

	// Left section: focused panel, width, save state
	var leftParts []string

	if m.message != "" {
		leftParts = append(leftParts, lipgloss.NewStyle().
			Foreground(m.theme.Text).
			Background(m.theme.Surface).
			Render(m.message))
	} else {
		if m.panel != "" {
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.Text).
				Background(m.theme.Surface).
				Bold(true).
				Render(m.panel))

			label := m.width
			if label == "" {
				label = "auto"
			}
			pct, ok := board.ParseWidth(m.width)
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.WidthColor(pct, ok)).
				Background(m.theme.Surface).
				Render(label))
		}

		leftParts = append(leftParts, lipgloss.NewStyle().
			Foreground(m.theme.Subtext).
			Background(m.theme.Surface).
			Render(m.saveLabel()))
	}

	left := strings.Join(leftParts, " │ ")

	// Center: mode indicator, highlighted while dragging
	mode := m.mode.String()
	modeColor := m.theme.Mauve
	if m.dragging {
		mode = msgs.ModeResize.String()
		modeColor = m.theme.HandleColor(true)
	}
	modeStr := lipgloss.NewStyle().
		Foreground(modeColor).
		Background(m.theme.Surface).
		Bold(true).
		Render("[" + mode + "]")

	hint := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Background(m.theme.Surface).
		Render("?:help  Ctrl+K:command")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.cols {
		line := " " + left + " " + modeStr + " " + hint
		return barStyle.Render(line)
	}

	remaining := m.cols - totalContent - 2 // padding
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}

func (m StatusBar) saveLabel() string {
	switch {
	case m.dirty:
		return "modified"
	case m.savedAt.IsZero():
		return "not saved"
	default:
		return "saved " + humanize.Time(m.savedAt)
	}
}
