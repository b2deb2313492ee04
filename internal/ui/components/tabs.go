package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/paneboard/internal/ui/msgs"
	"github.com/sadopc/paneboard/internal/ui/theme"
)

// TabItem represents a single page tab.
type TabItem struct {
	Name   string
	Panels int
}

// TabBar is a horizontal tab bar listing the board's pages.
type TabBar struct {
	tabs   []TabItem
	active int
	width  int
	theme  theme.Theme
	styles theme.Styles
}

// NewTabBar creates a new tab bar.
func NewTabBar(t theme.Theme, s theme.Styles) TabBar {
	return TabBar{
		theme:  t,
		styles: s,
	}
}

// SetTabs sets the tab items.
func (m *TabBar) SetTabs(tabs []TabItem) {
	m.tabs = tabs
	if m.active >= len(tabs) && len(tabs) > 0 {
		m.active = len(tabs) - 1
	}
}

// SetActive sets the active tab index.
func (m *TabBar) SetActive(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.active = index
	}
}

// Active returns the active tab index.
func (m TabBar) Active() int {
	return m.active
}

// SetWidth sets the available width.
func (m *TabBar) SetWidth(w int) {
	m.width = w
}

// SetTheme swaps the colors used for rendering.
func (m *TabBar) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// Init implements tea.Model.
func (m TabBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TabBar) Update(msg tea.Msg) (TabBar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("["))):
			return m, func() tea.Msg { return msgs.PrevPageMsg{} }
		case key.Matches(msg, key.NewBinding(key.WithKeys("]"))):
			return m, func() tea.Msg { return msgs.NextPageMsg{} }
		}
	}
	return m, nil
}

// View renders the tab bar.
func (m TabBar) View() string {
	if len(m.tabs) == 0 {
		return ""
	}

	sep := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("│")

	availableForTabs := m.width - len(m.tabs)
	if availableForTabs < 0 {
		availableForTabs = 0
	}

	// Each tab gets roughly equal share of available space
	maxTabWidth := 30
	perTab := availableForTabs / len(m.tabs)
	if perTab < maxTabWidth {
		maxTabWidth = perTab
	}
	if maxTabWidth < 8 {
		maxTabWidth = 8
	}

	var parts []string
	for i, tab := range m.tabs {
		count := lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Render(fmt.Sprintf("%d", tab.Panels))

		// Tab padding takes 4 cells, the count and its space the rest.
		nameWidth := maxTabWidth - 4 - len(fmt.Sprintf("%d", tab.Panels)) - 1
		if nameWidth < 1 {
			nameWidth = 1
		}
		name := tab.Name
		if len([]rune(name)) > nameWidth {
			name = string([]rune(name)[:nameWidth-1]) + "…"
		}

		label := name + " " + count

		var rendered string
		if i == m.active {
			rendered = m.styles.TabActive.Render(label)
		} else {
			rendered = m.styles.TabInactive.Render(label)
		}
		parts = append(parts, rendered)
	}

	rendered := strings.Join(parts, sep)
	renderedWidth := lipgloss.Width(rendered)
	if renderedWidth < m.width {
		rendered += strings.Repeat(" ", m.width-renderedWidth)
	}

	return rendered
}
