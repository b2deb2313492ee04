package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/paneboard/internal/ui/msgs"
)

func (a App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return func() tea.Msg { return msgs.ConfirmQuitMsg{} }
	case key.Matches(msg, a.keys.CommandPalette):
		return func() tea.Msg { return msgs.OpenCommandPaletteMsg{} }
	case key.Matches(msg, a.keys.NewPanel):
		return func() tea.Msg { return msgs.NewPanelMsg{} }
	case key.Matches(msg, a.keys.NewPage):
		return func() tea.Msg { return msgs.NewPageMsg{} }
	case key.Matches(msg, a.keys.ClosePage):
		return func() tea.Msg { return msgs.ClosePageMsg{} }
	case key.Matches(msg, a.keys.SaveBoard):
		return func() tea.Msg { return msgs.SaveBoardMsg{} }
	case key.Matches(msg, a.keys.PrevPage):
		return func() tea.Msg { return msgs.PrevPageMsg{} }
	case key.Matches(msg, a.keys.NextPage):
		return func() tea.Msg { return msgs.NextPageMsg{} }
	}
	return nil
}

func (a App) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.CycleFocus):
		a.cycleFocus(false)
		return a, nil
	case key.Matches(msg, a.keys.CycleFocusRev):
		a.cycleFocus(true)
		return a, nil
	case key.Matches(msg, a.keys.Help):
		return a, func() tea.Msg { return msgs.ShowHelpMsg{} }
	case key.Matches(msg, a.keys.PickPanel):
		return a, func() tea.Msg { return msgs.OpenPanelPickerMsg{} }
	case key.Matches(msg, a.keys.Grow):
		return a.nudgeWidth(1)
	case key.Matches(msg, a.keys.Shrink):
		return a.nudgeWidth(-1)
	case key.Matches(msg, a.keys.ResetWidth):
		return a.resetWidth()
	case key.Matches(msg, a.keys.Undo):
		return a.undoResize()
	case key.Matches(msg, a.keys.MoveLeft):
		return a.movePanel(-1)
	case key.Matches(msg, a.keys.MoveRight):
		return a.movePanel(1)
	case key.Matches(msg, a.keys.CopyLayout):
		return a.copyLayout()
	case msg.String() == "q":
		return a.requestQuit()
	}

	// 1-9 focus a panel by position
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		a.focusPanel(int(s[0] - '1'))
		return a, nil
	}

	// Everything else scrolls the focused panel
	if p := a.view().focused(); p != nil {
		return a, p.Update(msg)
	}
	return a, nil
}
