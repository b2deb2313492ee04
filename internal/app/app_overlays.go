package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/paneboard/internal/ui/msgs"
	"github.com/sadopc/paneboard/internal/ui/theme"
)

func (a App) handleSwitchTheme(msg msgs.SwitchThemeMsg) (tea.Model, tea.Cmd) {
	if msg.Name == "" {
		// Open theme picker
		a.commandPalette.OpenThemePicker(theme.Names())
		a.setMode(msgs.ModeCommandPalette)
		return a, nil
	}

	t := theme.Resolve(msg.Name)
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s

	a.tabBar.SetTheme(t, s)
	a.statusBar.SetTheme(t, s)
	a.commandPalette.SetTheme(t, s)
	a.help.SetTheme(t, s)
	a.toast.SetTheme(t, s)
	a.modal.SetTheme(t, s)
	for _, v := range a.views {
		for _, p := range v.panes {
			p.SetTheme(t, s)
		}
	}
	a.logger.Debug("theme switched", "theme", t.Name)

	cmd := a.toast.Show("Theme: "+t.Name, false, 2*time.Second)
	return a, cmd
}
