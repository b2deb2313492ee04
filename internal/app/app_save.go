package app

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/ui/layout"
	"github.com/sadopc/paneboard/internal/ui/msgs"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

func (a App) saveBoard() (tea.Model, tea.Cmd) {
	path := a.store.BoardPath
	if path == "" {
		cmd := a.toast.Show("No board file: start with --board <path>", true, 3*time.Second)
		return a, cmd
	}

	if err := board.SaveToFile(a.store.Board, path); err != nil {
		a.logger.Error("save board", "err", err, "path", path)
		cmd := a.toast.Show("Save failed: "+err.Error(), true, 3*time.Second)
		return a, cmd
	}

	a.store.MarkSaved(time.Now())
	a.logger.Info("board saved", "path", path)
	a.syncTabs()
	a.syncStatus()
	cmd := a.toast.Show("Board saved", false, 2*time.Second)
	return a, cmd
}

func (a App) copyLayout() (tea.Model, tea.Cmd) {
	v := a.view()
	text := layout.Describe(v.page.Panels, a.layout)
	n := len(v.page.Panels)

	return a, func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return msgs.ToastMsg{Text: "Clipboard error: " + err.Error(), IsError: true, Duration: 3 * time.Second}
		}
		return msgs.ToastMsg{Text: fmt.Sprintf("Copied layout of %d panels", n), Duration: 2 * time.Second}
	}
}
