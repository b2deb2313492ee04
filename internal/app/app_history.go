package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/core/history"
)

// recordResize adds a committed width change to the resize history.
func (a *App) recordResize(page string, panel *board.Panel, before string) {
	if a.history == nil {
		return
	}
	_, err := a.history.Add(history.Entry{
		Board:     a.store.BoardPath,
		Page:      page,
		PanelID:   panel.ID,
		Title:     panel.Title,
		Before:    before,
		After:     panel.Width,
		Timestamp: time.Now(),
	})
	if err != nil {
		a.logger.Error("record resize", "err", err, "panel", panel.ID)
	}
}

// undoResize restores the width a panel had before the newest recorded
// resize of this board, switching to its page if needed. Entries for
// panels that no longer exist are discarded.
func (a App) undoResize() (tea.Model, tea.Cmd) {
	if a.history == nil {
		cmd := a.toast.Show("Resize history is off", true, 2*time.Second)
		return a, cmd
	}
	if a.view().controller.Dragging() {
		return a, nil
	}

	for {
		e, ok, err := a.history.Last(a.store.BoardPath)
		if err != nil {
			a.logger.Error("undo resize", "err", err)
			cmd := a.toast.Show("Undo failed: "+err.Error(), true, 3*time.Second)
			return a, cmd
		}
		if !ok {
			cmd := a.toast.Show("Nothing to undo", false, 2*time.Second)
			return a, cmd
		}
		if err := a.history.Delete(e.ID); err != nil {
			a.logger.Error("undo resize", "err", err, "entry", e.ID)
			cmd := a.toast.Show("Undo failed: "+err.Error(), true, 3*time.Second)
			return a, cmd
		}

		pageIdx, panelIdx := a.findPanel(e.PanelID)
		if pageIdx < 0 {
			a.logger.Debug("dropping history for missing panel", "panel", e.PanelID)
			continue
		}

		a.switchPage(pageIdx)
		a.focusPanel(panelIdx)
		panel := a.store.Board.Pages[pageIdx].Panels[panelIdx]
		panel.SetWidth(e.Before)
		a.relayout()
		a.markDirty()

		width := e.Before
		if width == "" {
			width = "auto"
		}
		a.statusBar.SetMessage("Undo: " + panel.Title + " → " + width)
		return a, a.statusBar.ClearAfter(2 * time.Second)
	}
}

// findPanel returns the page and panel index of id, or -1, -1.
func (a *App) findPanel(id string) (page, panel int) {
	for i, p := range a.store.Board.Pages {
		for j, pn := range p.Panels {
			if pn.ID == id {
				return i, j
			}
		}
	}
	return -1, -1
}
