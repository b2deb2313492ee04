package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/paneboard/internal/ui/msgs"
	"github.com/sadopc/paneboard/internal/ui/pointer"
	"github.com/sadopc/paneboard/internal/ui/resize"
)

// Hit map region IDs. Region data is the pane index.
const (
	regionPane   = "pane"
	regionHandle = "handle"
)

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.commandPalette.Visible || a.help.Visible || a.modal.Visible {
		return a, nil
	}

	ev := pointer.Event{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return a.handlePress(msg)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			return a.handleWheel(msg)
		}

	case tea.MouseActionMotion:
		a.pointer.Dispatch(pointer.Move, ev)
		if a.view().controller.Dragging() {
			a.relayout()
		}

	case tea.MouseActionRelease:
		a.pointer.Dispatch(pointer.Up, ev)
		return a.finishDrag()
	}

	return a, nil
}

func (a App) handlePress(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	r := a.hits.Test(msg.X, msg.Y)
	if r == nil {
		return a, nil
	}
	idx, ok := r.Data.(int)
	if !ok {
		return a, nil
	}

	switch r.ID {
	case regionHandle:
		a.focusPanel(idx)
		if err := a.beginDrag(idx, msg.X); err != nil {
			cmd := a.toast.Show(err.Error(), true, 3*time.Second)
			return a, cmd
		}
	case regionPane:
		a.focusPanel(idx)
	}
	return a, nil
}

func (a App) handleWheel(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	v := a.view()
	target := v.focused()
	if r := a.hits.Test(msg.X, msg.Y); r != nil && r.ID == regionPane {
		if idx, ok := r.Data.(int); ok && idx < len(v.panes) {
			target = v.panes[idx]
		}
	}
	if target == nil {
		return a, nil
	}
	return a, target.Update(msg)
}

// beginDrag starts a resize on the handle after pane i, with the pointer
// at screen column x.
func (a *App) beginDrag(i, x int) error {
	v := a.view()
	if i < 0 || i >= len(v.handles) {
		return resize.ErrMissingTargetElement
	}
	v.clearPreviews()

	panel := v.page.Panels[i]
	if err := v.controller.StartResizing(resize.StartEvent{X: x, Handle: v.handles[i]}, panel); err != nil {
		return err
	}
	v.dragPanel = panel
	v.dragBefore = panel.Width

	a.setMode(msgs.ModeResize)
	a.relayout()
	return nil
}

// finishDrag settles the page after a release. The controller has already
// committed (or refused) the width by the time this runs.
func (a App) finishDrag() (tea.Model, tea.Cmd) {
	v := a.view()
	if v.dragPanel == nil || v.controller.Dragging() {
		return a, nil
	}

	panel, before := v.dragPanel, v.dragBefore
	v.dragPanel = nil
	v.clearPreviews()
	a.setMode(msgs.ModeNormal)
	a.relayout()

	if panel.Width == before {
		return a, nil
	}
	a.markDirty()
	a.recordResize(v.page.Name, panel, before)
	resized := msgs.PanelResizedMsg{PanelID: panel.ID, Title: panel.Title, Width: panel.Width}
	return a, func() tea.Msg { return resized }
}

// cancelDrag drops an in-flight drag on the active page without committing.
// Only a release ends a drag from the user's side; this is for the page view
// going away and for edits that rebuild its panes.
func (a *App) cancelDrag() {
	v := a.view()
	if !v.controller.Dragging() && v.dragPanel == nil {
		return
	}
	v.controller.Close()
	v.dragPanel = nil
	v.clearPreviews()
	if a.mode == msgs.ModeResize {
		a.setMode(msgs.ModeNormal)
	}
	a.relayout()
}

// nudgeWidth resizes the focused panel by cells, driving the same gesture a
// mouse drag would: press on its handle, release cells columns away.
func (a App) nudgeWidth(cells int) (tea.Model, tea.Cmd) {
	v := a.view()
	if v.controller.Dragging() {
		return a, nil
	}
	if v.focus >= len(a.layout.Handles) {
		cmd := a.toast.Show("The last panel fills the remaining width", true, 2*time.Second)
		return a, cmd
	}

	x := a.layout.Handles[v.focus].X
	if err := a.beginDrag(v.focus, x); err != nil {
		cmd := a.toast.Show(err.Error(), true, 3*time.Second)
		return a, cmd
	}
	a.pointer.Dispatch(pointer.Up, pointer.Event{X: x + cells, Y: boardTop})
	return a.finishDrag()
}
