package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/templates"
	"github.com/sadopc/paneboard/internal/ui/components"
	"github.com/sadopc/paneboard/internal/ui/layout"
	"github.com/sadopc/paneboard/internal/ui/msgs"
	"github.com/sadopc/paneboard/internal/ui/panels/pane"
	"github.com/sadopc/paneboard/internal/ui/resize"
	"github.com/sadopc/paneboard/internal/ui/theme"
)

// boardTop is the first screen row of the board, below the tab bar.
const boardTop = 1

// boardArea is the container widths are measured against.
type boardArea struct {
	width int
}

func (b *boardArea) ClientWidth() int {
	return b.width
}

// pageView is the on-screen state of one page: its panes, the handle after
// each pane, and the resize controller that owns drags on those handles.
type pageView struct {
	page    *board.Page
	panes   []*pane.Model
	handles []*resize.Handle
	focus   int

	area       *boardArea
	container  *resize.ContainerRef
	controller *resize.Controller

	// Panel being dragged and its width when the drag began.
	dragPanel  *board.Panel
	dragBefore string
}

func (a *App) newPageView(p *board.Page) *pageView {
	v := &pageView{
		page:      p,
		area:      &boardArea{},
		container: &resize.ContainerRef{},
	}
	v.controller = resize.New(v.container, a.pointer,
		resize.WithLogger(a.logger.With("page", p.Name)))
	v.rebuild(a.theme, a.styles)
	return v
}

// rebuild recreates the panes after the page's panels changed.
func (v *pageView) rebuild(t theme.Theme, s theme.Styles) {
	v.panes = make([]*pane.Model, len(v.page.Panels))
	v.handles = make([]*resize.Handle, len(v.page.Panels))
	for i, panel := range v.page.Panels {
		v.panes[i] = pane.New(panel, t, s)
		v.handles[i] = &resize.Handle{ID: panel.ID, Element: v.panes[i]}
	}
	if v.focus >= len(v.panes) {
		v.focus = len(v.panes) - 1
	}
	if v.focus < 0 {
		v.focus = 0
	}
	v.syncFocus()
}

func (v *pageView) syncFocus() {
	for i, p := range v.panes {
		p.SetFocused(i == v.focus)
	}
}

func (v *pageView) focused() *pane.Model {
	if v.focus >= 0 && v.focus < len(v.panes) {
		return v.panes[v.focus]
	}
	return nil
}

// widths returns the width each pane should be laid out with, previews
// included.
func (v *pageView) widths() []string {
	out := make([]string, len(v.panes))
	for i, p := range v.panes {
		out[i] = p.Width()
	}
	return out
}

func (v *pageView) clearPreviews() {
	for _, p := range v.panes {
		p.ClearPreview()
	}
}

func (v *pageView) render(l layout.BoardLayout, s theme.Styles) string {
	if len(v.panes) == 0 {
		return lipgloss.NewStyle().
			Width(l.Width).
			Height(l.ContentHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Render(s.Hint.Render("Empty page. Press ctrl+n to add a panel."))
	}

	active := v.controller.ActiveHandle()
	var cols []string
	for i, p := range v.panes {
		if i >= len(l.Panes) {
			break
		}
		cols = append(cols, p.View())
		if i < len(l.Handles) {
			dragging := active != nil && active == v.handles[i]
			cols = append(cols, handleColumn(l.ContentHeight, s.HandleStyle(dragging)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func handleColumn(height int, style lipgloss.Style) string {
	if height < 1 {
		return ""
	}
	return style.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
}

func (a *App) view() *pageView {
	return a.views[a.store.ActivePage]
}

// relayout recomputes geometry for the active page and rebuilds the hit map.
func (a *App) relayout() {
	if !a.ready {
		return
	}
	a.applyLayout(layout.Calculate(a.width, a.height, a.view().widths()))
}

// applyLayout installs l for the active page: container size, pane sizes
// and the hit map.
func (a *App) applyLayout(l layout.BoardLayout) {
	v := a.view()
	a.layout = l

	v.area.width = a.layout.Width
	if a.layout.Width > 0 {
		v.container.Attach(v.area)
	} else {
		v.container.Detach()
	}

	for i, r := range a.layout.Panes {
		v.panes[i].SetSize(r.W, a.layout.ContentHeight)
	}

	a.hits.Clear()
	for i, r := range a.layout.Panes {
		a.hits.AddRect(regionPane, r.X, boardTop, r.W, a.layout.ContentHeight, i)
	}
	for i, h := range a.layout.Handles {
		a.hits.AddRect(regionHandle, h.X, boardTop, h.W, a.layout.ContentHeight, i)
	}

	a.tabBar.SetWidth(a.width)
	a.statusBar.SetWidth(a.width)
	a.syncStatus()
}

func (a *App) syncTabs() {
	tabs := make([]components.TabItem, len(a.store.Board.Pages))
	for i, p := range a.store.Board.Pages {
		tabs[i] = components.TabItem{Name: p.Name, Panels: len(p.Panels)}
	}
	a.tabBar.SetTabs(tabs)
	a.tabBar.SetActive(a.store.ActivePage)
}

func (a *App) syncStatus() {
	v := a.view()
	if p := v.focused(); p != nil {
		a.statusBar.SetFocused(p.Panel().Title, p.Width())
	} else {
		a.statusBar.SetFocused("", "")
	}
	a.statusBar.SetDragging(v.controller.Dragging())
	a.statusBar.SetSaveState(a.store.Dirty, a.store.SavedAt)
}

func (a *App) markDirty() {
	a.store.MarkDirty()
	a.syncTabs()
	a.syncStatus()
}

func (a *App) focusPanel(i int) {
	v := a.view()
	if i < 0 || i >= len(v.panes) {
		return
	}
	v.focus = i
	v.syncFocus()
	a.syncStatus()
}

func (a *App) cycleFocus(reverse bool) {
	v := a.view()
	n := len(v.panes)
	if n == 0 {
		return
	}
	if reverse {
		a.focusPanel((v.focus - 1 + n) % n)
	} else {
		a.focusPanel((v.focus + 1) % n)
	}
}

// leavePage tears down the active page's drag state before it is hidden.
func (a *App) leavePage() {
	a.cancelDrag()
	a.view().container.Detach()
}

func (a *App) enterPage() {
	a.tabBar.SetActive(a.store.ActivePage)
	a.relayout()
	a.syncStatus()
}

func (a *App) switchPage(i int) {
	if i < 0 || i >= len(a.views) || i == a.store.ActivePage {
		return
	}
	a.leavePage()
	a.store.ActivePage = i
	a.enterPage()
}

func (a *App) nextPage() {
	if len(a.views) < 2 {
		return
	}
	a.leavePage()
	a.store.NextPage()
	a.enterPage()
}

func (a *App) prevPage() {
	if len(a.views) < 2 {
		return
	}
	a.leavePage()
	a.store.PrevPage()
	a.enterPage()
}

func (a App) requestClosePage() (tea.Model, tea.Cmd) {
	if len(a.views) <= 1 {
		cmd := a.toast.Show("Cannot close the last page", true, 2*time.Second)
		return a, cmd
	}
	p := a.store.Page()
	a.modal.Show("Close page?",
		fmt.Sprintf("Close %q and its %d panels?", p.Name, len(p.Panels)),
		"Close", msgs.ConfirmClosePageMsg{})
	a.setMode(msgs.ModeModal)
	return a, nil
}

func (a App) closePage() (tea.Model, tea.Cmd) {
	idx := a.store.ActivePage
	name := a.store.Page().Name

	a.leavePage()
	if !a.store.ClosePage() {
		cmd := a.toast.Show("Cannot close the last page", true, 2*time.Second)
		return a, cmd
	}
	a.views = append(a.views[:idx], a.views[idx+1:]...)
	a.logger.Info("page closed", "page", name)

	a.syncTabs()
	a.enterPage()
	cmd := a.toast.Show("Closed "+name, false, 2*time.Second)
	return a, cmd
}

// newPage adds a page from the named template and switches to it. An empty
// name opens the template picker instead.
func (a App) newPage(name string) (tea.Model, tea.Cmd) {
	if name == "" {
		all := templates.All()
		choices := make([]components.TemplateChoice, len(all))
		for i, t := range all {
			choices[i] = components.TemplateChoice{Name: t.Name, Panels: len(t.Panels)}
		}
		a.commandPalette.OpenTemplatePicker(choices)
		a.setMode(msgs.ModeCommandPalette)
		return a, nil
	}

	tmpl := templates.ByName(name)
	if tmpl == nil {
		cmd := a.toast.Show("Unknown page layout: "+name, true, 3*time.Second)
		return a, cmd
	}

	a.leavePage()
	p := tmpl.Page(fmt.Sprintf("%s %d", tmpl.Name, len(a.views)+1))
	a.store.AddPage(p)
	a.views = append(a.views, a.newPageView(p))
	a.logger.Info("page added", "page", p.Name, "template", tmpl.Name)

	a.syncTabs()
	a.enterPage()
	return a, nil
}

func (a App) newPanel() (tea.Model, tea.Cmd) {
	a.cancelDrag()
	v := a.view()
	p := board.NewPanel(fmt.Sprintf("Panel %d", len(v.page.Panels)+1))
	v.page.Add(p)
	v.rebuild(a.theme, a.styles)
	v.focus = len(v.panes) - 1
	v.syncFocus()
	a.relayout()
	a.markDirty()
	a.statusBar.SetMessage("Added " + p.Title)
	return a, a.statusBar.ClearAfter(2 * time.Second)
}

func (a App) movePanel(delta int) (tea.Model, tea.Cmd) {
	a.cancelDrag()
	v := a.view()
	to := v.focus + delta
	if !v.page.Move(v.focus, to) {
		return a, nil
	}
	v.focus = to
	v.rebuild(a.theme, a.styles)
	a.relayout()
	a.markDirty()
	return a, nil
}

func (a App) resetWidth() (tea.Model, tea.Cmd) {
	if a.view().controller.Dragging() {
		return a, nil
	}
	p := a.view().focused()
	if p == nil || p.Panel().Width == "" {
		return a, nil
	}
	p.Panel().SetWidth("")
	a.relayout()
	a.markDirty()
	return a, nil
}

func (a *App) openPanelPicker() {
	v := a.view()
	choices := make([]components.PanelChoice, len(v.page.Panels))
	for i, p := range v.page.Panels {
		choices[i] = components.PanelChoice{Index: i, Title: p.Title, Width: p.Width}
	}
	a.commandPalette.OpenPanelPicker(choices)
	a.setMode(msgs.ModeCommandPalette)
}

func (a App) requestQuit() (tea.Model, tea.Cmd) {
	if !a.store.Dirty {
		a.teardown()
		return a, tea.Quit
	}
	a.modal.Show("Unsaved changes", "Quit without saving?", "Quit", msgs.ConfirmQuitMsg{})
	a.setMode(msgs.ModeModal)
	return a, nil
}

// teardown releases every page's drag listeners.
func (a *App) teardown() {
	for _, v := range a.views {
		v.controller.Close()
		v.dragPanel = nil
		v.container.Detach()
	}
	a.logger.Info("shutting down", "dirty", a.store.Dirty)
}
