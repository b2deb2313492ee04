package app

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/paneboard/internal/config"
	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/ui/msgs"
	"github.com/sadopc/paneboard/internal/ui/pointer"
)

// testApp creates an App over the default board (Notes 30%, Todo 30%, Log
// auto) with no board file.
func testApp() App {
	return New(board.Default(), "", config.DefaultConfig(), nil)
}

// testAppResized returns an App that has been resized so a.ready == true.
// At 100 columns the panes sit at 0-29, 31-60 and 62-99, with handles at
// columns 30 and 61.
func testAppResized() App {
	return resized(testApp())
}

func resized(a App) App {
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(App)
}

func twoPageBoard() *board.Board {
	b := board.Default()
	b.Pages = append(b.Pages, &board.Page{
		Name: "Second",
		Panels: []*board.Panel{
			{ID: "a", Title: "Alpha", Width: "50%"},
			{ID: "b", Title: "Beta"},
		},
	})
	return b
}

// keyMsg creates a tea.KeyMsg for a single rune key.
func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func mouseMsg(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := clipboardWrite
	clipboardWrite = fn
	t.Cleanup(func() { clipboardWrite = orig })
}

func panel(a App, i int) *board.Panel {
	return a.store.ActivePanels()[i]
}

// --- Tests ---

func TestNew_DefaultState(t *testing.T) {
	a := testApp()

	if a.mode != msgs.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", a.mode)
	}
	if a.ready {
		t.Error("expected ready=false before WindowSizeMsg")
	}
	if len(a.views) != 1 {
		t.Fatalf("expected 1 page view, got %d", len(a.views))
	}
	if len(a.views[0].panes) != 3 {
		t.Errorf("expected 3 panes, got %d", len(a.views[0].panes))
	}
	if a.views[0].container.Get() != nil {
		t.Error("container should stay detached until the first resize")
	}
}

func TestNew_NilBoard(t *testing.T) {
	a := New(nil, "", config.DefaultConfig(), nil)
	if len(a.views) != 1 || len(a.views[0].panes) != 0 {
		t.Fatalf("nil board should give one empty page, got %d views", len(a.views))
	}
	a = resized(a)
	if !strings.Contains(a.View(), "ctrl+n") {
		t.Error("empty page should hint at adding a panel")
	}
}

func TestWindowSizeMsg_SetsLayout(t *testing.T) {
	a := testAppResized()

	if !a.ready {
		t.Fatal("expected ready=true after WindowSizeMsg")
	}
	if a.layout.ContentHeight != 28 {
		t.Errorf("expected ContentHeight 28, got %d", a.layout.ContentHeight)
	}
	if got := a.views[0].container.Get(); got == nil || got.ClientWidth() != 100 {
		t.Fatalf("container should report the board width, got %v", got)
	}
	if w := a.views[0].panes[0].OffsetWidth(); w != 30 {
		t.Errorf("expected Notes to be 30 columns, got %d", w)
	}
	if r := a.hits.Test(30, 5); r == nil || r.ID != regionHandle {
		t.Errorf("expected a handle at column 30, got %v", r)
	}
}

func TestMouseDrag_PreviewsAndCommits(t *testing.T) {
	a := testAppResized()
	v := a.views[0]

	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))
	if !v.controller.Dragging() {
		t.Fatal("press on a handle should start a drag")
	}
	if a.mode != msgs.ModeResize {
		t.Errorf("expected ModeResize while dragging, got %v", a.mode)
	}
	if a.pointer.Len(pointer.Move) != 1 || a.pointer.Len(pointer.Up) != 1 {
		t.Fatal("drag should register one move and one up listener")
	}
	if got := v.panes[0].StyleWidth(); got != "30%" {
		t.Errorf("initial preview = %q, want 30%%", got)
	}

	a, _ = update(t, a, mouseMsg(tea.MouseActionMotion, 40, 5))
	if got := v.panes[0].StyleWidth(); got != "40%" {
		t.Errorf("preview after move = %q, want 40%%", got)
	}
	if panel(a, 0).Width != "30%" {
		t.Error("a move must not commit the width")
	}
	if a.layout.Panes[0].W != 40 {
		t.Errorf("layout should follow the preview, got %d columns", a.layout.Panes[0].W)
	}

	a, cmd := update(t, a, mouseMsg(tea.MouseActionRelease, 40, 5))
	if got := panel(a, 0).Width; got != "40%" {
		t.Errorf("committed width = %q, want 40%%", got)
	}
	if v.controller.Dragging() {
		t.Error("release should end the drag")
	}
	if a.pointer.Len(pointer.Move) != 0 || a.pointer.Len(pointer.Up) != 0 {
		t.Error("release should remove both listeners")
	}
	if v.panes[0].StyleWidth() != "" {
		t.Error("release should clear the preview")
	}
	if !a.store.Dirty {
		t.Error("a committed resize should mark the board dirty")
	}
	if a.mode != msgs.ModeNormal {
		t.Errorf("expected ModeNormal after release, got %v", a.mode)
	}

	if cmd == nil {
		t.Fatal("release should emit PanelResizedMsg")
	}
	resizedMsg, ok := cmd().(msgs.PanelResizedMsg)
	if !ok || resizedMsg.Title != "Notes" || resizedMsg.Width != "40%" {
		t.Fatalf("unexpected resize message %#v", resizedMsg)
	}
}

func TestMouseDrag_ReleaseInPlaceIsClean(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 61, 5))
	a, cmd := update(t, a, mouseMsg(tea.MouseActionRelease, 61, 5))

	if got := panel(a, 1).Width; got != "30%" {
		t.Errorf("width should be unchanged, got %q", got)
	}
	if a.store.Dirty {
		t.Error("an unchanged width should not dirty the board")
	}
	if cmd != nil {
		t.Error("an unchanged width should not emit a resize message")
	}
}

func TestMouseDrag_Unclamped(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))
	a, _ = update(t, a, mouseMsg(tea.MouseActionRelease, 0, 5))

	if got := panel(a, 0).Width; got != "0%" {
		t.Errorf("expected the raw 0%% width to be stored, got %q", got)
	}
	if a.layout.Panes[0].W < 4 {
		t.Errorf("drawn width should stay clamped, got %d", a.layout.Panes[0].W)
	}
}

func TestMousePress_OnPaneFocuses(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 70, 5))
	if a.views[0].focus != 2 {
		t.Errorf("expected focus on pane 2, got %d", a.views[0].focus)
	}
	if a.views[0].controller.Dragging() {
		t.Error("press on a pane must not start a drag")
	}
}

func TestMouse_IgnoredWhileOverlayOpen(t *testing.T) {
	a := testAppResized()
	a, _ = update(t, a, msgs.OpenCommandPaletteMsg{})

	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))
	if a.views[0].controller.Dragging() {
		t.Error("mouse input should be ignored while the palette is open")
	}
}

func TestEsc_DoesNotEndDrag(t *testing.T) {
	a := testAppResized()
	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))
	a, _ = update(t, a, mouseMsg(tea.MouseActionMotion, 50, 5))

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if !a.views[0].controller.Dragging() {
		t.Fatal("only a release should end the drag")
	}
	if a.pointer.Len(pointer.Up) != 1 {
		t.Error("the up listener should still be registered")
	}

	a, _ = update(t, a, mouseMsg(tea.MouseActionRelease, 50, 5))
	if got := panel(a, 0).Width; got != "50%" {
		t.Errorf("release after esc should commit 50%%, got %q", got)
	}
	if a.views[0].controller.Dragging() || a.pointer.Len(pointer.Up) != 0 {
		t.Error("release should end the session")
	}
}

func TestWidthKeys_IgnoredWhileDragging(t *testing.T) {
	a := testAppResized()
	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))

	for _, k := range []rune{'=', '>', '<'} {
		a, _ = update(t, a, keyMsg(k))
		if !a.views[0].controller.Dragging() {
			t.Fatalf("%q should not end the drag", k)
		}
	}
	if got := panel(a, 0).Width; got != "30%" {
		t.Errorf("width keys should not change the width mid-drag, got %q", got)
	}

	a, _ = update(t, a, mouseMsg(tea.MouseActionRelease, 40, 5))
	if got := panel(a, 0).Width; got != "40%" {
		t.Errorf("release should commit 40%%, got %q", got)
	}
}

func TestNudge_GrowAndShrink(t *testing.T) {
	a := testAppResized()

	a, cmd := update(t, a, keyMsg('>'))
	if got := panel(a, 0).Width; got != "31%" {
		t.Errorf("after > width = %q, want 31%%", got)
	}
	if cmd == nil {
		t.Error("nudge should emit PanelResizedMsg")
	}
	if a.pointer.Len(pointer.Up) != 0 {
		t.Error("nudge should leave no listeners behind")
	}

	a, _ = update(t, a, keyMsg('<'))
	a, _ = update(t, a, keyMsg('<'))
	if got := panel(a, 0).Width; got != "29%" {
		t.Errorf("after < < width = %q, want 29%%", got)
	}
}

func TestNudge_LastPanelRefused(t *testing.T) {
	a := testAppResized()
	a, _ = update(t, a, msgs.FocusPanelMsg{Index: 2})

	a, _ = update(t, a, keyMsg('>'))
	if got := panel(a, 2).Width; got != "" {
		t.Errorf("last panel width should stay auto, got %q", got)
	}
	if !a.toast.Visible {
		t.Error("expected an error toast for the last panel")
	}
}

func TestResetWidth(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, keyMsg('='))
	if got := panel(a, 0).Width; got != "" {
		t.Errorf("expected auto width, got %q", got)
	}
	if !a.store.Dirty {
		t.Error("reset should dirty the board")
	}
}

func TestMovePanel(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, keyMsg('L'))
	if panel(a, 0).Title != "Todo" || panel(a, 1).Title != "Notes" {
		t.Fatalf("expected Todo, Notes order, got %s, %s", panel(a, 0).Title, panel(a, 1).Title)
	}
	if a.views[0].focus != 1 {
		t.Errorf("focus should follow the moved panel, got %d", a.views[0].focus)
	}
	if a.views[0].handles[1].Element != a.views[0].panes[1] {
		t.Error("handles should be rebuilt with their panes")
	}

	// Moving past the left edge is a no-op
	a, _ = update(t, a, keyMsg('H'))
	a, _ = update(t, a, keyMsg('H'))
	if panel(a, 0).Title != "Notes" {
		t.Errorf("expected Notes first again, got %s", panel(a, 0).Title)
	}
}

func TestNewPanel(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyCtrlN})
	a, _ = update(t, a, msgs.NewPanelMsg{})

	if n := len(a.store.ActivePanels()); n != 4 {
		t.Fatalf("expected 4 panels, got %d", n)
	}
	if a.views[0].focus != 3 {
		t.Errorf("expected focus on the new panel, got %d", a.views[0].focus)
	}
	if panel(a, 3).ID == "" {
		t.Error("new panel should get an ID")
	}
}

func TestCycleFocus(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.views[0].focus != 1 {
		t.Errorf("after tab expected focus 1, got %d", a.views[0].focus)
	}
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.views[0].focus != 2 {
		t.Errorf("shift+tab should wrap to 2, got %d", a.views[0].focus)
	}
	a, _ = update(t, a, keyMsg('2'))
	if a.views[0].focus != 1 {
		t.Errorf("2 should focus the second panel, got %d", a.views[0].focus)
	}
}

func TestPageSwitch_TearsDownDrag(t *testing.T) {
	a := resized(New(twoPageBoard(), "", config.DefaultConfig(), nil))
	first := a.views[0]

	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))
	a, _ = update(t, a, mouseMsg(tea.MouseActionMotion, 45, 5))

	a, _ = update(t, a, msgs.NextPageMsg{})
	if a.store.ActivePage != 1 {
		t.Fatalf("expected page 1, got %d", a.store.ActivePage)
	}
	if first.controller.Dragging() {
		t.Error("switching pages should end the hidden page's drag")
	}
	if a.pointer.Len(pointer.Move) != 0 {
		t.Error("switching pages should release the drag listeners")
	}
	if first.container.Get() != nil {
		t.Error("the hidden page's container should be detached")
	}
	if first.dragPanel != nil || first.panes[0].StyleWidth() != "" {
		t.Error("the hidden page should hold no drag state")
	}

	// Releasing on the new page commits nothing anywhere
	a, _ = update(t, a, mouseMsg(tea.MouseActionRelease, 45, 5))
	if got := first.page.Panels[0].Width; got != "30%" {
		t.Errorf("hidden page width changed to %q", got)
	}
	if a.views[1].container.Get() == nil {
		t.Error("the visible page's container should be attached")
	}

	a, _ = update(t, a, msgs.NextPageMsg{})
	if a.store.ActivePage != 0 {
		t.Errorf("next page should wrap to 0, got %d", a.store.ActivePage)
	}
}

func TestPageControllersAreIndependent(t *testing.T) {
	a := resized(New(twoPageBoard(), "", config.DefaultConfig(), nil))
	a, _ = update(t, a, msgs.PrevPageMsg{})

	// Alpha is 50% of 100 columns, so its handle sits at column 50.
	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 50, 5))
	a, _ = update(t, a, mouseMsg(tea.MouseActionRelease, 60, 5))

	if got := a.views[1].page.Panels[0].Width; got != "60%" {
		t.Errorf("expected Alpha at 60%%, got %q", got)
	}
	if got := a.views[0].page.Panels[0].Width; got != "30%" {
		t.Errorf("first page should be untouched, got %q", got)
	}
}

func TestClosePage(t *testing.T) {
	a := resized(New(twoPageBoard(), "", config.DefaultConfig(), nil))
	closed := a.views[0]
	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyCtrlW})
	a, _ = update(t, a, msgs.ClosePageMsg{})
	if !a.modal.Visible {
		t.Fatal("closing a page should ask for confirmation")
	}

	a, _ = update(t, a, msgs.ConfirmClosePageMsg{})
	if len(a.views) != 1 || len(a.store.Board.Pages) != 1 {
		t.Fatalf("expected one page left, got %d views", len(a.views))
	}
	if a.store.Page().Name != "Second" {
		t.Errorf("expected Second to remain, got %s", a.store.Page().Name)
	}
	if closed.controller.Dragging() || a.pointer.Len(pointer.Up) != 0 {
		t.Error("closing a page should tear down its controller")
	}
}

func TestClosePage_LastPageRefused(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, msgs.ClosePageMsg{})
	if a.modal.Visible {
		t.Error("closing the last page should not prompt")
	}
	if !a.toast.Visible {
		t.Error("expected an error toast")
	}
}

func TestQuit_CleanBoardQuits(t *testing.T) {
	a := testAppResized()

	_, cmd := update(t, a, keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestQuit_DirtyBoardConfirms(t *testing.T) {
	a := testAppResized()
	a, _ = update(t, a, keyMsg('='))

	a, cmd := update(t, a, msgs.RequestQuitMsg{})
	if cmd != nil {
		t.Error("dirty quit should wait for confirmation")
	}
	if !a.modal.Visible || a.mode != msgs.ModeModal {
		t.Fatal("dirty quit should show the confirm modal")
	}
}

func TestConfirmQuit_TearsDownEveryController(t *testing.T) {
	a := resized(New(twoPageBoard(), "", config.DefaultConfig(), nil))
	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	a, cmd = update(t, a, cmd())
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	for i, v := range a.views {
		if v.controller.Dragging() {
			t.Errorf("view %d still dragging after quit", i)
		}
	}
	if a.pointer.Len(pointer.Move) != 0 || a.pointer.Len(pointer.Up) != 0 {
		t.Error("quit should release every listener")
	}
}

func TestSaveBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	a := resized(New(board.Default(), path, config.DefaultConfig(), logger))
	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))
	a, _ = update(t, a, mouseMsg(tea.MouseActionRelease, 42, 5))

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	a, _ = update(t, a, msgs.SaveBoardMsg{})
	if a.store.Dirty {
		t.Error("save should clear the dirty flag")
	}
	if a.store.SavedAt.IsZero() {
		t.Error("save should record the save time")
	}

	loaded, err := board.LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if got := loaded.Pages[0].Panels[0].Width; got != "42%" {
		t.Errorf("saved width = %q, want 42%%", got)
	}
	if !strings.Contains(logs.String(), "board saved") {
		t.Errorf("expected a save log line, got %q", logs.String())
	}
}

func TestSaveBoard_NoPath(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, msgs.SaveBoardMsg{})
	if !a.toast.Visible || !strings.Contains(a.toast.Text(), "No board file") {
		t.Errorf("expected a no-file toast, got %q", a.toast.Text())
	}
}

func TestCopyLayout(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})

	a := testAppResized()
	_, cmd := update(t, a, keyMsg('y'))
	if cmd == nil {
		t.Fatal("y should return a copy command")
	}

	toast, ok := cmd().(msgs.ToastMsg)
	if !ok || toast.IsError {
		t.Fatalf("expected a success toast, got %#v", toast)
	}
	for _, want := range []string{"Notes", "30%", "Log", "auto"} {
		if !strings.Contains(copied, want) {
			t.Errorf("copied layout missing %q:\n%s", want, copied)
		}
	}
}

func TestCopyLayout_ClipboardError(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard") })

	a := testAppResized()
	_, cmd := update(t, a, msgs.CopyLayoutMsg{})
	toast, ok := cmd().(msgs.ToastMsg)
	if !ok || !toast.IsError {
		t.Fatalf("expected an error toast, got %#v", toast)
	}
}

func TestSwitchTheme(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, msgs.SwitchThemeMsg{})
	if !a.commandPalette.Visible {
		t.Fatal("empty theme name should open the picker")
	}

	a, _ = update(t, a, msgs.SwitchThemeMsg{Name: "nord"})
	if a.theme.Name != "Nord" {
		t.Errorf("expected Nord, got %s", a.theme.Name)
	}
}

func TestView_RendersBoard(t *testing.T) {
	if got := testApp().View(); got != "Loading..." {
		t.Errorf("expected loading view before resize, got %q", got)
	}

	view := testAppResized().View()
	for _, want := range []string{"Main", "Notes", "Todo", "Log", "│", "?:help"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestNewPage_OpensTemplatePicker(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyCtrlT})
	if a.commandPalette.Visible {
		t.Fatal("ctrl+t should only emit NewPageMsg")
	}
	a, _ = update(t, a, msgs.NewPageMsg{})
	if !a.commandPalette.Visible || a.mode != msgs.ModeCommandPalette {
		t.Error("an empty template should open the picker")
	}
}

func TestNewPage_FromTemplate(t *testing.T) {
	a := testAppResized()
	a, _ = update(t, a, mouseMsg(tea.MouseActionPress, 30, 5))

	a, _ = update(t, a, msgs.NewPageMsg{Template: "Left Sidebar"})
	if len(a.views) != 2 || a.store.ActivePage != 1 {
		t.Fatalf("expected to land on a second page, got %d views active %d", len(a.views), a.store.ActivePage)
	}
	if a.views[0].controller.Dragging() || a.views[0].container.Get() != nil {
		t.Error("adding a page should tear down the previous page's drag")
	}
	if got := a.store.Page().Name; got != "Left Sidebar 2" {
		t.Errorf("page name = %q, want Left Sidebar 2", got)
	}
	if got := panel(a, 0).Width; got != "25%" {
		t.Errorf("sidebar width = %q, want 25%%", got)
	}
	if a.views[1].container.Get() == nil {
		t.Error("the new page should be measurable")
	}
	if !a.store.Dirty {
		t.Error("adding a page should dirty the board")
	}
}

func TestNewPage_UnknownTemplate(t *testing.T) {
	a := testAppResized()

	a, _ = update(t, a, msgs.NewPageMsg{Template: "Nope"})
	if len(a.views) != 1 {
		t.Errorf("unknown template should not add a page, got %d views", len(a.views))
	}
	if !a.toast.Visible {
		t.Error("expected an error toast")
	}
}
