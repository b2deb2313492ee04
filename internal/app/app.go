package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/paneboard/internal/config"
	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/core/history"
	"github.com/sadopc/paneboard/internal/core/state"
	"github.com/sadopc/paneboard/internal/ui/components"
	"github.com/sadopc/paneboard/internal/ui/layout"
	"github.com/sadopc/paneboard/internal/ui/mouse"
	"github.com/sadopc/paneboard/internal/ui/msgs"
	"github.com/sadopc/paneboard/internal/ui/pointer"
	"github.com/sadopc/paneboard/internal/ui/theme"
)

// App is the root Bubble Tea model.
type App struct {
	tabBar         components.TabBar
	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast
	modal          components.Modal

	store   *state.Store
	history *history.Store // nil when resize history is off
	cfg     config.Config
	logger  *slog.Logger

	// views[i] renders store.Board.Pages[i].
	views   []*pageView
	pointer *pointer.Target
	hits    *mouse.HitMap

	mode   msgs.AppMode
	layout layout.BoardLayout
	keys   KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model for b. path is where ctrl+s saves; it may be
// empty for an unsaved board.
func New(b *board.Board, path string, cfg config.Config, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	a := App{
		tabBar:         components.NewTabBar(t, s),
		statusBar:      components.NewStatusBar(t, s),
		commandPalette: components.NewCommandPalette(t, s),
		help:           components.NewHelp(t, s),
		toast:          components.NewToast(t, s),
		modal:          components.NewModal(t, s),

		store:  state.NewStore(b, path),
		cfg:    cfg,
		logger: logger,

		pointer: pointer.NewTarget(),
		hits:    mouse.NewHitMap(),

		mode: msgs.ModeNormal,
		keys: DefaultKeyMap(),

		theme:  t,
		styles: s,
	}

	for _, p := range a.store.Board.Pages {
		a.views = append(a.views, a.newPageView(p))
	}

	a.syncTabs()
	a.syncStatus()
	return a
}

// SetHistory records committed resizes in h and enables undo. The caller
// owns h and closes it after the program exits.
func (a *App) SetHistory(h *history.Store) {
	a.history = h
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.applyLayout(layout.HandleResize(msg, a.view().widths()))
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if a.commandPalette.Visible {
			var cmd tea.Cmd
			a.commandPalette, cmd = a.commandPalette.Update(msg)
			return a, cmd
		}
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			return a, cmd
		}
		if a.modal.Visible {
			var cmd tea.Cmd
			a.modal, cmd = a.modal.Update(msg)
			return a, cmd
		}

		cmd := a.handleGlobalKey(msg)
		if cmd != nil {
			return a, cmd
		}
		return a.handlePanelKey(msg)

	case msgs.FocusPanelMsg:
		a.focusPanel(msg.Index)
		return a, nil

	case msgs.CycleFocusMsg:
		a.cycleFocus(msg.Reverse)
		return a, nil

	case msgs.NudgeWidthMsg:
		return a.nudgeWidth(msg.Cells)

	case msgs.MovePanelMsg:
		return a.movePanel(msg.Delta)

	case msgs.NewPanelMsg:
		return a.newPanel()

	case msgs.ResetWidthMsg:
		return a.resetWidth()

	case msgs.UndoResizeMsg:
		return a.undoResize()

	case msgs.PanelResizedMsg:
		a.logger.Debug("panel resized", "panel", msg.PanelID, "width", msg.Width)
		a.statusBar.SetMessage(msg.Title + " → " + msg.Width)
		return a, a.statusBar.ClearAfter(2 * time.Second)

	case msgs.SwitchPageMsg:
		a.switchPage(msg.Index)
		return a, nil

	case msgs.NextPageMsg:
		a.nextPage()
		return a, nil

	case msgs.PrevPageMsg:
		a.prevPage()
		return a, nil

	case msgs.NewPageMsg:
		return a.newPage(msg.Template)

	case msgs.ClosePageMsg:
		return a.requestClosePage()

	case msgs.ConfirmClosePageMsg:
		return a.closePage()

	case msgs.SaveBoardMsg:
		return a.saveBoard()

	case msgs.CopyLayoutMsg:
		return a.copyLayout()

	case msgs.OpenCommandPaletteMsg:
		a.commandPalette.Open()
		a.setMode(msgs.ModeCommandPalette)
		return a, nil

	case msgs.OpenPanelPickerMsg:
		a.openPanelPicker()
		return a, nil

	case msgs.ShowHelpMsg:
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		if a.help.Visible {
			a.setMode(msgs.ModeModal)
		} else {
			a.setMode(msgs.ModeNormal)
		}
		return a, nil

	case msgs.SetModeMsg:
		a.setMode(msg.Mode)
		return a, nil

	case msgs.StatusMsg:
		a.statusBar.SetMessage(msg.Text)
		return a, a.statusBar.ClearAfter(msg.Duration)

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg.Text, msg.IsError, msg.Duration)
		return a, cmd

	case msgs.SwitchThemeMsg:
		return a.handleSwitchTheme(msg)

	case msgs.RequestQuitMsg:
		return a.requestQuit()

	case msgs.ConfirmQuitMsg:
		a.teardown()
		return a, tea.Quit
	}

	// Timers and other component messages
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	a.toast, cmd = a.toast.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a *App) setMode(mode msgs.AppMode) {
	a.mode = mode
	a.statusBar.SetMode(mode)
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	tabBar := a.tabBar.View()
	panels := a.view().render(a.layout, a.styles)
	statusBar := a.statusBar.View()
	main := lipgloss.JoinVertical(lipgloss.Left, tabBar, panels, statusBar)

	if a.commandPalette.Visible {
		main = overlayCenter(main, a.commandPalette.View(), a.width, a.height)
	}
	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.modal.Visible {
		main = overlayCenter(main, a.modal.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#1e1e2e")),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	overlayWidth := lipgloss.Width(overlay)
	gap := width - overlayWidth - 2
	if gap < 0 {
		gap = 0
	}
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
