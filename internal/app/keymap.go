package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit           key.Binding
	CommandPalette key.Binding
	Help           key.Binding
	NewPanel       key.Binding
	NewPage        key.Binding
	ClosePage      key.Binding
	SaveBoard      key.Binding

	// Panel navigation
	CycleFocus    key.Binding
	CycleFocusRev key.Binding
	PickPanel     key.Binding

	// Panel layout
	Grow       key.Binding
	Shrink     key.Binding
	ResetWidth key.Binding
	Undo       key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	CopyLayout key.Binding

	// Page navigation
	PrevPage key.Binding
	NextPage key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		CommandPalette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NewPanel: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new panel"),
		),
		NewPage: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "new page"),
		),
		ClosePage: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close page"),
		),
		SaveBoard: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		CycleFocusRev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		PickPanel: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "pick panel"),
		),
		Grow: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "grow panel"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "shrink panel"),
		),
		ResetWidth: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", "auto width"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo resize"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "move right"),
		),
		CopyLayout: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy layout"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
	}
}
