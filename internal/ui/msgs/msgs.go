package msgs

import "time"

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeResize
	ModeCommandPalette
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeResize:
		return "RESIZE"
	case ModeCommandPalette:
		return "COMMAND"
	case ModeModal:
		return "MODAL"
	default:
		return "UNKNOWN"
	}
}

// FocusPanelMsg requests focus on the panel at Index of the active page.
type FocusPanelMsg struct {
	Index int
}

// CycleFocusMsg cycles focus to the next/previous panel.
type CycleFocusMsg struct {
	Reverse bool
}

// NudgeWidthMsg grows (positive) or shrinks the focused panel by Cells.
type NudgeWidthMsg struct {
	Cells int
}

// MovePanelMsg moves the focused panel by Delta positions.
type MovePanelMsg struct {
	Delta int
}

// NewPanelMsg appends a panel to the active page.
type NewPanelMsg struct{}

// UndoResizeMsg restores the width from before the last recorded resize.
type UndoResizeMsg struct{}

// ResetWidthMsg clears the focused panel's width back to automatic.
type ResetWidthMsg struct{}

// PanelResizedMsg is emitted after a drag commits a new width.
type PanelResizedMsg struct {
	PanelID string
	Title   string
	Width   string
}

// SwitchPageMsg switches to a specific page.
type SwitchPageMsg struct {
	Index int
}

// NextPageMsg / PrevPageMsg for page navigation.
type NextPageMsg struct{}
type PrevPageMsg struct{}

// NewPageMsg adds a page built from the named layout template. An empty
// Template opens the template picker.
type NewPageMsg struct {
	Template string
}

// ClosePageMsg closes the current page.
type ClosePageMsg struct{}

// SaveBoardMsg saves the board file.
type SaveBoardMsg struct{}

// CopyLayoutMsg copies the active page layout to the clipboard.
type CopyLayoutMsg struct{}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// OpenPanelPickerMsg opens the palette listing the active page's panels.
type OpenPanelPickerMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	IsError  bool
	Duration time.Duration
}

// SwitchThemeMsg requests switching to a named theme. An empty name opens
// the theme picker.
type SwitchThemeMsg struct {
	Name string
}

// RequestQuitMsg asks to quit, confirming first when there are unsaved changes.
type RequestQuitMsg struct{}

// ConfirmClosePageMsg closes the current page without a further prompt.
type ConfirmClosePageMsg struct{}

// ConfirmQuitMsg quits without a further prompt.
type ConfirmQuitMsg struct{}
