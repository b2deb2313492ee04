package history

import "time"

// Entry records one committed panel resize.
type Entry struct {
	ID        int64
	Board     string // board file path, "" for an unsaved board
	Page      string
	PanelID   string
	Title     string
	Before    string // width before the resize, "" for auto
	After     string
	Timestamp time.Time
}
