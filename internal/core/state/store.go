package state

import (
	"time"

	"github.com/sadopc/paneboard/internal/core/board"
)

// Store holds the central application state.
type Store struct {
	Board     *board.Board
	BoardPath string

	ActivePage int

	Dirty   bool
	SavedAt time.Time
}

// NewStore creates a store for b. A nil board gets a single empty page.
func NewStore(b *board.Board, path string) *Store {
	if b == nil {
		b = &board.Board{Name: "paneboard", Version: "1"}
	}
	if len(b.Pages) == 0 {
		b.Pages = append(b.Pages, &board.Page{Name: "Main"})
	}
	return &Store{
		Board:     b,
		BoardPath: path,
	}
}

// Page returns the active page, or nil.
func (s *Store) Page() *board.Page {
	if s.ActivePage >= 0 && s.ActivePage < len(s.Board.Pages) {
		return s.Board.Pages[s.ActivePage]
	}
	return nil
}

// ActivePanels returns the panels of the active page.
func (s *Store) ActivePanels() []*board.Panel {
	if p := s.Page(); p != nil {
		return p.Panels
	}
	return nil
}

// NextPage switches to the next page.
func (s *Store) NextPage() {
	if len(s.Board.Pages) == 0 {
		return
	}
	s.ActivePage = (s.ActivePage + 1) % len(s.Board.Pages)
}

// PrevPage switches to the previous page.
func (s *Store) PrevPage() {
	if len(s.Board.Pages) == 0 {
		return
	}
	s.ActivePage = (s.ActivePage - 1 + len(s.Board.Pages)) % len(s.Board.Pages)
}

// AddPage appends p and makes it active.
func (s *Store) AddPage(p *board.Page) {
	s.Board.Pages = append(s.Board.Pages, p)
	s.ActivePage = len(s.Board.Pages) - 1
	s.Dirty = true
}

// ClosePage removes the active page. The last page is never removed.
func (s *Store) ClosePage() bool {
	if len(s.Board.Pages) <= 1 {
		return false
	}
	s.Board.Pages = append(s.Board.Pages[:s.ActivePage], s.Board.Pages[s.ActivePage+1:]...)
	if s.ActivePage >= len(s.Board.Pages) {
		s.ActivePage = len(s.Board.Pages) - 1
	}
	s.Dirty = true
	return true
}

// MarkDirty records an unsaved change.
func (s *Store) MarkDirty() {
	s.Dirty = true
}

// MarkSaved records a successful save at t.
func (s *Store) MarkSaved(t time.Time) {
	s.Dirty = false
	s.SavedAt = t
}
