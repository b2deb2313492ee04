package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists resize history in SQLite.
type Store struct {
	db *sql.DB
}

// DefaultPath returns ~/.local/share/paneboard/history.db.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "paneboard", "history.db")
}

// NewStore opens (creating if needed) the history database at dbPath.
// ":memory:" gives a throwaway store.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// A second connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS resizes (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			board     TEXT NOT NULL,
			page      TEXT NOT NULL,
			panel_id  TEXT NOT NULL,
			title     TEXT NOT NULL,
			width_before TEXT NOT NULL,
			width_after  TEXT NOT NULL,
			timestamp TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_resizes_board ON resizes(board, id DESC);
		CREATE INDEX IF NOT EXISTS idx_resizes_panel ON resizes(panel_id);
	`)
	if err != nil {
		return fmt.Errorf("creating history table: %w", err)
	}
	return nil
}

// Add inserts a new history entry.
func (s *Store) Add(e Entry) (int64, error) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	result, err := s.db.Exec(`
		INSERT INTO resizes (board, page, panel_id, title, width_before, width_after, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Board, e.Page, e.PanelID, e.Title, e.Before, e.After,
		e.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting history: %w", err)
	}
	return result.LastInsertId()
}

// List returns the most recent entries across all boards.
func (s *Store) List(limit, offset int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, board, page, panel_id, title, width_before, width_after, timestamp
		FROM resizes
		ORDER BY id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ForPanel returns the most recent entries for one panel.
func (s *Store) ForPanel(panelID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, board, page, panel_id, title, width_before, width_after, timestamp
		FROM resizes
		WHERE panel_id = ?
		ORDER BY id DESC
		LIMIT ?`, panelID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing panel history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Last returns the newest entry for board. ok is false when there is none.
func (s *Store) Last(board string) (e Entry, ok bool, err error) {
	row := s.db.QueryRow(`
		SELECT id, board, page, panel_id, title, width_before, width_after, timestamp
		FROM resizes
		WHERE board = ?
		ORDER BY id DESC
		LIMIT 1`, board)

	var ts string
	err = row.Scan(&e.ID, &e.Board, &e.Page, &e.PanelID, &e.Title, &e.Before, &e.After, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("reading last history entry: %w", err)
	}
	e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
	return e, true, nil
}

// Delete removes one entry.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM resizes WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting history entry: %w", err)
	}
	return nil
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM resizes")
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		err := rows.Scan(&e.ID, &e.Board, &e.Page, &e.PanelID, &e.Title, &e.Before, &e.After, &ts)
		if err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
