// Package store persists day entries in a local SQLite database. It is the
// record-store collaborator the timer subsystem writes through: one row per
// calendar date, with targets and timetable serialized as JSON columns.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/JithinPanicker/day-flow/internal/journal"
	"github.com/JithinPanicker/day-flow/internal/osutil"
)

// ErrNotFound is returned when no entry exists for the requested date or id.
var ErrNotFound = errors.New("entry not found")

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id        TEXT PRIMARY KEY,
	date      TEXT NOT NULL UNIQUE,
	journal   TEXT NOT NULL DEFAULT '',
	targets   TEXT NOT NULL DEFAULT '[]',
	timetable TEXT NOT NULL DEFAULT '[]',
	updated   INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the database location under the user's data
// directory, creating the directory if needed.
func DefaultPath() (string, error) {
	home, err := osutil.Provider.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "dayflow")
	if err := osutil.Provider.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(base, "dayflow.db"), nil
}

// Open opens (and if necessary creates) the database at path.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("schema apply failed: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Save upserts the entry, keyed by date. An existing row for the same date
// is overwritten, matching the save semantics of the journal form: there is
// at most one entry per calendar day.
func (s *Store) Save(e *journal.Entry) error {
	targets, err := json.Marshal(orEmpty(e.Targets))
	if err != nil {
		return err
	}
	timetable, err := json.Marshal(orEmptySlots(e.Timetable))
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO entries(id, date, journal, targets, timetable, updated)
		VALUES(?,?,?,?,?,?)
		ON CONFLICT(date) DO UPDATE SET
			journal=excluded.journal,
			targets=excluded.targets,
			timetable=excluded.timetable,
			updated=excluded.updated`,
		e.ID, e.Date, e.Journal, string(targets), string(timetable), e.Updated,
	)
	return err
}

// GetByDate loads the entry for a YYYY-MM-DD date. Returns ErrNotFound if
// no entry exists for that day.
func (s *Store) GetByDate(date string) (*journal.Entry, error) {
	row := s.db.QueryRow(
		`SELECT id, date, journal, targets, timetable, updated FROM entries WHERE date=?`, date)
	return scanEntry(row)
}

// GetByID loads an entry by its opaque id.
func (s *Store) GetByID(id string) (*journal.Entry, error) {
	row := s.db.QueryRow(
		`SELECT id, date, journal, targets, timetable, updated FROM entries WHERE id=?`, id)
	return scanEntry(row)
}

// Delete removes the entry for the given date along with its entire
// timetable and every slot's log. Deleting a missing date is not an error.
func (s *Store) Delete(date string) error {
	_, err := s.db.Exec(`DELETE FROM entries WHERE date=?`, date)
	return err
}

// Recent returns up to limit entries, newest date first.
func (s *Store) Recent(limit int) ([]*journal.Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, date, journal, targets, timetable, updated FROM entries ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

// Search returns entries whose journal text or slot headings contain the
// query, case-insensitively, newest first. Matching is done in Go after
// decoding so it can look inside the JSON timetable column.
func (s *Store) Search(query string) ([]*journal.Entry, error) {
	entries, err := s.Recent(1 << 20)
	if err != nil {
		return nil, err
	}
	var out []*journal.Entry
	for _, e := range entries {
		if matches(e, query) {
			out = append(out, e)
		}
	}
	return out, nil
}

func matches(e *journal.Entry, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Journal), q) {
		return true
	}
	for _, slot := range e.Timetable {
		if strings.Contains(strings.ToLower(slot.Heading), q) ||
			strings.Contains(strings.ToLower(slot.Description), q) {
			return true
		}
	}
	return false
}

func scanEntry(row *sql.Row) (*journal.Entry, error) {
	var e journal.Entry
	var targets, timetable string
	err := row.Scan(&e.ID, &e.Date, &e.Journal, &targets, &timetable, &e.Updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := decodeEntry(&e, targets, timetable); err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEntries(rows *sql.Rows) ([]*journal.Entry, error) {
	var out []*journal.Entry
	for rows.Next() {
		var e journal.Entry
		var targets, timetable string
		if err := rows.Scan(&e.ID, &e.Date, &e.Journal, &targets, &timetable, &e.Updated); err != nil {
			return nil, err
		}
		if err := decodeEntry(&e, targets, timetable); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func decodeEntry(e *journal.Entry, targets, timetable string) error {
	if err := json.Unmarshal([]byte(targets), &e.Targets); err != nil {
		return fmt.Errorf("decode targets for %s: %w", e.Date, err)
	}
	if err := json.Unmarshal([]byte(timetable), &e.Timetable); err != nil {
		return fmt.Errorf("decode timetable for %s: %w", e.Date, err)
	}
	// Older rows may carry stale statuses or accumulator-era slots.
	e.Normalize()
	return nil
}

func orEmpty(t []journal.Target) []journal.Target {
	if t == nil {
		return []journal.Target{}
	}
	return t
}

func orEmptySlots(s []journal.Slot) []journal.Slot {
	if s == nil {
		return []journal.Slot{}
	}
	return s
}

