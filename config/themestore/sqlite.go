package themestore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kastheco/orgtheme/theme"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS org_themes (
	org        TEXT PRIMARY KEY,
	accent     TEXT NOT NULL,
	mode       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore keeps themes in a single SQLite table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (creating if needed) the database at path.
// ":memory:" gives a private in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open theme db: %w", err)
	}
	// One connection: in-memory databases are per-connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate theme db: %w", err)
	}
	return &SQLiteStore{db: db, now: func() time.Time { return time.Now().UTC().Round(0) }}, nil
}

func (s *SQLiteStore) Ping() error {
	return s.db.Ping()
}

func (s *SQLiteStore) Get(org string) (Entry, error) {
	e, err := scanEntry(s.db.QueryRow(
		`SELECT org, accent, mode, updated_at FROM org_themes WHERE org = ?`, org,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, notFound(org)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get theme %s: %w", org, err)
	}
	return e, nil
}

// Put validates and upserts entry, stamping UpdatedAt.
func (s *SQLiteStore) Put(entry Entry) (Entry, error) {
	if err := entry.Validate(); err != nil {
		return Entry{}, err
	}
	entry.UpdatedAt = s.now()
	_, err := s.db.Exec(`
		INSERT INTO org_themes (org, accent, mode, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(org) DO UPDATE SET accent = excluded.accent, mode = excluded.mode, updated_at = excluded.updated_at`,
		entry.Org, string(entry.Accent), string(entry.Mode), entry.UpdatedAt.UnixNano())
	if err != nil {
		return Entry{}, fmt.Errorf("put theme %s: %w", entry.Org, err)
	}
	return entry, nil
}

func (s *SQLiteStore) Delete(org string) error {
	res, err := s.db.Exec(`DELETE FROM org_themes WHERE org = ?`, org)
	if err != nil {
		return fmt.Errorf("delete theme %s: %w", org, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete theme %s: %w", org, err)
	}
	if n == 0 {
		return notFound(org)
	}
	return nil
}

// List returns all entries ordered by org.
func (s *SQLiteStore) List() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT org, accent, mode, updated_at FROM org_themes ORDER BY org`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

// updated_at is stored as Unix nanoseconds.
func scanEntry(row scanner) (Entry, error) {
	var (
		e       Entry
		accent  string
		mode    string
		updated int64
	)
	if err := row.Scan(&e.Org, &accent, &mode, &updated); err != nil {
		return Entry{}, err
	}
	e.Accent = theme.Color(accent)
	e.Mode = theme.Mode(mode)
	e.UpdatedAt = time.Unix(0, updated).UTC()
	return e, nil
}
