// Package themestore persists organization themes and serves them, with
// their derived colors, over HTTP.
package themestore

import (
	"errors"
	"fmt"
	"time"

	"github.com/kastheco/orgtheme/theme"
)

// ErrNotFound is returned when an organization has no stored theme.
var ErrNotFound = errors.New("theme not found")

// Entry is one organization's stored theme.
type Entry struct {
	Org       string      `json:"org"`
	Accent    theme.Color `json:"accent"`
	Mode      theme.Mode  `json:"mode"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Theme returns the entry as a theme.Theme.
func (e Entry) Theme() theme.Theme {
	return theme.Theme{Accent: e.Accent, Mode: e.Mode}
}

// Validate checks the org name and theme values.
func (e Entry) Validate() error {
	if e.Org == "" {
		return errors.New("org is required")
	}
	return e.Theme().Validate()
}

// Store is the persistence interface shared by the SQLite store and the
// HTTP client.
type Store interface {
	Ping() error
	Get(org string) (Entry, error)
	Put(entry Entry) (Entry, error)
	Delete(org string) error
	List() ([]Entry, error)
	Close() error
}

func notFound(org string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, org)
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*HTTPStore)(nil)
)
