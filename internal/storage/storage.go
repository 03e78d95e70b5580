// Package storage persists the single high-score value.
//
// Two backends are available: a plain text file holding one decimal integer
// (the default) and a SQLite database using the pure-Go modernc.org/sqlite
// driver. Both store exactly one value per game.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt is returned when the stored high score cannot be parsed.
var ErrCorrupt = errors.New("storage: corrupt high score")

// GameID keys the high score in backends that can hold more than one value.
const GameID = "crossing"

// Backend selects a storage implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// HighScoreStore loads and saves the persisted high score.
type HighScoreStore interface {
	// Load returns the stored high score. A store that has never been
	// written returns 0.
	Load() (int, error)

	// Save overwrites the stored high score.
	Save(score int) error

	// Reset clears the stored high score back to 0.
	Reset() error

	// Location describes where the value lives, for display.
	Location() string

	Close() error
}

// ParseBackend resolves a backend name from the command line.
func ParseBackend(name string) (Backend, error) {
	switch Backend(name) {
	case BackendFile, BackendSQLite:
		return Backend(name), nil
	default:
		return "", fmt.Errorf("storage: unknown backend %q (want file or sqlite)", name)
	}
}

// DefaultPath returns the default location for a backend.
func DefaultPath(b Backend) string {
	if b == BackendSQLite {
		return "~/.crossing/scores.db"
	}
	return "~/.crossing/highscore.txt"
}

// Open creates the store for the given backend. An empty path selects the
// backend's default location.
func Open(b Backend, path string) (HighScoreStore, error) {
	if path == "" {
		path = DefaultPath(b)
	}

	switch b {
	case BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", b)
	}
}

// expandPath expands a leading ~ and creates the parent directory.
func expandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
