package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the high score as one decimal integer in a text file.
type FileStore struct {
	path string
}

// OpenFile returns a store backed by the text file at path. The file itself
// is not created until the first Save.
func OpenFile(path string) (*FileStore, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: expanded}, nil
}

// Load reads the high score. A missing file counts as 0; anything that is
// not a single non-negative integer is ErrCorrupt.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	text := strings.TrimSpace(string(data))
	score, err := strconv.Atoi(text)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %s contains %q", ErrCorrupt, s.path, text)
	}
	return score, nil
}

// Save overwrites the file with the given score, writing a temporary file
// and renaming it into place.
func (s *FileStore) Save(score int) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed on success

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Reset writes 0 to the file.
func (s *FileStore) Reset() error {
	return s.Save(0)
}

// Location returns the file path.
func (s *FileStore) Location() string {
	return s.path
}

// Close is a no-op; the file is opened per operation.
func (s *FileStore) Close() error {
	return nil
}

var _ HighScoreStore = (*FileStore)(nil)
