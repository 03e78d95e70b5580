package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/sfx"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
		Level:           level,
	}), nil
}

// openLogFile opens path for appending, creating it and its directory.
func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// openStore opens the high score store selected by the global flags.
func openStore() (storage.HighScoreStore, error) {
	backend, err := storage.ParseBackend(flagStore)
	if err != nil {
		return nil, err
	}
	return storage.Open(backend, flagScorePath)
}

// openSound returns the cue player and its closer. The player is a nil
// interface when sound is off or the audio device cannot be opened.
func openSound(enabled bool, volume float64, logger *log.Logger) (tui.Sounder, func()) {
	if !enabled {
		return nil, func() {}
	}

	player := sfx.New(volume)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return player, player.Close
}

// warnIfInvalid logs a warning to w when cfg would be rejected by the game.
func warnIfInvalid(w io.Writer, cfg config.CrossingConfig) error {
	verr := cfg.Validate()
	if verr == nil {
		return nil
	}

	logger, err := newLogger(w)
	if err != nil {
		return err
	}
	logger.Warn("config would be rejected by the game", "error", verr)
	return nil
}
