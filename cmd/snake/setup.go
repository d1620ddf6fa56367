package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadConfig loads the snake config and applies --difficulty.
func loadConfig() (config.SnakeConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the score store selected by flags, falling back to config.
func openStore(cfg config.SnakeConfig) (storage.Store, error) {
	backend := cfg.Scores.Backend
	if flagBackend != "" {
		backend = flagBackend
	}
	path := cfg.Scores.Path
	if flagScoresPath != "" {
		path = flagScoresPath
	}
	// A configured json path makes no sense for sqlite
	if flagBackend == "sqlite" && flagScoresPath == "" {
		path = ""
	}
	return storage.Open(backend, path, cfg.Scores.TopN)
}

// newLogger creates the application logger.
// The TUI owns the terminal, so logs go to a file; an unusable file
// silently disables logging. The returned func closes the file.
func newLogger(prefix string, toStderr bool) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closer := func() {}

	if toStderr {
		w = os.Stderr
	} else if path := expandHome(flagLogFile); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
				closer = func() { _ = f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, closer
}

// expandHome expands a leading ~/ to the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[2:])
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
