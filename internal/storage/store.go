// Package storage persists the per-mode high score tables.
// Two backends share one contract: a JSON file (the default) and SQLite
// via the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Score table keys.
const (
	ModeLevel    = "level"
	ModeSurvival = "survival"
)

// Modes lists every mode with a score table, in display order.
var Modes = []string{ModeLevel, ModeSurvival}

// DefaultTopN is the number of scores kept per mode.
const DefaultTopN = 5

// ErrUnknownMode is returned for a mode without a score table.
var ErrUnknownMode = errors.New("storage: unknown mode")

// Table holds the top scores of each mode, highest first.
type Table struct {
	Level    []int `json:"level"`
	Survival []int `json:"survival"`
}

// EmptyTable returns a table with empty (non-nil) lists.
func EmptyTable() Table {
	return Table{Level: []int{}, Survival: []int{}}
}

// For returns the scores of one mode.
func (t Table) For(mode string) ([]int, error) {
	switch mode {
	case ModeLevel:
		return t.Level, nil
	case ModeSurvival:
		return t.Survival, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}
}

// set replaces the scores of one mode.
func (t *Table) set(mode string, scores []int) error {
	switch mode {
	case ModeLevel:
		t.Level = scores
	case ModeSurvival:
		t.Survival = scores
	default:
		return fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}
	return nil
}

// normalize sorts every list descending, truncates it and replaces nil lists.
func (t *Table) normalize(topN int) {
	t.Level = top(t.Level, topN)
	t.Survival = top(t.Survival, topN)
}

// Store is a high score table backend.
type Store interface {
	// LoadScores returns the table. Missing data yields empty lists.
	// Unreadable data yields empty lists together with an error.
	LoadScores() (Table, error)

	// SaveScore inserts a score, keeping the best topN per mode.
	SaveScore(mode string, score int) error

	// Clear removes all scores of one mode.
	Clear(mode string) error

	// Close releases the backend.
	Close() error
}

// ValidMode reports whether mode has a score table.
func ValidMode(mode string) bool {
	for _, m := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Open creates a store for the given backend ("json" or "sqlite").
// An empty path selects ~/.snake/scores.json or ~/.snake/scores.db.
func Open(backend, path string, topN int) (Store, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	switch backend {
	case "", "json":
		if path == "" {
			path = "~/.snake/scores.json"
		}
		p, err := prepare(path)
		if err != nil {
			return nil, err
		}
		return NewJSONStore(p, topN), nil
	case "sqlite":
		if path == "" {
			path = "~/.snake/scores.db"
		}
		p, err := prepare(path)
		if err != nil {
			return nil, err
		}
		db, err := OpenSQLite(p, topN)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// prepare expands ~ and creates parent directories.
func prepare(path string) (string, error) {
	// Expand ~ to home directory
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	// Create parent directories
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}

// top returns a sorted (descending) copy of scores truncated to n.
func top(scores []int, n int) []int {
	out := make([]int, len(scores))
	copy(out, scores)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// insert adds score to a top-n list.
func insert(scores []int, score, n int) []int {
	return top(append(scores[:len(scores):len(scores)], score), n)
}
