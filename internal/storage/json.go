package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore keeps the table in a single JSON file:
//
//	{"level": [...], "survival": [...]}
//
// Writes go to a temp file that replaces the old one, so a crash never
// leaves a half-written table behind.
type JSONStore struct {
	path string
	topN int
	mu   sync.Mutex
}

// NewJSONStore returns a store backed by the file at path.
// The file is created on first save.
func NewJSONStore(path string, topN int) *JSONStore {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &JSONStore{path: path, topN: topN}
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// LoadScores reads the table. A missing file is an empty table.
func (s *JSONStore) LoadScores() (Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JSONStore) load() (Table, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return EmptyTable(), nil
	}
	if err != nil {
		return EmptyTable(), fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return EmptyTable(), fmt.Errorf("storage: malformed score file %s: %w", s.path, err)
	}
	t.normalize(s.topN)
	return t, nil
}

// SaveScore inserts a score and rewrites the file.
// A malformed file is replaced by a fresh table.
func (s *JSONStore) SaveScore(mode string, score int) error {
	if !ValidMode(mode) {
		return fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, _ := s.load()
	scores, _ := t.For(mode)
	if err := t.set(mode, insert(scores, score, s.topN)); err != nil {
		return err
	}
	return s.write(t)
}

// Clear empties one mode's list.
func (s *JSONStore) Clear(mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, _ := s.load()
	if err := t.set(mode, []int{}); err != nil {
		return err
	}
	return s.write(t)
}

// Close is a no-op; the file is not held open.
func (s *JSONStore) Close() error {
	return nil
}

// write atomically replaces the file with t.
func (s *JSONStore) write(t Table) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".scores-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

var _ Store = (*JSONStore)(nil)
