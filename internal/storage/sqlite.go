package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps scores in a SQLite database, one row per score.
// Each mode is pruned to its best topN rows on every insert.
type SQLiteStore struct {
	db   *sql.DB
	topN int
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Mode      string
	Score     int
	CreatedAt time.Time
}

// OpenSQLite creates or opens a SQLite database at the given path and runs
// migrations. The parent directory must exist.
func OpenSQLite(dbPath string, topN int) (*SQLiteStore, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db, topN: topN}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a score and prunes the mode to its best topN rows
// in the same transaction.
func (s *SQLiteStore) SaveScore(mode string, score int) error {
	if !ValidMode(mode) {
		return fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("INSERT INTO scores (mode, score) VALUES (?, ?)", mode, score); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM scores
		 WHERE mode = ? AND id NOT IN (
			SELECT id FROM scores WHERE mode = ? ORDER BY score DESC, id ASC LIMIT ?
		 )`,
		mode, mode, s.topN,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prune scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return nil
}

// LoadScores returns the table for every mode.
func (s *SQLiteStore) LoadScores() (Table, error) {
	t := EmptyTable()
	for _, mode := range Modes {
		entries, err := s.TopScores(mode)
		if err != nil {
			return EmptyTable(), err
		}
		scores := make([]int, 0, len(entries))
		for _, e := range entries {
			scores = append(scores, e.Score)
		}
		if err := t.set(mode, scores); err != nil {
			return EmptyTable(), err
		}
	}
	return t, nil
}

// TopScores retrieves the kept scores for a mode with their timestamps.
// Results are ordered by score descending.
func (s *SQLiteStore) TopScores(mode string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, score, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, s.topN,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Clear deletes all scores for the given mode.
func (s *SQLiteStore) Clear(mode string) error {
	if !ValidMode(mode) {
		return fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}
	_, err := s.db.Exec("DELETE FROM scores WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
