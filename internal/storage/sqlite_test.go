package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath, 5)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLitePrunesToTopN(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), 3)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	for _, s := range []int{10, 40, 20, 30, 50} {
		if err := store.SaveScore(ModeSurvival, s); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", s, err)
		}
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM scores WHERE mode = ?", ModeSurvival).Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 3 {
		t.Errorf("Expected 3 stored rows after pruning, got %d", rows)
	}

	entries, err := store.TopScores(ModeSurvival)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 3 || entries[0].Score != 50 || entries[2].Score != 30 {
		t.Errorf("TopScores() = %+v, expected 50, 40, 30", entries)
	}
	for _, e := range entries {
		if e.Mode != ModeSurvival {
			t.Errorf("entry mode = %q", e.Mode)
		}
		if e.CreatedAt.IsZero() {
			t.Error("created_at should be set")
		}
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath, 5)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SaveScore(ModeLevel, 120); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = OpenSQLite(dbPath, 5)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	table, err := store.LoadScores()
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Level) != 1 || table.Level[0] != 120 {
		t.Errorf("Level = %v, expected [120]", table.Level)
	}
}
