package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	store := NewJSONStore(path, 5)

	if err := store.SaveScore(ModeLevel, 70); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("score file not written: %v", err)
	}

	var raw map[string][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("score file is not a JSON object of int lists: %v", err)
	}
	if len(raw) != 2 {
		t.Errorf("expected exactly level and survival keys, got %v", raw)
	}
	if !equalInts(raw["level"], []int{70}) {
		t.Errorf("level = %v, expected [70]", raw["level"])
	}
	if s, ok := raw["survival"]; !ok || len(s) != 0 {
		t.Errorf("survival = %v (present=%v), expected []", s, ok)
	}
}

func TestJSONMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "absent.json"), 5)

	table, err := store.LoadScores()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(table.Level) != 0 || len(table.Survival) != 0 {
		t.Errorf("expected empty table, got %+v", table)
	}
}

func TestJSONMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewJSONStore(path, 5)

	table, err := store.LoadScores()
	if err == nil {
		t.Error("malformed file should report an error")
	}
	if table.Level == nil || len(table.Level) != 0 || len(table.Survival) != 0 {
		t.Errorf("malformed file should load as empty, got %+v", table)
	}

	// Saving replaces the broken file
	if err := store.SaveScore(ModeSurvival, 15); err != nil {
		t.Fatalf("SaveScore() over malformed file failed: %v", err)
	}
	table, err = store.LoadScores()
	if err != nil {
		t.Fatalf("LoadScores() after repair failed: %v", err)
	}
	if !equalInts(table.Survival, []int{15}) {
		t.Errorf("Survival = %v, expected [15]", table.Survival)
	}
}

func TestJSONNormalizesOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	data := `{"level": [1, 9, 3, 7, 5, 8], "survival": null}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := NewJSONStore(path, 5).LoadScores()
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(table.Level, []int{9, 8, 7, 5, 3}) {
		t.Errorf("Level = %v, expected [9 8 7 5 3]", table.Level)
	}
	if table.Survival == nil {
		t.Error("null list should load as empty")
	}
}

func TestJSONNoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(filepath.Join(dir, "scores.json"), 5)
	for i := range 3 {
		if err := store.SaveScore(ModeLevel, i); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "scores.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, expected only scores.json", names)
	}
}
