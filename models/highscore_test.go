package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStore_MissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "nested", "scores.json"))

	score, err := fs.LoadHighScore()
	if !errors.Is(err, ErrNoRecord) {
		t.Errorf("Expected ErrNoRecord, got %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0, got %d", score)
	}
	if _, err := fs.LoadLastRun(); !errors.Is(err, ErrNoRecord) {
		t.Errorf("Expected ErrNoRecord for last run, got %v", err)
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	fs := NewFileStore(path)

	if err := fs.SaveHighScore(340); err != nil {
		t.Fatalf("SaveHighScore failed: %v", err)
	}
	run := RunSummary{ID: "run-1", Score: 340, Distance: 812, CarsDodged: 34, Lanes: 5, FinishedAt: time.Unix(1700000000, 0).UTC()}
	if err := fs.SaveLastRun(run); err != nil {
		t.Fatalf("SaveLastRun failed: %v", err)
	}

	reopened := NewFileStore(path)
	score, err := reopened.LoadHighScore()
	if err != nil || score != 340 {
		t.Errorf("Expected 340, got %d (%v)", score, err)
	}
	got, err := reopened.LoadLastRun()
	if err != nil {
		t.Fatalf("LoadLastRun failed: %v", err)
	}
	if got.ID != run.ID || got.Score != run.Score || !got.FinishedAt.Equal(run.FinishedAt) {
		t.Errorf("Expected %+v, got %+v", run, *got)
	}
}

func TestFileStore_DecodesLegacyValues(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
		wantErr  bool
	}{
		{"Number", `{"carDodgeHighScore": 120}`, 120, false},
		{"String", `{"carDodgeHighScore": "90"}`, 90, false},
		{"Negative", `{"carDodgeHighScore": -5}`, 0, false},
		{"Garbage", `{"carDodgeHighScore": "abc"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			score, err := NewFileStore(path).LoadHighScore()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadHighScore error = %v, wantErr %v", err, tt.wantErr)
			}
			if score != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, score)
			}
		})
	}
}

func TestFileStore_KeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte(`{"somethingElse": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileStore(path)
	if err := fs.SaveHighScore(10); err != nil {
		t.Fatal(err)
	}
	doc, err := fs.read()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["somethingElse"]; !ok {
		t.Error("Expected unrelated keys to survive a save")
	}
}

func TestMemoryStore(t *testing.T) {
	ms := NewMemoryStore()
	if _, err := ms.LoadHighScore(); !errors.Is(err, ErrNoRecord) {
		t.Errorf("Expected ErrNoRecord, got %v", err)
	}
	_ = ms.SaveHighScore(50)
	if score, _ := ms.LoadHighScore(); score != 50 {
		t.Errorf("Expected 50, got %d", score)
	}
}
