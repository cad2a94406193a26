package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Storage keys
const (
	HighScoreKey = "carDodgeHighScore"
	LastRunKey   = "carDodgeLastRun"
)

// ErrNoRecord is returned when nothing has been stored under a key yet
var ErrNoRecord = errors.New("no record stored")

// RunSummary records how a finished run went
type RunSummary struct {
	ID         string    `json:"id"`
	Score      int       `json:"score"`
	Distance   int       `json:"distance"`
	CarsDodged int       `json:"cars_dodged"`
	Lanes      int       `json:"lanes"`
	FinishedAt time.Time `json:"finished_at"`
}

// ScoreStore persists the high score and the last run
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	LoadLastRun() (*RunSummary, error)
	SaveLastRun(run RunSummary) error
}

// FileStore keeps a small JSON key-value document on disk
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the JSON file at path. The file and
// its directory are created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns ~/.cardodge/scores.json, falling back to the working
// directory when there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "scores.json"
	}
	return filepath.Join(home, ".cardodge", "scores.json")
}

// Path returns the backing file
func (fs *FileStore) Path() string {
	return fs.path
}

// LoadHighScore returns the stored high score. Missing or negative values
// read as 0; a missing value also reports ErrNoRecord.
func (fs *FileStore) LoadHighScore() (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	doc, err := fs.read()
	if err != nil {
		return 0, err
	}
	raw, ok := doc[HighScoreKey]
	if !ok {
		return 0, ErrNoRecord
	}
	score, err := decodeScore(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", HighScoreKey, err)
	}
	return score, nil
}

// SaveHighScore stores score under HighScoreKey
func (fs *FileStore) SaveHighScore(score int) error {
	return fs.put(HighScoreKey, score)
}

// LoadLastRun returns the summary of the most recent finished run
func (fs *FileStore) LoadLastRun() (*RunSummary, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	doc, err := fs.read()
	if err != nil {
		return nil, err
	}
	raw, ok := doc[LastRunKey]
	if !ok {
		return nil, ErrNoRecord
	}
	var run RunSummary
	if err := json.Unmarshal(raw, &run); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", LastRunKey, err)
	}
	return &run, nil
}

// SaveLastRun stores run under LastRunKey
func (fs *FileStore) SaveLastRun(run RunSummary) error {
	return fs.put(LastRunKey, run)
}

func (fs *FileStore) put(key string, value any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	doc, err := fs.read()
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	doc[key] = encoded
	return fs.write(doc)
}

func (fs *FileStore) read() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)

	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse score file: %w", err)
	}
	return doc, nil
}

func (fs *FileStore) write(doc map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("failed to create score directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode score file: %w", err)
	}
	return os.WriteFile(fs.path, data, 0644)
}

// decodeScore accepts a JSON number or a numeric string
func decodeScore(raw json.RawMessage) (int, error) {
	var score int
	if err := json.Unmarshal(raw, &score); err != nil {
		var text string
		if json.Unmarshal(raw, &text) != nil {
			return 0, err
		}
		score, err = strconv.Atoi(text)
		if err != nil {
			return 0, err
		}
	}
	if score < 0 {
		score = 0
	}
	return score, nil
}

// MemoryStore is an in-process ScoreStore
type MemoryStore struct {
	mu        sync.Mutex
	highScore *int
	lastRun   *RunSummary
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) LoadHighScore() (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.highScore == nil {
		return 0, ErrNoRecord
	}
	return *ms.highScore, nil
}

func (ms *MemoryStore) SaveHighScore(score int) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.highScore = &score
	return nil
}

func (ms *MemoryStore) LoadLastRun() (*RunSummary, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.lastRun == nil {
		return nil, ErrNoRecord
	}
	run := *ms.lastRun
	return &run, nil
}

func (ms *MemoryStore) SaveLastRun(run RunSummary) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.lastRun = &run
	return nil
}
