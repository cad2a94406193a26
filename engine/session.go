package engine

import (
	"errors"
	"log"
	"time"

	"github.com/golangdaddy/cardodge/models"
	"github.com/google/uuid"
)

// Session runs successive games on one engine and keeps the high score
type Session struct {
	engine *Engine
	store  models.ScoreStore
	logger *log.Logger

	state RunState
	runID string
}

// NewSession reads the persisted high score once and prepares an idle run
func NewSession(engine *Engine, store models.ScoreStore, logger *log.Logger) *Session {
	s := &Session{
		engine: engine,
		store:  store,
		logger: logger,
	}
	s.state = engine.Idle(s.loadHighScore())
	return s
}

func (s *Session) loadHighScore() int {
	score, err := s.store.LoadHighScore()
	switch {
	case errors.Is(err, models.ErrNoRecord):
		return 0
	case err != nil:
		s.logger.Printf("Failed to load high score, starting from 0: %v", err)
		return 0
	case score < 0:
		return 0
	}
	return score
}

// Start begins a fresh run
func (s *Session) Start() {
	s.state = s.engine.NewRun(s.state.HighScore)
	s.runID = uuid.NewString()
	s.logger.Printf("Run %s started (high score %d)", s.runID, s.state.HighScore)
}

// Restart abandons whatever run is in progress and begins a fresh one
func (s *Session) Restart() {
	s.Start()
}

// Tick advances the current run by one frame
func (s *Session) Tick(keys Keys) []Event {
	next, events := s.engine.Step(s.state, keys)
	s.state = next

	for _, ev := range events {
		switch ev.Kind {
		case EventGameOver:
			s.finish(ev)
		case EventLaneAdded, EventMaxLanes:
			s.logger.Printf("Run %s: %s at score %d", s.runID, ev.Text, next.Score)
		}
	}
	return events
}

func (s *Session) finish(ev Event) {
	s.logger.Printf("Run %s over: score %d, distance %d, dodged %d",
		s.runID, s.state.Score, s.state.DisplayDistance(), s.state.CarsDodged)

	if ev.NewHighScore {
		if err := s.store.SaveHighScore(s.state.HighScore); err != nil {
			s.logger.Printf("Failed to save high score: %v", err)
		}
	}

	summary := models.RunSummary{
		ID:         s.runID,
		Score:      s.state.Score,
		Distance:   s.state.DisplayDistance(),
		CarsDodged: s.state.CarsDodged,
		Lanes:      s.state.NumLanes,
		FinishedAt: time.Now(),
	}
	if err := s.store.SaveLastRun(summary); err != nil {
		s.logger.Printf("Failed to save run summary: %v", err)
	}
}

// State returns the current run state
func (s *Session) State() RunState {
	return s.state
}

// Snapshot returns a renderer view of the current run
func (s *Session) Snapshot() Snapshot {
	return s.engine.Snapshot(s.state)
}

// Engine returns the session's engine
func (s *Session) Engine() *Engine {
	return s.engine
}

// RunID identifies the current or most recent run
func (s *Session) RunID() string {
	return s.runID
}
