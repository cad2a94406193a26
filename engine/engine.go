package engine

import (
	"fmt"
	"math"

	"github.com/golangdaddy/cardodge/config"
	"github.com/golangdaddy/cardodge/lanecontroller"
	"github.com/golangdaddy/cardodge/road"
)

// Rand is the engine's only source of non-determinism: lane and color picks
type Rand = lanecontroller.Rand

// Engine computes run transitions for one configuration
type Engine struct {
	cfg   *config.Config
	road  *road.Road
	lanes *lanecontroller.LaneController
	rng   Rand

	penaltyPerFrame float64
	shoulderOpen    int // frames
	shoulderClosed  int // frames
}

// New creates an engine. The configuration must already be valid.
func New(cfg *config.Config, rng Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lanes, err := lanecontroller.New(cfg.Traffic)
	if err != nil {
		return nil, fmt.Errorf("failed to create lane controller: %w", err)
	}

	open, closed := cfg.ShoulderFrames()
	return &Engine{
		cfg:             cfg,
		road:            road.New(cfg),
		lanes:           lanes,
		rng:             rng,
		penaltyPerFrame: cfg.PenaltyPerFrame(),
		shoulderOpen:    open,
		shoulderClosed:  closed,
	}, nil
}

// Road returns the playfield geometry
func (e *Engine) Road() *road.Road {
	return e.road
}

// Config returns the engine's configuration
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Idle returns a state that is not running, laid out like a fresh run so it
// can be drawn behind a start screen.
func (e *Engine) Idle(highScore int) RunState {
	s := e.NewRun(highScore)
	s.Active = false
	return s
}

// NewRun returns the initial state of an active run. Only the high score is
// carried over from earlier runs.
func (e *Engine) NewRun(highScore int) RunState {
	pf := e.cfg.Playfield
	pl := e.cfg.Player
	d := e.cfg.Difficulty

	return RunState{
		Active:                true,
		HighScore:             highScore,
		NumLanes:              d.InitialLanes,
		NextLaneMilestone:     d.FirstLaneMilestone,
		LaneMilestoneInterval: d.LaneInterval,
		SpawnInterval:         e.cfg.Traffic.SpawnInterval,
		TrafficSpeed:          e.cfg.Traffic.BaseSpeed,
		Player: PlayerCar{
			X:      pf.Width/2 - pl.Width/2,
			Y:      pf.Height - pl.StartOffset,
			Width:  pl.Width,
			Height: pl.Height,
			Speed:  pl.Speed,
		},
		Traffic: lanecontroller.Traffic{
			Lanes: e.road.LaneCenters(d.InitialLanes),
		},
	}
}

// Step advances an active run by one frame. The previous state is left
// untouched; inactive states are returned unchanged.
func (e *Engine) Step(s RunState, keys Keys) (RunState, []Event) {
	if !s.Active {
		return s, nil
	}
	s.Traffic = s.Traffic.Clone()
	s.Frame++

	var events []Event

	s.TrafficSpeed = e.cfg.Traffic.BaseSpeed + float64(s.Score)*e.cfg.Traffic.SpeedPerPoint
	s.Distance += s.TrafficSpeed

	events = e.checkSpawnMilestone(&s, events)
	events = e.checkLaneMilestone(&s, events)
	events = e.updateShoulder(&s, events)

	e.movePlayer(&s, keys)
	events = e.chargePenalty(&s, events)

	events = e.advanceTraffic(&s, events)
	e.spawnTraffic(&s)

	s.RoadOffset = e.road.Scroll(s.RoadOffset)

	if e.collides(s) {
		events = e.endRun(&s, events)
	}
	return s, events
}

// movePlayer applies held directions, each gated on the pre-move position
func (e *Engine) movePlayer(s *RunState, keys Keys) {
	pf := e.cfg.Playfield
	p := &s.Player

	if keys.Left() && p.X > e.minPlayerX(*s) {
		p.X -= p.Speed
	}
	if keys.Right() && p.X < pf.Width-p.Width-pf.EdgeMargin {
		p.X += p.Speed
	}
	if keys.Up() && p.Y > pf.TopMargin {
		p.Y -= p.Speed
	}
	if keys.Down() && p.Y < pf.Height-p.Height-pf.EdgeMargin {
		p.Y += p.Speed
	}
}

// minPlayerX is the left bound: the canvas edge margin, or the shoulder's
// left edge while the shoulder is closed.
func (e *Engine) minPlayerX(s RunState) float64 {
	if e.road.HasShoulder() && !s.ShoulderOpen {
		return e.road.ShoulderRect().X
	}
	return e.cfg.Playfield.EdgeMargin
}

func (e *Engine) advanceTraffic(s *RunState, events []Event) []Event {
	playerCenterY := s.Player.Rect().CenterY()
	passed := e.lanes.Advance(&s.Traffic, s.TrafficSpeed, playerCenterY, e.cfg.Playfield.Height)

	for _, car := range passed {
		s.CarsDodged++
		s.Score += e.cfg.Traffic.PassAward
		events = append(events, Event{Kind: EventCarPassed, Value: e.cfg.Traffic.PassAward, CarID: car.ID})
	}
	return events
}

// spawnTraffic runs after the advance so a new car starts its life exactly at
// the spawn line.
func (e *Engine) spawnTraffic(s *RunState) {
	s.SpawnTimer++
	if s.SpawnTimer < s.SpawnInterval {
		return
	}
	s.SpawnTimer = 0
	e.lanes.TrySpawn(&s.Traffic, e.rng)
}

func (e *Engine) collides(s RunState) bool {
	player := s.Player.Rect()
	for _, car := range s.Traffic.Cars {
		if player.OverlapsPadded(car.Rect(), e.cfg.Traffic.CollisionInset) {
			return true
		}
	}
	return false
}

func (e *Engine) endRun(s *RunState, events []Event) []Event {
	s.Active = false
	s.Over = true

	newHigh := s.Score > s.HighScore
	if newHigh {
		s.HighScore = s.Score
	}
	return append(events, Event{Kind: EventGameOver, Value: s.Score, NewHighScore: newHigh})
}

func floorScale(value int, factor float64) int {
	return int(math.Floor(float64(value) * factor))
}
