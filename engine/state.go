package engine

import (
	"github.com/golangdaddy/cardodge/lanecontroller"
	"github.com/golangdaddy/cardodge/road"
)

// LaneMilestoneSentinel parks the next lane milestone out of reach once the
// road is at its widest.
const LaneMilestoneSentinel = 999999

// PlayerCar is the car under the player's control
type PlayerCar struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Pixels moved per frame while a direction is held
}

// Rect returns the player's bounding box
func (p PlayerCar) Rect() road.Rect {
	return road.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// RunState is everything that changes during a run
type RunState struct {
	Active bool // Step advances the run only while true
	Over   bool // Set when a collision ended the run
	Frame  int

	Score      int
	HighScore  int
	Distance   float64
	CarsDodged int

	NumLanes              int
	LastMilestoneLevel    int
	NextLaneMilestone     int
	LaneMilestoneInterval int

	SpawnInterval int // Frames between spawn attempts
	SpawnTimer    int

	TrafficSpeed float64
	RoadOffset   float64

	// Fraction of a point owed for time spent in penalty zones
	PenaltyAccumulator float64
	OnGrass            bool
	InClosedShoulder   bool

	ShoulderOpen  bool
	ShoulderTimer int // Frames spent in the current shoulder phase

	Player  PlayerCar
	Traffic lanecontroller.Traffic
}

// InPenaltyZone reports whether the player was charged during the last frame
func (s RunState) InPenaltyZone() bool {
	return s.OnGrass || s.InClosedShoulder
}

// DisplaySpeed is the speedometer reading
func (s RunState) DisplaySpeed(factor float64) int {
	return int(s.TrafficSpeed * factor)
}

// DisplayDistance is the distance shown on the game-over screen
func (s RunState) DisplayDistance() int {
	return int(s.Distance / 10)
}
