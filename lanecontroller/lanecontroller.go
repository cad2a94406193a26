package lanecontroller

import (
	"image/color"
	"math"

	"github.com/golangdaddy/cardodge/config"
	"github.com/golangdaddy/cardodge/road"
)

// Rand is the random source used for lane and color picks. *rand.Rand
// satisfies it; tests substitute a fixed source.
type Rand interface {
	Intn(n int) int
}

// TrafficCar represents a traffic vehicle heading down the playfield
type TrafficCar struct {
	ID     int64      // Unique identifier within a run
	X      float64    // Left edge
	Y      float64    // Top edge
	Width  float64    // Car width
	Height float64    // Car height
	Lane   int        // Lane index the car spawned in
	Color  color.RGBA // Body color
	Passed bool       // Set once the player has got ahead of this car
}

// Rect returns the car's bounding box
func (tc TrafficCar) Rect() road.Rect {
	return road.Rect{X: tc.X, Y: tc.Y, W: tc.Width, H: tc.Height}
}

// Traffic is the per-run traffic state: the current lane centers and the
// active cars, oldest first.
type Traffic struct {
	Lanes  []float64
	Cars   []TrafficCar
	NextID int64
}

// Clone returns a deep copy so a frame can be computed without touching
// the previous state.
func (t Traffic) Clone() Traffic {
	return Traffic{
		Lanes:  append([]float64(nil), t.Lanes...),
		Cars:   append([]TrafficCar(nil), t.Cars...),
		NextID: t.NextID,
	}
}

// LaneController spawns, advances and retires traffic cars
type LaneController struct {
	CarWidth   float64
	CarHeight  float64
	SpawnY     float64 // Top edge of a freshly spawned car
	ClearanceX float64 // Horizontal window checked around the spawn point
	ClearanceY float64 // Cars above this y block a spawn in their window
	Palette    []color.RGBA
}

// New creates a lane controller from the traffic configuration
func New(cfg config.Traffic) (*LaneController, error) {
	palette, err := LoadPalette(cfg.Colors)
	if err != nil {
		return nil, err
	}
	return &LaneController{
		CarWidth:   cfg.Width,
		CarHeight:  cfg.Height,
		SpawnY:     cfg.SpawnY,
		ClearanceX: cfg.ClearanceX,
		ClearanceY: cfg.ClearanceY,
		Palette:    palette,
	}, nil
}

// TrySpawn makes one spawn attempt in a random lane. The attempt is dropped,
// not retried, when another car sits too close to the spawn point.
func (lc *LaneController) TrySpawn(t *Traffic, rng Rand) bool {
	if len(t.Lanes) == 0 {
		return false
	}

	lane := rng.Intn(len(t.Lanes))
	x := t.Lanes[lane] - lc.CarWidth/2

	for _, existing := range t.Cars {
		if math.Abs(existing.X-x) < lc.ClearanceX && existing.Y < lc.ClearanceY {
			return false
		}
	}

	car := TrafficCar{
		ID:     t.NextID,
		X:      x,
		Y:      lc.SpawnY,
		Width:  lc.CarWidth,
		Height: lc.CarHeight,
		Lane:   lane,
	}
	if len(lc.Palette) > 0 {
		car.Color = lc.Palette[rng.Intn(len(lc.Palette))]
	}
	t.NextID++
	t.Cars = append(t.Cars, car)
	return true
}

// Advance moves every car down by speed, marks cars the player has got
// ahead of, and drops cars below bottom. It returns the cars passed this frame.
func (lc *LaneController) Advance(t *Traffic, speed, playerCenterY, bottom float64) []TrafficCar {
	var passed []TrafficCar
	active := t.Cars[:0]

	for _, tc := range t.Cars {
		tc.Y += speed

		if !tc.Passed && playerCenterY < tc.Rect().CenterY() {
			tc.Passed = true
			passed = append(passed, tc)
		}

		if tc.Y > bottom {
			continue
		}
		active = append(active, tc)
	}

	t.Cars = active
	return passed
}
