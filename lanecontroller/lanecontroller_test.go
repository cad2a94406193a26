package lanecontroller

import (
	"image/color"
	"testing"

	"github.com/golangdaddy/cardodge/config"
)

// fixedRand always returns the same index
type fixedRand int

func (f fixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func newTestController(t *testing.T) *LaneController {
	t.Helper()
	lc, err := New(config.Default().Traffic)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return lc
}

func TestTrySpawn_PlacesCarInLane(t *testing.T) {
	lc := newTestController(t)
	traffic := Traffic{Lanes: []float64{86, 200, 313}}

	if !lc.TrySpawn(&traffic, fixedRand(1)) {
		t.Fatal("Expected spawn to succeed")
	}
	if len(traffic.Cars) != 1 {
		t.Fatalf("Expected 1 car, got %d", len(traffic.Cars))
	}
	car := traffic.Cars[0]
	if car.X != 180 || car.Y != -80 {
		t.Errorf("Expected car at (180,-80), got (%f,%f)", car.X, car.Y)
	}
	if car.Lane != 1 || car.Passed {
		t.Errorf("Expected lane 1 not passed, got lane %d passed=%v", car.Lane, car.Passed)
	}
	if car.Color != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Expected second palette color, got %v", car.Color)
	}
}

func TestTrySpawn_RejectsCrowdedLane(t *testing.T) {
	lc := newTestController(t)
	traffic := Traffic{Lanes: []float64{86, 200, 313}}

	lc.TrySpawn(&traffic, fixedRand(0))
	if lc.TrySpawn(&traffic, fixedRand(0)) {
		t.Error("Expected second spawn in the same lane to be rejected")
	}
	if len(traffic.Cars) != 1 {
		t.Errorf("Expected 1 car, got %d", len(traffic.Cars))
	}

	// a neighbouring lane is outside the horizontal window
	if !lc.TrySpawn(&traffic, fixedRand(1)) {
		t.Error("Expected spawn in the next lane to succeed")
	}
}

func TestTrySpawn_AllowsOnceCarHasMovedOn(t *testing.T) {
	lc := newTestController(t)
	traffic := Traffic{Lanes: []float64{86, 200, 313}}

	lc.TrySpawn(&traffic, fixedRand(0))
	traffic.Cars[0].Y = 150

	if !lc.TrySpawn(&traffic, fixedRand(0)) {
		t.Error("Expected spawn to succeed once the blocking car reached y=150")
	}
}

func TestTrySpawn_NoLanes(t *testing.T) {
	lc := newTestController(t)
	traffic := Traffic{}

	if lc.TrySpawn(&traffic, fixedRand(0)) {
		t.Error("Expected spawn without lanes to be skipped")
	}
}

func TestAdvance_PassedOnceAndRemoval(t *testing.T) {
	lc := newTestController(t)
	traffic := Traffic{Cars: []TrafficCar{
		{ID: 1, X: 100, Y: 476, Width: 40, Height: 70},
		{ID: 2, X: 200, Y: 598, Width: 40, Height: 70},
	}}
	playerCenterY := 515.0

	passed := lc.Advance(&traffic, 3, playerCenterY, 600)
	// car 1: center 479+35=514 is still above the player; car 2 moves to 601 and is gone
	if len(passed) != 1 || passed[0].ID != 2 {
		t.Fatalf("Expected only car 2 to pass on its way out, got %v", passed)
	}
	if len(traffic.Cars) != 1 || traffic.Cars[0].ID != 1 {
		t.Fatalf("Expected car 1 to remain, got %v", traffic.Cars)
	}

	passed = lc.Advance(&traffic, 3, playerCenterY, 600)
	if len(passed) != 1 || passed[0].ID != 1 {
		t.Fatalf("Expected car 1 to pass, got %v", passed)
	}

	for i := 0; i < 10; i++ {
		if again := lc.Advance(&traffic, 3, playerCenterY, 600); len(again) != 0 {
			t.Fatalf("Expected car 1 to be passed only once, got %v", again)
		}
	}
}

func TestClone_IsIndependent(t *testing.T) {
	original := Traffic{Lanes: []float64{1, 2, 3}, Cars: []TrafficCar{{ID: 1, Y: 10}}}
	clone := original.Clone()
	clone.Cars[0].Y = 99
	clone.Lanes[0] = 42

	if original.Cars[0].Y != 10 || original.Lanes[0] != 1 {
		t.Error("Expected clone to leave the original untouched")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.RGBA
		wantErr  bool
	}{
		{"#FFA500", color.RGBA{255, 165, 0, 255}, false},
		{"00ff00", color.RGBA{0, 255, 0, 255}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseHexColor(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
