package tui

import (
	"image/color"
	"testing"

	"github.com/golangdaddy/cardodge/engine"
	"github.com/golangdaddy/cardodge/road"
)

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name         string
		termW, termH int
		want         Viewport
	}{
		{"Tall terminal limited by height", 120, 32, Viewport{X: 40, Y: 2, Cols: 40, Rows: 30}},
		{"Narrow terminal limited by width", 40, 50, Viewport{X: 0, Y: 2, Cols: 40, Rows: 30}},
		{"Tiny terminal", 1, 1, Viewport{X: 0, Y: 2, Cols: 1, Rows: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitViewport(tt.termW, tt.termH, 400, 600)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Width:        400,
		Height:       600,
		GrassWidth:   30,
		NumLanes:     3,
		LaneDividers: []float64{143.33, 256.67},
		Player:       road.Rect{X: 180, Y: 480, W: 40, H: 70},
		Traffic: []engine.CarView{
			{Rect: road.Rect{X: 300, Y: 100, W: 40, H: 70}, Color: color.RGBA{0, 0, 255, 255}},
		},
		Active: true,
	}
}

func TestRenderField(t *testing.T) {
	vp := Viewport{Cols: 40, Rows: 60} // 10x10 playfield pixels per cell
	grid := RenderField(testSnapshot(), vp)

	if len(grid) != 60 || len(grid[0]) != 40 {
		t.Fatalf("Expected a 60x40 grid, got %dx%d", len(grid), len(grid[0]))
	}

	tests := []struct {
		name string
		row  int
		col  int
		want rune
	}{
		{"Left grass", 10, 1, runeGrass},
		{"Right grass", 10, 38, runeGrass},
		{"Open road", 10, 20, ' '},
		{"Lane dash", 1, 14, runeDash},
		{"Gap between dashes", 3, 14, ' '},
		{"Traffic car", 12, 31, runeCar},
		{"Player", 50, 19, runeCar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grid[tt.row][tt.col].Rune; got != tt.want {
				t.Errorf("Expected %q at (%d,%d), got %q", tt.want, tt.row, tt.col, got)
			}
		})
	}
}

func TestRenderField_WarningAndShoulder(t *testing.T) {
	snap := testSnapshot()
	snap.OnGrass = true
	snap.HasShoulder = true
	snap.Shoulder = road.Rect{X: 30, Y: 0, W: 50, H: 600}

	vp := Viewport{Cols: 40, Rows: 60}
	grid := RenderField(snap, vp)
	if got := grid[50][19].Rune; got != runeWarning {
		t.Errorf("Expected the player drawn as a warning, got %q", got)
	}
	if got := grid[10][5].Rune; got != runeHazard {
		t.Errorf("Expected hazard bands on the closed shoulder, got %q", got)
	}

	snap.ShoulderOpen = true
	grid = RenderField(snap, vp)
	if got := grid[10][5].Rune; got != ' ' {
		t.Errorf("Expected an open shoulder to be drivable, got %q", got)
	}
}

func TestDashVisible(t *testing.T) {
	tests := []struct {
		y, offset float64
		want      bool
	}{
		{0, 0, true},
		{19.9, 0, true},
		{20, 0, false},
		{45, 5, true},
		{3, 5, false},
	}

	for _, tt := range tests {
		if got := dashVisible(tt.y, tt.offset); got != tt.want {
			t.Errorf("dashVisible(%v, %v): expected %v, got %v", tt.y, tt.offset, tt.want, got)
		}
	}
}
