package road

import (
	"math"
	"testing"

	"github.com/golangdaddy/cardodge/config"
)

func TestLaneCenters_EvenlySpread(t *testing.T) {
	r := New(config.Default())

	// 340px of road split in three lanes starting at x=30
	centers := r.LaneCenters(3)
	expected := []float64{30 + 340.0/6, 30 + 340.0/2, 30 + 5*340.0/6}
	if len(centers) != 3 {
		t.Fatalf("Expected 3 centers, got %d", len(centers))
	}
	for i := range expected {
		if math.Abs(centers[i]-expected[i]) > 1e-9 {
			t.Errorf("Lane %d: expected center %f, got %f", i, expected[i], centers[i])
		}
	}
}

func TestLaneDividers_BetweenLanes(t *testing.T) {
	r := New(config.Default())

	for n := 3; n <= 10; n++ {
		dividers := r.LaneDividers(n)
		if len(dividers) != n-1 {
			t.Errorf("With %d lanes expected %d dividers, got %d", n, n-1, len(dividers))
		}
		for _, x := range dividers {
			if x <= r.DrivableLeft() || x >= r.DrivableRight() {
				t.Errorf("Divider %f outside road [%f,%f]", x, r.DrivableLeft(), r.DrivableRight())
			}
		}
	}
}

func TestLaneWidth_PanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero lanes")
		}
	}()
	New(config.Default()).LaneWidth(0)
}

func TestShoulder_ShiftsLanes(t *testing.T) {
	cfg := config.Default()
	cfg.Shoulder.Enabled = true
	r := New(cfg)

	if !r.HasShoulder() {
		t.Fatal("Expected shoulder")
	}
	if r.DrivableLeft() != 80 {
		t.Errorf("Expected lanes to start at 80, got %f", r.DrivableLeft())
	}
	if !r.InShoulder(Rect{X: 60, Y: 100, W: 40, H: 70}) {
		t.Error("Expected box at x=60 to touch the shoulder")
	}
	if r.InShoulder(Rect{X: 80, Y: 100, W: 40, H: 70}) {
		t.Error("Expected box at x=80 to be clear of the shoulder")
	}
}

func TestOnGrass(t *testing.T) {
	r := New(config.Default())

	tests := []struct {
		name     string
		x        float64
		expected bool
	}{
		{"Left grass", 29, true},
		{"Left edge of road", 30, false},
		{"Middle", 180, false},
		{"Right edge of road", 330, false},
		{"Right grass", 331, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := Rect{X: tt.x, Y: 480, W: 40, H: 70}
			if got := r.OnGrass(box); got != tt.expected {
				t.Errorf("OnGrass(x=%f) = %v, expected %v", tt.x, got, tt.expected)
			}
		})
	}
}

func TestScroll_Wraps(t *testing.T) {
	r := New(config.Default())

	offset := 0.0
	for i := 0; i < 7; i++ {
		offset = r.Scroll(offset)
	}
	if offset != 35 {
		t.Errorf("Expected offset 35 after 7 frames, got %f", offset)
	}
	offset = r.Scroll(offset)
	if offset != 0 {
		t.Errorf("Expected offset to wrap to 0, got %f", offset)
	}
}

func TestOverlapsPadded_Boundary(t *testing.T) {
	player := Rect{X: 100, Y: 100, W: 40, H: 70}

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		// unpadded overlap of exactly 2*pad along x: inset boxes only touch
		{"Overlap equals padding margin", Rect{X: 130, Y: 100, W: 40, H: 70}, false},
		{"Overlap one past margin", Rect{X: 129, Y: 100, W: 40, H: 70}, true},
		{"Vertical overlap within margin", Rect{X: 100, Y: 165, W: 40, H: 70}, false},
		{"Vertical overlap past margin", Rect{X: 100, Y: 159, W: 40, H: 70}, true},
		{"Same box", player, true},
		{"Apart", Rect{X: 300, Y: 100, W: 40, H: 70}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.OverlapsPadded(tt.other, 5); got != tt.expected {
				t.Errorf("OverlapsPadded = %v, expected %v", got, tt.expected)
			}
			if got := tt.other.OverlapsPadded(player, 5); got != tt.expected {
				t.Errorf("OverlapsPadded is not symmetric: got %v", got)
			}
		})
	}
}
