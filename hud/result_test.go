package hud

import (
	"testing"

	"github.com/golangdaddy/cardodge/engine"
)

func TestResultLines(t *testing.T) {
	snap := engine.Snapshot{Score: 120, DisplayDistance: 431, CarsDodged: 12, HighScore: 120}

	tests := []struct {
		name    string
		newHigh bool
		want    []string
	}{
		{
			name: "Regular run",
			want: []string{"SCORE: 120", "DISTANCE: 431m", "CARS DODGED: 12", "HIGH SCORE: 120"},
		},
		{
			name:    "New high score",
			newHigh: true,
			want:    []string{"SCORE: 120", "DISTANCE: 431m", "CARS DODGED: 12", "HIGH SCORE: 120", "NEW HIGH SCORE!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResultFrom(snap, tt.newHigh).Lines()
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d lines, got %v", len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Line %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}
