package hud

import (
	"testing"

	"github.com/golangdaddy/cardodge/engine"
)

func TestCue(t *testing.T) {
	tests := []struct {
		kind    engine.EventKind
		audible bool
	}{
		{engine.EventCarPassed, true},
		{engine.EventLaneAdded, true},
		{engine.EventMaxLanes, true},
		{engine.EventGameOver, true},
		{engine.EventPenalty, false},
		{engine.EventSpawnRateUp, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tones, ok := Cue(tt.kind)
			if ok != tt.audible {
				t.Fatalf("Expected audible=%v, got %v", tt.audible, ok)
			}
			for _, tone := range tones {
				if tone.Freq <= 0 || tone.Duration <= 0 {
					t.Errorf("Invalid tone %+v", tone)
				}
			}
		})
	}
}

func TestCues_GameOverWins(t *testing.T) {
	events := []engine.Event{
		{Kind: engine.EventCarPassed},
		{Kind: engine.EventPenalty},
		{Kind: engine.EventGameOver},
	}

	got := Cues(events)
	want, _ := Cue(engine.EventGameOver)
	if len(got) != 1 || len(got[0]) != len(want) || got[0][0] != want[0] {
		t.Errorf("Expected only the game-over cue, got %v", got)
	}

	got = Cues(events[:2])
	if len(got) != 1 {
		t.Errorf("Expected one cue for a pass and a silent penalty, got %d", len(got))
	}
}
