package hud

import (
	"time"

	"github.com/golangdaddy/cardodge/engine"
)

// Tone is one note of a sound cue
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
}

var cues = map[engine.EventKind][]Tone{
	engine.EventCarPassed: {
		{Freq: 880, Duration: 50 * time.Millisecond},
	},
	engine.EventLaneAdded: {
		{Freq: 660, Duration: 80 * time.Millisecond},
		{Freq: 880, Duration: 120 * time.Millisecond},
	},
	engine.EventMaxLanes: {
		{Freq: 660, Duration: 80 * time.Millisecond},
		{Freq: 880, Duration: 80 * time.Millisecond},
		{Freq: 1320, Duration: 160 * time.Millisecond},
	},
	engine.EventShoulderOpened: {
		{Freq: 520, Duration: 90 * time.Millisecond},
	},
	engine.EventShoulderClosed: {
		{Freq: 390, Duration: 90 * time.Millisecond},
	},
	engine.EventGameOver: {
		{Freq: 220, Duration: 180 * time.Millisecond},
		{Freq: 110, Duration: 320 * time.Millisecond},
	},
}

// Cue returns the notes to play for an event kind. Penalties and spawn-rate
// changes are silent.
func Cue(kind engine.EventKind) ([]Tone, bool) {
	tones, ok := cues[kind]
	return tones, ok
}

// Cues returns the notes for every audible event of one frame, loudest news
// first: a game over drowns out everything else.
func Cues(events []engine.Event) [][]Tone {
	var out [][]Tone
	for _, ev := range events {
		if ev.Kind == engine.EventGameOver {
			tones, _ := Cue(ev.Kind)
			return [][]Tone{tones}
		}
		if tones, ok := Cue(ev.Kind); ok {
			out = append(out, tones)
		}
	}
	return out
}
