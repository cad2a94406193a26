package tui

import (
	"log"
	"time"

	"github.com/golangdaddy/cardodge/engine"
	"github.com/golangdaddy/cardodge/hud"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sounds plays event cues through the system speaker
type Sounds struct {
	ready  bool
	logger *log.Logger
}

// NewSounds opens the speaker. Failure leaves the game silent.
func NewSounds(logger *log.Logger) *Sounds {
	s := &Sounds{logger: logger}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		logger.Printf("Audio initialization failed: %v", err)
		return s
	}
	s.ready = true
	return s
}

// Play queues the cues for a frame's events
func (s *Sounds) Play(events []engine.Event) {
	if !s.ready {
		return
	}
	for _, tones := range hud.Cues(events) {
		if st := s.sequence(tones); st != nil {
			speaker.Play(st)
		}
	}
}

func (s *Sounds) sequence(tones []hud.Tone) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(tones))
	for _, tone := range tones {
		sine, err := generators.SineTone(sampleRate, tone.Freq)
		if err != nil {
			s.logger.Printf("Skipping %.0fHz tone: %v", tone.Freq, err)
			continue
		}
		notes = append(notes, beep.Take(sampleRate.N(tone.Duration), sine))
	}
	if len(notes) == 0 {
		return nil
	}
	return &effects.Volume{Streamer: beep.Seq(notes...), Base: 2, Volume: -2}
}

// Close releases the speaker
func (s *Sounds) Close() {
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}
