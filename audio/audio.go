// Package audio plays the desktop frontend's sound cues through ebiten's
// audio context. Every cue is synthesized once up front.
package audio

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/golangdaddy/cardodge/engine"
	"github.com/golangdaddy/cardodge/hud"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate of the shared audio context
const SampleRate = 44100

const volume = 0.25

// Cues holds one pre-rendered clip per audible event kind
type Cues struct {
	ctx    *ebitenaudio.Context
	clips  map[engine.EventKind][]byte
	logger *log.Logger
}

// NewCues creates the audio context and renders every clip
func NewCues(logger *log.Logger) *Cues {
	c := &Cues{
		ctx:    ebitenaudio.NewContext(SampleRate),
		clips:  make(map[engine.EventKind][]byte),
		logger: logger,
	}
	for kind := engine.EventCarPassed; kind <= engine.EventGameOver; kind++ {
		if tones, ok := hud.Cue(kind); ok {
			c.clips[kind] = Render(tones, SampleRate)
		}
	}
	c.logger.Printf("Audio ready: %d cues at %d Hz", len(c.clips), SampleRate)
	return c
}

// Play starts the cues for a frame's events. Playback is fire and forget.
func (c *Cues) Play(events []engine.Event) {
	for _, ev := range events {
		if ev.Kind == engine.EventGameOver {
			c.play(ev.Kind)
			return
		}
	}
	for _, ev := range events {
		c.play(ev.Kind)
	}
}

func (c *Cues) play(kind engine.EventKind) {
	clip, ok := c.clips[kind]
	if !ok {
		return
	}
	player := c.ctx.NewPlayerFromBytes(clip)
	player.SetVolume(volume)
	player.Play()
}

// Render synthesizes tones back to back as 16-bit little-endian stereo PCM.
// Each note gets a short linear fade at both ends to avoid clicks.
func Render(tones []hud.Tone, sampleRate int) []byte {
	var total int
	for _, tone := range tones {
		total += samples(tone.Duration, sampleRate)
	}

	buf := make([]byte, 0, total*4)
	for _, tone := range tones {
		n := samples(tone.Duration, sampleRate)
		fade := sampleRate / 200 // 5ms
		if fade > n/2 {
			fade = n / 2
		}
		for i := 0; i < n; i++ {
			amp := 1.0
			switch {
			case i < fade:
				amp = float64(i) / float64(fade)
			case i >= n-fade:
				amp = float64(n-1-i) / float64(fade)
			}
			// Square-ish wave for the arcade feel
			v := math.Sin(2 * math.Pi * tone.Freq * float64(i) / float64(sampleRate))
			if v >= 0 {
				v = 0.6
			} else {
				v = -0.6
			}
			s := int16(v * amp * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
	}
	return buf
}

func samples(d time.Duration, sampleRate int) int {
	return int(d.Seconds() * float64(sampleRate))
}
