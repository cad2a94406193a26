// Package hud keeps the frame timers behind on-screen feedback: banner
// notices, the score flash and pulse, and the crash shake. It knows nothing
// about drawing, so every frontend shares it.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/cardodge/engine"
)

// Durations in frames at 60 fps
const (
	NoticeFrames = 120
	FlashFrames  = 30
	PulseFrames  = 18
	ShakeFrames  = 30
)

// Warning texts, formatted with the penalty rate in points per second
const (
	GrassWarning    = "ON GRASS! -%g/sec"
	ShoulderWarning = "SHOULDER CLOSED! -%g/sec"
)

var (
	ScoreColor = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	FlashColor = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}
	AlertColor = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
)

// HUD tracks feedback timers for one session
type HUD struct {
	notice     string
	noticeLeft int
	flashLeft  int
	pulseLeft  int
	shakeLeft  int
}

// New creates an empty HUD
func New() *HUD {
	return &HUD{}
}

// Reset clears every timer, used when a run starts
func (h *HUD) Reset() {
	*h = HUD{}
}

// Apply starts timers for the events of the frame just stepped
func (h *HUD) Apply(events []engine.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case engine.EventLaneAdded:
			h.show(ev.Text)
			h.flashLeft = FlashFrames
		case engine.EventMaxLanes, engine.EventShoulderOpened, engine.EventShoulderClosed:
			h.show(ev.Text)
		case engine.EventCarPassed:
			h.pulseLeft = PulseFrames
		case engine.EventGameOver:
			h.notice, h.noticeLeft = "", 0
			h.shakeLeft = ShakeFrames
		}
	}
}

func (h *HUD) show(text string) {
	h.notice = text
	h.noticeLeft = NoticeFrames
}

// Tick counts every timer down by one frame
func (h *HUD) Tick() {
	if h.noticeLeft > 0 {
		h.noticeLeft--
		if h.noticeLeft == 0 {
			h.notice = ""
		}
	}
	if h.flashLeft > 0 {
		h.flashLeft--
	}
	if h.pulseLeft > 0 {
		h.pulseLeft--
	}
	if h.shakeLeft > 0 {
		h.shakeLeft--
	}
}

// Notice returns the banner text and how far through its life it is (0..1)
func (h *HUD) Notice() (string, float64, bool) {
	if h.noticeLeft == 0 {
		return "", 0, false
	}
	return h.notice, 1 - float64(h.noticeLeft)/NoticeFrames, true
}

// ScoreColor is gold during a lane flash, green otherwise
func (h *HUD) ScoreColor() color.RGBA {
	if h.flashLeft > 0 {
		return FlashColor
	}
	return ScoreColor
}

// ScoreScale grows the score text up and back down after a pass
func (h *HUD) ScoreScale() float64 {
	if h.pulseLeft == 0 {
		return 1
	}
	t := 1 - float64(h.pulseLeft)/PulseFrames
	return 1 + 0.2*math.Sin(t*math.Pi)
}

// Shake returns the playfield offset for the crash shake
func (h *HUD) Shake() (dx, dy float64) {
	if h.shakeLeft == 0 {
		return 0, 0
	}
	amp := 6 * float64(h.shakeLeft) / ShakeFrames
	// alternate direction every couple of frames
	if (h.shakeLeft/2)%2 == 0 {
		return amp, -amp / 2
	}
	return -amp, amp / 2
}

// Warning returns the penalty warning for the snapshot, if any
func Warning(snap engine.Snapshot) (string, bool) {
	switch {
	case !snap.Active:
		return "", false
	case snap.OnGrass:
		return fmt.Sprintf(GrassWarning, snap.PenaltyRate), true
	case snap.InClosedShoulder:
		return fmt.Sprintf(ShoulderWarning, snap.PenaltyRate), true
	}
	return "", false
}
