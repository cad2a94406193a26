package tui

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/cardodge/engine"
)

// DefaultHold is how long a key counts as held after its last press or
// repeat. Terminals report presses, never releases.
const DefaultHold = 150 * time.Millisecond

// HeldKeys turns a stream of key presses into a held-key set
type HeldKeys struct {
	hold    time.Duration
	pressed map[string]time.Time
}

// NewHeldKeys creates an empty set with the given hold window
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &HeldKeys{
		hold:    hold,
		pressed: make(map[string]time.Time),
	}
}

// Press records a press or auto-repeat of a driving key
func (h *HeldKeys) Press(name string, at time.Time) {
	h.pressed[name] = at
}

// Keys returns the keys still inside their hold window and forgets the rest
func (h *HeldKeys) Keys(now time.Time) engine.Keys {
	keys := make(engine.Keys, len(h.pressed))
	for name, at := range h.pressed {
		if now.Sub(at) < h.hold {
			keys[name] = true
			continue
		}
		delete(h.pressed, name)
	}
	return keys
}

// Clear forgets every key, used between runs
func (h *HeldKeys) Clear() {
	clear(h.pressed)
}

// keyName maps a terminal key event to an engine key name
func keyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.KeyArrowLeft, true
	case tcell.KeyRight:
		return engine.KeyArrowRight, true
	case tcell.KeyUp:
		return engine.KeyArrowUp, true
	case tcell.KeyDown:
		return engine.KeyArrowDown, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'a':
			return engine.KeyA, true
		case 'd':
			return engine.KeyD, true
		case 'w':
			return engine.KeyW, true
		case 's':
			return engine.KeyS, true
		}
	}
	return "", false
}
