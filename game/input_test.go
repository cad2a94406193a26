package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeysFrom(t *testing.T) {
	tests := []struct {
		name      string
		held      []ebiten.Key
		left      bool
		right     bool
		up        bool
		down      bool
		heldCount int
	}{
		{"Nothing held", nil, false, false, false, false, 0},
		{"Letter keys", []ebiten.Key{ebiten.KeyA, ebiten.KeyW}, true, false, true, false, 2},
		{"Arrow keys", []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowDown}, false, true, false, true, 2},
		{"Unbound key", []ebiten.Key{ebiten.KeyQ}, false, false, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := make(map[ebiten.Key]bool)
			for _, k := range tt.held {
				held[k] = true
			}
			keys := keysFrom(func(k ebiten.Key) bool { return held[k] })

			if keys.Left() != tt.left || keys.Right() != tt.right || keys.Up() != tt.up || keys.Down() != tt.down {
				t.Errorf("Unexpected directions for %v: %v", tt.held, keys)
			}
			if len(keys) != tt.heldCount {
				t.Errorf("Expected %d held keys, got %d", tt.heldCount, len(keys))
			}
		})
	}
}
