package game

import (
	"github.com/golangdaddy/cardodge/engine"
	"github.com/hajimehoshi/ebiten/v2"
)

var keyBindings = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyA, engine.KeyA},
	{ebiten.KeyD, engine.KeyD},
	{ebiten.KeyW, engine.KeyW},
	{ebiten.KeyS, engine.KeyS},
	{ebiten.KeyArrowLeft, engine.KeyArrowLeft},
	{ebiten.KeyArrowRight, engine.KeyArrowRight},
	{ebiten.KeyArrowUp, engine.KeyArrowUp},
	{ebiten.KeyArrowDown, engine.KeyArrowDown},
}

// CaptureKeys reads the held driving keys for this tick
func CaptureKeys() engine.Keys {
	return keysFrom(ebiten.IsKeyPressed)
}

func keysFrom(pressed func(ebiten.Key) bool) engine.Keys {
	keys := make(engine.Keys, len(keyBindings))
	for _, b := range keyBindings {
		if pressed(b.key) {
			keys[b.name] = true
		}
	}
	return keys
}
