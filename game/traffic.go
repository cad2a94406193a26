package game

import (
	"github.com/golangdaddy/cardodge/car"
	"github.com/golangdaddy/cardodge/engine"
	"github.com/hajimehoshi/ebiten/v2"
)

// drawTraffic draws every traffic car that is at least partly on screen
func drawTraffic(screen *ebiten.Image, snap engine.Snapshot, dx, dy float64) {
	for _, tc := range snap.Traffic {
		if tc.Rect.Bottom() < 0 || tc.Rect.Y > snap.Height {
			continue
		}
		car.RenderCar(screen, tc.Rect, tc.Color, car.FacingDown, dx, dy)
	}
}

// drawPlayer draws the player's car and, while a penalty is being charged,
// the red warning frame around it.
func drawPlayer(screen *ebiten.Image, snap engine.Snapshot, dx, dy float64) {
	car.RenderCar(screen, snap.Player, car.PlayerColor, car.FacingUp, dx, dy)
	if snap.Active && (snap.OnGrass || snap.InClosedShoulder) {
		car.RenderWarning(screen, snap.Player, dx, dy)
	}
}
