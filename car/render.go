package car

import (
	"image/color"

	"github.com/golangdaddy/cardodge/road"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Facing decides where the windshield and lights go
type Facing int

const (
	FacingUp   Facing = iota // The player, driving away from the viewer
	FacingDown               // Traffic, seen from behind
)

var (
	PlayerColor    = color.RGBA{255, 0, 0, 255}
	outlineColor   = color.RGBA{0, 0, 0, 255}
	headlightColor = color.RGBA{255, 255, 0, 255}
	taillightColor = color.RGBA{255, 0, 0, 255}
	warningColor   = color.RGBA{255, 0, 0, 255}
)

const (
	wheelWidth  = 8
	wheelHeight = 15
	lightSize   = 4
)

// RenderCar draws a top-down car filling box, shifted by (dx, dy)
func RenderCar(screen *ebiten.Image, box road.Rect, body color.Color, facing Facing, dx, dy float64) {
	x := float32(box.X + dx)
	y := float32(box.Y + dy)
	w := float32(box.W)
	h := float32(box.H)

	// Body and outline
	vector.DrawFilledRect(screen, x, y, w, h, body, false)
	vector.StrokeRect(screen, x, y, w, h, 2, outlineColor, false)

	// Windshield sits at the front of the car
	glassH := h * 0.25
	if facing == FacingUp {
		vector.DrawFilledRect(screen, x+5, y+5, w-10, glassH, outlineColor, false)
	} else {
		vector.DrawFilledRect(screen, x+5, y+h-glassH-5, w-10, glassH, outlineColor, false)
	}

	// Wheels poke out on both sides
	vector.DrawFilledRect(screen, x-3, y+10, wheelWidth, wheelHeight, outlineColor, false)
	vector.DrawFilledRect(screen, x+w-5, y+10, wheelWidth, wheelHeight, outlineColor, false)
	vector.DrawFilledRect(screen, x-3, y+h-25, wheelWidth, wheelHeight, outlineColor, false)
	vector.DrawFilledRect(screen, x+w-5, y+h-25, wheelWidth, wheelHeight, outlineColor, false)

	if facing == FacingUp {
		vector.DrawFilledRect(screen, x+8, y+2, lightSize, lightSize, headlightColor, false)
		vector.DrawFilledRect(screen, x+w-12, y+2, lightSize, lightSize, headlightColor, false)
		// Glow ring around the player
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 1, body, true)
		return
	}
	vector.DrawFilledRect(screen, x+8, y+h-6, lightSize, lightSize, taillightColor, false)
	vector.DrawFilledRect(screen, x+w-12, y+h-6, lightSize, lightSize, taillightColor, false)
}

// RenderWarning outlines a car that is being charged for leaving the road
func RenderWarning(screen *ebiten.Image, box road.Rect, dx, dy float64) {
	vector.StrokeRect(screen,
		float32(box.X+dx-3), float32(box.Y+dy-3),
		float32(box.W+6), float32(box.H+6),
		3, warningColor, false)
}
