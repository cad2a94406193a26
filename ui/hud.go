package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/cardodge/engine"
	"github.com/golangdaddy/cardodge/hud"
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawHUD draws the score bar, the penalty warning and any banner notice
func DrawHUD(screen *ebiten.Image, snap engine.Snapshot, h *hud.HUD) {
	width := float64(screen.Bounds().Dx())

	DrawText(screen, fmt.Sprintf("SCORE %d", snap.Score), 12, 14, 1.25*h.ScoreScale(), AlignLeft, h.ScoreColor())
	DrawText(screen, fmt.Sprintf("HI %d", snap.HighScore), width-12, 14, 1, AlignRight, color.RGBA{255, 255, 255, 255})
	DrawText(screen, fmt.Sprintf("SPEED %d", snap.DisplaySpeed), 12, 34, 1, AlignLeft, color.RGBA{0, 255, 255, 255})
	DrawText(screen, fmt.Sprintf("%d LANES", snap.NumLanes), width-12, 34, 1, AlignRight, color.RGBA{0, 255, 255, 255})

	if warning, ok := hud.Warning(snap); ok {
		DrawText(screen, warning, width/2, 60, 1, AlignCenter, hud.AlertColor)
	}

	if notice, progress, ok := h.Notice(); ok {
		// Rise and fade over the notice's life
		y := snap.Height/3 - 30*progress
		alpha := uint8(255 * (1 - progress*progress))
		DrawText(screen, notice, width/2, y, 2, AlignCenter, color.RGBA{255, 215, 0, alpha})
	}
}
