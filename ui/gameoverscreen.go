package ui

import (
	"image/color"

	"github.com/golangdaddy/cardodge/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen shows the final result until the player restarts
type GameOverScreen struct {
	result    hud.Result
	frames    int
	onRestart func()
}

// NewGameOverScreen creates the overlay for a finished run
func NewGameOverScreen(result hud.Result, onRestart func()) *GameOverScreen {
	return &GameOverScreen{
		result:    result,
		onRestart: onRestart,
	}
}

// Update waits for a restart press. Input is ignored for the first half
// second so a held key from the crash does not skip the screen.
func (gs *GameOverScreen) Update() error {
	gs.frames++
	if gs.frames < 30 {
		return nil
	}
	if (startPressed() || inpututil.IsKeyJustPressed(ebiten.KeyR)) && gs.onRestart != nil {
		gs.onRestart()
	}
	return nil
}

// Draw renders the result overlay
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(width) / 2
	top := float64(height) / 4

	drawPanel(screen, 30, top, float64(width)-60, float64(height)/2,
		color.RGBA{0, 0, 0, 210}, color.RGBA{255, 0, 0, 255})

	DrawText(screen, "GAME OVER", centerX, top+40, 3, AlignCenter, color.RGBA{255, 0, 0, 255})

	y := top + 100
	for _, line := range gs.result.Lines() {
		clr := color.RGBA{255, 255, 255, 255}
		if line == hud.NewHighScoreLine {
			clr = color.RGBA{255, 215, 0, 255}
		}
		DrawText(screen, line, centerX, y, 1.25, AlignCenter, clr)
		y += 28
	}

	DrawText(screen, "ENTER / SPACE / R to restart", centerX, top+float64(height)/2-24, 1, AlignCenter, color.RGBA{150, 200, 255, 255})
}
