package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleScreen is the start overlay drawn over an idle road
type TitleScreen struct {
	startTime      time.Time
	highScore      int
	rules          []string
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(highScore int, rules []string, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		highScore:      highScore,
		rules:          rules,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if startPressed() && ts.onStartPressed != nil {
		ts.onStartPressed()
	}
	return nil
}

// startPressed reports a fresh press of any start/restart control
func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw renders the title overlay
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(width) / 2

	drawPanel(screen, 20, float64(height)/6, float64(width)-40, float64(height)*2/3,
		color.RGBA{0, 0, 0, 200}, color.RGBA{0, 255, 0, 255})

	elapsed := time.Since(ts.startTime).Seconds()

	// Title pulses between 3x and 3.3x
	titleScale := 3.0 + 0.3*math.Sin(elapsed*2)
	DrawText(screen, "CAR DODGE", centerX, float64(height)/4+20, titleScale, AlignCenter, color.RGBA{255, 215, 0, 255})

	y := float64(height)/4 + 80
	for _, line := range ts.rules {
		DrawText(screen, line, centerX, y, 1, AlignCenter, color.RGBA{200, 200, 220, 255})
		y += 22
	}

	DrawText(screen, "WASD / Arrow keys to drive", centerX, y+16, 1, AlignCenter, color.RGBA{150, 200, 255, 255})
	DrawText(screen, fmt.Sprintf("HIGH SCORE: %d", ts.highScore), centerX, y+50, 1.5, AlignCenter, color.RGBA{0, 255, 0, 255})

	// Blink every half second
	if int(elapsed*2)%2 == 0 {
		DrawText(screen, "Press ENTER or SPACE", centerX, float64(height)*5/6-30, 1.25, AlignCenter, color.RGBA{255, 255, 255, 255})
	}
}
