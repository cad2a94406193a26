package hud

import (
	"fmt"

	"github.com/golangdaddy/cardodge/engine"
)

// Result is what the game-over screen reports
type Result struct {
	Score        int
	Distance     int
	CarsDodged   int
	HighScore    int
	NewHighScore bool
}

// ResultFrom summarises a finished run
func ResultFrom(snap engine.Snapshot, newHighScore bool) Result {
	return Result{
		Score:        snap.Score,
		Distance:     snap.DisplayDistance,
		CarsDodged:   snap.CarsDodged,
		HighScore:    snap.HighScore,
		NewHighScore: newHighScore,
	}
}

// NewHighScoreLine is appended to the summary when the record was beaten
const NewHighScoreLine = "NEW HIGH SCORE!"

// Lines returns the text rows of the summary
func (r Result) Lines() []string {
	lines := []string{
		fmt.Sprintf("SCORE: %d", r.Score),
		fmt.Sprintf("DISTANCE: %dm", r.Distance),
		fmt.Sprintf("CARS DODGED: %d", r.CarsDodged),
		fmt.Sprintf("HIGH SCORE: %d", r.HighScore),
	}
	if r.NewHighScore {
		lines = append(lines, NewHighScoreLine)
	}
	return lines
}
