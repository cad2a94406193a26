package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golangdaddy/cardodge/models"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestHighScore_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")

	out, err := runCmd(t, "highscore", "--scores", path)
	if err != nil {
		t.Fatalf("highscore failed: %v", err)
	}
	if !strings.Contains(out, "High score: 0") || !strings.Contains(out, "No runs recorded yet") {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestHighScore_ShowAndReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	store := models.NewFileStore(path)
	if err := store.SaveHighScore(340); err != nil {
		t.Fatal(err)
	}
	run := models.RunSummary{ID: "r1", Score: 340, Distance: 812, CarsDodged: 30, Lanes: 5, FinishedAt: time.Now()}
	if err := store.SaveLastRun(run); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "highscore", "--scores", path)
	if err != nil {
		t.Fatalf("highscore failed: %v", err)
	}
	if !strings.Contains(out, "High score: 340") || !strings.Contains(out, "score 340, distance 812m, 30 cars dodged, 5 lanes") {
		t.Errorf("Unexpected output: %q", out)
	}

	if _, err := runCmd(t, "highscore", "reset", "--scores", path); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	high, err := store.LoadHighScore()
	if err != nil || high != 0 {
		t.Errorf("Expected high score 0 after reset, got %d (%v)", high, err)
	}
}

func TestRoot_RejectsInvalidConfig(t *testing.T) {
	t.Setenv("CARDODGE_FRONTEND_KIND", "hologram")
	path := filepath.Join(t.TempDir(), "scores.json")

	if _, err := runCmd(t, "highscore", "--scores", path); err == nil {
		t.Error("Expected an unknown frontend to be rejected")
	}
}
