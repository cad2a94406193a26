package tui

import (
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/cardodge/config"
	"github.com/golangdaddy/cardodge/engine"
	"github.com/golangdaddy/cardodge/models"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)

	eng, err := engine.New(config.Default(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard, "", 0)
	session := engine.NewSession(eng, models.NewMemoryStore(), logger)
	return New(screen, session, Options{Mute: true, Logger: logger})
}

func TestFrameInterval_MatchesEngineRate(t *testing.T) {
	// per-second penalties and shoulder phases are counted in frames
	if got := frameInterval * config.FramesPerSecond; got < time.Second-time.Millisecond || got > time.Second {
		t.Errorf("Expected %d frames to take one second, took %v", config.FramesPerSecond, got)
	}
}

func TestApp_StartDriveQuit(t *testing.T) {
	a := newTestApp(t)
	now := time.Now()

	a.tick(now)
	if a.session.State().Frame != 0 {
		t.Fatal("Expected no simulation on the title screen")
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now)
	if a.mode != modePlaying || !a.session.State().Active {
		t.Fatal("Expected Enter to start a run")
	}

	startX := a.session.State().Player.X
	a.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), now)
	a.tick(now.Add(16 * time.Millisecond))
	if got := a.session.State().Player.X; got != startX-5 {
		t.Errorf("Expected the player to move left to %f, got %f", startX-5, got)
	}

	// Without a repeat the key is released
	a.tick(now.Add(300 * time.Millisecond))
	if got := a.session.State().Player.X; got != startX-5 {
		t.Errorf("Expected the player to stop at %f, got %f", startX-5, got)
	}

	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now) {
		t.Error("Expected Esc to quit")
	}
}

func TestApp_DrawShowsScore(t *testing.T) {
	a := newTestApp(t)
	a.start()
	a.tick(time.Now())
	a.draw()

	r, _, _, _ := a.screen.GetContent(1, 0)
	if r != 'S' {
		t.Errorf("Expected the score bar at the top left, got %q", r)
	}
}
