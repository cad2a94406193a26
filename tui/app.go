// Package tui is the terminal frontend: a tcell screen driven by a ticker,
// with sound cues through beep.
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/cardodge/config"
	"github.com/golangdaddy/cardodge/engine"
	"github.com/golangdaddy/cardodge/hud"
)

const frameInterval = time.Second / config.FramesPerSecond

type mode int

const (
	modeTitle mode = iota
	modePlaying
	modeOver
)

// Options tunes the terminal frontend
type Options struct {
	Mute   bool
	Hold   time.Duration // Held-key window, DefaultHold when zero
	Logger *log.Logger
}

// App owns the terminal screen and one engine session
type App struct {
	screen  tcell.Screen
	session *engine.Session
	hud     *hud.HUD
	held    *HeldKeys
	sounds  *Sounds
	logger  *log.Logger

	mode   mode
	result hud.Result
}

// New wires an app to an initialised screen
func New(screen tcell.Screen, session *engine.Session, opts Options) *App {
	a := &App{
		screen:  screen,
		session: session,
		hud:     hud.New(),
		held:    NewHeldKeys(opts.Hold),
		logger:  opts.Logger,
	}
	if !opts.Mute {
		a.sounds = NewSounds(opts.Logger)
	}
	return a
}

// Run opens the terminal and plays until Esc, Ctrl-C or ctx is cancelled
func Run(ctx context.Context, session *engine.Session, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal screen: %w", err)
	}

	a := New(screen, session, opts)
	defer a.cleanup()

	a.logger.Printf("Terminal frontend running")
	return a.run(ctx)
}

func (a *App) cleanup() {
	if a.sounds != nil {
		a.sounds.Close()
	}
	a.screen.Fini()
}

func (a *App) run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalised
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !a.handleEvent(ev, time.Now()) {
				return nil
			}

		case <-ticker.C:
			a.tick(time.Now())
			a.draw()
		}
	}
}

// handleEvent returns false when the player asked to quit
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if name, ok := keyName(ev); ok {
			a.held.Press(name, now)
			return true
		}
		if a.mode != modePlaying && isStartKey(ev) {
			a.start()
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func isStartKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == ' ' || ev.Rune() == 'r' || ev.Rune() == 'R')
}

func (a *App) start() {
	a.session.Start()
	a.hud.Reset()
	a.held.Clear()
	a.mode = modePlaying
}

// tick advances the session one frame while a run is in progress
func (a *App) tick(now time.Time) {
	if a.mode != modePlaying {
		a.hud.Tick()
		return
	}

	events := a.session.Tick(a.held.Keys(now))
	a.hud.Tick()
	a.hud.Apply(events)
	if a.sounds != nil {
		a.sounds.Play(events)
	}

	for _, ev := range events {
		if ev.Kind == engine.EventGameOver {
			a.mode = modeOver
			a.result = hud.ResultFrom(a.session.Snapshot(), ev.NewHighScore)
		}
	}
}

func (a *App) draw() {
	a.screen.Clear()
	termW, termH := a.screen.Size()
	snap := a.session.Snapshot()
	vp := FitViewport(termW, termH, snap.Width, snap.Height)

	// Crash shake moves the field by whole cells
	dx, _ := a.hud.Shake()
	shift := int(dx / (snap.Width / float64(vp.Cols)))

	grid := RenderField(snap, vp)
	for r, row := range grid {
		for c, cell := range row {
			a.screen.SetContent(vp.X+c+shift, vp.Y+r, cell.Rune, nil, cell.Style)
		}
	}

	a.drawHUD(snap, termW)

	switch a.mode {
	case modeTitle:
		lines := append(hud.Rules(a.session.Engine().Config()),
			"WASD / arrows to drive",
			fmt.Sprintf("HIGH SCORE: %d", snap.HighScore),
			"",
			"ENTER or SPACE to start, ESC to quit",
		)
		a.drawPanel(vp, "CAR DODGE", lines)
	case modeOver:
		a.drawPanel(vp, "GAME OVER", append(a.result.Lines(), "", "ENTER / SPACE / R to restart"))
	}

	a.screen.Show()
}

func (a *App) drawHUD(snap engine.Snapshot, termW int) {
	scoreColor := a.hud.ScoreColor()
	scoreStyle := tcell.StyleDefault.Foreground(rgb(scoreColor)).Bold(true)

	status := fmt.Sprintf("SCORE %d", snap.Score)
	a.drawString(1, 0, status, scoreStyle)
	rest := fmt.Sprintf("  HI %d  SPEED %d  LANES %d", snap.HighScore, snap.DisplaySpeed, snap.NumLanes)
	a.drawString(1+len(status), 0, rest, tcell.StyleDefault.Foreground(tcell.ColorAqua))

	if warning, ok := hud.Warning(snap); ok {
		a.drawCentered(termW, 1, warning, tcell.StyleDefault.Foreground(rgb(hud.AlertColor)).Bold(true))
	} else if notice, _, ok := a.hud.Notice(); ok {
		a.drawCentered(termW, 1, notice, tcell.StyleDefault.Foreground(rgb(hud.FlashColor)).Bold(true))
	}
}

// drawPanel draws a boxed message over the middle of the playfield
func (a *App) drawPanel(vp Viewport, title string, lines []string) {
	width := len(title)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	width += 4
	height := len(lines) + 4

	left := vp.X + (vp.Cols-width)/2
	top := vp.Y + (vp.Rows-height)/2
	box := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			a.screen.SetContent(x, y, ' ', nil, box)
		}
	}
	a.drawString(left+(width-len(title))/2, top+1, title, box.Foreground(tcell.ColorYellow).Bold(true))
	for i, line := range lines {
		a.drawString(left+2, top+3+i, line, box)
	}
}

func (a *App) drawCentered(termW, y int, s string, style tcell.Style) {
	a.drawString((termW-len(s))/2, y, s, style)
}

func (a *App) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
