package game

import (
	"log"

	"github.com/golangdaddy/cardodge/audio"
	"github.com/golangdaddy/cardodge/config"
	"github.com/golangdaddy/cardodge/engine"
	"github.com/golangdaddy/cardodge/hud"
	"github.com/golangdaddy/cardodge/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Mode is which screen the desktop frontend is showing
type Mode int

const (
	ModeTitle Mode = iota
	ModePlaying
	ModeGameOver
)

// Options tunes the desktop window
type Options struct {
	Scale  float64 // Window size multiplier
	Mute   bool
	Seed   int64 // Grass texture seed
	Logger *log.Logger
}

// Screen represents a UI overlay
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface on top of an engine session
type Game struct {
	session *engine.Session
	hud     *hud.HUD
	view    *RoadView
	cues    *audio.Cues
	logger  *log.Logger

	mode    Mode
	overlay Screen

	width, height int
}

// NewGame creates the desktop frontend, parked on the title screen
func NewGame(session *engine.Session, opts Options) *Game {
	cfg := session.Engine().Config()
	pf := cfg.Playfield

	g := &Game{
		session: session,
		hud:     hud.New(),
		view:    NewRoadView(int(pf.GrassWidth), int(pf.Height), opts.Seed),
		logger:  opts.Logger,
		width:   int(pf.Width),
		height:  int(pf.Height),
	}
	if !opts.Mute {
		g.cues = audio.NewCues(opts.Logger)
	}
	g.showTitle()
	return g
}

func (g *Game) showTitle() {
	g.mode = ModeTitle
	cfg := g.session.Engine().Config()
	g.overlay = ui.NewTitleScreen(g.session.State().HighScore, hud.Rules(cfg), g.start)
}

func (g *Game) start() {
	g.session.Start()
	g.hud.Reset()
	g.mode = ModePlaying
	g.overlay = nil
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch g.mode {
	case ModePlaying:
		g.tick()
	case ModeGameOver:
		g.hud.Tick()
	}

	if g.overlay != nil {
		return g.overlay.Update()
	}
	return nil
}

func (g *Game) tick() {
	events := g.session.Tick(CaptureKeys())
	g.hud.Tick()
	g.hud.Apply(events)
	if g.cues != nil {
		g.cues.Play(events)
	}

	for _, ev := range events {
		if ev.Kind != engine.EventGameOver {
			continue
		}
		g.mode = ModeGameOver
		result := hud.ResultFrom(g.session.Snapshot(), ev.NewHighScore)
		g.overlay = ui.NewGameOverScreen(result, g.start)
	}
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	dx, dy := g.hud.Shake()

	g.view.Draw(screen, snap, dx, dy)
	if g.mode != ModeTitle {
		ui.DrawHUD(screen, snap, g.hud)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the playfield size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// Mode returns the screen currently shown
func (g *Game) Mode() Mode {
	return g.mode
}

// Run opens the window and blocks until it is closed
func Run(session *engine.Session, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	g := NewGame(session, opts)

	ebiten.SetWindowSize(int(float64(g.width)*opts.Scale), int(float64(g.height)*opts.Scale))
	ebiten.SetWindowTitle("Car Dodge")
	ebiten.SetTPS(config.FramesPerSecond)

	g.logger.Printf("Desktop frontend running at %dx%d (scale %.1f)", g.width, g.height, opts.Scale)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}
