// Package window provides the desktop frontend: an ebiten game loop drawing
// the arena with vector shapes and a bitmap font.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Options configures a Game. Sound, Store and Logger are optional.
type Options struct {
	Session  *platform.Session
	Sound    *audio.SoundManager
	Store    *storage.Store
	Logger   *log.Logger
	TickRate int
}

// Game implements ebiten.Game for one session.
type Game struct {
	session *platform.Session
	sound   *audio.SoundManager
	store   *storage.Store
	logger  *log.Logger

	// duration reports how many ticks a key has been held; swapped in tests.
	duration    func(ebiten.Key) int
	showOptions bool
	quitting    bool
}

// NewGame creates a window game for the given session.
func NewGame(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{
		session:  opts.Session,
		sound:    opts.Sound,
		store:    opts.Store,
		logger:   opts.Logger,
		duration: inpututil.KeyPressDuration,
	}
}

func (g *Game) justPressed(k ebiten.Key) bool {
	return g.duration(k) == 1
}

// Update handles input and advances the simulation by one tick.
func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}

	// Esc closes the overlay before it quits
	if g.showOptions {
		if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyEnter) {
			g.showOptions = false
		}
		return nil
	}

	if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ) {
		return g.quit()
	}

	if g.justPressed(ebiten.KeyEnter) {
		switch platform.Activate(g.session.Sim) {
		case platform.OutcomeShowOptions:
			g.showOptions = true
			return nil
		case platform.OutcomeQuit:
			return g.quit()
		}
	}

	for _, k := range pressedKeys(g.duration) {
		g.session.Sim.KeyPressed(k)
	}

	if g.session.Sim.IsPlaying() {
		res := g.session.Sim.Update()
		if len(res.Events) > 0 {
			if g.sound != nil {
				g.sound.PlayEvents(res.Events)
			}
			for _, ev := range res.Events {
				g.logger.Debug("event", "kind", ev.Kind, "player", ev.Player, "wall", ev.Wall)
			}
		}
	}

	return nil
}

// quit saves the recording, if any, and ends the loop.
func (g *Game) quit() error {
	g.quitting = true
	if id, err := g.session.Save(g.store); err != nil {
		g.logger.Error("could not save recording", "error", err)
	} else if id != 0 {
		g.logger.Info("recording saved", "id", id)
	}
	return ebiten.Termination
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Sim.Frame()
	drawFrame(screen, f)
	if g.showOptions {
		drawOptions(screen, f, platform.OptionLines(g.session.Settings))
	}
}

// Layout keeps one arena unit per logical pixel; ebiten scales to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	f := g.session.Sim.Frame()
	return int(f.Width), int(f.Height)
}

// Run opens the window and blocks until the player quits.
func Run(opts Options) error {
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	gfx := opts.Session.Settings.Graphics
	ebiten.SetWindowSize(int(gfx.WindowSize[0]), int(gfx.WindowSize[1]))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gfx.Fullscreen)
	ebiten.SetVsyncEnabled(gfx.VSync)

	return ebiten.RunGame(NewGame(opts))
}
