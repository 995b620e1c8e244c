// Package pong implements the two-paddle ball game: the arena, paddles, ball,
// pause menu and the state machine that advances them one tick at a time.
//
// The package draws nothing and reads no input devices. A frontend calls
// Update once per tick while the game is playing, KeyPressed for every
// key-down event, and Frame to learn what to draw.
package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Options configures a game. Zero size, speed, growth and policy fields take
// the defaults. A zero Margin and a zero Seed are used as given.
type Options struct {
	Width        float64 // Arena width
	Height       float64 // Arena height
	Margin       float64 // Wall inset from the arena edge
	BallSpeed    float64 // Launch speed along the launch angle
	GrowthFactor float64 // Speed multiplier per bounce
	MaxSpeed     float64 // Per-axis speed cap
	LossPolicy   LossPolicy
	Seed         int64 // RNG seed for launch angles and serve direction
}

// DefaultOptions returns the settings of the classic 600x400 arena.
func DefaultOptions() Options {
	return Options{
		Width:        600,
		Height:       400,
		Margin:       15,
		BallSpeed:    DefaultBallSpeed,
		GrowthFactor: DefaultGrowthFactor,
		MaxSpeed:     DefaultMaxSpeed,
		LossPolicy:   LossRestart,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.BallSpeed == 0 {
		o.BallSpeed = d.BallSpeed
	}
	if o.GrowthFactor == 0 {
		o.GrowthFactor = d.GrowthFactor
	}
	if o.MaxSpeed == 0 {
		o.MaxSpeed = d.MaxSpeed
	}
	if o.LossPolicy == "" {
		o.LossPolicy = d.LossPolicy
	}
	return o
}

// Game owns the field, both players, the ball and the menu, and is the only
// thing that mutates them.
type Game struct {
	field   *Field
	players [2]Player // 0 = player 1 (right), 1 = player 2 (left)
	ball    Ball
	menu    Menu
	state   State

	opts  Options
	rng   *rand.Rand
	tick  uint64 // Updates applied while playing
	round int    // Rounds started since construction
}

// New creates a game in the Paused state with the menu shown.
// It fails if the arena cannot hold the paddles and ball.
func New(opts Options) (*Game, error) {
	opts = opts.withDefaults()
	policy, err := ParseLossPolicy(string(opts.LossPolicy))
	if err != nil {
		return nil, err
	}
	opts.LossPolicy = policy

	field, err := NewField(opts.Width, opts.Height, opts.Margin)
	if err != nil {
		return nil, err
	}

	g := &Game{
		field: field,
		players: [2]Player{
			NewPlayer(field.PaddleHomeX(1), 1),
			NewPlayer(field.PaddleHomeX(2), 2),
		},
		ball: NewBall(),
		menu: NewMenu(),
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	g.ball.SetPhysics(opts.GrowthFactor, opts.MaxSpeed)

	g.Init()
	g.state = Paused
	return g, nil
}

// Init starts a fresh round: the ball is re-served from the centre, both
// paddles return home with zero score, and the game is playing.
func (g *Game) Init() {
	g.serve()
	for i := range g.players {
		g.players[i].ResetPosition()
		g.players[i].ResetScore()
	}
	g.state = Playing
}

// serve centres the ball and launches it at a new random angle towards a
// random side.
func (g *Game) serve() {
	g.round++
	g.ball.ResetPosition()
	g.ball.RandomizeAngle(g.rng)

	direction := 1.0
	if g.rng.Intn(2) == 0 {
		direction = -1
	}
	g.ball.Launch(g.opts.BallSpeed, direction)
}

// Start resumes play from any state and re-rolls the ball's angle.
// Starting from Lost begins a new round first.
func (g *Game) Start() {
	if g.state == Lost {
		g.Init()
	}
	g.ball.Aim(g.ball.RandomizeAngle(g.rng))
	g.state = Playing
}

// Pause stops the simulation. No-op unless playing.
func (g *Game) Pause() {
	if g.state == Playing {
		g.state = Paused
	}
}

// Lose ends the current round according to the loss policy.
func (g *Game) Lose() {
	switch g.opts.LossPolicy {
	case LossServe:
		g.serve()
	case LossStop:
		g.state = Lost
	default:
		g.Init()
	}
}

// IsPlaying reports whether the simulation is running.
func (g *Game) IsPlaying() bool {
	return g.state == Playing
}

// Update advances the simulation by one tick. It does nothing unless the
// game is playing.
//
// Paddles are checked before walls, walls in construction order, and the
// ball moves only after every collision has been resolved.
func (g *Game) Update() StepResult {
	if g.state != Playing {
		return StepResult{State: g.state}
	}

	g.tick++
	var events []Event

	for i := range g.players {
		p := &g.players[i]
		if g.ball.CheckRect(p.Rect()) {
			p.MakePoint()
			events = append(events, Event{Kind: EventPaddleHit, Player: p.Number()})
		}
	}

	for i, w := range g.field.Walls() {
		if g.ball.CheckRect(w.Rect()) {
			events = append(events, Event{Kind: EventWallBounce, Wall: i})
		}
	}

	if side := g.escapedPast(); side != 0 {
		events = append(events, Event{Kind: EventRoundLost, Player: side})
		g.Lose()
	}

	g.ball.Move()

	return StepResult{State: g.state, Events: events}
}

// escapedPast returns the number of the player the ball got past, or 0.
func (g *Game) escapedPast() int {
	ball := g.ball.Rect()
	right := g.players[0].Rect()
	left := g.players[1].Rect()

	if ball.X > right.Right() {
		return 1
	}
	if ball.Right() < left.X {
		return 2
	}
	return 0
}

// KeyPressed handles one key-down event. Routing depends on the state:
// paddles move while playing, the menu cursor moves otherwise.
func (g *Game) KeyPressed(key core.Key) {
	limit := g.field.PaddleLimit()

	switch key {
	case core.KeyUp:
		if g.IsPlaying() {
			g.moveUp(&g.players[0], limit)
		} else {
			g.menu.Previous()
		}
	case core.KeyDown:
		if g.IsPlaying() {
			g.moveDown(&g.players[0], limit)
		} else {
			g.menu.Next()
		}
	case core.KeyW:
		if g.IsPlaying() {
			g.moveUp(&g.players[1], limit)
		}
	case core.KeyS:
		if g.IsPlaying() {
			g.moveDown(&g.players[1], limit)
		}
	case core.KeySpace:
		if g.IsPlaying() {
			g.Pause()
		} else {
			g.Start()
		}
	case core.KeyR:
		g.Init()
	case core.KeyK:
		g.ball.Aim(g.ball.RandomizeAngle(g.rng))
	}
}

// moveUp moves a paddle up unless the step would leave the band.
func (g *Game) moveUp(p *Player, limit float64) {
	if p.Rect().Y-PlayerStep >= -limit {
		p.MoveUp()
	}
}

// moveDown moves a paddle down unless the step would leave the band.
func (g *Game) moveDown(p *Player, limit float64) {
	if p.Rect().Y+PlayerStep <= limit {
		p.MoveDown()
	}
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Field returns the arena.
func (g *Game) Field() *Field { return g.field }

// Players returns copies of both paddles, player 1 first.
func (g *Game) Players() [2]Player { return g.players }

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball { return g.ball }

// Menu returns a copy of the menu.
func (g *Game) Menu() Menu { return g.menu }

// Options returns the options the game was created with, defaults applied.
func (g *Game) Options() Options { return g.opts }

// Tick returns the number of updates applied while playing.
func (g *Game) Tick() uint64 { return g.tick }

// Round returns the number of rounds served so far.
func (g *Game) Round() int { return g.round }
