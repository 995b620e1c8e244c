package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Frame is everything a renderer needs to draw one tick.
// It is a copy; changing it does not affect the game.
type Frame struct {
	Tick  uint64
	Round int
	State State

	Width      float64
	Height     float64
	Background core.Color
	Separator  core.Rect
	Walls      [4]Wall
	Players    [2]Player
	Ball       Ball
	Menu       Menu
}

// Frame captures the current game for rendering.
func (g *Game) Frame() Frame {
	return Frame{
		Tick:       g.tick,
		Round:      g.round,
		State:      g.state,
		Width:      g.field.Width(),
		Height:     g.field.Height(),
		Background: g.field.Background(),
		Separator:  g.field.Separator(),
		Walls:      g.field.Walls(),
		Players:    g.players,
		Ball:       g.ball,
		Menu:       g.menu,
	}
}

// Scores returns player 1 and player 2 scores.
func (f Frame) Scores() (int, int) {
	return f.Players[0].score, f.Players[1].score
}

// MenuVisible reports whether a renderer should draw the menu.
func (f Frame) MenuVisible() bool {
	return f.State != Playing
}
