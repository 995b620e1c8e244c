package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle dimensions and movement.
const (
	PlayerWidth  = 5.0
	PlayerHeight = 60.0
	PlayerStep   = 5.0  // Vertical distance per key press
	PaddleInset  = 50.0 // Distance from the arena edge to a paddle's home x
)

// Player is a paddle with its own score counter.
// Player 1 defends the right side, player 2 the left.
type Player struct {
	number int
	homeX  float64
	rect   core.Rect
	color  core.Color
	score  int
}

// NewPlayer creates a paddle at homeX, vertically centred.
func NewPlayer(homeX float64, number int) Player {
	return Player{
		number: number,
		homeX:  homeX,
		rect:   core.NewRect(homeX, -PlayerHeight/2, PlayerWidth, PlayerHeight),
		color:  core.ColorWhite,
	}
}

// Number returns 1 or 2.
func (p Player) Number() int { return p.number }

// Rect returns the paddle's bounding box.
func (p Player) Rect() core.Rect { return p.rect }

// Color returns the paddle color.
func (p Player) Color() core.Color { return p.color }

// Score returns the points collected this round.
func (p Player) Score() int { return p.score }

// MoveUp moves the paddle one step towards -y. No bounds checking.
func (p *Player) MoveUp() {
	p.rect.Y -= PlayerStep
}

// MoveDown moves the paddle one step towards +y. No bounds checking.
func (p *Player) MoveDown() {
	p.rect.Y += PlayerStep
}

// MakePoint adds one point.
func (p *Player) MakePoint() {
	p.score++
}

// ResetScore sets the score back to zero.
func (p *Player) ResetScore() {
	p.score = 0
}

// ResetPosition returns the paddle to its home x and centres it vertically.
func (p *Player) ResetPosition() {
	p.rect.X = p.homeX
	p.rect.Y = -p.rect.H / 2
}
