package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball defaults
const (
	BallSize            = 10.0
	DefaultBallSpeed    = math.Sqrt2 // (1, 1) per tick at a 45° launch
	DefaultGrowthFactor = 1.15       // Speed multiplier applied on every bounce
	DefaultMaxSpeed     = 5.0        // Per-axis speed cap
	MaxLaunchAngle      = 60.0       // Degrees either side of horizontal
)

// Ball is the moving square. Its velocity is expressed in units per tick.
type Ball struct {
	rect     core.Rect
	vx, vy   float64
	angle    float64 // Launch angle in degrees
	color    core.Color
	growth   float64
	maxSpeed float64
}

// NewBall creates a ball at the origin moving (1, 1) per tick.
func NewBall() Ball {
	return Ball{
		rect:     core.NewRect(0, 0, BallSize, BallSize),
		vx:       1,
		vy:       1,
		angle:    45,
		color:    core.ColorWhite,
		growth:   DefaultGrowthFactor,
		maxSpeed: DefaultMaxSpeed,
	}
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect { return b.rect }

// Velocity returns the per-tick movement along each axis.
func (b Ball) Velocity() (float64, float64) { return b.vx, b.vy }

// SetVelocity sets both velocity components, clamped to the speed cap.
func (b *Ball) SetVelocity(vx, vy float64) {
	b.vx = b.clamp(vx)
	b.vy = b.clamp(vy)
}

// Angle returns the stored launch angle in degrees.
func (b Ball) Angle() float64 { return b.angle }

// Color returns the ball color.
func (b Ball) Color() core.Color { return b.color }

// SetPhysics overrides the bounce growth factor and speed cap.
func (b *Ball) SetPhysics(growth, maxSpeed float64) {
	b.growth = growth
	b.maxSpeed = maxSpeed
	b.vx = b.clamp(b.vx)
	b.vy = b.clamp(b.vy)
}

// ResetPosition centres the ball on the arena origin.
func (b *Ball) ResetPosition() {
	b.rect.X = -b.rect.W / 2
	b.rect.Y = -b.rect.H / 2
}

// RandomizeAngle draws a new launch angle uniformly from [-60°, 60°].
func (b *Ball) RandomizeAngle(rng *rand.Rand) float64 {
	b.angle = -MaxLaunchAngle + rng.Float64()*2*MaxLaunchAngle
	return b.angle
}

// Launch sets the velocity from the stored angle.
// direction is +1 to serve towards player 1 (right) and -1 towards player 2.
func (b *Ball) Launch(speed float64, direction float64) {
	rad := b.angle * math.Pi / 180
	b.vx = b.clamp(direction * speed * math.Cos(rad))
	b.vy = b.clamp(speed * math.Sin(rad))
}

// Aim points the current velocity along a new angle, keeping the speed and
// the horizontal direction of travel.
func (b *Ball) Aim(angle float64) {
	speed := math.Hypot(b.vx, b.vy)
	direction := 1.0
	if b.vx < 0 {
		direction = -1
	}
	b.angle = angle
	b.Launch(speed, direction)
}

// Move integrates the position by one tick.
func (b *Ball) Move() {
	b.rect.X += b.vx
	b.rect.Y += b.vy
}

// CheckCollision tests whether the ball's leading edge enters the given
// rectangle during the pending step and reflects the velocity if so.
// Horizontal contacts are checked first; only the first match is resolved.
// The position is never changed here.
func (b *Ball) CheckCollision(x1, x2, y1, y2 float64) bool {
	bx1, bx2 := b.rect.X, b.rect.Right()
	by1, by2 := b.rect.Y, b.rect.Bottom()

	overlapY := by1 < y2 && by2 > y1
	overlapX := bx1 < x2 && bx2 > x1

	// Moving left into the obstacle's right face
	touchRight := b.vx < 0 && overlapY && bx1 >= x2 && bx1+b.vx < x2
	// Moving right into the obstacle's left face
	touchLeft := b.vx > 0 && overlapY && bx2 <= x1 && bx2+b.vx > x1

	if touchRight || touchLeft {
		b.vx = b.bounce(b.vx)
		return true
	}

	// Moving up into the obstacle's bottom face
	touchDown := b.vy < 0 && overlapX && by1 >= y2 && by1+b.vy < y2
	// Moving down into the obstacle's top face
	touchUp := b.vy > 0 && overlapX && by2 <= y1 && by2+b.vy > y1

	if touchDown || touchUp {
		b.vy = b.bounce(b.vy)
		return true
	}

	return false
}

// CheckRect is CheckCollision for a rectangle.
func (b *Ball) CheckRect(r core.Rect) bool {
	return b.CheckCollision(r.X, r.Right(), r.Y, r.Bottom())
}

// bounce reverses a velocity component and speeds it up, up to the cap.
func (b *Ball) bounce(v float64) float64 {
	return b.clamp(-v * b.growth)
}

// clamp limits a velocity component to [-maxSpeed, maxSpeed].
func (b *Ball) clamp(v float64) float64 {
	return core.ClampF(v, -b.maxSpeed, b.maxSpeed)
}
