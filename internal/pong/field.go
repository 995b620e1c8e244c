package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Wall orientation tags. Purely descriptive: collisions use the AABB.
const (
	RotationHorizontal = 0.0
	RotationVertical   = 90.0
)

// WallThickness is the short side of every boundary wall.
const WallThickness = 5.0

// Wall indices in construction order.
const (
	WallTop = iota
	WallRight
	WallBottom
	WallLeft
)

// Wall is a static boundary rectangle. It never changes after construction.
type Wall struct {
	rect     core.Rect
	rotation float64
	color    core.Color
}

// NewWall creates a wall at the given position and size.
func NewWall(color core.Color, width, height, x, y, rotation float64) Wall {
	return Wall{
		rect:     core.NewRect(x, y, width, height),
		rotation: rotation,
		color:    color,
	}
}

// Rect returns the wall's bounding box.
func (w Wall) Rect() core.Rect { return w.rect }

// Rotation returns 0 for horizontal walls and 90 for vertical ones.
func (w Wall) Rotation() float64 { return w.rotation }

// Color returns the wall color.
func (w Wall) Color() core.Color { return w.color }

// Field is the arena: four walls inset from the window edges by a margin.
type Field struct {
	width      float64
	height     float64
	margin     float64
	walls      [4]Wall
	background core.Color
}

// Minimum playable arena, large enough for both paddles, the ball and the
// paddle band inside the walls.
const (
	MinArenaWidth  = 200.0
	MinArenaHeight = 120.0
)

// NewField builds the arena for a window of the given size.
// Walls are created in the order top, right, bottom, left.
func NewField(width, height, margin float64) (*Field, error) {
	if width < MinArenaWidth || height < MinArenaHeight {
		return nil, fmt.Errorf("pong: arena %gx%g is smaller than %gx%g", width, height, MinArenaWidth, MinArenaHeight)
	}
	if margin < 0 {
		return nil, fmt.Errorf("pong: negative arena margin %g", margin)
	}

	// The ball must fit between a side wall and the back of a paddle, or it
	// bounces off the wall before it can get past.
	if margin+BallSize >= PaddleInset-PlayerWidth {
		return nil, fmt.Errorf("pong: margin %g leaves no room behind the paddles", margin)
	}
	if height-2*margin-2*WallThickness < PlayerHeight+BallSize {
		return nil, fmt.Errorf("pong: margin %g leaves no room between the walls", margin)
	}

	return &Field{
		width:      width,
		height:     height,
		margin:     margin,
		walls:      createWalls(width, height, margin),
		background: core.ColorBlack,
	}, nil
}

// createWalls lays out the four boundary walls around the centre.
func createWalls(width, height, margin float64) [4]Wall {
	halfW, halfH := width/2, height/2
	innerW := width - margin*2
	innerH := height - margin*2

	return [4]Wall{
		NewWall(core.ColorWhite, innerW, WallThickness, -halfW+margin, -halfH+margin, RotationHorizontal),
		NewWall(core.ColorWhite, WallThickness, innerH, halfW-margin, -halfH+margin, RotationVertical),
		NewWall(core.ColorWhite, innerW, WallThickness, -halfW+margin, halfH-margin-WallThickness, RotationHorizontal),
		NewWall(core.ColorWhite, WallThickness, innerH, -halfW+margin, -halfH+margin, RotationVertical),
	}
}

// Walls returns the four walls in construction order.
func (f *Field) Walls() [4]Wall { return f.walls }

// Background returns the arena background color.
func (f *Field) Background() core.Color { return f.background }

// Width returns the arena width.
func (f *Field) Width() float64 { return f.width }

// Height returns the arena height.
func (f *Field) Height() float64 { return f.height }

// Margin returns the wall inset.
func (f *Field) Margin() float64 { return f.margin }

// PaddleLimit is the largest |y| a paddle may be moved to.
// 175 for the default 400-unit arena.
func (f *Field) PaddleLimit() float64 {
	return f.height/2 - 25
}

// PaddleHomeX returns the home x-position for a player number.
// +250 for player 1 and -250 for player 2 in the default 600-unit arena.
func (f *Field) PaddleHomeX(number int) float64 {
	x := f.width/2 - PaddleInset
	if number == 2 {
		return -x
	}
	return x
}

// Separator returns the thin centre line drawn between the halves.
func (f *Field) Separator() core.Rect {
	return core.NewRect(-1, -f.height/2+f.margin, 2, f.height-f.margin*2)
}
