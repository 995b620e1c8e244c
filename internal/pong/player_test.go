package pong

import "testing"

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(250, 1)

	r := p.Rect()
	if r.X != 250 || r.Y != -30 || r.W != PlayerWidth || r.H != PlayerHeight {
		t.Errorf("rect = %+v, expected (250, -30, 5, 60)", r)
	}
	if p.Number() != 1 {
		t.Errorf("number = %d, expected 1", p.Number())
	}
	if p.Score() != 0 {
		t.Errorf("score = %d, expected 0", p.Score())
	}
}

func TestPlayerMovement(t *testing.T) {
	p := NewPlayer(-250, 2)

	p.MoveUp()
	if p.Rect().Y != -35 {
		t.Errorf("after MoveUp y = %v, expected -35", p.Rect().Y)
	}

	p.MoveDown()
	p.MoveDown()
	if p.Rect().Y != -25 {
		t.Errorf("after two MoveDown y = %v, expected -25", p.Rect().Y)
	}
	if p.Rect().X != -250 {
		t.Errorf("x changed to %v", p.Rect().X)
	}
}

func TestPlayerScoreAndReset(t *testing.T) {
	p := NewPlayer(250, 1)

	for i := 0; i < 3; i++ {
		p.MakePoint()
	}
	if p.Score() != 3 {
		t.Errorf("score = %d, expected 3", p.Score())
	}

	p.ResetScore()
	if p.Score() != 0 {
		t.Errorf("score after reset = %d, expected 0", p.Score())
	}

	for i := 0; i < 10; i++ {
		p.MoveDown()
	}
	p.ResetPosition()
	if p.Rect().X != 250 || p.Rect().Y != -30 {
		t.Errorf("position after reset = (%v, %v), expected (250, -30)", p.Rect().X, p.Rect().Y)
	}
}
