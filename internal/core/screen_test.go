package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"regular", 20, 5, 20, 5},
		{"empty", 0, 0, 0, 0},
		{"negative", -3, 4, 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			if s.Width() != tc.wantW || s.Height() != tc.wantH {
				t.Errorf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.wantW, tc.wantH)
			}
			if strings.TrimSpace(s.String()) != "" {
				t.Error("new screen should be blank")
			}
		})
	}
}

func TestScreenSetColoredClips(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 2, 'x', ColorHighlight)

	// Outside the grid: dropped without panicking
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], '!', ColorGray)
	}

	if got := s.GetCell(1, 2); got.Rune != 'x' || got.Color != ColorHighlight {
		t.Errorf("cell = %+v, expected highlighted x", got)
	}
	if strings.Contains(s.String(), "!") {
		t.Error("out-of-bounds writes must be dropped")
	}
	if got := s.GetCell(9, 9); got != blankCell {
		t.Errorf("outside cell = %+v, expected blank", got)
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(7, 0, "score", ColorWhite)
	s.DrawTextCentered(1, "§ok", ColorGray)

	if got := s.Row(0); got != "       sco" {
		t.Errorf("row 0 = %q, text should clip at the right edge", got)
	}
	if got := s.Row(1); got != "   §ok    " {
		t.Errorf("row 1 = %q, expected rune-aware centring", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.FillRect(-2, 1, 2, 9, '#', ColorWhite) // Clipped to [0,2) × [1,4)

	expected := []string{
		"     ",
		"##   ",
		"##   ",
		"##   ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(1, 0, 4, 3, ColorGray)
	s.DrawBox(0, 0, 1, 1, ColorGray) // Too small, ignored

	expected := []string{
		" ┌──┐ ",
		" │  │ ",
		" └──┘ ",
		"      ",
	}
	if got := s.String(); got != strings.Join(expected, "\n") {
		t.Errorf("box =\n%s\nexpected\n%s", got, strings.Join(expected, "\n"))
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(3, 3)
	s.FillRect(0, 0, 3, 3, '#', ColorWhite)

	s.Resize(2, 4)
	if s.Width() != 2 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 2x4", s.Width(), s.Height())
	}
	if strings.Contains(s.String(), "#") {
		t.Error("resize should clear the screen")
	}
	if got := s.Row(-1); got != "  " {
		t.Errorf("Row(-1) = %q, expected blank row", got)
	}
}
