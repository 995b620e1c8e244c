package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

func TestRepeatDue(t *testing.T) {
	tests := []struct {
		name     string
		d        int
		repeat   bool
		expected bool
	}{
		{"not held", 0, true, false},
		{"first tick", 1, false, true},
		{"held without repeat", 30, false, false},
		{"before delay", repeatDelay - 1, true, false},
		{"at delay", repeatDelay, true, true},
		{"between repeats", repeatDelay + 1, true, false},
		{"next repeat", repeatDelay + repeatInterval, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := repeatDue(tc.d, tc.repeat); got != tc.expected {
				t.Errorf("repeatDue(%d, %v) = %v, expected %v", tc.d, tc.repeat, got, tc.expected)
			}
		})
	}
}

// held returns a duration func with the given keys held for n ticks.
func held(n int, keys ...ebiten.Key) func(ebiten.Key) int {
	return func(k ebiten.Key) int {
		for _, h := range keys {
			if h == k {
				return n
			}
		}
		return 0
	}
}

func TestPressedKeys(t *testing.T) {
	got := pressedKeys(held(1, ebiten.KeyArrowUp, ebiten.KeyS, ebiten.KeySpace, ebiten.KeyEnter))
	expected := []core.Key{core.KeyUp, core.KeyS, core.KeySpace}
	if len(got) != len(expected) {
		t.Fatalf("pressedKeys = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("key %d = %v, expected %v", i, got[i], expected[i])
		}
	}

	// Held space does not toggle pause again
	if got := pressedKeys(held(repeatDelay, ebiten.KeySpace)); len(got) != 0 {
		t.Errorf("held space fired %v", got)
	}
}

func TestToScreen(t *testing.T) {
	x, y, w, h := toScreen(600, 400, core.NewRect(250, -30, 5, 60))
	if x != 550 || y != 170 || w != 5 || h != 60 {
		t.Errorf("toScreen = (%v, %v, %v, %v), expected (550, 170, 5, 60)", x, y, w, h)
	}
}

func TestMenuRectCentred(t *testing.T) {
	m := pong.NewMenu()

	mid := menuRect(m, 1)
	cx, cy := mid.Center()
	if cx != 0 || cy != 0 {
		t.Errorf("middle item centre = (%v, %v), expected (0, 0)", cx, cy)
	}

	first, last := menuRect(m, 0), menuRect(m, 2)
	if first.Y >= mid.Y || last.Y <= mid.Y {
		t.Error("items should keep their order top to bottom")
	}
	if first.W != pong.MenuItemWidth || first.X != -pong.MenuItemWidth/2 {
		t.Errorf("first item = %+v, expected centred width %v", first, pong.MenuItemWidth)
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s, err := platform.NewSession("window", config.DefaultSettings(), 9, false)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	g := NewGame(Options{Session: s})
	g.duration = held(0)
	return g
}

func TestGameUpdate(t *testing.T) {
	g := newTestGame(t)

	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if g.session.Sim.Frame().Tick != 0 {
		t.Error("paused game must not advance")
	}

	// Enter on Resume starts play and the same tick advances
	g.duration = held(1, ebiten.KeyEnter)
	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if !g.session.Sim.IsPlaying() || g.session.Sim.Frame().Tick != 1 {
		t.Errorf("playing = %v tick = %d, expected playing at tick 1",
			g.session.Sim.IsPlaying(), g.session.Sim.Frame().Tick)
	}

	g.duration = held(0)
	for range 4 {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() = %v", err)
		}
	}
	if got := g.session.Sim.Frame().Tick; got != 5 {
		t.Errorf("tick = %d, expected 5", got)
	}
}

func TestGameOptionsOverlay(t *testing.T) {
	g := newTestGame(t)
	g.session.Sim.KeyPressed(core.KeyDown)

	g.duration = held(1, ebiten.KeyEnter)
	if err := g.Update(); err != nil || !g.showOptions {
		t.Fatalf("Update() = %v, showOptions = %v; expected overlay", err, g.showOptions)
	}

	// Esc closes the overlay instead of quitting
	g.duration = held(1, ebiten.KeyEscape)
	if err := g.Update(); err != nil || g.showOptions {
		t.Errorf("Update() = %v, showOptions = %v; expected closed overlay", err, g.showOptions)
	}
}

func TestGameQuit(t *testing.T) {
	tests := []struct {
		name  string
		moves []core.Key
		key   ebiten.Key
	}{
		{"escape", nil, ebiten.KeyEscape},
		{"q", nil, ebiten.KeyQ},
		{"quit item", []core.Key{core.KeyUp}, ebiten.KeyEnter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			for _, k := range tc.moves {
				g.session.Sim.KeyPressed(k)
			}

			g.duration = held(1, tc.key)
			if err := g.Update(); !errors.Is(err, ebiten.Termination) {
				t.Errorf("Update() = %v, expected ebiten.Termination", err)
			}
			g.duration = held(0)
			if err := g.Update(); !errors.Is(err, ebiten.Termination) {
				t.Errorf("Update() after quit = %v, expected ebiten.Termination", err)
			}
		})
	}
}

func TestGameLayout(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 600 || h != 400 {
		t.Errorf("Layout() = %dx%d, expected 600x400", w, h)
	}
}
