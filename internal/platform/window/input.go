package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Key repeat for held paddle keys, in ticks.
const (
	repeatDelay    = 15
	repeatInterval = 2
)

// binding maps a physical key to a game key.
type binding struct {
	key    ebiten.Key
	game   core.Key
	repeat bool // Held key fires again after repeatDelay
}

var bindings = []binding{
	{ebiten.KeyArrowUp, core.KeyUp, true},
	{ebiten.KeyArrowDown, core.KeyDown, true},
	{ebiten.KeyW, core.KeyW, true},
	{ebiten.KeyS, core.KeyS, true},
	{ebiten.KeySpace, core.KeySpace, false},
	{ebiten.KeyR, core.KeyR, false},
	{ebiten.KeyK, core.KeyK, false},
}

// repeatDue reports whether a key held for d ticks fires this tick.
// d is 1 on the tick the key goes down.
func repeatDue(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	if !repeat || d < repeatDelay {
		return false
	}
	return (d-repeatDelay)%repeatInterval == 0
}

// pressedKeys returns the game keys that fire this tick, given how long each
// physical key has been held (inpututil.KeyPressDuration).
func pressedKeys(duration func(ebiten.Key) int) []core.Key {
	var keys []core.Key
	for _, b := range bindings {
		if repeatDue(duration(b.key), b.repeat) {
			keys = append(keys, b.game)
		}
	}
	return keys
}
