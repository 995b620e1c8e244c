package core

import (
	"fmt"
	"strings"
)

// Key is a logical key identifier, abstracted from physical key events.
// Frontends translate their own key events into these values; the game
// ignores anything else.
type Key int

const (
	KeyNone  Key = iota
	KeyUp        // Up arrow - player 1 up / menu up
	KeyDown      // Down arrow - player 1 down / menu down
	KeyW         // W - player 2 up
	KeyS         // S - player 2 down
	KeySpace     // Space - pause / resume
	KeyR         // R - restart round
	KeyK         // K - re-roll ball angle
)

// Keys lists every logical key the game reacts to.
var Keys = []Key{KeyUp, KeyDown, KeyW, KeyS, KeySpace, KeyR, KeyK}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeySpace:
		return "Space"
	case KeyR:
		return "R"
	case KeyK:
		return "K"
	default:
		return "Unknown"
	}
}

// ParseKey converts a name produced by Key.String back into a Key.
// Matching is case-insensitive.
func ParseKey(name string) (Key, error) {
	for _, k := range Keys {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("core: unknown key %q", name)
}

// MarshalText encodes the key by name so recordings stay readable.
func (k Key) MarshalText() ([]byte, error) {
	if k == KeyNone || k.String() == "Unknown" {
		return nil, fmt.Errorf("core: cannot encode key %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a key name.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
