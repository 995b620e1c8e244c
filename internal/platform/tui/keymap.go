package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Reaim   key.Binding
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Down, k.P2Up, k.P2Down, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down, k.P2Up, k.P2Down},
		{k.Pause, k.Restart, k.Reaim},
		{k.Select, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "p1 up"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "p1 down"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "p2 up"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "p2 down"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Reaim: key.NewBinding(
			key.WithKeys("k", "K"),
			key.WithHelp("k", "new angle"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// GameKey translates a key message into the game's logical key.
// Returns false for keys the game does not handle.
func (k KeyMap) GameKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.P1Up):
		return core.KeyUp, true
	case key.Matches(msg, k.P1Down):
		return core.KeyDown, true
	case key.Matches(msg, k.P2Up):
		return core.KeyW, true
	case key.Matches(msg, k.P2Down):
		return core.KeyS, true
	case key.Matches(msg, k.Pause):
		return core.KeySpace, true
	case key.Matches(msg, k.Restart):
		return core.KeyR, true
	case key.Matches(msg, k.Reaim):
		return core.KeyK, true
	}
	return core.KeyNone, false
}
