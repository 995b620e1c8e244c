package pong

import (
	"fmt"
	"strings"
)

// State is the top-level game state. Exactly one holds at any time.
type State int

const (
	Playing State = iota
	Paused
	Lost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// LossPolicy decides what happens when the ball escapes past a paddle.
type LossPolicy string

const (
	// LossRestart starts a fresh round: ball, paddles and scores reset.
	LossRestart LossPolicy = "restart"
	// LossServe re-serves the ball and keeps both scores.
	LossServe LossPolicy = "serve"
	// LossStop ends the game in the Lost state.
	LossStop LossPolicy = "stop"
)

// ParseLossPolicy validates a policy name. Empty selects LossRestart.
func ParseLossPolicy(name string) (LossPolicy, error) {
	switch p := LossPolicy(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return LossRestart, nil
	case LossRestart, LossServe, LossStop:
		return p, nil
	default:
		return "", fmt.Errorf("pong: unknown loss policy %q (want restart, serve or stop)", name)
	}
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventPaddleHit  EventKind = iota // Ball reflected off a paddle; Player scored
	EventWallBounce                  // Ball reflected off a wall
	EventRoundLost                   // Ball escaped past Player's paddle
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "PaddleHit"
	case EventWallBounce:
		return "WallBounce"
	case EventRoundLost:
		return "RoundLost"
	default:
		return "Unknown"
	}
}

// Event is emitted by Update for frontends (sound, logging).
type Event struct {
	Kind   EventKind
	Player int // Player number for paddle and loss events
	Wall   int // Wall index for bounce events
}

// StepResult is returned by Game.Update after each simulation tick.
type StepResult struct {
	State  State
	Events []Event
}
