// Package replay records the keys pressed during a session and plays them
// back against a fresh game. Games are deterministic for a given seed, so a
// recording reproduces the session exactly.
package replay

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Input is one key press. Tick is the number of Update calls made before it.
type Input struct {
	Tick uint64   `yaml:"tick"`
	Key  core.Key `yaml:"key"`
}

// Recording is everything needed to rebuild a session.
type Recording struct {
	Seed     int64           `yaml:"seed"`
	Settings config.Settings `yaml:"settings"`
	Ticks    uint64          `yaml:"ticks"` // Update calls made during the session
	Inputs   []Input         `yaml:"inputs"`
}

// Summary is the outcome of a session.
type Summary struct {
	Ticks  uint64 // Updates applied while playing
	Rounds int
	State  pong.State
	Score1 int
	Score2 int
}

// Summarize extracts the outcome from a frame.
func Summarize(f pong.Frame) Summary {
	s1, s2 := f.Scores()
	return Summary{
		Ticks:  f.Tick,
		Rounds: f.Round,
		State:  f.State,
		Score1: s1,
		Score2: s2,
	}
}

// String formats the summary for the CLI.
func (s Summary) String() string {
	return fmt.Sprintf("state=%s round=%d ticks=%d score=%d:%d", s.State, s.Rounds, s.Ticks, s.Score1, s.Score2)
}

// Marshal encodes a recording as YAML.
func (r Recording) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// Unmarshal decodes a YAML recording.
func Unmarshal(data []byte) (Recording, error) {
	var r Recording
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Recording{}, fmt.Errorf("replay: cannot decode recording: %w", err)
	}
	return r, nil
}

// Validate checks that inputs are ordered and fall inside the session.
func (r Recording) Validate() error {
	var last uint64
	for i, in := range r.Inputs {
		if in.Tick < last {
			return fmt.Errorf("replay: input %d at tick %d precedes tick %d", i, in.Tick, last)
		}
		if in.Tick > r.Ticks {
			return fmt.Errorf("replay: input %d at tick %d is after the last tick %d", i, in.Tick, r.Ticks)
		}
		last = in.Tick
	}
	return nil
}

// Play rebuilds the game from a recording and returns its final frame.
func Play(r Recording) (pong.Frame, error) {
	if err := r.Validate(); err != nil {
		return pong.Frame{}, err
	}
	if err := r.Settings.Validate(); err != nil {
		return pong.Frame{}, fmt.Errorf("replay: %w", err)
	}

	g, err := pong.New(r.Settings.PongOptions(r.Seed))
	if err != nil {
		return pong.Frame{}, fmt.Errorf("replay: %w", err)
	}

	next := 0
	for tick := uint64(0); ; tick++ {
		for next < len(r.Inputs) && r.Inputs[next].Tick == tick {
			g.KeyPressed(r.Inputs[next].Key)
			next++
		}
		if tick == r.Ticks {
			break
		}
		g.Update()
	}

	return g.Frame(), nil
}
