package replay

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Recorder wraps a game and logs every key it forwards.
// It has the same driving methods as the game, so frontends can use either.
type Recorder struct {
	game    *pong.Game
	rec     Recording
	updates uint64
}

// NewRecorder creates a game from settings and seed and starts recording it.
func NewRecorder(settings config.Settings, seed int64) (*Recorder, error) {
	g, err := pong.New(settings.PongOptions(seed))
	if err != nil {
		return nil, err
	}
	return &Recorder{
		game: g,
		rec: Recording{
			Seed:     seed,
			Settings: settings,
		},
	}, nil
}

// Update advances the game and counts the call.
func (r *Recorder) Update() pong.StepResult {
	r.updates++
	return r.game.Update()
}

// KeyPressed records the key and forwards it.
func (r *Recorder) KeyPressed(key core.Key) {
	r.rec.Inputs = append(r.rec.Inputs, Input{Tick: r.updates, Key: key})
	r.game.KeyPressed(key)
}

// Frame returns the game's current frame.
func (r *Recorder) Frame() pong.Frame { return r.game.Frame() }

// IsPlaying reports whether the game is running.
func (r *Recorder) IsPlaying() bool { return r.game.IsPlaying() }

// Game returns the wrapped game.
func (r *Recorder) Game() *pong.Game { return r.game }

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Ticks = r.updates
	rec.Inputs = append([]Input(nil), r.rec.Inputs...)
	return rec
}
