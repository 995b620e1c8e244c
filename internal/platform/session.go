// Package platform holds what every frontend shares: the simulation it
// drives, optional recording, and menu activation.
package platform

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Simulation is driven by a frontend: Update once per tick, KeyPressed per
// key-down, Frame per drawn frame. *pong.Game and *replay.Recorder both
// satisfy it.
type Simulation interface {
	Update() pong.StepResult
	KeyPressed(key core.Key)
	Frame() pong.Frame
	IsPlaying() bool
}

var (
	_ Simulation = (*pong.Game)(nil)
	_ Simulation = (*replay.Recorder)(nil)
)

// Session is one game run by a frontend.
type Session struct {
	Sim      Simulation
	Settings config.Settings
	Seed     int64
	Frontend string // "tui", "window" or "ssh"

	recorder *replay.Recorder

	mu      sync.Mutex
	savedID int64 // Non-zero once stored
}

// NewSession builds a game from settings. A zero seed is replaced by the
// current time. With record set, every key is logged for later replay.
func NewSession(frontend string, settings config.Settings, seed int64, record bool) (*Session, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		Settings: settings,
		Seed:     seed,
		Frontend: frontend,
	}

	if record {
		rec, err := replay.NewRecorder(settings, seed)
		if err != nil {
			return nil, err
		}
		s.recorder = rec
		s.Sim = rec
		return s, nil
	}

	g, err := pong.New(settings.PongOptions(seed))
	if err != nil {
		return nil, err
	}
	s.Sim = g
	return s, nil
}

// Recording reports whether keys are being logged.
func (s *Session) Recording() bool {
	return s.recorder != nil
}

// Save stores the recording and its outcome. Returns 0 without a recorder
// or a store. A session is stored at most once; later calls return the
// first id.
func (s *Session) Save(store *storage.Store) (int64, error) {
	if s.recorder == nil || store == nil {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.savedID != 0 {
		return s.savedID, nil
	}

	rec := s.recorder.Recording()
	id, err := store.SaveRecording(s.Frontend, rec, replay.Summarize(s.Sim.Frame()))
	if err != nil {
		return 0, err
	}
	s.savedID = id
	return id, nil
}

// MenuOutcome is what a frontend must do after a menu item is activated.
type MenuOutcome int

const (
	OutcomeNone MenuOutcome = iota
	OutcomeResumed
	OutcomeShowOptions
	OutcomeQuit
)

// Activate runs the highlighted menu item. No-op while playing.
func Activate(sim Simulation) MenuOutcome {
	if sim.IsPlaying() {
		return OutcomeNone
	}

	menu := sim.Frame().Menu
	switch menu.Selected().Action {
	case pong.MenuResume:
		sim.KeyPressed(core.KeySpace)
		return OutcomeResumed
	case pong.MenuOptions:
		return OutcomeShowOptions
	case pong.MenuQuit:
		return OutcomeQuit
	default:
		return OutcomeNone
	}
}
