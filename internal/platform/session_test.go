package platform

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

func TestNewSessionSeed(t *testing.T) {
	s, err := NewSession("tui", config.DefaultSettings(), 0, false)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if s.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if s.Recording() {
		t.Error("session should not record")
	}

	s, err = NewSession("tui", config.DefaultSettings(), 5, true)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if s.Seed != 5 || !s.Recording() {
		t.Errorf("seed = %d recording = %v, expected 5 and true", s.Seed, s.Recording())
	}
}

func TestNewSessionInvalidArena(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Arena.Width = 10

	if _, err := NewSession("tui", settings, 1, false); err == nil {
		t.Error("expected error for tiny arena")
	}
}

func TestActivate(t *testing.T) {
	tests := []struct {
		name     string
		moves    []core.Key
		expected MenuOutcome
		playing  bool
	}{
		{"resume", nil, OutcomeResumed, true},
		{"options", []core.Key{core.KeyDown}, OutcomeShowOptions, false},
		{"quit", []core.Key{core.KeyUp}, OutcomeQuit, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSession("tui", config.DefaultSettings(), 1, false)
			if err != nil {
				t.Fatalf("NewSession failed: %v", err)
			}
			for _, k := range tc.moves {
				s.Sim.KeyPressed(k)
			}

			if got := Activate(s.Sim); got != tc.expected {
				t.Errorf("Activate() = %v, expected %v", got, tc.expected)
			}
			if s.Sim.IsPlaying() != tc.playing {
				t.Errorf("playing = %v, expected %v", s.Sim.IsPlaying(), tc.playing)
			}
		})
	}
}

func TestActivateWhilePlaying(t *testing.T) {
	s, err := NewSession("tui", config.DefaultSettings(), 1, false)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.Sim.KeyPressed(core.KeySpace)

	if got := Activate(s.Sim); got != OutcomeNone {
		t.Errorf("Activate() = %v, expected OutcomeNone", got)
	}
	if s.Sim.Frame().State != pong.Playing {
		t.Error("activation while playing must not change state")
	}
}

func TestSessionSave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rec.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	plain, err := NewSession("tui", config.DefaultSettings(), 3, false)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if id, err := plain.Save(store); err != nil || id != 0 {
		t.Errorf("Save() without recorder = %d, %v; expected 0, nil", id, err)
	}

	rec, err := NewSession("window", config.DefaultSettings(), 3, true)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	rec.Sim.KeyPressed(core.KeySpace)
	for i := 0; i < 30; i++ {
		rec.Sim.Update()
	}

	id, err := rec.Save(store)
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	loaded, err := store.LoadRecording(id)
	if err != nil {
		t.Fatalf("LoadRecording failed: %v", err)
	}
	if loaded.Seed != 3 || loaded.Ticks != 30 || len(loaded.Inputs) != 1 {
		t.Errorf("loaded = seed %d ticks %d inputs %d", loaded.Seed, loaded.Ticks, len(loaded.Inputs))
	}

	again, err := rec.Save(store)
	if err != nil || again != id {
		t.Errorf("second Save() = %d, %v; expected %d, nil", again, err, id)
	}
	entries, err := store.Recordings(10)
	if err != nil {
		t.Fatalf("Recordings failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("stored %d recordings, expected 1", len(entries))
	}
}
