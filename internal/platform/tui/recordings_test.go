package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rec.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveSession(t *testing.T, store *storage.Store, seed int64, ticks int) int64 {
	t.Helper()
	r, err := replay.NewRecorder(config.DefaultSettings(), seed)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	r.KeyPressed(core.KeySpace)
	for range ticks {
		r.Update()
	}
	id, err := store.SaveRecording("tui", r.Recording(), replay.Summarize(r.Frame()))
	if err != nil {
		t.Fatalf("SaveRecording failed: %v", err)
	}
	return id
}

func updateRecordings(t *testing.T, m RecordingsModel, msgs ...tea.Msg) RecordingsModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(RecordingsModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestRecordingRows(t *testing.T) {
	rows := RecordingRows([]storage.RecordingEntry{
		{ID: 4, Frontend: "ssh", Score1: 3, Score2: 1, Rounds: 2, Ticks: 900},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	expected := []string{"4", "ssh", "1 - 3", "2", "900"}
	for i, want := range expected {
		if rows[0][i] != want {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], want)
		}
	}
}

func TestRecordingsEmpty(t *testing.T) {
	m := NewRecordingsModel(newTestStore(t), 80, 24)
	if !strings.Contains(m.View(), "No recordings yet") {
		t.Error("empty store should show a placeholder")
	}

	// Actions on an empty list are no-ops
	m = updateRecordings(t, m, enterKey, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if m.Status() != "" {
		t.Errorf("status = %q, expected empty", m.Status())
	}
}

func TestRecordingsReplay(t *testing.T) {
	store := newTestStore(t)
	id := saveSession(t, store, 11, 40)

	m := updateRecordings(t, NewRecordingsModel(store, 80, 24), enterKey)

	if !strings.HasPrefix(m.Status(), "#") || !strings.Contains(m.Status(), "ticks=40") {
		t.Errorf("status = %q, expected a summary of recording %d", m.Status(), id)
	}
}

func TestRecordingsDelete(t *testing.T) {
	store := newTestStore(t)
	saveSession(t, store, 1, 5)
	saveSession(t, store, 2, 5)

	m := NewRecordingsModel(store, 80, 24)
	m = updateRecordings(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})

	if !strings.HasPrefix(m.Status(), "deleted") {
		t.Errorf("status = %q", m.Status())
	}
	entries, err := store.Recordings(10)
	if err != nil {
		t.Fatalf("Recordings failed: %v", err)
	}
	if len(entries) != 1 || len(m.entries) != 1 {
		t.Errorf("expected 1 recording left, store has %d, view has %d", len(entries), len(m.entries))
	}
}

func TestRecordingsQuit(t *testing.T) {
	m := NewRecordingsModel(newTestStore(t), 80, 24)
	next, cmd := m.Update(escKey)

	if !isQuit(cmd) {
		t.Error("esc should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
