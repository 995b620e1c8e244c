package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/replay"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecording(seed int64, ticks uint64) replay.Recording {
	return replay.Recording{
		Seed:     seed,
		Settings: config.DefaultSettings(),
		Ticks:    ticks,
		Inputs: []replay.Input{
			{Tick: 0, Key: core.KeySpace},
			{Tick: ticks / 2, Key: core.KeyUp},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadRecording(t *testing.T) {
	store := openTestStore(t)

	rec := testRecording(42, 120)
	id, err := store.SaveRecording("tui", rec, replay.Summary{Rounds: 2, Score1: 3, Score2: 1})
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}

	loaded, err := store.LoadRecording(id)
	if err != nil {
		t.Fatalf("LoadRecording() failed: %v", err)
	}

	if loaded.Seed != 42 || loaded.Ticks != 120 {
		t.Errorf("loaded seed=%d ticks=%d, expected 42 and 120", loaded.Seed, loaded.Ticks)
	}
	if loaded.Settings != rec.Settings {
		t.Errorf("settings differ:\n%+v\n%+v", loaded.Settings, rec.Settings)
	}
	if len(loaded.Inputs) != 2 || loaded.Inputs[1] != rec.Inputs[1] {
		t.Errorf("inputs = %+v, expected %+v", loaded.Inputs, rec.Inputs)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadRecording(99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadRecording(99) error = %v, expected ErrNotFound", err)
	}
}

func TestStoreRecordingsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRecording("window", testRecording(int64(i), 10), replay.Summary{Score1: i}); err != nil {
			t.Fatalf("SaveRecording() failed: %v", err)
		}
	}

	entries, err := store.Recordings(3)
	if err != nil {
		t.Fatalf("Recordings() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries with limit, got %d", len(entries))
	}
	if entries[0].Seed != 4 || entries[1].Seed != 3 || entries[2].Seed != 2 {
		t.Errorf("Entries not newest first: %+v", entries)
	}
	if entries[0].Frontend != "window" || entries[0].Inputs != 2 || entries[0].Score1 != 4 {
		t.Errorf("Unexpected entry: %+v", entries[0])
	}
}

func TestStoreDeleteRecording(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRecording("ssh", testRecording(1, 10), replay.Summary{})
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}

	if err := store.DeleteRecording(id); err != nil {
		t.Fatalf("DeleteRecording() failed: %v", err)
	}
	if _, err := store.LoadRecording(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("recording still present after delete: %v", err)
	}
	if err := store.DeleteRecording(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, expected ErrNotFound", err)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// No recordings yet
	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Sessions != 0 || st.BestRally != 0 || !st.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", st)
	}

	store.SaveRecording("tui", testRecording(1, 100), replay.Summary{Score1: 2, Score2: 3})
	store.SaveRecording("tui", testRecording(2, 50), replay.Summary{Score1: 1})

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Sessions != 2 || st.TotalTicks != 150 || st.BestRally != 5 {
		t.Errorf("stats = %+v, expected 2 sessions, 150 ticks, best rally 5", st)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
