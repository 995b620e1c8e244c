// Package storage provides SQLite-based persistence for game recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/replay"
)

// ErrNotFound is returned when a recording ID does not exist.
var ErrNotFound = errors.New("storage: recording not found")

// Store manages the SQLite database connection for recordings.
type Store struct {
	db *sql.DB
}

// RecordingEntry is one stored session without its input log.
type RecordingEntry struct {
	ID        int64
	Frontend  string // "tui", "window" or "ssh"
	Seed      int64
	Ticks     uint64
	Rounds    int
	Score1    int
	Score2    int
	Inputs    int
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recordings.
type Stats struct {
	Sessions   int
	TotalTicks int64
	BestRally  int // Highest combined score in one session
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			frontend TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			rounds INTEGER NOT NULL DEFAULT 0,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			inputs INTEGER NOT NULL DEFAULT 0,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRecording stores a session and its outcome.
// Returns the ID of the inserted record.
func (s *Store) SaveRecording(frontend string, rec replay.Recording, sum replay.Summary) (int64, error) {
	data, err := rec.Marshal()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode recording: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO recordings (frontend, seed, ticks, rounds, score1, score2, inputs, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		frontend, rec.Seed, int64(rec.Ticks), sum.Rounds, sum.Score1, sum.Score2, len(rec.Inputs), data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LoadRecording returns the full recording with the given ID.
func (s *Store) LoadRecording(id int64) (replay.Recording, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM recordings WHERE id = ?", id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return replay.Recording{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return replay.Recording{}, fmt.Errorf("storage: cannot query recording: %w", err)
	}

	rec, err := replay.Unmarshal(data)
	if err != nil {
		return replay.Recording{}, fmt.Errorf("storage: recording %d: %w", id, err)
	}
	return rec, nil
}

// Recordings lists the most recent recordings, newest first.
func (s *Store) Recordings(limit int) ([]RecordingEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, frontend, seed, ticks, rounds, score1, score2, inputs, created_at
		 FROM recordings
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var entries []RecordingEntry
	for rows.Next() {
		var e RecordingEntry
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Frontend, &e.Seed, &ticks, &e.Rounds, &e.Score1, &e.Score2, &e.Inputs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteRecording removes a recording.
func (s *Store) DeleteRecording(id int64) error {
	result, err := s.db.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// Stats aggregates all stored recordings.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(MAX(score1 + score2), 0), MAX(created_at)
		 FROM recordings`,
	).Scan(&st.Sessions, &st.TotalTicks, &st.BestRally, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
