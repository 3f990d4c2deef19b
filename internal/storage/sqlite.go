// Package storage provides SQLite-based persistence for session recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/replay"
)

// ErrRecordingNotFound is returned when no recording has the requested ID.
var ErrRecordingNotFound = errors.New("storage: recording not found")

// Store manages the SQLite database connection for recordings.
type Store struct {
	db *sql.DB
}

// RecordingInfo is the summary row listed for a recording.
type RecordingInfo struct {
	ID          int64
	Seed        int64
	Ticks       int
	FinalHash   uint64
	BricksAlive int
	CreatedAt   time.Time
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

	// Create parent directories
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
			seed INTEGER NOT NULL,
			launch TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			final_hash TEXT NOT NULL,
			bricks_alive INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS recording_frames (
			recording_id INTEGER NOT NULL,
			idx INTEGER NOT NULL,
			delta_ms INTEGER NOT NULL,
			PRIMARY KEY (recording_id, idx)
		);

		CREATE TABLE IF NOT EXISTS recording_events (
			recording_id INTEGER NOT NULL,
			frame_idx INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			kind INTEGER NOT NULL,
			key INTEGER NOT NULL,
			PRIMARY KEY (recording_id, frame_idx, seq)
		);
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

// SaveRecording stores rec with all its frames in one transaction.
// Returns the ID of the inserted recording.
func (s *Store) SaveRecording(rec replay.Recording) (id int64, err error) {
	launch, err := yaml.Marshal(rec.Launch)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode launch set: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.Exec(
		`INSERT INTO recordings (seed, launch, ticks, final_hash, bricks_alive)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Seed, string(launch), len(rec.Frames), formatHash(rec.FinalHash), rec.BricksAlive,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	frameStmt, err := tx.Prepare("INSERT INTO recording_frames (recording_id, idx, delta_ms) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer frameStmt.Close()

	eventStmt, err := tx.Prepare(
		"INSERT INTO recording_events (recording_id, frame_idx, seq, kind, key) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer eventStmt.Close()

	for i, f := range rec.Frames {
		if _, err = frameStmt.Exec(id, i, f.DeltaMillis); err != nil {
			return 0, fmt.Errorf("storage: cannot save frame %d: %w", i, err)
		}
		for j, e := range f.Events {
			if _, err = eventStmt.Exec(id, i, j, int(e.Kind), int(e.Key)); err != nil {
				return 0, fmt.Errorf("storage: cannot save event %d/%d: %w", i, j, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit recording: %w", err)
	}
	return id, nil
}

// Recording loads a full recording by ID.
func (s *Store) Recording(id int64) (replay.Recording, error) {
	rec := replay.Recording{ID: id}
	var launch, hash string
	var ticks int
	var createdAt any

	err := s.db.QueryRow(
		`SELECT seed, launch, ticks, final_hash, bricks_alive, created_at
		 FROM recordings
		 WHERE id = ?`,
		id,
	).Scan(&rec.Seed, &launch, &ticks, &hash, &rec.BricksAlive, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf("%w: id %d", ErrRecordingNotFound, id)
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query recording: %w", err)
	}

	var set breakout.LaunchSet
	if err := yaml.Unmarshal([]byte(launch), &set); err != nil {
		return rec, fmt.Errorf("storage: cannot decode launch set: %w", err)
	}
	rec.Launch = set

	if rec.FinalHash, err = parseHash(hash); err != nil {
		return rec, err
	}
	rec.CreatedAt = parseTime(createdAt)

	rec.Frames = make([]replay.Frame, ticks)
	if err := s.loadFrames(id, rec.Frames); err != nil {
		return rec, err
	}
	if err := s.loadEvents(id, rec.Frames); err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *Store) loadFrames(id int64, frames []replay.Frame) error {
	rows, err := s.db.Query(
		"SELECT idx, delta_ms FROM recording_frames WHERE recording_id = ? ORDER BY idx",
		id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var idx int
		var delta int64
		if err := rows.Scan(&idx, &delta); err != nil {
			return fmt.Errorf("storage: cannot scan frame row: %w", err)
		}
		if idx < 0 || idx >= len(frames) {
			return fmt.Errorf("storage: frame index %d out of range for recording %d", idx, id)
		}
		frames[idx].DeltaMillis = delta
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("storage: row iteration error: %w", err)
	}
	return nil
}

func (s *Store) loadEvents(id int64, frames []replay.Frame) error {
	rows, err := s.db.Query(
		`SELECT frame_idx, kind, key FROM recording_events
		 WHERE recording_id = ?
		 ORDER BY frame_idx, seq`,
		id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var idx, kind, key int
		if err := rows.Scan(&idx, &kind, &key); err != nil {
			return fmt.Errorf("storage: cannot scan event row: %w", err)
		}
		if idx < 0 || idx >= len(frames) {
			return fmt.Errorf("storage: event frame %d out of range for recording %d", idx, id)
		}
		frames[idx].Events = append(frames[idx].Events, core.Event{
			Kind: core.EventKind(kind),
			Key:  core.Key(key),
		})
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("storage: row iteration error: %w", err)
	}
	return nil
}

// ListRecordings returns the most recent recordings, newest first.
func (s *Store) ListRecordings(limit int) ([]RecordingInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, ticks, final_hash, bricks_alive, created_at
		 FROM recordings
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var infos []RecordingInfo
	for rows.Next() {
		var info RecordingInfo
		var hash string
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Seed, &info.Ticks, &hash, &info.BricksAlive, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if info.FinalHash, err = parseHash(hash); err != nil {
			return nil, err
		}
		info.CreatedAt = parseTime(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteRecording removes a recording and its frames.
func (s *Store) DeleteRecording(id int64) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		err = fmt.Errorf("%w: id %d", ErrRecordingNotFound, id)
		return err
	}

	if _, err = tx.Exec("DELETE FROM recording_frames WHERE recording_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}
	if _, err = tx.Exec("DELETE FROM recording_events WHERE recording_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

func parseHash(s string) (uint64, error) {
	h, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("storage: bad final hash %q: %w", s, err)
	}
	return h, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
