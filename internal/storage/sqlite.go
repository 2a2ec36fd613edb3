// Package storage provides SQLite-based persistence for finished sessions.
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
)

// Session modes.
const (
	ModeAssist   = "assist"   // a real game relayed through the console
	ModeSimulate = "simulate" // a self-play game against the simulator
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the session archive.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished game.
type SessionRecord struct {
	ID        int64
	SessionID string
	Engine    string
	Mode      string
	Turns     int
	Score     int
	MaxRank   int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			engine TEXT NOT NULL,
			mode TEXT NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			max_rank INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_mode ON sessions(mode);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(mode, score DESC);
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

// SaveSession archives a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (session_id, engine, mode, turns, score, max_rank)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Engine, rec.Mode, rec.Turns, rec.Score, rec.MaxRank,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopSessions retrieves the top N sessions for the given mode. An empty
// mode matches every mode. Results are ordered by score descending.
func (s *Store) TopSessions(mode string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, engine, mode, turns, score, max_rank, created_at
		 FROM sessions
		 WHERE ? = '' OR mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Engine, &r.Mode, &r.Turns, &r.Score, &r.MaxRank, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SessionByID retrieves a session by its session ID.
// Returns nil if no such session was archived.
func (s *Store) SessionByID(sessionID string) (*SessionRecord, error) {
	var r SessionRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, session_id, engine, mode, turns, score, max_rank, created_at
		 FROM sessions
		 WHERE session_id = ?`,
		sessionID,
	).Scan(&r.ID, &r.SessionID, &r.Engine, &r.Mode, &r.Turns, &r.Score, &r.MaxRank, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Archive saves rec and reports whether its score beats every session
// archived before it in the same mode.
func (s *Store) Archive(rec SessionRecord) (bool, error) {
	prev, err := s.HighScore(rec.Mode)
	if err != nil {
		return false, err
	}
	if _, err := s.SaveSession(rec); err != nil {
		return false, err
	}
	return rec.Score > prev, nil
}

// ClearSessions deletes all sessions for the given mode.
func (s *Store) ClearSessions(mode string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	Sessions   int
	HighScore  int
	AvgScore   float64
	BestRank   int
	LastPlayed time.Time
}

// Stats retrieves statistics for every mode that has been played.
func (s *Store) Stats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), MAX(max_rank), MAX(created_at)
		 FROM sessions
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.Sessions, &m.HighScore, &m.AvgScore, &m.BestRank, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTime(lastPlayed)
		stats[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
