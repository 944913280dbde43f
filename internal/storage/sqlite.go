// Package storage provides SQLite-based persistence for scores and
// finished play sessions. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	ModeID    string
	Score     int
	CreatedAt time.Time
}

// SessionResult represents one finished game from start to game over.
type SessionResult struct {
	ID           int64
	ModeID       string
	Score        int
	Moves        int
	MaxChain     int
	DurationSecs int
	EndReason    string // "out_of_moves", "time_up", "board_stuck", "quit"
	CreatedAt    time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_mode_id ON scores(mode_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode_id, score DESC);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode_id TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			max_chain INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_mode_id ON sessions(mode_id);
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

// SaveScore records a new score for the given mode.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(modeID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (mode_id, score) VALUES (?, ?)",
		modeID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(modeID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode_id, score, created_at
		 FROM scores
		 WHERE mode_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		modeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ModeID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no scores exist.
func (s *Store) HighScore(modeID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode_id = ?",
		modeID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given mode.
func (s *Store) ClearScores(modeID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE mode_id = ?", modeID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveSession records a finished play session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(result SessionResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions
		 (mode_id, score, moves, max_chain, duration_secs, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.ModeID,
		result.Score,
		result.Moves,
		result.MaxChain,
		result.DurationSecs,
		result.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent finished sessions,
// optionally filtered by mode (empty modeID means all modes).
func (s *Store) RecentSessions(modeID string, limit int) ([]SessionResult, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, mode_id, score, moves, max_chain, duration_secs, end_reason, created_at
		 FROM sessions`
	args := []any{}
	if modeID != "" {
		query += " WHERE mode_id = ?"
		args = append(args, modeID)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var results []SessionResult
	for rows.Next() {
		var r SessionResult
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.ModeID,
			&r.Score,
			&r.Moves,
			&r.MaxChain,
			&r.DurationSecs,
			&r.EndReason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	ModeID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestChain  int
	LastPlayed time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(modeID string) (*ModeStats, error) {
	stats := &ModeStats{ModeID: modeID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(max_chain), 0)
		 FROM sessions WHERE mode_id = ?`,
		modeID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.BestChain)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE mode_id = ? ORDER BY created_at DESC LIMIT 1`,
		modeID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// GetAllModeStats retrieves statistics for all modes that have been played.
func (s *Store) GetAllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(max_chain), MAX(created_at)
		 FROM sessions
		 GROUP BY mode_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.ModeID, &m.GamesCount, &m.HighScore, &m.AvgScore, &m.TotalScore, &m.BestChain, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTimestamp(lastPlayed)
		stats[m.ModeID] = &m
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or the
// SQLite text representation.
func parseTimestamp(v any) time.Time {
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
