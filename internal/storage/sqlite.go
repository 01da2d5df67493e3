// Package storage provides SQLite-based persistence for mission runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished (or abandoned) mission run.
type RunEntry struct {
	ID        int64
	MissionID string
	Score     int
	Kills     int
	AmmoUsed  int
	Ticks     uint64
	Cleared   bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mission_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			ammo_used INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mission_id ON runs(mission_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mission_id, score DESC);
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

// SaveRun records a finished mission run. Returns the inserted ID.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (mission_id, score, kills, ammo_used, ticks, cleared)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.MissionID, run.Score, run.Kills, run.AmmoUsed, run.Ticks, run.Cleared,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given mission, ordered by
// score descending.
func (s *Store) TopRuns(missionID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mission_id, score, kills, ammo_used, ticks, cleared, created_at
		 FROM runs
		 WHERE mission_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		missionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// AllRuns retrieves every run for the given mission.
func (s *Store) AllRuns(missionID string) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, mission_id, score, kills, ammo_used, ticks, cleared, created_at
		 FROM runs
		 WHERE mission_id = ?
		 ORDER BY score DESC`,
		missionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.MissionID, &e.Score, &e.Kills, &e.AmmoUsed, &e.Ticks, &e.Cleared, &createdAt); err != nil {
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

// parseTimestamp handles the driver returning either time.Time or the
// SQLite text form.
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

// HighScore returns the best score for the given mission, 0 when no
// runs exist.
func (s *Store) HighScore(missionID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mission_id = ?",
		missionID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given mission.
func (s *Store) ClearRuns(missionID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mission_id = ?", missionID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// MissionStats contains aggregated statistics for a mission.
type MissionStats struct {
	MissionID  string
	RunsCount  int
	Clears     int
	HighScore  int
	AvgScore   float64
	TotalKills int64
	LastPlayed time.Time
}

// GetMissionStats retrieves aggregated statistics for one mission.
func (s *Store) GetMissionStats(missionID string) (*MissionStats, error) {
	stats := &MissionStats{MissionID: missionID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(cleared), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(kills), 0)
		 FROM runs WHERE mission_id = ?`,
		missionID,
	).Scan(&stats.RunsCount, &stats.Clears, &stats.HighScore, &stats.AvgScore, &stats.TotalKills)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mission stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE mission_id = ? ORDER BY created_at DESC LIMIT 1`,
		missionID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// GetAllMissionStats retrieves statistics for every mission that has
// recorded runs.
func (s *Store) GetAllMissionStats() (map[string]*MissionStats, error) {
	rows, err := s.db.Query(
		`SELECT mission_id, COUNT(*), SUM(cleared), MAX(score), AVG(score), SUM(kills), MAX(created_at)
		 FROM runs
		 GROUP BY mission_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mission stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*MissionStats)
	for rows.Next() {
		var m MissionStats
		var lastPlayed any
		if err := rows.Scan(&m.MissionID, &m.RunsCount, &m.Clears, &m.HighScore, &m.AvgScore, &m.TotalKills, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTimestamp(lastPlayed)
		stats[m.MissionID] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
