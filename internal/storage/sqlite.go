// Package storage provides SQLite-based history of campaign runs and boss duels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Nothing here is read back into a running game: levels always start fresh.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished campaign run: how far it got and how it ended.
type RunEntry struct {
	ID           int64
	GameID       string
	LevelReached int
	Outcome      string // "game_over" or "reset"
	CreatedAt    time.Time
}

// BossDuel is one finished boss encounter.
type BossDuel struct {
	ID          int64
	Level       int
	PlayerMarks int
	BossMarks   int
	Won         bool
	Reason      string
	DurationMS  int64
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			level_reached INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, level_reached DESC);

		CREATE TABLE IF NOT EXISTS boss_duels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			player_marks INTEGER NOT NULL,
			boss_marks INTEGER NOT NULL,
			won INTEGER NOT NULL,
			reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_boss_duels_created ON boss_duels(created_at);
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

// parseTime handles both driver-parsed times and raw SQLite datetime text.
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(gameID string, levelReached int, outcome string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, level_reached, outcome) VALUES (?, ?, ?)",
		gameID, levelReached, outcome,
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

// TopRuns retrieves the N runs that got furthest, deepest level first.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_reached, outcome, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY level_reached DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.LevelReached, &e.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestLevel returns the deepest level reached in the given game.
// Returns 0 if no runs exist.
func (s *Store) BestLevel(gameID string) (int, error) {
	var level sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(level_reached) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best level: %w", err)
	}

	if !level.Valid {
		return 0, nil
	}
	return int(level.Int64), nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveBossDuel records a finished duel. Returns the ID of the inserted record.
func (s *Store) SaveBossDuel(d BossDuel) (int64, error) {
	won := 0
	if d.Won {
		won = 1
	}

	res, err := s.db.Exec(
		`INSERT INTO boss_duels (level, player_marks, boss_marks, won, reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.Level, d.PlayerMarks, d.BossMarks, won, d.Reason, d.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save boss duel: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentBossDuels retrieves the most recent duels, newest first.
func (s *Store) RecentBossDuels(limit int) ([]BossDuel, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level, player_marks, boss_marks, won, reason, duration_ms, created_at
		 FROM boss_duels
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boss duels: %w", err)
	}
	defer rows.Close()

	var duels []BossDuel
	for rows.Next() {
		var d BossDuel
		var won int
		var createdAt any
		if err := rows.Scan(&d.ID, &d.Level, &d.PlayerMarks, &d.BossMarks, &won, &d.Reason, &d.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		d.Won = won != 0
		d.CreatedAt = parseTime(createdAt)
		duels = append(duels, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return duels, nil
}

// BossRecord returns the number of duels won and lost.
func (s *Store) BossRecord() (wins, losses int, err error) {
	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(won), 0), COALESCE(SUM(1 - won), 0) FROM boss_duels`,
	).Scan(&wins, &losses)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot query boss record: %w", err)
	}
	return wins, losses, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	RunsCount  int
	BestLevel  int
	AvgLevel   float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(level_reached), 0), COALESCE(AVG(level_reached), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunsCount, &stats.BestLevel, &stats.AvgLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// RecordEvent persists the events worth keeping: finished runs and duels.
// Other events are ignored.
func (s *Store) RecordEvent(gameID string, ev core.Event) error {
	switch ev.Kind {
	case core.EventGameOver, core.EventCampaignReset:
		_, err := s.SaveRun(gameID, ev.Level, ev.Kind.String())
		return err
	case core.EventBossResult:
		_, err := s.SaveBossDuel(BossDuel{
			Level:       ev.Level,
			PlayerMarks: ev.PlayerMarks,
			BossMarks:   ev.BossMarks,
			Won:         ev.Won,
			Reason:      ev.Reason,
			DurationMS:  ev.ElapsedMS,
		})
		return err
	}
	return nil
}
