// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundResult is a finished round. Squares is the round's score.
type RoundResult struct {
	ID           int64
	GameID       string
	Player       string // local user or SSH user name
	Width        int    // grid columns, in points
	Height       int    // grid rows, in points
	Squares      int
	Connections  int
	DurationSecs int
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
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

	// Test connection
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

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			squares INTEGER NOT NULL,
			connections INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, squares DESC, duration_secs ASC);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
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

// SaveRound records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: round without game id")
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, player, width, height, squares, connections, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Width, r.Height, r.Squares, r.Connections, r.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const roundColumns = `id, game_id, player, width, height, squares, connections, duration_secs, created_at`

// TopRounds retrieves the best N rounds for the given game: most squares
// first, faster rounds first among equals.
func (s *Store) TopRounds(gameID string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRounds(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY squares DESC, duration_secs ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// PlayerRounds retrieves the most recent rounds of one player.
func (s *Store) PlayerRounds(player string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRounds(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundResult
	for rows.Next() {
		var r RoundResult
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Player,
			&r.Width,
			&r.Height,
			&r.Squares,
			&r.Connections,
			&r.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// HighScore returns the most squares completed in one round of the game.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var squares sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(squares) FROM rounds WHERE game_id = ?",
		gameID,
	).Scan(&squares)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !squares.Valid {
		return 0, nil
	}
	return int(squares.Int64), nil
}

// ClearRounds deletes all rounds for the given game.
func (s *Store) ClearRounds(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID       string
	Rounds       int
	Players      int
	BestSquares  int
	AvgSquares   float64
	TotalSquares int64
	FastestSecs  int // fastest round, 0 when none
	LastPlayed   time.Time
}

// Stats retrieves aggregated statistics for a specific game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player),
		        COALESCE(MAX(squares), 0), COALESCE(AVG(squares), 0), COALESCE(SUM(squares), 0),
		        COALESCE(MIN(NULLIF(duration_secs, 0)), 0), MAX(created_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(
		&stats.Rounds,
		&stats.Players,
		&stats.BestSquares,
		&stats.AvgSquares,
		&stats.TotalSquares,
		&stats.FastestSecs,
		&lastPlayed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite returns for
// aggregates.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
