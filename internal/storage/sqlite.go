// Package storage keeps finished runs in SQLite through the pure-Go
// modernc.org/sqlite driver, so the binary builds without cgo.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultLimit is used when a query asks for a non-positive number of rows.
const DefaultLimit = 10

// sqliteTime is the layout CURRENT_TIMESTAMP values come back in when the
// driver hands them over as text.
const sqliteTime = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT    NOT NULL,
	player     TEXT    NOT NULL DEFAULT '',
	score      INTEGER NOT NULL,
	round      INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(game_id, player);
`

// Best runs first; a later round breaks ties, then the earlier run.
const selectScores = `
SELECT id, game_id, player, score, round, created_at
FROM scores
WHERE game_id = ?%s
ORDER BY score DESC, round DESC, id ASC
LIMIT ?`

// Store is a handle on the scores database. It is safe for concurrent use;
// the SSH server shares one across sessions.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int // gems collected
	Round     int // round reached
	CreatedAt time.Time
}

// GameStats summarizes every saved run of a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestRound  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time // zero when nothing is saved
}

// Open opens the database at path, creating it and its parent directories
// if needed. A leading ~ is expanded to the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a finished run and returns its row ID.
func (s *Store) SaveScore(gameID, player string, score, round int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, score, round) VALUES (?, ?, ?, ?)",
		gameID, player, score, round,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit runs of a game.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	return s.queryScores(fmt.Sprintf(selectScores, ""), gameID, positive(limit))
}

// TopScoresFor is TopScores restricted to one player.
func (s *Store) TopScoresFor(gameID, player string, limit int) ([]ScoreEntry, error) {
	return s.queryScores(fmt.Sprintf(selectScores, " AND player = ?"), gameID, player, positive(limit))
}

func positive(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Round, &createdAt); err != nil {
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

// Players lists everyone with a saved run, best personal score first.
func (s *Store) Players(gameID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT player FROM scores WHERE game_id = ?
		 GROUP BY player
		 ORDER BY MAX(score) DESC, player ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return players, nil
}

// HighScore returns the best score of a game, or 0 when none is saved.
func (s *Store) HighScore(gameID string) (int, error) {
	var high int
	err := s.db.QueryRow("SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?", gameID).Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return high, nil
}

// ClearScores deletes every run of a game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats aggregates every saved run of a game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	st := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(round), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&st.GamesCount, &st.HighScore, &st.BestRound, &st.AvgScore, &st.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		"SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1",
		gameID,
	).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		st.LastPlayed = parseTime(last)
	}
	return st, nil
}

// parseTime accepts the time.Time or text forms the driver may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{sqliteTime, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
