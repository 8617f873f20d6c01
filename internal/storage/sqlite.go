// Package storage provides SQLite-based persistence for high scores and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single high score record. Board separates the tables kept
// for each difficulty preset.
type ScoreEntry struct {
	ID        int64
	Board     string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Run records one finished play-through.
type Run struct {
	ID           int64
	Board        string
	Seed         int64
	StartLevel   int
	LevelReached int
	Score        int
	Ticks        uint64
	Deaths       int
	Outcome      string // "game_over", "won", "level_error", "quit"
	CreatedAt    time.Time
}

// Stats contains aggregated statistics for a board.
type Stats struct {
	Board      string
	Runs       int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	Wins       int
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(board, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board TEXT NOT NULL,
			seed INTEGER NOT NULL,
			start_level INTEGER NOT NULL,
			level_reached INTEGER NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_board ON runs(board, id DESC);
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

// SaveScore records a new score on the given board.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(board string, score, level int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (board, score, level) VALUES (?, ?, ?)",
		board, score, level,
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

// TopScores retrieves the top N scores of a board, highest first.
func (s *Store) TopScores(board string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, board, score, level, created_at
		 FROM scores
		 WHERE board = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		board, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Board, &e.Score, &e.Level, &createdAt); err != nil {
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

// HighScore returns the highest score of a board.
// Returns 0 if no scores exist.
func (s *Store) HighScore(board string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE board = ?",
		board,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes the scores and runs of a board.
func (s *Store) ClearScores(board string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE board = ?", board); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE board = ?", board); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveRun records a finished run. Runs with a positive score also enter the
// board's high score table.
func (s *Store) SaveRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (board, seed, start_level, level_reached, score, ticks, deaths, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Board, r.Seed, r.StartLevel, r.LevelReached, r.Score, int64(r.Ticks), r.Deaths, r.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if r.Score > 0 {
		if _, err := s.SaveScore(r.Board, r.Score, r.LevelReached); err != nil {
			return id, err
		}
	}
	return id, nil
}

// RecentRuns retrieves the most recent runs of a board. An empty board
// selects every board.
func (s *Store) RecentRuns(board string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, board, seed, start_level, level_reached, score, ticks, deaths, outcome, created_at
		 FROM runs
		 WHERE ? = '' OR board = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		board, board, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Board,
			&r.Seed,
			&r.StartLevel,
			&r.LevelReached,
			&r.Score,
			&ticks,
			&r.Deaths,
			&r.Outcome,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run. Returns nil when no such run exists.
func (s *Store) RunByID(id int64) (*Run, error) {
	var r Run
	var ticks int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, board, seed, start_level, level_reached, score, ticks, deaths, outcome, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Board, &r.Seed, &r.StartLevel, &r.LevelReached, &r.Score, &ticks, &r.Deaths, &r.Outcome, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// GetStats retrieves aggregated run statistics for a board.
func (s *Store) GetStats(board string) (*Stats, error) {
	stats := &Stats{Board: board}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level_reached), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM runs WHERE board = ?`,
		board,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &stats.Wins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
