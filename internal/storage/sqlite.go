// Package storage provides SQLite-based persistence for session results.
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

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished session record.
type Result struct {
	ID                int64
	Score             int
	QuestionsAnswered int
	Accuracy          float64
	BestStreak        int
	DifficultyReached string
	CreatedAt         time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			questions_answered INTEGER NOT NULL DEFAULT 0,
			accuracy REAL NOT NULL DEFAULT 0,
			best_streak INTEGER NOT NULL DEFAULT 0,
			difficulty_reached TEXT NOT NULL DEFAULT 'easy',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);
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

// SaveResult records a finished session. Returns the inserted record ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (score, questions_answered, accuracy, best_streak, difficulty_reached)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Score, r.QuestionsAnswered, r.Accuracy, r.BestStreak, r.DifficultyReached,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results, ordered by score descending.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, questions_answered, accuracy, best_streak, difficulty_reached, created_at
		 FROM results
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

func scanResult(rows *sql.Rows) (Result, error) {
	var r Result
	var createdAt any
	if err := rows.Scan(&r.ID, &r.Score, &r.QuestionsAnswered, &r.Accuracy,
		&r.BestStreak, &r.DifficultyReached, &createdAt); err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// BestScore returns the highest recorded score, 0 if no results exist.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Rank returns the 1-based leaderboard position a score would take among
// the stored results.
func (s *Store) Rank(score int) (int, error) {
	var better int
	err := s.db.QueryRow("SELECT COUNT(*) FROM results WHERE score > ?", score).Scan(&better)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query rank: %w", err)
	}
	return better + 1, nil
}

// ClearResults deletes all stored results.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all sessions.
type Stats struct {
	SessionsCount int
	BestScore     int
	AvgScore      float64
	BestStreak    int
	AvgAccuracy   float64
	LastPlayed    time.Time
}

// GetStats retrieves aggregated statistics over all stored results.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(best_streak), 0), COALESCE(AVG(accuracy), 0)
		 FROM results`,
	).Scan(&stats.SessionsCount, &stats.BestScore, &stats.AvgScore, &stats.BestStreak, &stats.AvgAccuracy)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}
