package repository

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pifreak/dailywee/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day_number INTEGER NOT NULL,
			seed TEXT NOT NULL,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			submitted_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_day ON scores(day_number)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_day_score ON scores(day_number, score DESC)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

// InsertScore appends one submission and returns it with its assigned id
// and timestamp. Rows are never updated or deleted.
func (r *Repository) InsertScore(ctx context.Context, dayNumber int, seed, playerName string, score int64) (*models.ScoreSubmission, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO scores (day_number, seed, player_name, score)
		VALUES (?, ?, ?, ?)
	`, dayNumber, seed, playerName, score)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var sub models.ScoreSubmission
	err = r.db.QueryRowContext(ctx, `
		SELECT id, day_number, seed, player_name, score, submitted_at
		FROM scores WHERE id = ?
	`, id).Scan(&sub.ID, &sub.DayNumber, &sub.Seed, &sub.PlayerName, &sub.Score, &sub.SubmittedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// TopScoresForDay returns the leaderboard for one day, best first. Ties
// on score go to the earlier submission, then the lower row id, so the
// ordering is a total order and pagination is stable.
func (r *Repository) TopScoresForDay(ctx context.Context, dayNumber, limit int) ([]models.ScoreSubmission, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, day_number, seed, player_name, score, submitted_at
		FROM scores
		WHERE day_number = ?
		ORDER BY score DESC, submitted_at ASC, id ASC
		LIMIT ?
	`, dayNumber, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

// WeeklyBestScores returns the single best submission for each of the
// most recent 7 days at or before maxDay that have any submissions.
// Days are newest first; days with no submissions are absent rather
// than zero-filled.
func (r *Repository) WeeklyBestScores(ctx context.Context, maxDay int) ([]models.ScoreSubmission, error) {
	rows, err := r.db.QueryContext(ctx, `
		WITH ranked AS (
			SELECT
				id, day_number, seed, player_name, score, submitted_at,
				ROW_NUMBER() OVER (
					PARTITION BY day_number
					ORDER BY score DESC, submitted_at ASC, id ASC
				) as rn
			FROM scores
			WHERE day_number <= ?
		)
		SELECT id, day_number, seed, player_name, score, submitted_at
		FROM ranked
		WHERE rn = 1
		ORDER BY day_number DESC
		LIMIT 7
	`, maxDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

// CountScoresForDay returns the number of submissions recorded for a day.
func (r *Repository) CountScoresForDay(ctx context.Context, dayNumber int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores WHERE day_number = ?`, dayNumber).Scan(&count)
	return count, err
}

func scanScores(rows *sql.Rows) ([]models.ScoreSubmission, error) {
	var scores []models.ScoreSubmission
	for rows.Next() {
		var s models.ScoreSubmission
		if err := rows.Scan(&s.ID, &s.DayNumber, &s.Seed, &s.PlayerName, &s.Score, &s.SubmittedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
