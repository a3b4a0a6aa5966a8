package repository

import (
	"context"

	"github.com/pifreak/dailywee/internal/models"
)

// ScoreRepository defines leaderboard data operations
type ScoreRepository interface {
	InsertScore(ctx context.Context, dayNumber int, seed, playerName string, score int64) (*models.ScoreSubmission, error)
	TopScoresForDay(ctx context.Context, dayNumber, limit int) ([]models.ScoreSubmission, error)
	WeeklyBestScores(ctx context.Context, maxDay int) ([]models.ScoreSubmission, error)
	CountScoresForDay(ctx context.Context, dayNumber int) (int, error)
	Ping(ctx context.Context) error
}

// Ensure Repository implements all interfaces
var _ ScoreRepository = (*Repository)(nil)
