package mock

import (
	"context"

	"github.com/pifreak/dailywee/internal/models"
	"github.com/pifreak/dailywee/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.InsertScoreError = errors.New("database error")
//	svc := services.NewLeaderboardService(log, mockRepo, sched, nil)
//	_, err := svc.Submit(ctx, req)
//	// err will now contain the injected error
type Repository struct {
	repository.ScoreRepository

	InsertScoreError       error
	TopScoresForDayError   error
	WeeklyBestScoresError  error
	CountScoresForDayError error
	PingError              error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.ScoreRepository) *Repository {
	return &Repository{ScoreRepository: real}
}

func (m *Repository) InsertScore(ctx context.Context, dayNumber int, seed, playerName string, score int64) (*models.ScoreSubmission, error) {
	if m.InsertScoreError != nil {
		return nil, m.InsertScoreError
	}
	return m.ScoreRepository.InsertScore(ctx, dayNumber, seed, playerName, score)
}

func (m *Repository) TopScoresForDay(ctx context.Context, dayNumber, limit int) ([]models.ScoreSubmission, error) {
	if m.TopScoresForDayError != nil {
		return nil, m.TopScoresForDayError
	}
	return m.ScoreRepository.TopScoresForDay(ctx, dayNumber, limit)
}

func (m *Repository) WeeklyBestScores(ctx context.Context, maxDay int) ([]models.ScoreSubmission, error) {
	if m.WeeklyBestScoresError != nil {
		return nil, m.WeeklyBestScoresError
	}
	return m.ScoreRepository.WeeklyBestScores(ctx, maxDay)
}

func (m *Repository) CountScoresForDay(ctx context.Context, dayNumber int) (int, error) {
	if m.CountScoresForDayError != nil {
		return 0, m.CountScoresForDayError
	}
	return m.ScoreRepository.CountScoresForDay(ctx, dayNumber)
}

func (m *Repository) Ping(ctx context.Context) error {
	if m.PingError != nil {
		return m.PingError
	}
	return m.ScoreRepository.Ping(ctx)
}
