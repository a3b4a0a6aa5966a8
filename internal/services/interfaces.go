package services

import (
	"context"
	"time"

	"github.com/pifreak/dailywee/internal/models"
	"github.com/pifreak/dailywee/internal/ritual"
)

// ScheduleServicer defines the interface for schedule operations
type ScheduleServicer interface {
	Today() int
	Epoch() time.Time
	Horizon() int
	Entry(day int) (*ritual.Entry, error)
	DayView(day int) (*DayView, error)
	Reload() (int, error)
}

// LeaderboardServicer defines the interface for leaderboard operations
type LeaderboardServicer interface {
	Submit(ctx context.Context, req SubmitRequest) (*models.ScoreSubmission, error)
	TopForDay(ctx context.Context, day, limit int) ([]models.ScoreSubmission, error)
	WeeklyBest(ctx context.Context) ([]models.ScoreSubmission, error)
	SeedMockScores(ctx context.Context) (int, error)
}

// Broadcaster pushes events to connected websocket clients. A nil
// Broadcaster is allowed; events are dropped.
type Broadcaster interface {
	Broadcast(msg models.WSMessage)
}

// Ensure services implement their interfaces
var (
	_ ScheduleServicer    = (*ScheduleService)(nil)
	_ LeaderboardServicer = (*LeaderboardService)(nil)
)
