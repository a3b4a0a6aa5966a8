package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pifreak/dailywee/internal/errors"
	"github.com/pifreak/dailywee/internal/logger"
	"github.com/pifreak/dailywee/internal/models"
)

// Submission limits. Scores above MaxScore are rejected outright rather
// than clamped.
const (
	MaxPlayerNameLen = 20
	MaxScore         = 999_999_999
	DefaultTopLimit  = 10
	MaxTopLimit      = 100
)

// LeaderboardServiceRepository defines the repository methods needed by LeaderboardService
type LeaderboardServiceRepository interface {
	InsertScore(ctx context.Context, dayNumber int, seed, playerName string, score int64) (*models.ScoreSubmission, error)
	TopScoresForDay(ctx context.Context, dayNumber, limit int) ([]models.ScoreSubmission, error)
	WeeklyBestScores(ctx context.Context, maxDay int) ([]models.ScoreSubmission, error)
}

// LeaderboardService handles score submission and leaderboard reads
type LeaderboardService struct {
	log       logger.Logger
	repo      LeaderboardServiceRepository
	schedule  ScheduleServicer
	broadcast Broadcaster
}

// NewLeaderboardService creates a new LeaderboardService. broadcast may
// be nil.
func NewLeaderboardService(log logger.Logger, repo LeaderboardServiceRepository, schedule ScheduleServicer, broadcast Broadcaster) *LeaderboardService {
	return &LeaderboardService{
		log:       log,
		repo:      repo,
		schedule:  schedule,
		broadcast: broadcast,
	}
}

// SubmitRequest is a validated score submission
type SubmitRequest struct {
	DayNumber  int
	PlayerName string
	Score      int64
}

// Submit validates and records one score. The day must be published and
// already playable: future days, including tomorrow's locked preview,
// reject submissions.
func (s *LeaderboardService) Submit(ctx context.Context, req SubmitRequest) (*models.ScoreSubmission, error) {
	name := strings.TrimSpace(req.PlayerName)
	// Length bound is in characters, not bytes.
	if name == "" || utf8.RuneCountInString(name) > MaxPlayerNameLen {
		return nil, ErrInvalidPlayerName
	}
	if req.Score < 0 || req.Score > MaxScore {
		return nil, ErrInvalidScore
	}

	if req.DayNumber < 1 {
		return nil, ErrDayPrelaunch
	}
	if req.DayNumber > s.schedule.Today() {
		return nil, ErrDayLocked
	}
	entry, err := s.schedule.Entry(req.DayNumber)
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.InsertScore(ctx, req.DayNumber, entry.ID, name, req.Score)
	if err != nil {
		s.log.Error("Failed to insert score", "day", req.DayNumber, "error", err)
		return nil, errors.Store(err)
	}

	s.log.Info("Score submitted", "day", sub.DayNumber, "player", sub.PlayerName, "score", sub.Score)
	if s.broadcast != nil {
		s.broadcast.Broadcast(models.WSMessage{Type: models.WSScoreSubmitted, Data: sub})
	}
	return sub, nil
}

// TopForDay returns the leaderboard for one viewable day, best first.
// limit <= 0 uses the default and values past the cap are clamped.
func (s *LeaderboardService) TopForDay(ctx context.Context, day, limit int) ([]models.ScoreSubmission, error) {
	if day < 1 {
		return nil, ErrDayPrelaunch
	}
	if day > s.schedule.Today() {
		return nil, ErrDayLocked
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	scores, err := s.repo.TopScoresForDay(ctx, day, limit)
	if err != nil {
		return nil, errors.Store(err)
	}
	if scores == nil {
		scores = []models.ScoreSubmission{}
	}
	return scores, nil
}

// WeeklyBest returns the best submission per day over the most recent 7
// days with any submissions, newest first. Future days never appear.
func (s *LeaderboardService) WeeklyBest(ctx context.Context) ([]models.ScoreSubmission, error) {
	today := s.schedule.Today()
	if today < 1 {
		return []models.ScoreSubmission{}, nil
	}

	scores, err := s.repo.WeeklyBestScores(ctx, today)
	if err != nil {
		return nil, errors.Store(err)
	}
	if scores == nil {
		scores = []models.ScoreSubmission{}
	}
	return scores, nil
}

var mockPlayers = []string{"JimboFan", "WeeWizard", "ChipRunner", "FoilHunter", "BossBlinder", "SealCollector"}

// SeedMockScores inserts demo submissions for the last few playable
// days. Intended for development databases only.
func (s *LeaderboardService) SeedMockScores(ctx context.Context) (int, error) {
	today := s.schedule.Today()
	inserted := 0
	for day := today - 6; day <= today; day++ {
		if day < 1 {
			continue
		}
		entry, err := s.schedule.Entry(day)
		if err != nil {
			continue
		}
		for i, player := range mockPlayers {
			score := int64(10_000*(day+1) + 7_500*i)
			if _, err := s.repo.InsertScore(ctx, day, entry.ID, player, score); err != nil {
				return inserted, errors.Store(err)
			}
			inserted++
		}
	}
	s.log.Info("Seeded mock scores", "count", inserted)
	return inserted, nil
}
