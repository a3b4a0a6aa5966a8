package handlers

import "github.com/pifreak/dailywee/internal/models"

// DayScoresResponse is the leaderboard for one day
type DayScoresResponse struct {
	Day    int                      `json:"day"`
	Scores []models.ScoreSubmission `json:"scores"`
}

// WeeklyScoresResponse holds the best score per day for the past week
type WeeklyScoresResponse struct {
	Scores []models.ScoreSubmission `json:"scores"`
}

// ReloadResponse reports the result of a schedule reload
type ReloadResponse struct {
	Message string `json:"message"`
	Horizon int    `json:"horizon"`
}
