// Package models defines the core data structures shared across the
// repository, service and handler layers.
package models

import "time"

// ScoreSubmission is one leaderboard row. Rows are append-only; a player
// may submit any number of scores for a day.
type ScoreSubmission struct {
	ID          int64     `json:"id"`
	DayNumber   int       `json:"day_number"`
	Seed        string    `json:"seed"`
	PlayerName  string    `json:"player_name"`
	Score       int64     `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// WSMessage is the envelope for all websocket broadcasts.
type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Websocket message types.
const (
	WSScoreSubmitted = "score_submitted"
	WSDayRollover    = "day_rollover"
)
