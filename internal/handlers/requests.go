package handlers

// ScoreSubmitRequest is the body of POST /api/scores. Seed is required
// on the wire; the stored seed is always the schedule's own copy for
// the submitted day, never the client's claim.
type ScoreSubmitRequest struct {
	Seed       string `json:"seed"`
	DayNumber  int    `json:"day_number"`
	PlayerName string `json:"player_name"`
	Score      int64  `json:"score"`
}
