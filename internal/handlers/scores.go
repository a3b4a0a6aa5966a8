package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pifreak/dailywee/internal/services"
)

// handleGetScores serves the leaderboard. ?week=true returns the best
// score per day over the past week; otherwise ?day=N (default today)
// returns that day's top scores. ?limit caps the day leaderboard.
func (h *Handlers) handleGetScores(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if week := q.Get("week"); week == "true" || week == "1" {
		scores, err := h.Leaderboard.WeeklyBest(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		respondOK(w, WeeklyScoresResponse{Scores: scores})
		return
	}

	day := h.Schedule.Today()
	if v := q.Get("day"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, BadRequest("Invalid day parameter"))
			return
		}
		day = n
	}

	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, BadRequest("Invalid limit parameter"))
			return
		}
		limit = n
	}

	scores, err := h.Leaderboard.TopForDay(r.Context(), day, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, DayScoresResponse{Day: day, Scores: scores})
}

// handleSubmitScore records one score submission
func (h *Handlers) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreSubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if strings.TrimSpace(req.Seed) == "" {
		respondError(w, &APIError{Status: http.StatusBadRequest, Code: ErrCodeValidation, Message: "seed is required"})
		return
	}

	sub, err := h.Leaderboard.Submit(r.Context(), services.SubmitRequest{
		DayNumber:  req.DayNumber,
		PlayerName: req.PlayerName,
		Score:      req.Score,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, sub)
}
