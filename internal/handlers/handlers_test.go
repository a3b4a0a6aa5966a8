package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pifreak/dailywee/internal/logger"
	"github.com/pifreak/dailywee/internal/ritual"
	"github.com/pifreak/dailywee/internal/services"
	"github.com/pifreak/dailywee/internal/testutil"
)

func testLogger() logger.Logger {
	return logger.NewWithLevel(logger.ParseLevel("error"))
}

func buildSchedule(horizon int, nullDays ...int) ritual.Schedule {
	isNull := make(map[int]bool)
	for _, d := range nullDays {
		isNull[d] = true
	}
	s := make(ritual.Schedule, 0, horizon)
	for day := 1; day <= horizon; day++ {
		if isNull[day] {
			s = append(s, nil)
			continue
		}
		s = append(s, &ritual.Entry{
			ID:      fmt.Sprintf("SEED%04d", day),
			Theme:   "Twosday",
			Joker:   "Joker",
			Metrics: map[string]int{"s": 1000 * day, "w": day},
		})
	}
	return s
}

// testEpochFor pins "today" to the given day number by anchoring the
// epoch relative to the wall clock.
func testEpochFor(today int) time.Time {
	return time.Now().UTC().Add(-time.Duration(today-1)*24*time.Hour - time.Hour)
}

func newTestServer(t *testing.T, today int, nullDays ...int) (*httptest.Server, *Handlers) {
	t.Helper()

	sched := services.NewScheduleServiceFromSchedule(testLogger(), buildSchedule(30, nullDays...), testEpochFor(today))
	repo := testutil.NewTestRepository(t)
	lb := services.NewLeaderboardService(testLogger(), repo, sched, nil)

	h := NewForTesting(sched, lb)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, h
}

func getJSON(t *testing.T, url string, target interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()
	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			t.Fatalf("decoding %s response: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestGetRitualToday(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	var view services.DayView
	if status := getJSON(t, srv.URL+"/api/ritual", &view); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if view.Day != 5 || !view.IsToday {
		t.Errorf("view = %+v, want day 5 today", view)
	}
	if view.Seed != "SEED0005" {
		t.Errorf("seed = %s, want SEED0005", view.Seed)
	}
}

func TestGetRitualDay(t *testing.T) {
	srv, _ := newTestServer(t, 5, 2)

	tests := []struct {
		name       string
		day        string
		wantStatus int
	}{
		{"past day", "1", http.StatusOK},
		{"today", "5", http.StatusOK},
		{"tomorrow preview", "6", http.StatusOK},
		{"day after tomorrow", "7", http.StatusForbidden},
		{"null day", "2", http.StatusNotFound},
		{"day zero", "0", http.StatusOK},
		{"negative day", "-1", http.StatusBadRequest},
		{"not a number", "abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := getJSON(t, srv.URL+"/api/ritual/"+tt.day, nil); status != tt.wantStatus {
				t.Errorf("GET /api/ritual/%s status = %d, want %d", tt.day, status, tt.wantStatus)
			}
		})
	}
}

func TestGetRitualTomorrowHidesSeed(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	var view services.DayView
	if status := getJSON(t, srv.URL+"/api/ritual/6", &view); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !view.Locked {
		t.Error("tomorrow should be locked")
	}
	if view.Seed != "" {
		t.Errorf("locked day leaked seed %q", view.Seed)
	}
}

func TestSubmitScore(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	body := `{"seed":"SEED0005","day_number":5,"player_name":"pifreak","score":123456}`
	resp, err := http.Post(srv.URL+"/api/scores", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var sub struct {
		ID         int64  `json:"id"`
		PlayerName string `json:"player_name"`
		Seed       string `json:"seed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if sub.ID == 0 || sub.PlayerName != "pifreak" || sub.Seed != "SEED0005" {
		t.Errorf("submission = %+v", sub)
	}
}

func TestSubmitScoreErrors(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"empty body", "", http.StatusBadRequest, ErrCodeBadRequest},
		{"bad json", "{", http.StatusBadRequest, ErrCodeBadRequest},
		{"missing seed", `{"day_number":5,"player_name":"p","score":1}`, http.StatusBadRequest, ErrCodeValidation},
		{"blank seed", `{"seed":"  ","day_number":5,"player_name":"p","score":1}`, http.StatusBadRequest, ErrCodeValidation},
		{"empty name", `{"seed":"SEED0005","day_number":5,"player_name":"","score":1}`, http.StatusBadRequest, ErrCodeValidation},
		{"score too large", `{"seed":"SEED0005","day_number":5,"player_name":"p","score":1000000000}`, http.StatusBadRequest, ErrCodeValidation},
		{"future day", `{"seed":"SEED0006","day_number":6,"player_name":"p","score":1}`, http.StatusForbidden, ErrCodeDayLocked},
		{"day zero", `{"seed":"SEED0001","day_number":0,"player_name":"p","score":1}`, http.StatusBadRequest, ErrCodeDayPrelaunch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/scores", "application/json", bytes.NewReader([]byte(tt.body)))
			if err != nil {
				t.Fatalf("POST error = %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var apiErr APIError
			if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", apiErr.Code, tt.wantCode)
			}
		})
	}
}

func TestGetScoresForDay(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	for _, s := range []struct {
		player string
		score  int64
	}{{"alice", 300}, {"bob", 900}, {"carol", 100}} {
		body := fmt.Sprintf(`{"seed":"SEED0005","day_number":5,"player_name":"%s","score":%d}`, s.player, s.score)
		resp, err := http.Post(srv.URL+"/api/scores", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		resp.Body.Close()
	}

	var out DayScoresResponse
	if status := getJSON(t, srv.URL+"/api/scores?day=5", &out); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if out.Day != 5 || len(out.Scores) != 3 {
		t.Fatalf("response = %+v", out)
	}
	if out.Scores[0].PlayerName != "bob" {
		t.Errorf("top score = %s, want bob", out.Scores[0].PlayerName)
	}
}

func TestGetScoresDefaultsToToday(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	var out DayScoresResponse
	if status := getJSON(t, srv.URL+"/api/scores", &out); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if out.Day != 5 {
		t.Errorf("default day = %d, want 5", out.Day)
	}
	if out.Scores == nil {
		t.Error("empty leaderboard should be [], not null")
	}
}

func TestGetScoresWeekly(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	for day := 3; day <= 5; day++ {
		body := fmt.Sprintf(`{"seed":"SEED%04d","day_number":%d,"player_name":"pifreak","score":%d}`, day, day, day*100)
		resp, err := http.Post(srv.URL+"/api/scores", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		resp.Body.Close()
	}

	var out WeeklyScoresResponse
	if status := getJSON(t, srv.URL+"/api/scores?week=true", &out); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(out.Scores) != 3 {
		t.Fatalf("weekly rows = %d, want 3", len(out.Scores))
	}
	if out.Scores[0].DayNumber != 5 || out.Scores[2].DayNumber != 3 {
		t.Errorf("weekly days = %d..%d, want 5..3", out.Scores[0].DayNumber, out.Scores[2].DayNumber)
	}
}

func TestGetScoresWeekFalse(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	// Only week=true (or 1) selects the weekly query; anything else is
	// the plain day leaderboard.
	var out DayScoresResponse
	if status := getJSON(t, srv.URL+"/api/scores?week=false", &out); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if out.Day != 5 {
		t.Errorf("week=false day = %d, want today's leaderboard", out.Day)
	}
}

func TestGetScoresDefaultLimit(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	for i := 0; i < 15; i++ {
		body := fmt.Sprintf(`{"seed":"SEED0005","day_number":5,"player_name":"p%d","score":%d}`, i, 100*(i+1))
		resp, err := http.Post(srv.URL+"/api/scores", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST error = %v", err)
		}
		resp.Body.Close()
	}

	var out DayScoresResponse
	if status := getJSON(t, srv.URL+"/api/scores?day=5", &out); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(out.Scores) != 10 {
		t.Errorf("default leaderboard size = %d, want top 10", len(out.Scores))
	}
	if out.Scores[0].Score != 1500 {
		t.Errorf("top score = %d, want 1500", out.Scores[0].Score)
	}
}

func TestGetScoresLockedDay(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	if status := getJSON(t, srv.URL+"/api/scores?day=6", nil); status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", status)
	}
	if status := getJSON(t, srv.URL+"/api/scores?day=bogus", nil); status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestGetDayQR(t *testing.T) {
	srv, _ := newTestServer(t, 5)

	resp, err := http.Get(srv.URL + "/api/days/3/qr")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %s, want image/png", ct)
	}

	// Tomorrow is locked, no QR
	if status := getJSON(t, srv.URL+"/api/days/6/qr", nil); status != http.StatusBadRequest {
		t.Errorf("locked day QR status = %d, want 400", status)
	}
}

func TestReloadRitualAuth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "daily_ritual.json")
	if err := ritual.WriteArtifact(path, buildSchedule(10)); err != nil {
		t.Fatalf("WriteArtifact() error = %v", err)
	}
	sched, err := services.NewScheduleService(testLogger(), path, testEpochFor(5))
	if err != nil {
		t.Fatalf("NewScheduleService() error = %v", err)
	}
	repo := testutil.NewTestRepository(t)
	lb := services.NewLeaderboardService(testLogger(), repo, sched, nil)
	srv := httptest.NewServer(NewForTesting(sched, lb).Router())
	t.Cleanup(srv.Close)

	// No token
	resp, err := http.Post(srv.URL+"/api/admin/reload-ritual", "application/json", nil)
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", resp.StatusCode)
	}

	// With token
	req, _ := http.NewRequest("POST", srv.URL+"/api/admin/reload-ritual", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("authenticated status = %d, want 200", resp.StatusCode)
	}
	var out ReloadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if out.Horizon != 10 {
		t.Errorf("horizon = %d, want 10", out.Horizon)
	}
}
