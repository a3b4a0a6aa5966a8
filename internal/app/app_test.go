package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/pifreak/dailywee/internal/auth"
	"github.com/pifreak/dailywee/internal/config"
	"github.com/pifreak/dailywee/internal/logger"
	"github.com/pifreak/dailywee/internal/ritual"
	"github.com/pifreak/dailywee/web"
)

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()

	a, err := New(logger.NewWithLevel(logger.ParseLevel("error")), cfg, web.GetTemplatesFS(), web.GetStaticFS(), auth.New("test-token"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	schedule := make(ritual.Schedule, 0, 30)
	for day := 1; day <= 30; day++ {
		schedule = append(schedule, &ritual.Entry{
			ID:      "TESTSEED",
			Theme:   "Twosday",
			Joker:   "Joker",
			Metrics: map[string]int{"s": 100, "w": 1},
		})
	}
	path := filepath.Join(dir, "daily_ritual.json")
	if err := ritual.WriteArtifact(path, schedule); err != nil {
		t.Fatalf("WriteArtifact() error = %v", err)
	}

	return &config.Config{
		DBPath:     filepath.Join(dir, "test.db"),
		RitualPath: path,
		// Three days into the schedule
		Epoch: time.Now().UTC().Add(-49 * time.Hour),
	}
}

func TestAppServesRitualAndScores(t *testing.T) {
	a := newTestApp(t, testConfig(t))
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/ritual")
	if err != nil {
		t.Fatalf("GET /api/ritual error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /api/ritual status = %d, want 200", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/scores")
	if err != nil {
		t.Fatalf("GET /api/scores error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /api/scores status = %d, want 200", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET / error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET / status = %d, want 200", resp.StatusCode)
	}
}

func TestAppSeedsMockScores(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedMockScores = true
	a := newTestApp(t, cfg)
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/scores?day=1")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAppFailsWithoutArtifact(t *testing.T) {
	cfg := testConfig(t)
	cfg.RitualPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := New(logger.NewWithLevel(logger.ParseLevel("error")), cfg, web.GetTemplatesFS(), web.GetStaticFS(), auth.New("t"))
	if err == nil {
		t.Error("New() without a schedule artifact should fail")
	}
}
