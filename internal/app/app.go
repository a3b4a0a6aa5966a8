// Package app wires the repository, services, hub and handlers
// together into a runnable server.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pifreak/dailywee/internal/auth"
	"github.com/pifreak/dailywee/internal/config"
	"github.com/pifreak/dailywee/internal/handlers"
	"github.com/pifreak/dailywee/internal/logger"
	"github.com/pifreak/dailywee/internal/repository"
	"github.com/pifreak/dailywee/internal/services"
	"github.com/pifreak/dailywee/internal/websocket"
)

// App holds all application dependencies
type App struct {
	log           logger.Logger
	handlers      *handlers.Handlers
	repo          *repository.Repository
	cancelWatcher context.CancelFunc
}

// New creates and initializes a new application instance
func New(log logger.Logger, cfg *config.Config, templatesFS, staticFS fs.FS, adminAuth *auth.Auth) (*App, error) {
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	scheduleService, err := services.NewScheduleService(log, cfg.RitualPath, cfg.Epoch)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	// WebSocket hub announces score submissions and day rollovers
	hub := websocket.New(log, scheduleService)
	hub.Start()

	leaderboardService := services.NewLeaderboardService(log, repo, scheduleService, hub)

	if cfg.SeedMockScores {
		n, err := leaderboardService.SeedMockScores(context.Background())
		if err != nil {
			log.Warn("Mock score seeding failed", "error", err)
		} else {
			log.Info("Mock scores seeded", "count", n)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go hub.StartDayRollover(ctx)

	staticServer := handlers.NewStaticServer(staticFS)

	h, err := handlers.New(
		scheduleService,
		leaderboardService,
		templatesFS,
		staticServer,
		adminAuth,
		hub,
		log,
	)
	if err != nil {
		cancel()
		repo.Close()
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		log:           log,
		handlers:      h,
		repo:          repo,
		cancelWatcher: cancel,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close performs graceful shutdown of app resources
func (a *App) Close() {
	if a.cancelWatcher != nil {
		a.cancelWatcher()
	}
	if a.repo != nil {
		a.repo.Close()
	}
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	a.log.Info("Server starting", "addr", addr)
	return http.ListenAndServe(addr, a.Router())
}
