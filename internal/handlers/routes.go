package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// Static files (served from embedded filesystem)
	r.Handle("/static/*", http.StripPrefix("/static/", h.staticServer))

	// Home page
	r.Get("/", h.handleIndex)

	// WebSocket
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	// Daily seed (public)
	r.Get("/api/ritual", h.handleRitualToday)
	r.Get("/api/ritual/{day}", h.handleRitualDay)
	r.Get("/api/days/{day}/qr", h.handleDayQR)

	// Leaderboard (public)
	r.Get("/api/scores", h.handleGetScores)
	r.Post("/api/scores", h.handleSubmitScore)

	// Admin API (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAuthAPI)
		r.Post("/api/admin/reload-ritual", h.handleReloadRitual)
	})

	return r
}
