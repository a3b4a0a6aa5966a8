package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/pifreak/dailywee/internal/auth"
	"github.com/pifreak/dailywee/internal/services"
	"github.com/pifreak/dailywee/internal/websocket"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// Templates holds all parsed HTML templates
type Templates struct {
	Index *template.Template
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Schedule     services.ScheduleServicer
	Leaderboard  services.LeaderboardServicer
	Auth         *auth.Auth
	Hub          *websocket.Hub
	Log          HTTPLogger
	templates    *Templates
	staticServer http.Handler
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	schedule services.ScheduleServicer,
	leaderboard services.LeaderboardServicer,
	templatesFS fs.FS,
	staticServer http.Handler,
	adminAuth *auth.Auth,
	hub *websocket.Hub,
	log HTTPLogger,
) (*Handlers, error) {
	templates, err := loadTemplates(templatesFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Handlers{
		Schedule:     schedule,
		Leaderboard:  leaderboard,
		Auth:         adminAuth,
		Hub:          hub,
		Log:          log,
		templates:    templates,
		staticServer: staticServer,
	}, nil
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance without loading templates (for testing API endpoints)
func NewForTesting(
	schedule services.ScheduleServicer,
	leaderboard services.LeaderboardServicer,
) *Handlers {
	return &Handlers{
		Schedule:    schedule,
		Leaderboard: leaderboard,
		Auth:        auth.New("test-token"),
		Log:         NoopHTTPLogger{},
		// templates left nil - API endpoints don't use templates
	}
}

// loadTemplates parses all templates once at startup
func loadTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{}
	var err error

	if t.Index, err = template.ParseFS(templatesFS, "index.html"); err != nil {
		return nil, fmt.Errorf("index template: %w", err)
	}

	return t, nil
}
