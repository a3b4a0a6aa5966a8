// Package config loads runtime settings from the environment, with a
// .env file as a convenience for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEpoch is day 1 when EPOCH is not configured.
const DefaultEpoch = "2025-12-15T00:00:00Z"

// Config holds all runtime settings
type Config struct {
	Port           int
	DBPath         string
	RitualPath     string
	LogLevel       string
	Epoch          time.Time
	AdminToken     string
	SeedMockScores bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; real environment
// variables win.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:           8080,
		DBPath:         "dailywee.db",
		RitualPath:     "daily_ritual.json",
		LogLevel:       "info",
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
		SeedMockScores: os.Getenv("SEED_MOCK_SCORES") == "1",
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("RITUAL_PATH"); v != "" {
		cfg.RitualPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	epochStr := os.Getenv("EPOCH")
	if epochStr == "" {
		epochStr = DefaultEpoch
	}
	epoch, err := time.Parse(time.RFC3339, epochStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EPOCH %q: %w", epochStr, err)
	}
	cfg.Epoch = epoch.UTC()

	return cfg, nil
}
