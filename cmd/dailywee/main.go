package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pifreak/dailywee/internal/app"
	"github.com/pifreak/dailywee/internal/auth"
	"github.com/pifreak/dailywee/internal/config"
	"github.com/pifreak/dailywee/internal/logger"
	"github.com/pifreak/dailywee/web"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Flags override the environment
	port := flag.Int("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	ritualPath := flag.String("ritual", cfg.RitualPath, "Baked schedule artifact path")
	logLevel := flag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	adminToken := flag.String("admintoken", cfg.AdminToken, "Admin API token (auto-generated if not set)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `The Daily Wee - daily seed schedule and leaderboard server

Usage:
  dailywee [options]

Options:
  -port int        HTTP server port (default %d)
  -db string       SQLite database path (default %q)
  -ritual string   Baked schedule artifact path (default %q)
  -loglevel str    Log level: debug, info, warn, error (default %q)
  -admintoken str  Admin API token (auto-generated if not set)
  -version         Show version and exit
  -help            Show this help message

Environment:
  PORT, DB_PATH, RITUAL_PATH, LOG_LEVEL, EPOCH, ADMIN_TOKEN,
  SEED_MOCK_SCORES=1. A .env file in the working directory is honored.

Examples:
  dailywee                            # Serve on port 8080
  dailywee -port 80 -db prod.db       # Production example
  dailywee -ritual /data/ritual.json  # Use custom schedule artifact

`, cfg.Port, cfg.DBPath, cfg.RitualPath, cfg.LogLevel)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("dailywee %s\n", version)
		os.Exit(0)
	}

	cfg.Port = *port
	cfg.DBPath = *dbPath
	cfg.RitualPath = *ritualPath
	cfg.LogLevel = *logLevel

	token := *adminToken
	if token == "" {
		token = auth.GenerateToken()
	}
	adminAuth := auth.New(token)

	appLog := logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))

	a, err := app.New(appLog, cfg, web.GetTemplatesFS(), web.GetStaticFS(), adminAuth)
	if err != nil {
		log.Fatal("Failed to initialize application: ", err)
	}
	defer a.Close()

	appLog.Info("Admin token", "token", token)
	appLog.Info("Epoch", "epoch", cfg.Epoch)

	addr := fmt.Sprintf(":%d", cfg.Port)
	if err := a.Run(addr); err != nil {
		log.Fatal(err)
	}
}
