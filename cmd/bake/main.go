// Command bake turns a seed catalog CSV into the daily schedule
// artifact the server publishes. It is deterministic: rebaking an
// unchanged catalog rewrites the file byte for byte.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pifreak/dailywee/internal/config"
	"github.com/pifreak/dailywee/internal/logger"
	"github.com/pifreak/dailywee/internal/ritual"
)

func main() {
	seeds := flag.String("seeds", "seeds.csv", "Seed catalog CSV path")
	out := flag.String("out", "daily_ritual.json", "Output artifact path")
	epochStr := flag.String("epoch", config.DefaultEpoch, "Day 1 instant (RFC 3339, UTC)")
	horizon := flag.Int("days", ritual.DefaultHorizon, "Number of days to bake")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `bake - generate the daily seed schedule

Usage:
  bake [options]

Options:
  -seeds string    Seed catalog CSV path (default "seeds.csv")
  -out string      Output artifact path (default "daily_ritual.json")
  -epoch string    Day 1 instant, RFC 3339 (default %q)
  -days int        Number of days to bake (default %d)
  -loglevel str    Log level: debug, info, warn, error (default "info")

Examples:
  bake -seeds catalog.csv -out web/daily_ritual.json
  bake -days 730                     # Bake two years ahead

`, config.DefaultEpoch, ritual.DefaultHorizon)
	}

	flag.Parse()

	log := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	epoch, err := time.Parse(time.RFC3339, *epochStr)
	if err != nil {
		log.Error("Invalid epoch", "value", *epochStr, "error", err)
		os.Exit(1)
	}
	if *horizon < 1 {
		log.Error("Horizon must be at least one day", "days", *horizon)
		os.Exit(1)
	}

	pool, err := ritual.LoadPoolFile(*seeds, log)
	if err != nil {
		log.Error("Failed to load seed catalog", "path", *seeds, "error", err)
		os.Exit(1)
	}
	log.Info("Seed catalog loaded", "seeds", pool.Size(), "skipped", pool.Skipped())

	schedule := ritual.NewGenerator(log).Generate(pool, ritual.DefaultThemes(), epoch.UTC(), *horizon)

	if err := ritual.WriteArtifact(*out, schedule); err != nil {
		log.Error("Failed to write schedule artifact", "path", *out, "error", err)
		os.Exit(1)
	}
	log.Info("Schedule baked", "path", *out, "horizon", schedule.Horizon(), "epoch", epoch.UTC())
}
