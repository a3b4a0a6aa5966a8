package ritual

import (
	"time"

	"github.com/pifreak/dailywee/internal/days"
	"github.com/pifreak/dailywee/internal/logger"
)

// DefaultHorizon is how many days a bake covers.
const DefaultHorizon = 365

// Generator bakes schedules from a seed pool.
type Generator struct {
	log logger.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(log logger.Logger) *Generator {
	return &Generator{log: log}
}

// Generate builds a schedule of horizon days starting at the epoch.
// Selection is pure arithmetic over the pool: day offset N with weekday
// bucket B takes bucket seed N modulo len(B), so short buckets rotate and
// rebaking an unchanged catalog reproduces the schedule exactly. Days
// whose bucket is empty are published as null entries.
func (g *Generator) Generate(pool *Pool, themes ThemeTable, epoch time.Time, horizon int) Schedule {
	schedule := make(Schedule, 0, horizon)
	empty := 0
	for offset := 0; offset < horizon; offset++ {
		date := epoch.UTC().Add(time.Duration(offset) * days.DayLength)
		theme := themes[date.Weekday()]
		bucket := pool.Bucket(theme.Bucket)
		if len(bucket) == 0 {
			if empty == 0 {
				g.log.Warn("No seeds for bucket, publishing null days", "bucket", theme.Bucket, "firstDay", offset+1)
			}
			empty++
			schedule = append(schedule, nil)
			continue
		}
		rec := bucket[offset%len(bucket)]
		entry := &Entry{
			ID:      rec.ID,
			Theme:   theme.Name,
			Joker:   theme.Joker,
			Metrics: rec.Metrics,
		}
		if rec.Theme != "" {
			entry.Theme = rec.Theme
		}
		if rec.Joker != "" {
			entry.Joker = rec.Joker
		}
		schedule = append(schedule, entry)
	}
	if empty > 0 {
		g.log.Warn("Schedule baked with null days", "nullDays", empty, "horizon", horizon)
	}
	return schedule
}
