package ritual

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/pifreak/dailywee/internal/errors"
	"github.com/pifreak/dailywee/internal/logger"
)

// metricColumns maps catalog CSV headers to the short keys used on the
// wire. Headers already in short form pass through untouched.
var metricColumns = map[string]string{
	"score":            "s",
	"twos":             "w",
	"WeeJoker_Ante1":   "wj1",
	"WeeJoker_Ante2":   "wj2",
	"HanginChad_Ante1": "hc1",
	"HanginChad_Ante2": "hc2",
	"Hack_Ante1":       "hk1",
	"Hack_Ante2":       "hk2",
	"blueprint_early":  "bp",
	"brainstorm_early": "bs",
	"Showman_Ante1":    "sh",
	"red_Seal_Two":     "rs",
	"Theme_Card_Ante1": "t1",
	"Theme_Card_Ante2": "t2",
}

// SeedRecord is one catalog row: a seed, the bucket it prefers, optional
// per-seed theme overrides, and its precomputed stats.
type SeedRecord struct {
	ID      string
	Bucket  string
	Theme   string
	Joker   string
	Metrics map[string]int
}

// Pool holds catalog seeds grouped by weekday bucket. Within a bucket,
// seeds keep their catalog order; the generator's rotation depends on it.
type Pool struct {
	buckets map[string][]SeedRecord
	total   int
	skipped int
}

// Bucket returns the seeds filed under name, nil when the bucket is empty.
func (p *Pool) Bucket(name string) []SeedRecord { return p.buckets[name] }

// Size is the number of usable seeds loaded.
func (p *Pool) Size() int { return p.total }

// Skipped is the number of catalog rows dropped for missing a seed id.
func (p *Pool) Skipped() int { return p.skipped }

// canonicalBucket resolves a catalog affinity value to a known bucket
// name, case-insensitively. Anything unrecognized files under Weekend.
func canonicalBucket(v string) string {
	v = strings.TrimSpace(v)
	for _, name := range BucketNames() {
		if strings.EqualFold(v, name) {
			return name
		}
	}
	return "Weekend"
}

// LoadPool parses a seed catalog CSV. The first row is the header; the
// seed id comes from a "seed" or "id" column and the bucket from "Day".
// Rows without a seed id are skipped with a warning. Column order is
// free and unknown numeric columns become metrics verbatim.
func LoadPool(r io.Reader, log logger.Logger) (*Pool, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, apperrors.Contentf("reading seed catalog header: %v", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	p := &Pool{buckets: make(map[string][]SeedRecord)}
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.Contentf("reading seed catalog row %d: %v", line+1, err)
		}
		line++

		rec := SeedRecord{Metrics: make(map[string]int)}
		bucket := ""
		for i, raw := range row {
			if i >= len(header) {
				break
			}
			val := strings.TrimSpace(raw)
			switch col := header[i]; col {
			case "seed", "id":
				if rec.ID == "" {
					rec.ID = val
				}
			case "Day", "day":
				bucket = val
			case "themeName":
				rec.Theme = val
			case "themeJoker":
				rec.Joker = val
			default:
				key := col
				if short, ok := metricColumns[col]; ok {
					key = short
				}
				if val == "" {
					continue
				}
				n, err := strconv.Atoi(val)
				if err != nil {
					log.Debug("Ignoring non-numeric catalog value", "row", line, "column", col, "value", val)
					continue
				}
				rec.Metrics[key] = n
			}
		}

		if rec.ID == "" {
			p.skipped++
			log.Warn("Skipping catalog row with no seed id", "row", line)
			continue
		}
		rec.Bucket = canonicalBucket(bucket)
		p.buckets[rec.Bucket] = append(p.buckets[rec.Bucket], rec)
		p.total++
	}

	if p.total == 0 {
		return nil, apperrors.Content("seed catalog has no usable seeds")
	}
	return p, nil
}

// LoadPoolFile reads and parses the catalog at path.
func LoadPoolFile(path string, log logger.Logger) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Contentf("opening seed catalog: %v", err)
	}
	defer f.Close()
	return LoadPool(f, log)
}
