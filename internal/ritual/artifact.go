package ritual

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	apperrors "github.com/pifreak/dailywee/internal/errors"
)

// Entry is one day's published seed. Metrics is an open mapping of short
// stat keys to integers; unknown keys survive a load/store round trip so
// older binaries can serve artifacts baked with newer stat columns.
type Entry struct {
	ID      string
	Theme   string
	Joker   string
	Metrics map[string]int
}

// Metric returns the named stat, zero when absent.
func (e *Entry) Metric(key string) int {
	if e == nil || e.Metrics == nil {
		return 0
	}
	return e.Metrics[key]
}

// MarshalJSON emits the flat wire form: id, t, j, then metric keys with
// "s" and "w" always present and the rest sorted and zero-suppressed.
// Key order is fixed so regenerating an unchanged schedule produces
// byte-identical output.
func (e *Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	writeField(&buf, "id", e.ID)
	buf.WriteByte(',')
	writeField(&buf, "t", e.Theme)
	buf.WriteByte(',')
	writeField(&buf, "j", e.Joker)

	fmt.Fprintf(&buf, ",%q:%d", "s", e.Metrics["s"])
	fmt.Fprintf(&buf, ",%q:%d", "w", e.Metrics["w"])

	keys := make([]string, 0, len(e.Metrics))
	for k := range e.Metrics {
		if k == "s" || k == "w" || e.Metrics[k] == 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&buf, ",%q:%d", k, e.Metrics[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, key, val string) {
	b, _ := json.Marshal(val)
	fmt.Fprintf(buf, "%q:%s", key, b)
}

// UnmarshalJSON accepts the flat wire form. Every key other than id, t
// and j is treated as a numeric metric.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Metrics = make(map[string]int)
	for k, v := range raw {
		switch k {
		case "id":
			if err := json.Unmarshal(v, &e.ID); err != nil {
				return fmt.Errorf("entry id: %w", err)
			}
		case "t":
			if err := json.Unmarshal(v, &e.Theme); err != nil {
				return fmt.Errorf("entry theme: %w", err)
			}
		case "j":
			if err := json.Unmarshal(v, &e.Joker); err != nil {
				return fmt.Errorf("entry joker: %w", err)
			}
		default:
			n, err := strconv.Atoi(string(bytes.TrimSpace(v)))
			if err != nil {
				return fmt.Errorf("entry metric %q: %w", k, err)
			}
			e.Metrics[k] = n
		}
	}
	if e.ID == "" {
		return fmt.Errorf("entry missing id")
	}
	return nil
}

// Schedule is the baked artifact: index 0 is day 1. A nil element means
// that day had no seed available when the schedule was generated.
type Schedule []*Entry

// Entry returns the seed for the given day number and whether one exists.
// Days outside the horizon and null days both report false.
func (s Schedule) Entry(day int) (*Entry, bool) {
	if day < 1 || day > len(s) {
		return nil, false
	}
	e := s[day-1]
	if e == nil {
		return nil, false
	}
	return e, true
}

// Horizon is the number of days the schedule covers.
func (s Schedule) Horizon() int { return len(s) }

// LoadArtifact parses a baked schedule from r.
func LoadArtifact(r io.Reader) (Schedule, error) {
	var s Schedule
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, apperrors.Contentf("parsing schedule artifact: %v", err)
	}
	if len(s) == 0 {
		return nil, apperrors.Content("schedule artifact is empty")
	}
	return s, nil
}

// LoadArtifactFile reads and parses the artifact at path.
func LoadArtifactFile(path string) (Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Contentf("opening schedule artifact: %v", err)
	}
	defer f.Close()
	return LoadArtifact(f)
}

// WriteArtifact writes the schedule to path atomically: the JSON is
// staged in a temp file in the same directory and renamed into place, so
// a reader never observes a partial artifact.
func WriteArtifact(path string, s Schedule) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".daily_ritual-*.json")
	if err != nil {
		return fmt.Errorf("staging schedule: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing schedule: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing schedule: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publishing schedule: %w", err)
	}
	return nil
}
