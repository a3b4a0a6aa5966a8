package services

import (
	"sync"
	"time"

	"github.com/pifreak/dailywee/internal/days"
	"github.com/pifreak/dailywee/internal/logger"
	"github.com/pifreak/dailywee/internal/ritual"
)

// ScheduleService serves the baked daily schedule. The schedule is
// loaded once at startup and swapped atomically on reload; reads take
// the lock only long enough to copy the slice header.
type ScheduleService struct {
	log   logger.Logger
	path  string
	epoch time.Time
	now   func() time.Time

	mu       sync.RWMutex
	schedule ritual.Schedule
}

// NewScheduleService loads the schedule artifact at path and serves it.
func NewScheduleService(log logger.Logger, path string, epoch time.Time) (*ScheduleService, error) {
	s := &ScheduleService{
		log:   log,
		path:  path,
		epoch: epoch.UTC(),
		now:   time.Now,
	}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewScheduleServiceFromSchedule serves a pre-built schedule. Used in
// tests and by the bake tool's verification pass.
func NewScheduleServiceFromSchedule(log logger.Logger, schedule ritual.Schedule, epoch time.Time) *ScheduleService {
	return &ScheduleService{
		log:      log,
		epoch:    epoch.UTC(),
		now:      time.Now,
		schedule: schedule,
	}
}

// Reload re-reads the artifact from disk and swaps it in. The previous
// schedule keeps serving until the new one parses cleanly. Returns the
// new horizon.
func (s *ScheduleService) Reload() (int, error) {
	schedule, err := ritual.LoadArtifactFile(s.path)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.schedule = schedule
	s.mu.Unlock()

	s.log.Info("Schedule loaded", "path", s.path, "horizon", schedule.Horizon())
	return schedule.Horizon(), nil
}

func (s *ScheduleService) current() ritual.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedule
}

// Today returns the current day number. Values below 1 mean the epoch
// has not arrived yet.
func (s *ScheduleService) Today() int {
	return days.Number(s.now(), s.epoch)
}

// Epoch returns the instant of day 1.
func (s *ScheduleService) Epoch() time.Time { return s.epoch }

// Horizon returns the number of days the loaded schedule covers.
func (s *ScheduleService) Horizon() int { return s.current().Horizon() }

// Entry returns the published seed for a day, enforcing visibility: a
// day is viewable from its own midnight onward, plus tomorrow as a
// locked preview.
func (s *ScheduleService) Entry(day int) (*ritual.Entry, error) {
	if day < 1 {
		return nil, ErrDayPrelaunch
	}
	today := s.Today()
	if day > today+1 {
		return nil, ErrDayLocked
	}
	entry, ok := s.current().Entry(day)
	if !ok {
		return nil, ErrDayNotFound
	}
	return entry, nil
}

// DayView is the full presentation of one day. Locked days carry theme
// and timing but no seed or stats.
type DayView struct {
	Day          int            `json:"day"`
	Date         time.Time      `json:"date"`
	Label        string         `json:"label"`
	Prelaunch    bool           `json:"prelaunch,omitempty"`
	Locked       bool           `json:"locked,omitempty"`
	IsToday      bool           `json:"is_today"`
	CanGoBack    bool           `json:"can_go_back"`
	CanGoForward bool           `json:"can_go_forward"`
	Theme        string         `json:"theme,omitempty"`
	Joker        string         `json:"joker,omitempty"`
	Seed         string         `json:"seed,omitempty"`
	Metrics      map[string]int `json:"stats,omitempty"`
	UnlocksIn    int            `json:"unlocks_in_seconds,omitempty"`
}

// DayView builds the view for a day. Day 0 is the pre-epoch screen;
// days below 0 or beyond tomorrow are not navigable.
func (s *ScheduleService) DayView(day int) (*DayView, error) {
	if day < 0 {
		return nil, ErrDayPrelaunch
	}
	today := s.Today()
	if day > today+1 {
		return nil, ErrDayLocked
	}

	v := &DayView{
		Day:          day,
		Date:         days.Date(day, s.epoch),
		Label:        days.Label(day, today, s.epoch),
		IsToday:      days.IsToday(day, today),
		CanGoBack:    days.CanGoBack(day),
		CanGoForward: days.CanGoForward(day, today),
	}
	if day == 0 {
		v.Prelaunch = true
		return v, nil
	}

	entry, ok := s.current().Entry(day)
	if !ok {
		return nil, ErrDayNotFound
	}
	v.Theme = entry.Theme
	v.Joker = entry.Joker
	if days.IsLocked(day, today) {
		v.Locked = true
		v.UnlocksIn = int(days.UntilNextMidnight(s.now()).Seconds())
		return v, nil
	}
	v.Seed = entry.ID
	v.Metrics = entry.Metrics
	return v, nil
}
