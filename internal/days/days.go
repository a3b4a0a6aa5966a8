// Package days holds the day-counting rules shared by the schedule and the
// leaderboard. Day numbers are counted from a fixed UTC epoch: the epoch
// instant itself is day 1, anything earlier is day 0 or below (the
// pre-launch "weepoch" state). All callers pass now explicitly, so a fixed
// clock makes every boundary testable.
package days

import "time"

// DayLength is one calendar day. Day boundaries fall on UTC midnight.
const DayLength = 24 * time.Hour

// DefaultEpoch is day 1 of the ritual (launch day).
var DefaultEpoch = time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)

// Number returns the 1-based day number for now relative to epoch.
// The epoch instant is day 1; instants before the epoch yield day <= 0.
func Number(now, epoch time.Time) int {
	d := now.UTC().Sub(epoch.UTC())
	q := int(d / DayLength)
	// Integer division truncates toward zero; pre-epoch instants that are
	// not exact day multiples need a true floor (-0.5 days is day 0).
	if d < 0 && d%DayLength != 0 {
		return q
	}
	return q + 1
}

// Date returns the UTC midnight that opens the given day number.
func Date(day int, epoch time.Time) time.Time {
	return epoch.UTC().Add(time.Duration(day-1) * DayLength)
}

// IsPrelaunch reports whether the viewed day is before content publication
// began.
func IsPrelaunch(viewingDay int) bool {
	return viewingDay < 1
}

// IsLocked reports whether the viewed day is strictly in the future.
// Only today+1 is ever reachable as a locked preview.
func IsLocked(viewingDay, today int) bool {
	return viewingDay > today
}

// IsToday reports whether the viewed day is the current day.
func IsToday(viewingDay, today int) bool {
	return viewingDay == today
}

// CanGoBack reports whether backward navigation from viewingDay is allowed.
// Day 0 (the prelaunch marker) is the floor.
func CanGoBack(viewingDay int) bool {
	return viewingDay > 0
}

// CanGoForward reports whether forward navigation from viewingDay is
// allowed. The locked preview of tomorrow is the ceiling.
func CanGoForward(viewingDay, today int) bool {
	return viewingDay < today+1
}

// UntilNextMidnight returns the time remaining until the next UTC day
// boundary, i.e. until the locked preview unlocks.
func UntilNextMidnight(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(DayLength)
	return next.Sub(now)
}

// Label formats a day number for display: the prelaunch marker, the locked
// preview, or the calendar date the day falls on.
func Label(day, today int, epoch time.Time) string {
	switch {
	case day < 1:
		return "EPOCH START"
	case day == today+1:
		return "TOMORROW"
	default:
		return Date(day, epoch).Format("Mon, Jan 2")
	}
}
