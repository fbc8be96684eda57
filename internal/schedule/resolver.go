// Package schedule determines which entry of a channel's weekly program grid
// is on the air at any given moment, creating the illusion of a continuously
// broadcasting television channel.
package schedule

import (
	"time"

	"github.com/stwalsh4118/rabbitears/internal/models"
	"github.com/stwalsh4118/rabbitears/internal/timecode"
)

const minutesPerDay = 24 * 60

// ResolveActiveEntry finds the schedule entry that is on the air at the given
// moment. This is a pure function with no I/O - it takes the channel's full
// entry list and returns the active entry or nil when nothing is scheduled
// (static / no signal).
//
// An entry is a candidate when its occurrence pattern covers now's day of week
// and now's wall-clock time falls inside [start, end), with windows that cross
// midnight handled by wrap-around. When more than one entry qualifies (the
// grid editor does not allow overlaps, but storage does not enforce it) the
// first match in stored order wins.
func ResolveActiveEntry(entries []*models.ScheduleEntry, now time.Time) *models.ScheduleEntry {
	dayOfWeek := int(now.Weekday())
	hour, minute := now.Hour(), now.Minute()

	for _, entry := range entries {
		if entry == nil || !entry.ActiveOn(dayOfWeek) {
			continue
		}
		if InWindow(entry.StartTime, entry.EndTime, hour, minute) {
			return entry
		}
	}
	return nil
}

// InWindow reports whether the wall-clock time hour:minute falls inside the
// [start, end) window given by two grid clock strings. A window whose end
// precedes its start spans midnight: times at or after the start OR before
// the end both qualify.
func InWindow(startTime, endTime string, hour, minute int) bool {
	startH, startM, err := timecode.ParseClock(startTime)
	if err != nil {
		return false
	}
	endH, endM, err := timecode.ParseClock(endTime)
	if err != nil {
		return false
	}

	current := hour*60 + minute
	start := startH*60 + startM
	end := endH*60 + endM

	if end < start {
		return current >= start || current < end
	}
	return current >= start && current < end
}

// StartOffset computes how far into the entry's window the given moment is.
// A viewer tuning in mid-program resumes this many seconds into the file
// rather than starting from the beginning. Deterministic in wall-clock time.
func StartOffset(entry *models.ScheduleEntry, now time.Time) time.Duration {
	startH, startM, err := timecode.ParseClock(entry.StartTime)
	if err != nil {
		return 0
	}

	currentMinutes := now.Hour()*60 + now.Minute()
	startMinutes := startH*60 + startM

	elapsedMinutes := currentMinutes - startMinutes
	if elapsedMinutes < 0 {
		// Window started before midnight and now is past midnight
		elapsedMinutes += minutesPerDay
	}

	return time.Duration(elapsedMinutes)*time.Minute + time.Duration(now.Second())*time.Second
}
