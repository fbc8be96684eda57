// Package timecode parses the free-text time formats used by the scheduler:
// break timecodes ("H:MM:SS.ss"), and grid clock strings ("h:mm AM/PM").
// Break timecodes are human input and must never fail hard; unparseable
// text parses to zero and gets filtered out upstream.
package timecode

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// ParseTimecode converts a timecode string into seconds. Accepted forms are
// "H:MM:SS.ss", "MM:SS", and a bare number of seconds. Whitespace is trimmed.
// Anything unparseable yields 0.
func ParseTimecode(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	parts := strings.Split(text, ":")
	switch len(parts) {
	case 1:
		return parseNumber(parts[0])
	case 2:
		minutes := parseNumber(parts[0])
		seconds := parseNumber(parts[1])
		return minutes*60 + seconds
	case 3:
		hours := parseNumber(parts[0])
		minutes := parseNumber(parts[1])
		seconds := parseNumber(parts[2])
		return hours*3600 + minutes*60 + seconds
	default:
		return 0
	}
}

// ParseBreaks splits a comma-separated break list into sorted seconds.
// Invalid and non-positive entries are dropped. Blank input yields an empty
// slice, never nil dereferences downstream.
func ParseBreaks(text string) []float64 {
	breaks := make([]float64, 0)
	if strings.TrimSpace(text) == "" {
		return breaks
	}

	for _, part := range strings.Split(text, ",") {
		seconds := ParseTimecode(part)
		if seconds > 0 {
			breaks = append(breaks, seconds)
		}
	}

	sort.Float64s(breaks)
	return breaks
}

// ParseClock parses a grid clock string like "8:00 PM" into 24-hour
// hour and minute. "12 AM" maps to hour 0 and "12 PM" to hour 12.
func ParseClock(text string) (hour, minute int, err error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q", text)
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q", text)
	}

	hour, err = strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q: %w", text, err)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q: %w", text, err)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock time out of range %q", text)
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("invalid meridiem in %q", text)
	}

	return hour, minute, nil
}

// ClockSeconds converts a grid clock string into seconds since midnight
func ClockSeconds(text string) (int, error) {
	hour, minute, err := ParseClock(text)
	if err != nil {
		return 0, err
	}
	return hour*3600 + minute*60, nil
}

// BlockDuration computes the scheduled length of a grid block. When the end
// clock does not follow the start clock within the same day the block spans
// midnight and a day is added.
func BlockDuration(startTime, endTime string) (time.Duration, error) {
	start, err := ClockSeconds(startTime)
	if err != nil {
		return 0, fmt.Errorf("invalid block start: %w", err)
	}
	end, err := ClockSeconds(endTime)
	if err != nil {
		return 0, fmt.Errorf("invalid block end: %w", err)
	}

	seconds := end - start
	if seconds <= 0 {
		seconds += secondsPerDay
	}
	return time.Duration(seconds) * time.Second, nil
}

// BlockEnd computes the next instant at which the given end clock occurs,
// relative to now. An end clock that has already passed today rolls forward
// one day so overnight blocks resolve to the correct end instant.
func BlockEnd(endTime string, now time.Time) (time.Time, error) {
	hour, minute, err := ParseClock(endTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid block end: %w", err)
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !end.After(now) {
		end = end.AddDate(0, 0, 1)
	}
	return end, nil
}

// parseNumber parses a decimal number, returning 0 for anything invalid
func parseNumber(text string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
