package occurrence

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a zero-padded "HH:MM" 24-hour wall-clock string.
// Returns ok=false for empty or malformed input. Two-digit fields are
// required; lexicographic ordering of stored values depends on it.
func ParseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// At combines a calendar day with a "HH:MM" clock string, seconds zeroed.
func At(day time.Time, clock string) (time.Time, bool) {
	hh, mm, ok := ParseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, day.Location()), true
}

// FormatTime12Hour renders a "HH:MM" string as 12-hour time, e.g. "8:30 AM".
// Malformed input renders as the empty string.
func FormatTime12Hour(clock string) string {
	hh, mm, ok := ParseClock(clock)
	if !ok {
		return ""
	}
	period := "AM"
	if hh >= 12 {
		period = "PM"
	}
	h12 := hh % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, mm, period)
}
