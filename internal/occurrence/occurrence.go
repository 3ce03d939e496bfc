// Package occurrence computes temporal facts about schedule items: whether
// an item lands on a given calendar day, its next future start, a display
// status, and reminder fire times. All functions are pure; the reference
// instant is always an explicit parameter and is never resampled internally.
package occurrence

import (
	"sort"
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
)

// ActiveOn reports whether item should appear on the given calendar day.
// Daily items are always active; Weekly items match on their repeat day;
// items with an explicit date match that date only. An item whose repeat day
// matches the queried day is shown regardless of repeat value — legacy
// behavior carried over from the mobile app, where un-repeated items with a
// repeat day behave like weekly ones.
func ActiveOn(item *domain.ScheduleItem, day time.Time) bool {
	dayName := domain.WeekdayNames[int(day.Weekday())]
	switch {
	case item.Repeat == domain.RepeatDaily:
		return true
	case item.Repeat == domain.RepeatWeekly && item.RepeatDay == dayName:
		return true
	case item.Date != nil:
		return sameDate(*item.Date, day)
	case item.RepeatDay == dayName:
		return true
	}
	return false
}

// Next returns the next future instant at which the item's start time occurs,
// honoring the repeat rule. The boolean is false when no future occurrence is
// computable: missing or malformed start time, an unknown repeat day, or a
// repeat value without occurrence semantics (Never without a matching day,
// Bi-weekly, Monthly).
func Next(item *domain.ScheduleItem, now time.Time) (time.Time, bool) {
	hh, mm, ok := ParseClock(item.StartTime)
	if !ok {
		return time.Time{}, false
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, now.Location())

	// Later today, if today matches the item's applicability rule.
	if start.After(now) && ActiveOn(item, now) {
		return start, true
	}

	switch item.Repeat {
	case domain.RepeatDaily:
		if !start.After(now) {
			return start.AddDate(0, 0, 1), true
		}
		return start, true

	case domain.RepeatWeekly:
		target := domain.WeekdayIndex(item.RepeatDay)
		if target < 0 {
			return time.Time{}, false
		}
		daysUntil := (target - int(now.Weekday()) + 7) % 7
		if daysUntil == 0 {
			// Today is the day but the time has passed; next week.
			daysUntil = 7
		}
		return start.AddDate(0, 0, daysUntil), true
	}

	return time.Time{}, false
}

// SortActive orders items by ascending start time. The zero-padded "HH:MM"
// format makes lexicographic comparison correct; items without a start time
// sort last.
func SortActive(items []*domain.ScheduleItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].StartTime, items[j].StartTime
		if (a == "") != (b == "") {
			return a != ""
		}
		return a < b
	})
}

// sameDate reports whether two instants fall on the same calendar date,
// ignoring time of day.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
