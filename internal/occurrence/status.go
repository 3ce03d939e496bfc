package occurrence

import (
	"fmt"
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
)

// Display statuses with no countdown component.
const (
	StatusInProgress = "In Progress"
	StatusFinished   = "Finished"
)

// Status classifies an item relative to now, evaluated against the given
// calendar day: a "Starts in ..." countdown before the start, "In Progress"
// within [start, end), and after the end either "Next: ..." (when a future
// occurrence exists) or "Finished". Items without a start time have no
// status; the empty string is returned.
//
// The end defaults to one hour after the start when the item has no end time.
func Status(item *domain.ScheduleItem, day, now time.Time) string {
	start, ok := At(day, item.StartTime)
	if !ok {
		return ""
	}

	if now.Before(start) {
		return startsIn(start.Sub(now))
	}

	end, ok := At(day, item.EndTime)
	if !ok {
		end = start.Add(time.Hour)
	}
	if now.Before(end) {
		return StatusInProgress
	}

	if next, ok := Next(item, now); ok && next.After(now) {
		return nextIn(next.Sub(now))
	}
	return StatusFinished
}

// startsIn formats a positive countdown to the start instant. Above 24 hours
// only whole days are shown; below one hour the hour token is dropped.
func startsIn(diff time.Duration) string {
	diffHrs := int(diff.Hours())
	diffMins := int(diff.Minutes()) % 60

	if diffHrs > 24 {
		return fmt.Sprintf("Starts in %d days", diffHrs/24)
	}
	if diffHrs > 0 {
		return fmt.Sprintf("Starts in %dh %dm", diffHrs, diffMins)
	}
	return fmt.Sprintf("Starts in %dm", diffMins)
}

// nextIn formats the gap to the next occurrence. The day token is omitted
// at zero days, mirroring the mobile app's formatter.
func nextIn(diff time.Duration) string {
	days := int(diff.Hours()) / 24
	hrs := int(diff.Hours()) % 24
	if days > 0 {
		return fmt.Sprintf("Next: %dd %dh", days, hrs)
	}
	return fmt.Sprintf("Next: %dh", hrs)
}
