package occurrence

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
)

// GracePeriod is the backward tolerance for reminder fire times: a reminder
// whose fire time is up to this far in the past is still admitted, covering
// a save racing against an imminently due reminder.
const GracePeriod = 60 * time.Second

// ReminderFire is a concrete reminder delivery computed for one occurrence.
// ID is stable per (item, reminder index) so that collaborators can cancel
// a previously scheduled entry before rescheduling.
type ReminderFire struct {
	ID      string
	FireAt  time.Time
	Message string
}

// ReminderID returns the stable identifier for the idx-th reminder of an item.
func ReminderID(itemID string, idx int) string {
	return fmt.Sprintf("%s-reminder-%d", itemID, idx)
}

// ReminderFireTimes derives concrete fire times for every reminder spec on
// the item against the given occurrence start. Entries whose fire time falls
// more than GracePeriod before now are silently dropped, as are non-positive
// offsets.
func ReminderFireTimes(item *domain.ScheduleItem, eventStart, now time.Time) []ReminderFire {
	var fires []ReminderFire
	for i, rem := range item.Reminders {
		if rem.OffsetMin <= 0 {
			continue
		}
		fireAt := eventStart.Add(-time.Duration(rem.OffsetMin) * time.Minute)
		if !fireAt.After(now.Add(-GracePeriod)) {
			continue
		}

		timeUntil := int(math.Round(eventStart.Sub(fireAt).Minutes()))
		plural := "s"
		if timeUntil == 1 {
			plural = ""
		}
		fires = append(fires, ReminderFire{
			ID:     ReminderID(item.ID, i),
			FireAt: fireAt,
			Message: fmt.Sprintf("%s starts in %d minute%s at %s",
				item.Subject, timeUntil, plural, FormatTime12Hour(item.StartTime)),
		})
	}
	return fires
}
