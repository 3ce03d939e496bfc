// Package notify schedules and delivers local notifications for timed
// items: one delivery at the start of the next occurrence, plus one per
// configured reminder offset.
package notify

import (
	"fmt"
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/occurrence"
	"github.com/alexanderramin/agenda/internal/repository"
)

// PlanItem computes every pending notification for a single item relative
// to now. Items without a start time, and items whose rules yield no future
// occurrence, plan nothing. IDs are stable per item and reminder index, so
// replanning the same item yields the same IDs and upserts overwrite in
// place instead of duplicating.
func PlanItem(item *domain.ScheduleItem, now time.Time) []*repository.ScheduledNotification {
	if !item.HasStartTime() {
		return nil
	}
	next, ok := occurrence.Next(item, now)
	if !ok {
		return nil
	}

	planned := []*repository.ScheduledNotification{{
		ID:        item.ID,
		ItemID:    item.ID,
		Title:     item.Subject,
		Body:      fmt.Sprintf("Starting now at %s", occurrence.FormatTime12Hour(item.StartTime)),
		FireAt:    next,
		CreatedAt: now,
	}}

	for _, fire := range occurrence.ReminderFireTimes(item, next, now) {
		planned = append(planned, &repository.ScheduledNotification{
			ID:        fire.ID,
			ItemID:    item.ID,
			Title:     item.Subject,
			Body:      fire.Message,
			FireAt:    fire.FireAt,
			CreatedAt: now,
		})
	}
	return planned
}
