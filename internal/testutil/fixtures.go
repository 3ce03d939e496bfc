package testutil

import (
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
)

// FixedNow is a pinned reference instant used across tests: Friday 2025-06-20.
var FixedNow = time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)

// NewEvent builds a weekly event with sensible defaults for tests.
func NewEvent(id, subject string) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		ID:        id,
		Subject:   subject,
		Category:  domain.CategoryEvent,
		Repeat:    domain.RepeatWeekly,
		RepeatDay: "Friday",
		StartTime: "08:30",
		EndTime:   "09:15",
		Color:     "#4db6ac",
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
}

// NewTask builds an untimed task.
func NewTask(id, subject string) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		ID:        id,
		Subject:   subject,
		Category:  domain.CategoryTask,
		Repeat:    domain.RepeatNever,
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
}
