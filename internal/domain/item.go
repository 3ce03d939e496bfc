package domain

import "time"

// Reminder is a single reminder spec on an item: fire OffsetMin minutes
// before the occurrence start.
type Reminder struct {
	OffsetMin int    `json:"offset_min"`
	Label     string `json:"label"`
}

// ScheduleItem is the unified shape for events, tasks, and habits.
// StartTime/EndTime are wall-clock "HH:MM" strings; tasks and habits may
// leave them empty, in which case time-based status does not apply.
type ScheduleItem struct {
	ID       string
	Subject  string
	Category Category

	StartTime string
	EndTime   string

	Repeat    Repeat
	RepeatDay string     // weekday name, used by Weekly (and as legacy fallback)
	Date      *time.Time // explicit calendar date for Never-repeat items

	Color    string
	Location string
	Notes    string

	Reminders []Reminder

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasStartTime reports whether time-of-day logic applies to the item.
func (s *ScheduleItem) HasStartTime() bool {
	return s.StartTime != ""
}
