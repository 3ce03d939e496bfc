package backup

import (
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Snapshot renders the current items and preferences as an exportable schema.
func Snapshot(items []*domain.ScheduleItem, prefs *domain.Preferences, now time.Time) *Schema {
	schema := &Schema{
		Version:    SchemaVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Items:      make([]ItemExport, 0, len(items)),
	}
	for _, item := range items {
		schema.Items = append(schema.Items, exportItem(item))
	}
	if prefs != nil {
		schema.Preferences = &PreferencesExport{
			NotifyEnabled: prefs.NotifyEnabled,
			Sound:         prefs.Sound,
			ReminderTone:  prefs.ReminderTone,
			DefaultView:   prefs.DefaultView,
		}
	}
	return schema
}

func exportItem(item *domain.ScheduleItem) ItemExport {
	out := ItemExport{
		ID:        item.ID,
		Subject:   item.Subject,
		Category:  string(item.Category),
		StartTime: item.StartTime,
		EndTime:   item.EndTime,
		Repeat:    string(item.Repeat),
		RepeatDay: item.RepeatDay,
		Color:     item.Color,
		Location:  item.Location,
		Notes:     item.Notes,
	}
	if item.Date != nil {
		d := item.Date.Format(dateLayout)
		out.Date = &d
	}
	for _, rem := range item.Reminders {
		out.Reminders = append(out.Reminders, ReminderExport{OffsetMin: rem.OffsetMin, Label: rem.Label})
	}
	return out
}

// Restore converts a validated snapshot into domain items and preferences.
// Items without an id get a fresh one, so the same file can be imported
// into multiple databases without colliding.
func Restore(schema *Schema, now time.Time) ([]*domain.ScheduleItem, *domain.Preferences) {
	items := make([]*domain.ScheduleItem, 0, len(schema.Items))
	for i := range schema.Items {
		items = append(items, restoreItem(&schema.Items[i], now))
	}

	var prefs *domain.Preferences
	if schema.Preferences != nil {
		prefs = domain.DefaultPreferences()
		prefs.NotifyEnabled = schema.Preferences.NotifyEnabled
		prefs.Sound = schema.Preferences.Sound
		if schema.Preferences.ReminderTone != "" {
			prefs.ReminderTone = schema.Preferences.ReminderTone
		}
		if schema.Preferences.DefaultView != "" {
			prefs.DefaultView = schema.Preferences.DefaultView
		}
	}
	return items, prefs
}

func restoreItem(in *ItemExport, now time.Time) *domain.ScheduleItem {
	item := &domain.ScheduleItem{
		ID:        in.ID,
		Subject:   in.Subject,
		Category:  domain.Category(in.Category),
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Repeat:    domain.Repeat(in.Repeat),
		RepeatDay: in.RepeatDay,
		Color:     in.Color,
		Location:  in.Location,
		Notes:     in.Notes,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Category == "" {
		item.Category = domain.CategoryEvent
	}
	if item.Repeat == "" {
		item.Repeat = domain.RepeatNever
	}
	if in.Date != nil && *in.Date != "" {
		if d, err := time.Parse(dateLayout, *in.Date); err == nil {
			item.Date = &d
		}
	}
	for _, rem := range in.Reminders {
		item.Reminders = append(item.Reminders, domain.Reminder{OffsetMin: rem.OffsetMin, Label: rem.Label})
	}
	return item
}
