package backup

import (
	"fmt"
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/occurrence"
)

// ValidateSchema checks a snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSchema(schema *Schema) []error {
	var errs []error

	if schema.Version != SchemaVersion {
		errs = append(errs, fmt.Errorf("version: unsupported snapshot version %d (expected %d)", schema.Version, SchemaVersion))
	}

	seen := make(map[string]bool)
	for i, item := range schema.Items {
		errs = append(errs, validateItem(i, &item, seen)...)
	}

	if schema.Preferences != nil {
		if v := schema.Preferences.DefaultView; v != "" && v != "daily" && v != "weekly" {
			errs = append(errs, fmt.Errorf("preferences.default_view: invalid value %q", v))
		}
	}

	return errs
}

func validateItem(i int, item *ItemExport, seen map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("items[%d]", i)

	if item.ID != "" {
		if seen[item.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, item.ID))
		}
		seen[item.ID] = true
	}

	if item.Subject == "" {
		errs = append(errs, fmt.Errorf("%s.subject is required", prefix))
	}
	if item.Category != "" && !domain.ValidCategories[item.Category] {
		errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, item.Category))
	}
	if item.Repeat != "" && !domain.ValidRepeats[item.Repeat] {
		errs = append(errs, fmt.Errorf("%s.repeat: invalid value %q", prefix, item.Repeat))
	}
	if item.RepeatDay != "" && !domain.ValidWeekdays[item.RepeatDay] {
		errs = append(errs, fmt.Errorf("%s.repeat_day: invalid value %q", prefix, item.RepeatDay))
	}
	if item.Repeat == string(domain.RepeatWeekly) && item.RepeatDay == "" {
		errs = append(errs, fmt.Errorf("%s.repeat_day is required for weekly items", prefix))
	}

	errs = append(errs, validateClock(prefix+".start_time", item.StartTime)...)
	errs = append(errs, validateClock(prefix+".end_time", item.EndTime)...)
	if item.EndTime != "" && item.StartTime == "" {
		errs = append(errs, fmt.Errorf("%s.end_time requires a start_time", prefix))
	}

	if item.Date != nil && *item.Date != "" {
		if _, err := time.Parse("2006-01-02", *item.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, *item.Date))
		}
	}

	for j, rem := range item.Reminders {
		if rem.OffsetMin <= 0 {
			errs = append(errs, fmt.Errorf("%s.reminders[%d].offset_min must be positive", prefix, j))
		}
	}

	return errs
}

func validateClock(field, clock string) []error {
	if clock == "" {
		return nil
	}
	if _, _, ok := occurrence.ParseClock(clock); !ok {
		return []error{fmt.Errorf("%s: invalid time %q (expected HH:MM)", field, clock)}
	}
	return nil
}
