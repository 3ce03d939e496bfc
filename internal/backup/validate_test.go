package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSnapshot() *Schema {
	date := "2025-06-20"
	return &Schema{
		Version: SchemaVersion,
		Items: []ItemExport{
			{
				ID:        "ev1",
				Subject:   "Maths",
				Category:  "event",
				StartTime: "08:30",
				EndTime:   "09:15",
				Repeat:    "Weekly",
				RepeatDay: "Friday",
				Reminders: []ReminderExport{{OffsetMin: 15, Label: "Pack bag"}},
			},
			{
				Subject: "Dentist",
				Repeat:  "Never",
				Date:    &date,
			},
		},
		Preferences: &PreferencesExport{NotifyEnabled: true, DefaultView: "weekly"},
	}
}

func TestValidateSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateSchema(validSnapshot()))
}

func TestValidateSchema_Errors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Schema)
		wantSub string
	}{
		{"wrong version", func(s *Schema) { s.Version = 99 }, "unsupported snapshot version"},
		{"missing subject", func(s *Schema) { s.Items[0].Subject = "" }, "subject is required"},
		{"bad category", func(s *Schema) { s.Items[0].Category = "meeting" }, "category"},
		{"bad repeat", func(s *Schema) { s.Items[0].Repeat = "Hourly" }, "repeat"},
		{"bad repeat day", func(s *Schema) { s.Items[0].RepeatDay = "Funday" }, "repeat_day"},
		{"weekly without day", func(s *Schema) { s.Items[0].RepeatDay = "" }, "repeat_day is required"},
		{"bad start time", func(s *Schema) { s.Items[0].StartTime = "8:3" }, "start_time"},
		{"end without start", func(s *Schema) { s.Items[0].StartTime = ""; s.Items[0].Repeat = "Daily" }, "end_time requires"},
		{"bad date", func(s *Schema) { bad := "20-06-2025"; s.Items[1].Date = &bad }, "invalid date format"},
		{"duplicate id", func(s *Schema) { s.Items[1].ID = "ev1" }, "duplicate id"},
		{"zero reminder offset", func(s *Schema) { s.Items[0].Reminders[0].OffsetMin = 0 }, "offset_min must be positive"},
		{"bad default view", func(s *Schema) { s.Preferences.DefaultView = "monthly" }, "default_view"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSnapshot()
			tc.mutate(s)
			errs := ValidateSchema(s)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tc.wantSub)
		})
	}
}

func TestValidateSchema_AccumulatesAllErrors(t *testing.T) {
	s := validSnapshot()
	s.Items[0].Subject = ""
	s.Items[0].Repeat = "Hourly"
	s.Items[1].Subject = ""

	errs := ValidateSchema(s)
	assert.Len(t, errs, 3)
}
