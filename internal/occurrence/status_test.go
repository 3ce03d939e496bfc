package occurrence

import (
	"testing"
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatus_StartsInUnderAnHour(t *testing.T) {
	// Weekly Friday 08:30-09:15 evaluated on that Friday at 08:00.
	got := Status(weeklyFriday(), friday, friday.Add(8*time.Hour))
	assert.Equal(t, "Starts in 0h 30m", got)
}

func TestStatus_InProgress(t *testing.T) {
	got := Status(weeklyFriday(), friday, friday.Add(8*time.Hour+45*time.Minute))
	assert.Equal(t, "In Progress", got)
}

func TestStatus_AfterEndShowsNextOccurrence(t *testing.T) {
	// 09:20 on Friday: the event is over, next start is next Friday 08:30,
	// 6 days and 23 hours away (floored).
	got := Status(weeklyFriday(), friday, friday.Add(9*time.Hour+20*time.Minute))
	assert.Equal(t, "Next: 6d 23h", got)
}

func TestStatus_Boundaries(t *testing.T) {
	item := weeklyFriday()
	start := friday.Add(8*time.Hour + 30*time.Minute)
	end := friday.Add(9*time.Hour + 15*time.Minute)

	// Start-inclusive: "In Progress" begins exactly at the start.
	assert.Equal(t, "In Progress", Status(item, friday, start))
	assert.Equal(t, "In Progress", Status(item, friday, end.Add(-time.Second)))

	// End-exclusive: at the end instant the status flips to the next branch.
	got := Status(item, friday, end)
	assert.NotEqual(t, "In Progress", got)
	assert.Contains(t, got, "Next:")
}

func TestStatus_StartsInHoursAndMinutes(t *testing.T) {
	got := Status(weeklyFriday(), friday, friday.Add(5*time.Hour+15*time.Minute))
	assert.Equal(t, "Starts in 3h 15m", got)
}

func TestStatus_StartsInDays(t *testing.T) {
	// Evaluated against Friday's occurrence from Tuesday noon: ~2.85 days out.
	now := friday.AddDate(0, 0, -3).Add(12 * time.Hour)
	got := Status(weeklyFriday(), friday, now)
	assert.Equal(t, "Starts in 2 days", got)
}

func TestStatus_Exactly24HoursOutUsesHourForm(t *testing.T) {
	// diffHrs == 24 is not "> 24": stays in the h/m form.
	now := friday.AddDate(0, 0, -1).Add(8*time.Hour + 30*time.Minute)
	got := Status(weeklyFriday(), friday, now)
	assert.Equal(t, "Starts in 24h 0m", got)
}

func TestStatus_MinutesOnlyUnderOneHour(t *testing.T) {
	got := Status(weeklyFriday(), friday, friday.Add(8*time.Hour+29*time.Minute))
	assert.Equal(t, "Starts in 1m", got)
}

func TestStatus_FinishedWhenNoNextOccurrence(t *testing.T) {
	date := friday
	item := &domain.ScheduleItem{
		Subject:   "Dentist",
		Repeat:    domain.RepeatNever,
		Date:      &date,
		StartTime: "08:30",
		EndTime:   "09:15",
	}
	got := Status(item, friday, friday.Add(10*time.Hour))
	assert.Equal(t, "Finished", got)
}

func TestStatus_DailyNextOmitsZeroDayToken(t *testing.T) {
	item := &domain.ScheduleItem{Repeat: domain.RepeatDaily, StartTime: "07:00", EndTime: "07:30"}
	// Friday 08:00: next is Saturday 07:00, 23 hours away: no day token.
	got := Status(item, friday, friday.Add(8*time.Hour))
	assert.Equal(t, "Next: 23h", got)
}

func TestStatus_EndDefaultsToStartPlusOneHour(t *testing.T) {
	item := &domain.ScheduleItem{Repeat: domain.RepeatDaily, StartTime: "08:30"}

	assert.Equal(t, "In Progress", Status(item, friday, friday.Add(9*time.Hour+15*time.Minute)))
	assert.NotEqual(t, "In Progress", Status(item, friday, friday.Add(9*time.Hour+30*time.Minute)))
}

func TestStatus_NoStartTimeNoStatus(t *testing.T) {
	item := &domain.ScheduleItem{Category: domain.CategoryHabit, Repeat: domain.RepeatDaily}
	assert.Equal(t, "", Status(item, friday, friday))
}
