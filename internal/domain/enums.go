package domain

type Category string

const (
	CategoryEvent Category = "event"
	CategoryTask  Category = "task"
	CategoryHabit Category = "habit"
)

type Repeat string

const (
	RepeatNever    Repeat = "Never"
	RepeatDaily    Repeat = "Daily"
	RepeatWeekly   Repeat = "Weekly"
	RepeatBiweekly Repeat = "Bi-weekly"
	RepeatMonthly  Repeat = "Monthly"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"event": true, "task": true, "habit": true,
}

// ValidRepeats is the canonical set of accepted repeat strings.
// Bi-weekly and Monthly are stored but have no occurrence behavior.
var ValidRepeats = map[string]bool{
	"Never": true, "Daily": true, "Weekly": true,
	"Bi-weekly": true, "Monthly": true,
}

// WeekdayNames maps day index (Sunday=0 .. Saturday=6) to its English name,
// matching time.Weekday ordering.
var WeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ValidWeekdays is the canonical set of accepted repeat-day strings.
var ValidWeekdays = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

// WeekdayIndex returns the Sunday=0 index for an English weekday name,
// or -1 when the name is not a weekday.
func WeekdayIndex(name string) int {
	for i, n := range WeekdayNames {
		if n == name {
			return i
		}
	}
	return -1
}
