package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/occurrence"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func agendaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	if _, _, ok := occurrence.ParseClock(s); !ok {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOffsetList(s string) error {
	if s == "" {
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return fmt.Errorf("expected positive minutes, comma separated")
		}
	}
	return nil
}

// runItemForm collects an item interactively and fills the given struct.
func runItemForm(item *domain.ScheduleItem) error {
	category := string(domain.CategoryEvent)
	repeat := string(domain.RepeatNever)
	var start, end, day, date, offsets string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("Maths class").
				Value(&item.Subject).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("subject is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(
					huh.NewOption("Event", string(domain.CategoryEvent)),
					huh.NewOption("Task", string(domain.CategoryTask)),
					huh.NewOption("Habit", string(domain.CategoryHabit)),
				).
				Value(&category),
			huh.NewSelect[string]().
				Title("Repeat").
				Options(
					huh.NewOption("Never", string(domain.RepeatNever)),
					huh.NewOption("Daily", string(domain.RepeatDaily)),
					huh.NewOption("Weekly", string(domain.RepeatWeekly)),
					huh.NewOption("Bi-weekly", string(domain.RepeatBiweekly)),
					huh.NewOption("Monthly", string(domain.RepeatMonthly)),
				).
				Value(&repeat),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start time (HH:MM, blank for none)").
				Placeholder("08:30").
				Value(&start).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("End time (HH:MM, blank for none)").
				Placeholder("09:15").
				Value(&end).
				Validate(validateOptionalClock),
			huh.NewSelect[string]().
				Title("Weekday (for weekly items)").
				Options(weekdayOptions()...).
				Value(&day),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, blank for none)").
				Placeholder("2025-06-30").
				Value(&date).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Reminders (minutes before start, comma separated)").
				Placeholder("15,60").
				Value(&offsets).
				Validate(validateOffsetList),
		),
	).WithTheme(agendaHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	item.Category = domain.Category(category)
	item.Repeat = domain.Repeat(repeat)
	item.StartTime = start
	item.EndTime = end
	item.RepeatDay = day
	if date != "" {
		d, err := time.Parse(dateLayout, date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", date, err)
		}
		item.Date = &d
	}
	if offsets != "" {
		for _, part := range strings.Split(offsets, ",") {
			n, _ := strconv.Atoi(strings.TrimSpace(part))
			item.Reminders = append(item.Reminders, domain.Reminder{OffsetMin: n})
		}
	}
	return nil
}

func weekdayOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("None", "")}
	for _, name := range domain.WeekdayNames {
		opts = append(opts, huh.NewOption(name, name))
	}
	return opts
}
