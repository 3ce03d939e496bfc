package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/occurrence"
	"github.com/alexanderramin/agenda/internal/service"
)

// FormatDayBoard renders the agenda for a single day inside a bordered box.
func FormatDayBoard(board *service.DayBoard) string {
	title := board.Day.Format("Monday, Jan 2")
	if len(board.Entries) == 0 {
		return RenderBox(title, Dim("Nothing scheduled."))
	}
	return RenderBox(title, renderEntries(board.Entries))
}

// FormatWeek renders seven day boards as a single vertical listing. Days
// with nothing scheduled collapse to a dimmed one-liner.
func FormatWeek(boards []*service.DayBoard, now time.Time) string {
	var b strings.Builder
	for i, board := range boards {
		if i > 0 {
			b.WriteString("\n")
		}
		label := board.Day.Format("Monday, Jan 2")
		if sameDay(board.Day, now) {
			label += "  " + StyleHeader.Render("← today")
		}
		b.WriteString(Header(label))
		b.WriteString("\n")
		if len(board.Entries) == 0 {
			b.WriteString(Dim("  Nothing scheduled.") + "\n")
			continue
		}
		b.WriteString(renderEntries(board.Entries))
	}
	return b.String()
}

func renderEntries(entries []service.AgendaEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %s  %s %s",
			timeRange(e.Item),
			Bold(e.Item.Subject),
			CategoryStyle(e.Item.Category).Render("["+string(e.Item.Category)+"]"),
		))
		if e.Status != "" {
			b.WriteString("  " + StatusStyle(e.Status).Render(e.Status))
		}
		if e.Item.Location != "" {
			b.WriteString("  " + Dim("@ "+e.Item.Location))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func timeRange(item *domain.ScheduleItem) string {
	if !item.HasStartTime() {
		return Dim("   --   ")
	}
	s := item.StartTime
	if item.EndTime != "" {
		s += "-" + item.EndTime
	}
	return StyleFg.Render(fmt.Sprintf("%-11s", s))
}

// FormatItemList renders all stored items as a table.
func FormatItemList(items []*domain.ScheduleItem) string {
	headers := []string{"ID", "SUBJECT", "CATEGORY", "TIME", "REPEAT"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		t := "--"
		if item.HasStartTime() {
			t = item.StartTime
			if item.EndTime != "" {
				t += "-" + item.EndTime
			}
		}
		repeat := string(item.Repeat)
		if item.Repeat == domain.RepeatWeekly {
			repeat += " (" + item.RepeatDay + ")"
		}
		if item.Date != nil {
			repeat += " " + item.Date.Format("2006-01-02")
		}
		rows = append(rows, []string{
			TruncID(item.ID),
			Bold(item.Subject),
			CategoryStyle(item.Category).Render(string(item.Category)),
			t,
			repeat,
		})
	}
	return RenderBox("Items", RenderTable(headers, rows))
}

// FormatItemInspect renders a single item detail card with its computed
// status and pending next occurrence.
func FormatItemInspect(item *domain.ScheduleItem, now time.Time) string {
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-11s", label)), value))
	}

	field("ID", item.ID)
	field("Subject", Bold(item.Subject))
	field("Category", CategoryStyle(item.Category).Render(string(item.Category)))
	if item.HasStartTime() {
		t := occurrence.FormatTime12Hour(item.StartTime)
		if item.EndTime != "" {
			t += " - " + occurrence.FormatTime12Hour(item.EndTime)
		}
		field("Time", t)
	}
	field("Repeat", string(item.Repeat))
	if item.RepeatDay != "" {
		field("Day", item.RepeatDay)
	}
	if item.Date != nil {
		field("Date", item.Date.Format("2006-01-02"))
	}
	if item.Location != "" {
		field("Location", item.Location)
	}
	if item.Notes != "" {
		field("Notes", item.Notes)
	}
	for _, rem := range item.Reminders {
		label := fmt.Sprintf("%d min before", rem.OffsetMin)
		if rem.Label != "" {
			label += "  " + Dim(rem.Label)
		}
		field("Reminder", label)
	}

	if status := occurrence.Status(item, now, now); status != "" {
		field("Status", StatusStyle(status).Render(status))
	}
	if next, ok := occurrence.Next(item, now); ok {
		field("Next", next.Format("Mon Jan 2 15:04"))
	}

	return RenderBox("Item", b.String())
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
