package engine

import (
	"time"

	"github.com/evanmorales/dueline/internal/domain"
)

// gridCells is a fixed 6-week window: enough rows to hold any month layout.
const gridCells = 42

// CalendarCell is one day of the month grid.
type CalendarCell struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	Items          []domain.WorkItem
}

// CalendarGrid buckets items by calendar day across a 6-week grid for the
// given month, starting on the Sunday on or before the 1st. Matching is by
// calendar-day equality of the deadline, not full timestamp equality. Items
// with unparseable deadlines are skipped; the enrichment pass is where they
// get reported.
func CalendarGrid(items []domain.WorkItem, year int, month time.Month, now time.Time) []CalendarCell {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))

	type parsed struct {
		item domain.WorkItem
		due  time.Time
	}
	var due []parsed
	for _, w := range items {
		d, err := domain.ParseDeadline(w.Deadline)
		if err != nil {
			continue
		}
		due = append(due, parsed{item: w, due: d})
	}

	cells := make([]CalendarCell, gridCells)
	for i := range cells {
		day := start.AddDate(0, 0, i)
		cell := CalendarCell{
			Date:           day,
			IsCurrentMonth: day.Month() == month && day.Year() == year,
			IsToday:        domain.SameCalendarDay(day, now),
		}
		for _, p := range due {
			if domain.SameCalendarDay(p.due, day) {
				cell.Items = append(cell.Items, p.item)
			}
		}
		cells[i] = cell
	}
	return cells
}
