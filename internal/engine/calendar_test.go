package engine

import (
	"testing"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarGrid_Shape(t *testing.T) {
	// September 2026 starts on a Tuesday, so the grid leads with the
	// Sunday of the previous week.
	grid := CalendarGrid(nil, 2026, time.September, testNow)

	require.Len(t, grid, 42)
	assert.Equal(t, time.Sunday, grid[0].Date.Weekday())
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), grid[0].Date)
	assert.False(t, grid[0].IsCurrentMonth)
	assert.True(t, grid[2].IsCurrentMonth, "Sep 1 cell")
}

func TestCalendarGrid_MonthStartingOnSunday(t *testing.T) {
	// November 2026 starts on a Sunday; the grid starts on the 1st itself.
	grid := CalendarGrid(nil, 2026, time.November, testNow)

	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), grid[0].Date)
	assert.True(t, grid[0].IsCurrentMonth)
}

func TestCalendarGrid_ItemsLandInExactlyOneCell(t *testing.T) {
	items := []domain.WorkItem{
		makeItem("mid", domain.StatusUpcoming, "2026-09-15"),
		makeItem("first", domain.StatusOngoing, "2026-09-01T09:00:00Z"),
		makeItem("last", domain.StatusUpcoming, "2026-09-30"),
	}

	grid := CalendarGrid(items, 2026, time.September, testNow)

	found := map[string]int{}
	for _, cell := range grid {
		for _, it := range cell.Items {
			found[it.ID]++
			assert.True(t, domain.SameCalendarDay(mustParse(t, it.Deadline), cell.Date),
				"item %s in wrong cell %s", it.ID, cell.Date)
		}
	}
	assert.Equal(t, map[string]int{"mid": 1, "first": 1, "last": 1}, found)
}

func TestCalendarGrid_CalendarDayMatchIgnoresTime(t *testing.T) {
	items := []domain.WorkItem{
		makeItem("morning", domain.StatusUpcoming, "2026-09-15T08:00:00Z"),
		makeItem("night", domain.StatusUpcoming, "2026-09-15T23:30:00Z"),
	}

	grid := CalendarGrid(items, 2026, time.September, testNow)

	for _, cell := range grid {
		if domain.SameCalendarDay(cell.Date, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)) {
			assert.Len(t, cell.Items, 2)
			return
		}
	}
	t.Fatal("Sep 15 cell not found")
}

func TestCalendarGrid_SpilloverCellsHoldOnlyMatchingDeadlines(t *testing.T) {
	items := []domain.WorkItem{
		makeItem("spill", domain.StatusUpcoming, "2026-08-31"), // Monday before Sep 1
		makeItem("inside", domain.StatusUpcoming, "2026-09-02"),
	}

	grid := CalendarGrid(items, 2026, time.September, testNow)

	require.Len(t, grid[1].Items, 1, "Aug 31 spillover cell")
	assert.False(t, grid[1].IsCurrentMonth)
	assert.Equal(t, "spill", grid[1].Items[0].ID)

	for _, cell := range grid {
		if !cell.IsCurrentMonth {
			for _, it := range cell.Items {
				assert.True(t, domain.SameCalendarDay(mustParse(t, it.Deadline), cell.Date))
			}
		}
	}
}

func TestCalendarGrid_SkipsMalformedDeadlines(t *testing.T) {
	items := []domain.WorkItem{
		makeItem("bad", domain.StatusUpcoming, "not a date"),
		makeItem("good", domain.StatusUpcoming, "2026-09-10"),
	}

	grid := CalendarGrid(items, 2026, time.September, testNow)

	total := 0
	for _, cell := range grid {
		total += len(cell.Items)
	}
	assert.Equal(t, 1, total)
}

func TestCalendarGrid_IsToday(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	grid := CalendarGrid(nil, 2026, time.September, now)

	todayCount := 0
	for _, cell := range grid {
		if cell.IsToday {
			todayCount++
			assert.True(t, domain.SameCalendarDay(cell.Date, now))
		}
	}
	assert.Equal(t, 1, todayCount)
}

func mustParse(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := domain.ParseDeadline(raw)
	require.NoError(t, err)
	return parsed
}
