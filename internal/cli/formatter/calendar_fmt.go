package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/evanmorales/dueline/internal/engine"
)

const cellWidth = 8

// RenderCalendar renders a 6-week month grid. Deadline days show a count of
// items due; the current day is highlighted and out-of-month days dimmed.
// Below the grid, items due inside the month are listed day by day.
func RenderCalendar(cells []engine.CalendarCell, year int, month time.Month) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")

	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(StyleBold.Render(padCell(wd)))
	}
	b.WriteString("\n")

	for row := 0; row*7 < len(cells); row++ {
		for col := 0; col < 7; col++ {
			cell := cells[row*7+col]
			b.WriteString(renderCell(cell))
		}
		b.WriteString("\n")
	}

	listed := false
	for _, cell := range cells {
		if !cell.IsCurrentMonth || len(cell.Items) == 0 {
			continue
		}
		if !listed {
			b.WriteString("\n")
			listed = true
		}
		b.WriteString(StyleBold.Render(cell.Date.Format("Jan 2")))
		b.WriteString("\n")
		for _, it := range cell.Items {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", Dim(TruncID(it.ID)), it.Title, StatusPill(it.Status)))
		}
	}

	return b.String()
}

func renderCell(cell engine.CalendarCell) string {
	label := fmt.Sprintf("%2d", cell.Date.Day())
	if n := len(cell.Items); n > 0 {
		label = fmt.Sprintf("%2d (%d)", cell.Date.Day(), n)
	}
	text := padCell(label)
	switch {
	case cell.IsToday:
		return StyleHeader.Render(text)
	case !cell.IsCurrentMonth:
		return StyleDim.Render(text)
	case len(cell.Items) > 0:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

func padCell(s string) string {
	if pad := cellWidth - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
