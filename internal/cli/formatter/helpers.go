package formatter

import (
	"fmt"
	"time"
)

// HumanDate formats a time as "Mon, Jan 2 2006".
func HumanDate(t time.Time) string {
	return t.Format("Mon, Jan 2 2006")
}

// RelativeDays renders a day count as a short human phrase: "overdue 3d",
// "due today", "due tomorrow", or "in 5d".
func RelativeDays(days int, overdue bool) string {
	switch {
	case overdue:
		return StyleRed.Render(fmt.Sprintf("overdue %dd", -days))
	case days == 0:
		return StyleRed.Render("due today")
	case days == 1:
		return StyleYellow.Render("due tomorrow")
	default:
		return fmt.Sprintf("in %dd", days)
	}
}

// TruncID shortens a UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// ProgressBar renders a 10-slot progress bar like "[■■■■······] 40%".
func ProgressBar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct / 10
	bar := ""
	for i := 0; i < 10; i++ {
		if i < filled {
			bar += "■"
		} else {
			bar += "·"
		}
	}
	return fmt.Sprintf("[%s] %d%%", bar, pct)
}
