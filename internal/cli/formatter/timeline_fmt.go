package formatter

import (
	"fmt"
	"strings"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/evanmorales/dueline/internal/engine"
)

// RenderTimeline renders enriched work items as a table, followed by a
// dimmed warning line when items were skipped for bad deadlines.
func RenderTimeline(items []engine.TimelineItem, warnings []*domain.MalformedDeadlineError) string {
	if len(items) == 0 && len(warnings) == 0 {
		return Dim("No work items. Add one with 'dueline add'.") + "\n"
	}

	headers := []string{"ID", "TITLE", "COMPANY", "DEADLINE", "DUE", "PRIORITY", "STATUS", "PROGRESS", "PAYMENT"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			Dim(TruncID(it.ID)),
			it.Title,
			it.Company,
			HumanDate(it.DeadlineAt),
			RelativeDays(it.DaysUntilDeadline, it.IsOverdue),
			PriorityIndicator(it.Priority),
			StatusPill(it.Status),
			ProgressBar(it.Progress),
			it.Payment,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	if len(warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("%d item(s) skipped: invalid deadline", len(warnings))))
		b.WriteString("\n")
		for _, w := range warnings {
			b.WriteString(Dim(fmt.Sprintf("  %s: %q", TruncID(w.ItemID), w.Raw)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
