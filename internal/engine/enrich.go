package engine

import (
	"time"

	"github.com/evanmorales/dueline/internal/domain"
)

// TimelineItem is a work item enriched with deadline-derived fields. It is
// recomputed on every pass and never persisted.
type TimelineItem struct {
	domain.WorkItem

	// DeadlineAt is the parsed deadline.
	DeadlineAt        time.Time
	DaysUntilDeadline int
	IsOverdue         bool
	Priority          domain.Priority
}

// EnrichResult is the outcome of one enrichment pass. Items preserves input
// order; Warnings holds one entry per dropped item.
type EnrichResult struct {
	Items    []TimelineItem
	Warnings []*domain.MalformedDeadlineError
}

// Enrich maps work items through the urgency classifier. An item with an
// unparseable deadline is dropped and reported as a warning; the rest of the
// batch is unaffected. Ordering is untouched; views do their own sorting.
func Enrich(items []domain.WorkItem, now time.Time) EnrichResult {
	result := EnrichResult{Items: make([]TimelineItem, 0, len(items))}
	for _, w := range items {
		deadline, err := domain.ParseDeadline(w.Deadline)
		if err != nil {
			result.Warnings = append(result.Warnings, &domain.MalformedDeadlineError{
				ItemID: w.ID,
				Raw:    w.Deadline,
			})
			continue
		}
		u := Classify(deadline, now)
		w.Progress = effectiveProgress(w)
		result.Items = append(result.Items, TimelineItem{
			WorkItem:          w,
			DeadlineAt:        deadline,
			DaysUntilDeadline: u.DaysUntilDeadline,
			IsOverdue:         u.IsOverdue,
			Priority:          u.Priority,
		})
	}
	return result
}

// effectiveProgress clamps externally sourced progress to the status rule:
// 0 while upcoming, 100 once completed, 0-100 while ongoing.
func effectiveProgress(w domain.WorkItem) int {
	switch w.Status {
	case domain.StatusCompleted:
		return 100
	case domain.StatusOngoing:
		if w.Progress < 0 {
			return 0
		}
		if w.Progress > 100 {
			return 100
		}
		return w.Progress
	default:
		return 0
	}
}
