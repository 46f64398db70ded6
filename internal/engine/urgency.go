package engine

import (
	"math"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
)

// Urgency is the classification of one deadline relative to a reference
// instant.
type Urgency struct {
	DaysUntilDeadline int
	IsOverdue         bool
	Priority          domain.Priority
}

// Classify derives urgency from a deadline and an explicit "now". Pure and
// deterministic; callers must not cache the result across passes since now
// advances.
func Classify(deadline, now time.Time) Urgency {
	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	return Urgency{
		DaysUntilDeadline: days,
		IsOverdue:         days < 0,
		Priority:          priorityFor(days),
	}
}

func priorityFor(daysUntil int) domain.Priority {
	switch {
	case daysUntil <= 2:
		return domain.PriorityHigh
	case daysUntil <= 7:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
