package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/evanmorales/dueline/internal/domain"
)

// ApplyView returns the subset of items matching the view filter. The
// overdue view is status-independent: an ongoing item past its deadline is
// still overdue. Input is never mutated.
func ApplyView(items []TimelineItem, view domain.ViewFilter) []TimelineItem {
	out := make([]TimelineItem, 0, len(items))
	for _, it := range items {
		switch view {
		case domain.ViewUpcoming:
			if it.Status != domain.StatusUpcoming {
				continue
			}
		case domain.ViewOngoing:
			if it.Status != domain.StatusOngoing {
				continue
			}
		case domain.ViewOverdue:
			if !it.IsOverdue {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// SortItems returns a new slice ordered by the given key. The sort is
// stable so ties keep input order, keeping output deterministic.
func SortItems(items []TimelineItem, key domain.SortKey) []TimelineItem {
	out := make([]TimelineItem, len(items))
	copy(out, items)

	switch key {
	case domain.SortByPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return domain.PriorityRank(out[i].Priority) > domain.PriorityRank(out[j].Priority)
		})
	case domain.SortByPayment:
		sort.SliceStable(out, func(i, j int) bool {
			return PaymentValue(out[i].Payment) > PaymentValue(out[j].Payment)
		})
	case domain.SortByStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status < out[j].Status
		})
	default: // deadline
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DeadlineAt.Before(out[j].DeadlineAt)
		})
	}
	return out
}

// PaymentValue extracts the numeric value from a display amount such as
// "$1,200.50". Anything unparseable sorts as zero.
func PaymentValue(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
