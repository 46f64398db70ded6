package engine

import (
	"testing"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTimeline(id string, status domain.ItemStatus, deadline time.Time, payment string) TimelineItem {
	u := Classify(deadline, testNow)
	return TimelineItem{
		WorkItem: domain.WorkItem{
			ID:      id,
			Title:   "Item " + id,
			Status:  status,
			Payment: payment,
		},
		DeadlineAt:        deadline,
		DaysUntilDeadline: u.DaysUntilDeadline,
		IsOverdue:         u.IsOverdue,
		Priority:          u.Priority,
	}
}

func TestApplyView_StatusFilters(t *testing.T) {
	items := []TimelineItem{
		makeTimeline("up", domain.StatusUpcoming, testNow.AddDate(0, 0, 5), ""),
		makeTimeline("on", domain.StatusOngoing, testNow.AddDate(0, 0, 5), ""),
		makeTimeline("done", domain.StatusCompleted, testNow.AddDate(0, 0, 5), ""),
	}

	upcoming := ApplyView(items, domain.ViewUpcoming)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "up", upcoming[0].ID)

	ongoing := ApplyView(items, domain.ViewOngoing)
	require.Len(t, ongoing, 1)
	assert.Equal(t, "on", ongoing[0].ID)

	all := ApplyView(items, domain.ViewAll)
	assert.Len(t, all, 3)
}

func TestApplyView_OverdueIsStatusIndependent(t *testing.T) {
	items := []TimelineItem{
		makeTimeline("ongoing-late", domain.StatusOngoing, testNow.AddDate(0, 0, -3), ""),
		makeTimeline("upcoming-late", domain.StatusUpcoming, testNow.AddDate(0, 0, -1), ""),
		makeTimeline("on-time", domain.StatusOngoing, testNow.AddDate(0, 0, 3), ""),
	}

	overdue := ApplyView(items, domain.ViewOverdue)

	require.Len(t, overdue, 2)
	assert.Equal(t, "ongoing-late", overdue[0].ID, "an ongoing item past deadline is overdue")
	assert.Equal(t, "upcoming-late", overdue[1].ID)
}

func TestApplyView_DoesNotMutateInput(t *testing.T) {
	items := []TimelineItem{
		makeTimeline("a", domain.StatusUpcoming, testNow.AddDate(0, 0, 5), ""),
		makeTimeline("b", domain.StatusOngoing, testNow.AddDate(0, 0, 2), ""),
	}

	_ = ApplyView(items, domain.ViewOngoing)

	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestSortItems_Deadline(t *testing.T) {
	items := []TimelineItem{
		makeTimeline("late", domain.StatusUpcoming, testNow.AddDate(0, 0, 10), ""),
		makeTimeline("soon", domain.StatusUpcoming, testNow.AddDate(0, 0, 1), ""),
		makeTimeline("mid", domain.StatusUpcoming, testNow.AddDate(0, 0, 5), ""),
	}

	sorted := SortItems(items, domain.SortByDeadline)

	assert.Equal(t, []string{"soon", "mid", "late"}, idsOf(sorted))
	assert.Equal(t, "late", items[0].ID, "input order untouched")
}

func TestSortItems_PriorityDescendingStable(t *testing.T) {
	items := []TimelineItem{
		makeTimeline("low-1", domain.StatusUpcoming, testNow.AddDate(0, 0, 20), ""),
		makeTimeline("high-1", domain.StatusUpcoming, testNow.AddDate(0, 0, 1), ""),
		makeTimeline("low-2", domain.StatusUpcoming, testNow.AddDate(0, 0, 15), ""),
		makeTimeline("high-2", domain.StatusUpcoming, testNow.AddDate(0, 0, 2), ""),
	}

	sorted := SortItems(items, domain.SortByPriority)

	assert.Equal(t, []string{"high-1", "high-2", "low-1", "low-2"}, idsOf(sorted),
		"ties keep input order because the sort is stable")
}

func TestSortItems_PaymentNumericDescending(t *testing.T) {
	items := []TimelineItem{
		makeTimeline("small", domain.StatusUpcoming, testNow.AddDate(0, 0, 5), "$300"),
		makeTimeline("big", domain.StatusUpcoming, testNow.AddDate(0, 0, 5), "$1,200.50"),
		makeTimeline("none", domain.StatusUpcoming, testNow.AddDate(0, 0, 5), "negotiable"),
	}

	sorted := SortItems(items, domain.SortByPayment)

	assert.Equal(t, []string{"big", "small", "none"}, idsOf(sorted))
}

func TestSortItems_StatusLexicographic(t *testing.T) {
	items := []TimelineItem{
		makeTimeline("u", domain.StatusUpcoming, testNow.AddDate(0, 0, 5), ""),
		makeTimeline("c", domain.StatusCompleted, testNow.AddDate(0, 0, 5), ""),
		makeTimeline("o", domain.StatusOngoing, testNow.AddDate(0, 0, 5), ""),
	}

	sorted := SortItems(items, domain.SortByStatus)

	// completed < ongoing < upcoming
	assert.Equal(t, []string{"c", "o", "u"}, idsOf(sorted))
}

func TestSortItems_IsPermutation(t *testing.T) {
	items := []TimelineItem{
		makeTimeline("a", domain.StatusUpcoming, testNow.AddDate(0, 0, 3), "$10"),
		makeTimeline("b", domain.StatusOngoing, testNow.AddDate(0, 0, -1), "$20"),
		makeTimeline("c", domain.StatusOngoing, testNow.AddDate(0, 0, 9), "$5"),
	}

	for _, key := range []domain.SortKey{domain.SortByDeadline, domain.SortByPriority, domain.SortByPayment, domain.SortByStatus} {
		sorted := SortItems(ApplyView(items, domain.ViewAll), key)
		assert.ElementsMatch(t, idsOf(items), idsOf(sorted), "key=%s", key)
	}
}

func TestPaymentValue(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"$1,200.50", 1200.50},
		{"300", 300},
		{"€2.000", 2.0},
		{"negotiable", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PaymentValue(tc.raw), "raw=%q", tc.raw)
	}
}

func idsOf(items []TimelineItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
