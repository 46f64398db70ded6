package engine

import (
	"testing"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestClassify_DaysUntil(t *testing.T) {
	cases := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"twelve hours ahead rounds up", testNow.Add(12 * time.Hour), 1},
		{"exactly now", testNow, 0},
		{"one hour ago still today", testNow.Add(-time.Hour), 0},
		{"two days past", testNow.AddDate(0, 0, -2), -2},
		{"five days ahead", testNow.AddDate(0, 0, 5), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := Classify(tc.deadline, testNow)
			assert.Equal(t, tc.want, u.DaysUntilDeadline)
		})
	}
}

func TestClassify_OverdueBoundary(t *testing.T) {
	dueToday := Classify(testNow.Add(-time.Hour), testNow)
	assert.Equal(t, 0, dueToday.DaysUntilDeadline)
	assert.False(t, dueToday.IsOverdue, "due today is not overdue")

	past := Classify(testNow.AddDate(0, 0, -1), testNow)
	assert.True(t, past.IsOverdue)
}

func TestClassify_PriorityThresholds(t *testing.T) {
	cases := []struct {
		days int
		want domain.Priority
	}{
		{-3, domain.PriorityHigh},
		{0, domain.PriorityHigh},
		{2, domain.PriorityHigh},
		{3, domain.PriorityMedium},
		{7, domain.PriorityMedium},
		{8, domain.PriorityLow},
		{30, domain.PriorityLow},
	}
	for _, tc := range cases {
		u := Classify(testNow.AddDate(0, 0, tc.days), testNow)
		assert.Equal(t, tc.want, u.Priority, "days=%d", tc.days)
	}
}

func TestClassify_PriorityMonotonicInUrgency(t *testing.T) {
	prevRank := 4
	for days := -5; days <= 20; days++ {
		u := Classify(testNow.AddDate(0, 0, days), testNow)
		rank := domain.PriorityRank(u.Priority)
		assert.LessOrEqual(t, rank, prevRank, "rank must not increase as deadline recedes (days=%d)", days)
		prevRank = rank
	}
}
