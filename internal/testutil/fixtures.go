package testutil

import (
	"time"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/google/uuid"
)

// WorkItemOption mutates a fixture work item.
type WorkItemOption func(*domain.WorkItem)

func WithStatus(s domain.ItemStatus) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Status = s
	}
}

func WithDeadline(raw string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Deadline = raw
	}
}

func WithPayment(p string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Payment = p
	}
}

func WithProgress(pct int) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Progress = pct
	}
}

// NewWorkItem builds an upcoming work item due a week out, with any
// overrides applied.
func NewWorkItem(title string, opts ...WorkItemOption) *domain.WorkItem {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	w := &domain.WorkItem{
		ID:        uuid.New().String(),
		Title:     title,
		Company:   "Acme Corp",
		Deadline:  now.AddDate(0, 0, 7).Format("2006-01-02"),
		Status:    domain.StatusUpcoming,
		Payment:   "$500",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}
