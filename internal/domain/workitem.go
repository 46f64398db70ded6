package domain

import (
	"fmt"
	"time"
)

// WorkItem is a single deadline-bound unit of application or contract
// tracking. It is supplied by the data layer; everything except Status is
// consumed read-only by the engine.
type WorkItem struct {
	ID          string
	Title       string
	Company     string
	Description string

	// Deadline is the raw deadline as supplied (RFC 3339 or YYYY-MM-DD).
	// Date-only values are treated as end of day. Parsing happens during
	// enrichment so a bad value drops one item, not the batch.
	Deadline string

	Status ItemStatus

	// Payment is a display amount such as "$1,200". Used only as a sort
	// key via numeric extraction.
	Payment string

	// Progress is externally sourced percent complete, meaningful while
	// Ongoing. Upcoming forces 0, Completed forces 100.
	Progress int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NextStatus returns the immediate successor status, or "" for Completed.
func NextStatus(s ItemStatus) ItemStatus {
	switch s {
	case StatusUpcoming:
		return StatusOngoing
	case StatusOngoing:
		return StatusCompleted
	default:
		return ""
	}
}

// CanTransition reports whether moving to next is allowed. Only the
// immediate successor is valid; no-ops, skips and backward moves are not.
func (w *WorkItem) CanTransition(next ItemStatus) bool {
	return next != "" && next == NextStatus(w.Status)
}

// Transition applies a validated status change. Returns an error wrapping
// ErrInvalidTransition for any move other than the immediate successor.
func (w *WorkItem) Transition(next ItemStatus, now time.Time) error {
	if !w.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.Status, next)
	}
	w.Status = next
	w.UpdatedAt = now
	return nil
}

// Start moves the item from Upcoming to Ongoing.
func (w *WorkItem) Start(now time.Time) error {
	return w.Transition(StatusOngoing, now)
}

// Complete moves the item from Ongoing to Completed.
func (w *WorkItem) Complete(now time.Time) error {
	return w.Transition(StatusCompleted, now)
}

// IsTerminal reports whether the item has reached its final status.
func (w *WorkItem) IsTerminal() bool {
	return w.Status == StatusCompleted
}
