package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition indicates a status change that is not the
	// immediate successor in upcoming -> ongoing -> completed.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidSettings indicates notification thresholds that violate
	// the required ordering urgent < reminder < upcoming.
	ErrInvalidSettings = errors.New("invalid notification settings")

	// ErrStaleData indicates the work item fetch failed and the last
	// good derived state is being served instead.
	ErrStaleData = errors.New("work item fetch failed, serving stale data")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// MalformedDeadlineError reports a work item whose deadline could not be
// parsed. The item is dropped from derived output; the error is collected
// as a per-item warning, never a batch failure.
type MalformedDeadlineError struct {
	ItemID string
	Raw    string
}

func (e *MalformedDeadlineError) Error() string {
	return fmt.Sprintf("work item %s: malformed deadline %q", e.ItemID, e.Raw)
}
