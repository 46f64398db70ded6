package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/evanmorales/dueline/internal/engine"
	"github.com/stretchr/testify/assert"
)

// countingTracker records Refresh calls; other methods are unused here.
type countingTracker struct {
	refreshes atomic.Int64
}

func (c *countingTracker) Current(context.Context) (*Snapshot, error) { return &Snapshot{}, nil }
func (c *countingTracker) Refresh(context.Context) (*Snapshot, error) {
	c.refreshes.Add(1)
	return &Snapshot{GeneratedAt: time.Now()}, nil
}
func (c *countingTracker) MarkDirty() {}
func (c *countingTracker) View(context.Context, domain.ViewFilter, domain.SortKey) ([]engine.TimelineItem, error) {
	return nil, nil
}
func (c *countingTracker) Calendar(context.Context, int, time.Month) ([]engine.CalendarCell, error) {
	return nil, nil
}
func (c *countingTracker) Notifications(context.Context) ([]domain.DeadlineNotification, error) {
	return nil, nil
}
func (c *countingTracker) MarkRead(context.Context, string) error { return nil }
func (c *countingTracker) Dismiss(context.Context, string) error  { return nil }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestRefresher_InitialAndPeriodicPasses(t *testing.T) {
	tracker := &countingTracker{}
	r := NewRefresher(tracker, 20*time.Millisecond)
	r.Start(context.Background())
	defer r.Stop()

	waitFor(t, func() bool { return tracker.refreshes.Load() >= 3 })
}

func TestRefresher_TriggerForcesPass(t *testing.T) {
	tracker := &countingTracker{}
	r := NewRefresher(tracker, time.Hour)
	r.Start(context.Background())
	defer r.Stop()

	waitFor(t, func() bool { return tracker.refreshes.Load() == 1 })

	r.Trigger()
	waitFor(t, func() bool { return tracker.refreshes.Load() == 2 })
}

func TestRefresher_StopHaltsLoop(t *testing.T) {
	tracker := &countingTracker{}
	r := NewRefresher(tracker, 10*time.Millisecond)
	r.Start(context.Background())

	waitFor(t, func() bool { return tracker.refreshes.Load() >= 1 })
	r.Stop()

	settled := tracker.refreshes.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, tracker.refreshes.Load(), settled+1, "no further passes after Stop")
}

func TestRefresher_StartTwiceIsNoOp(t *testing.T) {
	tracker := &countingTracker{}
	r := NewRefresher(tracker, time.Hour)
	r.Start(context.Background())
	r.Start(context.Background())
	defer r.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(1), tracker.refreshes.Load(), "single initial pass despite double Start")
}
