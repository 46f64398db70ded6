package service

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultRefreshInterval is how often "now"-dependent fields are
// re-evaluated when nothing changed.
const DefaultRefreshInterval = 60 * time.Second

// Refresher owns the interval trigger for tracker recomputation. The
// tracker itself embeds no timer; this loop calls Refresh on a periodic
// tick and on explicit triggers, and coalescing in the tracker keeps
// overlapping requests to a single pass.
type Refresher struct {
	tracker   TrackerService
	interval  time.Duration
	triggerCh chan struct{}
	stopCh    chan struct{}
	mu        sync.Mutex
	running   bool
}

// NewRefresher creates a Refresher. A non-positive interval falls back to
// DefaultRefreshInterval.
func NewRefresher(tracker TrackerService, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		tracker:   tracker,
		interval:  interval,
		triggerCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the refresh loop. Safe to call once; subsequent calls are
// no-ops.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.loop(ctx)
}

// Stop halts the refresh loop. A stopped Refresher cannot be restarted.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	close(r.stopCh)
	r.running = false
}

// Trigger requests an immediate refresh. Non-blocking: if a trigger is
// already queued the two collapse into one pass.
func (r *Refresher) Trigger() {
	select {
	case r.triggerCh <- struct{}{}:
	default:
	}
}

func (r *Refresher) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Initial pass so consumers never start from an empty snapshot.
	r.refresh(ctx)

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		case <-r.triggerCh:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	snap, err := r.tracker.Refresh(ctx)
	if err != nil {
		log.Printf("refresh failed: %v", err)
		return
	}
	if snap.Stale {
		log.Printf("refresh degraded: serving snapshot from %s", snap.GeneratedAt.Format(time.RFC3339))
	}
}
