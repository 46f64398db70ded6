package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/evanmorales/dueline/internal/engine"
	"github.com/evanmorales/dueline/internal/repository"
)

type trackerService struct {
	workItems  repository.WorkItemRepo
	settings   repository.SettingsRepo
	notifState repository.NotificationStateRepo
	clock      func() time.Time

	mu       sync.Mutex
	last     *Snapshot
	dirty    bool
	inFlight bool
}

// NewTrackerService creates the snapshot-owning TrackerService.
func NewTrackerService(
	workItems repository.WorkItemRepo,
	settings repository.SettingsRepo,
	notifState repository.NotificationStateRepo,
) TrackerService {
	return &trackerService{
		workItems:  workItems,
		settings:   settings,
		notifState: notifState,
		clock:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *trackerService) Current(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	last, dirty := s.last, s.dirty
	s.mu.Unlock()

	if last == nil || dirty {
		return s.Refresh(ctx)
	}
	return last, nil
}

func (s *trackerService) Refresh(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	if s.inFlight {
		// A pass is already underway; coalesce instead of stacking a
		// second one. The caller gets the previous snapshot.
		last := s.last
		s.mu.Unlock()
		if last == nil {
			return nil, fmt.Errorf("recomputation pass already underway")
		}
		return last, nil
	}
	s.inFlight = true
	prev := s.last
	s.mu.Unlock()

	snap, err := s.rebuild(ctx, prev)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		// Degrade rather than clear: keep serving the last good pass,
		// flagged stale.
		if s.last == nil {
			return nil, err
		}
		stale := *s.last
		stale.Stale = true
		s.last = &stale
		return s.last, nil
	}

	s.dirty = false
	s.last = snap
	return snap, nil
}

func (s *trackerService) MarkDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// rebuild runs one full derivation pass: fetch, enrich, generate. Strictly
// sequential; notifications only ever see a completed enrichment.
func (s *trackerService) rebuild(ctx context.Context, prev *Snapshot) (*Snapshot, error) {
	now := s.clock()

	items, err := s.workItems.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStaleData, err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	enriched := engine.Enrich(items, now)

	var prevNotifs []domain.DeadlineNotification
	if prev != nil {
		prevNotifs = prev.Notifications
	}
	notifs := engine.GenerateNotifications(enriched.Items, settings, now, prevNotifs)

	// Persisted flags survive restarts; OR them onto whatever carried
	// over in memory.
	states, err := s.notifState.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading notification state: %w", err)
	}
	for i := range notifs {
		if st, ok := states[notifs[i].ID]; ok {
			notifs[i].IsRead = notifs[i].IsRead || st.IsRead
			notifs[i].IsDismissed = notifs[i].IsDismissed || st.IsDismissed
		}
	}

	return &Snapshot{
		Items:         enriched.Items,
		Warnings:      enriched.Warnings,
		Notifications: notifs,
		Settings:      settings,
		GeneratedAt:   now,
	}, nil
}

func (s *trackerService) View(ctx context.Context, view domain.ViewFilter, sortBy domain.SortKey) ([]engine.TimelineItem, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return engine.SortItems(engine.ApplyView(snap.Items, view), sortBy), nil
}

func (s *trackerService) Calendar(ctx context.Context, year int, month time.Month) ([]engine.CalendarCell, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	raw := make([]domain.WorkItem, len(snap.Items))
	for i, it := range snap.Items {
		raw[i] = it.WorkItem
	}
	return engine.CalendarGrid(raw, year, month, snap.GeneratedAt), nil
}

func (s *trackerService) Notifications(ctx context.Context) ([]domain.DeadlineNotification, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Visible(snap.Notifications), nil
}

func (s *trackerService) MarkRead(ctx context.Context, key string) error {
	return s.setNotifFlag(ctx, key, s.notifState.MarkRead)
}

func (s *trackerService) Dismiss(ctx context.Context, key string) error {
	return s.setNotifFlag(ctx, key, s.notifState.Dismiss)
}

func (s *trackerService) setNotifFlag(ctx context.Context, key string, persist func(context.Context, string, string) error) error {
	snap, err := s.Current(ctx)
	if err != nil {
		return err
	}
	for _, n := range snap.Notifications {
		if n.ID == key {
			if err := persist(ctx, key, n.WorkItemID); err != nil {
				return err
			}
			s.MarkDirty()
			return nil
		}
	}
	return fmt.Errorf("notification %s: %w", key, domain.ErrNotFound)
}
