package service

import (
	"context"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/evanmorales/dueline/internal/engine"
)

// Snapshot is one immutable recomputation result. Consumers read it as a
// whole; the next pass replaces it rather than patching it.
type Snapshot struct {
	Items         []engine.TimelineItem
	Warnings      []*domain.MalformedDeadlineError
	Notifications []domain.DeadlineNotification
	Settings      domain.NotificationSettings
	GeneratedAt   time.Time

	// Stale is set when the work item fetch failed and the snapshot
	// still reflects the last successful pass.
	Stale bool
}

type WorkItemService interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	Transition(ctx context.Context, id string, next domain.ItemStatus) error
	Start(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (domain.NotificationSettings, error)
	Update(ctx context.Context, s domain.NotificationSettings) error
}

type TrackerService interface {
	// Current returns the latest snapshot, computing one if none exists.
	Current(ctx context.Context) (*Snapshot, error)
	// Refresh forces a recomputation pass. Concurrent calls coalesce:
	// while a pass is underway other callers get the previous snapshot.
	Refresh(ctx context.Context) (*Snapshot, error)
	// MarkDirty requests a recomputation on the next scheduled pass.
	MarkDirty()

	View(ctx context.Context, view domain.ViewFilter, sortBy domain.SortKey) ([]engine.TimelineItem, error)
	Calendar(ctx context.Context, year int, month time.Month) ([]engine.CalendarCell, error)
	Notifications(ctx context.Context) ([]domain.DeadlineNotification, error)
	MarkRead(ctx context.Context, key string) error
	Dismiss(ctx context.Context, key string) error
}

// DirtyMarker lets mutating services request recomputation without
// depending on the tracker implementation.
type DirtyMarker interface {
	MarkDirty()
}
