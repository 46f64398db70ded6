package repository

import (
	"context"

	"github.com/evanmorales/dueline/internal/domain"
)

// WorkItemRepo is the data-access collaborator the engine consumes. The
// engine never fetches directly; a failing Fetch degrades the tracker to
// stale data instead of crashing a pass.
type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	Fetch(ctx context.Context) ([]domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	UpdateStatus(ctx context.Context, id string, status domain.ItemStatus) error
	Delete(ctx context.Context, id string) error
}

// SettingsRepo persists the single alerting policy row.
type SettingsRepo interface {
	Get(ctx context.Context) (domain.NotificationSettings, error)
	Put(ctx context.Context, s domain.NotificationSettings) error
}

// NotificationStateRepo persists read/dismissed flags keyed by the
// composite notification key, so they survive regeneration and process
// restarts.
type NotificationStateRepo interface {
	GetAll(ctx context.Context) (map[string]NotificationState, error)
	MarkRead(ctx context.Context, key, workItemID string) error
	Dismiss(ctx context.Context, key, workItemID string) error
}

// NotificationState is the persisted per-key flag pair.
type NotificationState struct {
	IsRead      bool
	IsDismissed bool
}
