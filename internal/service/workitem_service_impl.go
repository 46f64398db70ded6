package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/evanmorales/dueline/internal/repository"
	"github.com/google/uuid"
)

type workItemService struct {
	workItems repository.WorkItemRepo
	dirty     DirtyMarker
	clock     func() time.Time
}

// NewWorkItemService creates a WorkItemService. dirty may be nil when no
// tracker needs invalidation (tests, one-shot commands).
func NewWorkItemService(workItems repository.WorkItemRepo, dirty DirtyMarker) WorkItemService {
	return &workItemService{
		workItems: workItems,
		dirty:     dirty,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *workItemService) Create(ctx context.Context, w *domain.WorkItem) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := s.clock()
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.Status == "" {
		w.Status = domain.StatusUpcoming
	}
	if err := s.workItems.Create(ctx, w); err != nil {
		return err
	}
	s.markDirty()
	return nil
}

func (s *workItemService) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return s.workItems.GetByID(ctx, id)
}

// Transition validates the requested status change against the state
// machine and persists it. It only signals the tracker dirty; the next
// scheduled pass re-derives views and notifications.
func (s *workItemService) Transition(ctx context.Context, id string, next domain.ItemStatus) error {
	w, err := s.workItems.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := w.Transition(next, s.clock()); err != nil {
		return fmt.Errorf("work item %s: %w", id, err)
	}
	if err := s.workItems.UpdateStatus(ctx, id, w.Status); err != nil {
		return err
	}
	s.markDirty()
	return nil
}

func (s *workItemService) Start(ctx context.Context, id string) error {
	return s.Transition(ctx, id, domain.StatusOngoing)
}

func (s *workItemService) Complete(ctx context.Context, id string) error {
	return s.Transition(ctx, id, domain.StatusCompleted)
}

func (s *workItemService) Delete(ctx context.Context, id string) error {
	if err := s.workItems.Delete(ctx, id); err != nil {
		return err
	}
	s.markDirty()
	return nil
}

func (s *workItemService) markDirty() {
	if s.dirty != nil {
		s.dirty.MarkDirty()
	}
}
