package service

import (
	"context"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/evanmorales/dueline/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	dirty    DirtyMarker
}

// NewSettingsService creates a SettingsService. dirty may be nil.
func NewSettingsService(settings repository.SettingsRepo, dirty DirtyMarker) SettingsService {
	return &settingsService{settings: settings, dirty: dirty}
}

func (s *settingsService) Get(ctx context.Context) (domain.NotificationSettings, error) {
	return s.settings.Get(ctx)
}

// Update rejects thresholds that violate urgent < reminder < upcoming; the
// stored policy is untouched so the engine keeps classifying against the
// last valid settings.
func (s *settingsService) Update(ctx context.Context, next domain.NotificationSettings) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if err := s.settings.Put(ctx, next); err != nil {
		return err
	}
	if s.dirty != nil {
		s.dirty.MarkDirty()
	}
	return nil
}
