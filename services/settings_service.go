package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/everestllcweb-png/backend/database"
	"github.com/everestllcweb-png/backend/model"
)

// SettingsService reads and writes the site settings singleton
type SettingsService struct {
	repo database.Repository[model.Settings]
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo database.Repository[model.Settings]) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the saved settings, or the built-in defaults when nothing was saved yet.
// Reading never creates the record.
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.FindByID(ctx, model.SettingsID)
	if errors.Is(err, database.ErrNotFound) {
		defaults := model.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return settings, nil
}

// Update applies the given changes to the singleton, creating it on the first write.
func (s *SettingsService) Update(ctx context.Context, apply func(settings *model.Settings)) (*model.Settings, error) {
	settings, err := s.repo.FindByID(ctx, model.SettingsID)
	if errors.Is(err, database.ErrNotFound) {
		settings = &model.Settings{Base: model.Base{ID: model.SettingsID}}
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	if apply != nil {
		apply(settings)
	}
	settings.ID = model.SettingsID

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
