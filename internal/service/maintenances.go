package service

import (
	"context"

	"example.com/fleetdesk/internal/cache"
	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
)

// ListMaintenances serves the maintenance list view from cache, fetching on miss
func (s *service) ListMaintenances(ctx context.Context, query, status, mtype string) ([]models.Maintenance, error) {
	records, err := s.cache.GetMaintenances(ctx)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WithError(err).Warn("Maintenance cache read failed, fetching from backend")
		}
		records, err = s.backend.ListMaintenances(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetMaintenances(ctx, records); err != nil {
			s.log.WithError(err).Warn("Failed to cache maintenance collection")
		}
	}
	return FilterMaintenances(records, query, status, mtype), nil
}

// CreateMaintenance creates a ticket and invalidates the maintenance scope
func (s *service) CreateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error) {
	created, err := s.backend.CreateMaintenance(ctx, m)
	if err != nil {
		return models.Maintenance{}, err
	}
	s.invalidate("maintenances", func() error { return s.cache.InvalidateMaintenances(ctx) })
	return created, nil
}

// UpdateMaintenance updates a ticket and invalidates the maintenance scope
func (s *service) UpdateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error) {
	updated, err := s.backend.UpdateMaintenance(ctx, m)
	if err != nil {
		return models.Maintenance{}, err
	}
	s.invalidate("maintenances", func() error { return s.cache.InvalidateMaintenances(ctx) })
	return updated, nil
}

// DeleteMaintenance removes a ticket and invalidates the maintenance scope
func (s *service) DeleteMaintenance(ctx context.Context, id int64) error {
	if err := s.backend.DeleteMaintenance(ctx, id); err != nil {
		return err
	}
	s.invalidate("maintenances", func() error { return s.cache.InvalidateMaintenances(ctx) })
	return nil
}
