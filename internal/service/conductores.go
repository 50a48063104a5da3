package service

import (
	"context"

	"example.com/fleetdesk/internal/cache"
	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
)

// ListConductores serves the driver list view from cache, fetching on miss
func (s *service) ListConductores(ctx context.Context, query, status string) ([]models.Conductor, error) {
	conductores, err := s.cache.GetConductores(ctx)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WithError(err).Warn("Conductor cache read failed, fetching from backend")
		}
		conductores, err = s.backend.ListConductores(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetConductores(ctx, conductores); err != nil {
			s.log.WithError(err).Warn("Failed to cache conductor collection")
		}
	}
	return FilterConductores(conductores, query, status), nil
}

// CreateConductor creates a driver record and invalidates the conductor scope
func (s *service) CreateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error) {
	created, err := s.backend.CreateConductor(ctx, cd)
	if err != nil {
		return models.Conductor{}, err
	}
	s.invalidate("conductores", func() error { return s.cache.InvalidateConductores(ctx) })
	return created, nil
}

// UpdateConductor updates a driver record and invalidates the conductor scope
func (s *service) UpdateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error) {
	updated, err := s.backend.UpdateConductor(ctx, cd)
	if err != nil {
		return models.Conductor{}, err
	}
	s.invalidate("conductores", func() error { return s.cache.InvalidateConductores(ctx) })
	return updated, nil
}

// DeleteConductor removes a driver record and invalidates the conductor scope
func (s *service) DeleteConductor(ctx context.Context, id int64) error {
	if err := s.backend.DeleteConductor(ctx, id); err != nil {
		return err
	}
	s.invalidate("conductores", func() error { return s.cache.InvalidateConductores(ctx) })
	return nil
}
