package service

import (
	"context"

	"example.com/fleetdesk/internal/cache"
	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
)

// ListVehicles serves the vehicle list view from cache, fetching on miss
func (s *service) ListVehicles(ctx context.Context, query, status string) ([]models.Vehicle, error) {
	vehicles, err := s.cache.GetVehicles(ctx)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WithError(err).Warn("Vehicle cache read failed, fetching from backend")
		}
		vehicles, err = s.backend.ListVehicles(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetVehicles(ctx, vehicles); err != nil {
			s.log.WithError(err).Warn("Failed to cache vehicle collection")
		}
	}
	return FilterVehicles(vehicles, query, status), nil
}

// CreateVehicle creates a vehicle and invalidates the vehicle scope
func (s *service) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	created, err := s.backend.CreateVehicle(ctx, v)
	if err != nil {
		return models.Vehicle{}, err
	}
	s.invalidate("vehicles", func() error { return s.cache.InvalidateVehicles(ctx) })
	return created, nil
}

// UpdateVehicle updates a vehicle and invalidates the vehicle scope
func (s *service) UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	updated, err := s.backend.UpdateVehicle(ctx, v)
	if err != nil {
		return models.Vehicle{}, err
	}
	s.invalidate("vehicles", func() error { return s.cache.InvalidateVehicles(ctx) })
	return updated, nil
}

// DeleteVehicle removes a vehicle and invalidates the vehicle scope
func (s *service) DeleteVehicle(ctx context.Context, id int64) error {
	if err := s.backend.DeleteVehicle(ctx, id); err != nil {
		return err
	}
	s.invalidate("vehicles", func() error { return s.cache.InvalidateVehicles(ctx) })
	return nil
}

// UploadVehicleImage stores one image upstream. Uploads are sequential, one
// in-flight upload per field, so no batching happens here either.
func (s *service) UploadVehicleImage(ctx context.Context, vehicleID int64, filename string, content []byte) (string, error) {
	url, err := s.backend.UploadVehicleImage(ctx, vehicleID, filename, content)
	if err != nil {
		return "", err
	}
	s.invalidate("vehicles", func() error { return s.cache.InvalidateVehicles(ctx) })
	return url, nil
}

// ListBrands serves the brand catalog, cached
func (s *service) ListBrands(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.cache.GetBrands(ctx)
	if err == nil {
		return brands, nil
	}
	brands, err = s.backend.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetBrands(ctx, brands); err != nil {
		s.log.WithError(err).Warn("Failed to cache brand catalog")
	}
	return brands, nil
}

// ListModels serves the model catalog for one brand, cached per brand
func (s *service) ListModels(ctx context.Context, brandID int64) ([]models.VehicleModel, error) {
	mods, err := s.cache.GetModels(ctx, brandID)
	if err == nil {
		return mods, nil
	}
	mods, err = s.backend.ListModels(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetModels(ctx, brandID, mods); err != nil {
		s.log.WithError(err).Warn("Failed to cache model catalog")
	}
	return mods, nil
}
