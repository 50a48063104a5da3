package service

import (
	"context"

	"example.com/fleetdesk/internal/models"
)

// Catalog serves a lookup catalog by category, cached per category
func (s *service) Catalog(ctx context.Context, category string) ([]models.CatalogItem, error) {
	items, err := s.cache.GetCatalog(ctx, category)
	if err == nil {
		return items, nil
	}
	items, err = s.backend.ListCatalog(ctx, category)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetCatalog(ctx, category, items); err != nil {
		s.log.WithError(err).WithField("category", category).Warn("Failed to cache catalog")
	}
	return items, nil
}

// RefreshCatalogs re-fetches every known catalog category into the cache.
// The background worker runs this on an interval so the dashboard selection
// controls stay warm.
func (s *service) RefreshCatalogs(ctx context.Context) error {
	var lastErr error
	for _, category := range models.CatalogCategories {
		items, err := s.backend.ListCatalog(ctx, category)
		if err != nil {
			s.log.WithError(err).WithField("category", category).Warn("Catalog refresh failed")
			lastErr = err
			continue
		}
		if err := s.cache.SetCatalog(ctx, category, items); err != nil {
			s.log.WithError(err).WithField("category", category).Warn("Failed to cache catalog")
			lastErr = err
		}
	}
	return lastErr
}
