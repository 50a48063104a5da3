package service

import (
	"context"

	"example.com/fleetdesk/internal/cache"
	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
)

// ListClients serves the client list view from cache, fetching on miss
func (s *service) ListClients(ctx context.Context, query, clientType string) ([]models.Client, error) {
	clients, err := s.cache.GetClients(ctx)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WithError(err).Warn("Client cache read failed, fetching from backend")
		}
		clients, err = s.backend.ListClients(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetClients(ctx, clients); err != nil {
			s.log.WithError(err).Warn("Failed to cache client collection")
		}
	}
	return FilterClients(clients, query, clientType), nil
}

// CreateClient creates a client record and invalidates the client scope
func (s *service) CreateClient(ctx context.Context, cl models.Client) (models.Client, error) {
	created, err := s.backend.CreateClient(ctx, cl)
	if err != nil {
		return models.Client{}, err
	}
	s.invalidate("clients", func() error { return s.cache.InvalidateClients(ctx) })
	return created, nil
}

// UpdateClient updates a client record and invalidates the client scope
func (s *service) UpdateClient(ctx context.Context, cl models.Client) (models.Client, error) {
	updated, err := s.backend.UpdateClient(ctx, cl)
	if err != nil {
		return models.Client{}, err
	}
	s.invalidate("clients", func() error { return s.cache.InvalidateClients(ctx) })
	return updated, nil
}

// DeleteClient removes a client record and invalidates the client scope
func (s *service) DeleteClient(ctx context.Context, id int64) error {
	if err := s.backend.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.invalidate("clients", func() error { return s.cache.InvalidateClients(ctx) })
	return nil
}
