package cache

import (
	"context"

	"example.com/fleetdesk/internal/delivery"
	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
)

// ErrMiss is returned when a key is absent from the cache
var ErrMiss = errors.New("cache: miss")

// Cache is the typed request cache. Every fetched collection lives under its
// own scope and every mutation invalidates exactly the scope it touched; the
// service never patches a cached collection in place.
//
// The wizard session store shares the same backing: sessions are keyed by
// their uuid and carry a longer TTL than the collections.
type Cache interface {
	GetVehicles(ctx context.Context) ([]models.Vehicle, error)
	SetVehicles(ctx context.Context, vehicles []models.Vehicle) error
	InvalidateVehicles(ctx context.Context) error

	GetClients(ctx context.Context) ([]models.Client, error)
	SetClients(ctx context.Context, clients []models.Client) error
	InvalidateClients(ctx context.Context) error

	GetConductores(ctx context.Context) ([]models.Conductor, error)
	SetConductores(ctx context.Context, conductores []models.Conductor) error
	InvalidateConductores(ctx context.Context) error

	GetMaintenances(ctx context.Context) ([]models.Maintenance, error)
	SetMaintenances(ctx context.Context, records []models.Maintenance) error
	InvalidateMaintenances(ctx context.Context) error

	GetBrands(ctx context.Context) ([]models.Brand, error)
	SetBrands(ctx context.Context, brands []models.Brand) error

	GetModels(ctx context.Context, brandID int64) ([]models.VehicleModel, error)
	SetModels(ctx context.Context, brandID int64, mods []models.VehicleModel) error

	GetCatalog(ctx context.Context, category string) ([]models.CatalogItem, error)
	SetCatalog(ctx context.Context, category string, items []models.CatalogItem) error

	GetSession(ctx context.Context, id string) (*delivery.Session, error)
	SaveSession(ctx context.Context, session *delivery.Session) error
	DeleteSession(ctx context.Context, id string) error

	Close() error
}
