package cache

import (
	"context"
	"encoding/json"
	"sync"

	"example.com/fleetdesk/internal/delivery"
	"example.com/fleetdesk/internal/models"
)

// memoryCache implements Cache with an in-process map. It backs the service
// when Redis is disabled in configuration and is the cache used in tests.
// Values are stored as JSON so reads can never alias a stored slice.
type memoryCache struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryCache creates an in-process cache
func NewMemoryCache() Cache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) get(key string, out interface{}) error {
	c.mu.RLock()
	data, ok := c.values[key]
	c.mu.RUnlock()
	if !ok {
		return ErrMiss
	}
	return json.Unmarshal(data, out)
}

func (c *memoryCache) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.values[key] = data
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) delete(key string) error {
	c.mu.Lock()
	delete(c.values, key)
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) GetVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := c.get(collectionKey("vehicles"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryCache) SetVehicles(ctx context.Context, vehicles []models.Vehicle) error {
	return c.set(collectionKey("vehicles"), vehicles)
}

func (c *memoryCache) InvalidateVehicles(ctx context.Context) error {
	return c.delete(collectionKey("vehicles"))
}

func (c *memoryCache) GetClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.get(collectionKey("clients"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryCache) SetClients(ctx context.Context, clients []models.Client) error {
	return c.set(collectionKey("clients"), clients)
}

func (c *memoryCache) InvalidateClients(ctx context.Context) error {
	return c.delete(collectionKey("clients"))
}

func (c *memoryCache) GetConductores(ctx context.Context) ([]models.Conductor, error) {
	var out []models.Conductor
	if err := c.get(collectionKey("conductores"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryCache) SetConductores(ctx context.Context, conductores []models.Conductor) error {
	return c.set(collectionKey("conductores"), conductores)
}

func (c *memoryCache) InvalidateConductores(ctx context.Context) error {
	return c.delete(collectionKey("conductores"))
}

func (c *memoryCache) GetMaintenances(ctx context.Context) ([]models.Maintenance, error) {
	var out []models.Maintenance
	if err := c.get(collectionKey("maintenances"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryCache) SetMaintenances(ctx context.Context, records []models.Maintenance) error {
	return c.set(collectionKey("maintenances"), records)
}

func (c *memoryCache) InvalidateMaintenances(ctx context.Context) error {
	return c.delete(collectionKey("maintenances"))
}

func (c *memoryCache) GetBrands(ctx context.Context) ([]models.Brand, error) {
	var out []models.Brand
	if err := c.get(collectionKey("brands"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryCache) SetBrands(ctx context.Context, brands []models.Brand) error {
	return c.set(collectionKey("brands"), brands)
}

func (c *memoryCache) GetModels(ctx context.Context, brandID int64) ([]models.VehicleModel, error) {
	var out []models.VehicleModel
	if err := c.get(modelsKey(brandID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryCache) SetModels(ctx context.Context, brandID int64, mods []models.VehicleModel) error {
	return c.set(modelsKey(brandID), mods)
}

func (c *memoryCache) GetCatalog(ctx context.Context, category string) ([]models.CatalogItem, error) {
	var out []models.CatalogItem
	if err := c.get(catalogKey(category), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memoryCache) SetCatalog(ctx context.Context, category string, items []models.CatalogItem) error {
	return c.set(catalogKey(category), items)
}

func (c *memoryCache) GetSession(ctx context.Context, id string) (*delivery.Session, error) {
	var session delivery.Session
	if err := c.get(sessionKey(id), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *memoryCache) SaveSession(ctx context.Context, session *delivery.Session) error {
	return c.set(sessionKey(session.ID), session)
}

func (c *memoryCache) DeleteSession(ctx context.Context, id string) error {
	return c.delete(sessionKey(id))
}

func (c *memoryCache) Close() error {
	return nil
}
