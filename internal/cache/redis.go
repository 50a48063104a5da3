package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"example.com/fleetdesk/config"
	"example.com/fleetdesk/internal/delivery"
	"example.com/fleetdesk/internal/models"

	"github.com/go-redis/redis/v8"
)

const (
	collectionTTL = 5 * time.Minute
	sessionTTL    = 24 * time.Hour
)

// redisCache implements Cache using Redis
type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed cache
func NewRedisCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisCache{client: client}, nil
}

// Prefix keys to avoid collisions
func collectionKey(scope string) string {
	return "fleetdesk:collection:" + scope
}

func modelsKey(brandID int64) string {
	return fmt.Sprintf("fleetdesk:models:%d", brandID)
}

func catalogKey(category string) string {
	return "fleetdesk:catalog:" + category
}

func sessionKey(id string) string {
	return "fleetdesk:session:" + id
}

func (c *redisCache) getJSON(ctx context.Context, key string, out interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (c *redisCache) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) GetVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	if err := c.getJSON(ctx, collectionKey("vehicles"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *redisCache) SetVehicles(ctx context.Context, vehicles []models.Vehicle) error {
	return c.setJSON(ctx, collectionKey("vehicles"), vehicles, collectionTTL)
}

func (c *redisCache) InvalidateVehicles(ctx context.Context) error {
	return c.client.Del(ctx, collectionKey("vehicles")).Err()
}

func (c *redisCache) GetClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.getJSON(ctx, collectionKey("clients"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *redisCache) SetClients(ctx context.Context, clients []models.Client) error {
	return c.setJSON(ctx, collectionKey("clients"), clients, collectionTTL)
}

func (c *redisCache) InvalidateClients(ctx context.Context) error {
	return c.client.Del(ctx, collectionKey("clients")).Err()
}

func (c *redisCache) GetConductores(ctx context.Context) ([]models.Conductor, error) {
	var out []models.Conductor
	if err := c.getJSON(ctx, collectionKey("conductores"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *redisCache) SetConductores(ctx context.Context, conductores []models.Conductor) error {
	return c.setJSON(ctx, collectionKey("conductores"), conductores, collectionTTL)
}

func (c *redisCache) InvalidateConductores(ctx context.Context) error {
	return c.client.Del(ctx, collectionKey("conductores")).Err()
}

func (c *redisCache) GetMaintenances(ctx context.Context) ([]models.Maintenance, error) {
	var out []models.Maintenance
	if err := c.getJSON(ctx, collectionKey("maintenances"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *redisCache) SetMaintenances(ctx context.Context, records []models.Maintenance) error {
	return c.setJSON(ctx, collectionKey("maintenances"), records, collectionTTL)
}

func (c *redisCache) InvalidateMaintenances(ctx context.Context) error {
	return c.client.Del(ctx, collectionKey("maintenances")).Err()
}

func (c *redisCache) GetBrands(ctx context.Context) ([]models.Brand, error) {
	var out []models.Brand
	if err := c.getJSON(ctx, collectionKey("brands"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *redisCache) SetBrands(ctx context.Context, brands []models.Brand) error {
	return c.setJSON(ctx, collectionKey("brands"), brands, collectionTTL)
}

func (c *redisCache) GetModels(ctx context.Context, brandID int64) ([]models.VehicleModel, error) {
	var out []models.VehicleModel
	if err := c.getJSON(ctx, modelsKey(brandID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *redisCache) SetModels(ctx context.Context, brandID int64, mods []models.VehicleModel) error {
	return c.setJSON(ctx, modelsKey(brandID), mods, collectionTTL)
}

func (c *redisCache) GetCatalog(ctx context.Context, category string) ([]models.CatalogItem, error) {
	var out []models.CatalogItem
	if err := c.getJSON(ctx, catalogKey(category), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *redisCache) SetCatalog(ctx context.Context, category string, items []models.CatalogItem) error {
	return c.setJSON(ctx, catalogKey(category), items, collectionTTL)
}

func (c *redisCache) GetSession(ctx context.Context, id string) (*delivery.Session, error) {
	var session delivery.Session
	if err := c.getJSON(ctx, sessionKey(id), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *redisCache) SaveSession(ctx context.Context, session *delivery.Session) error {
	return c.setJSON(ctx, sessionKey(session.ID), session, sessionTTL)
}

func (c *redisCache) DeleteSession(ctx context.Context, id string) error {
	return c.client.Del(ctx, sessionKey(id)).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
