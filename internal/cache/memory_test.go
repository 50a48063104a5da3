package cache

import (
	"context"
	"testing"

	"example.com/fleetdesk/internal/delivery"
	"example.com/fleetdesk/internal/models"

	"github.com/stretchr/testify/require"
)

func TestMemoryCacheMissThenHit(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, err := c.GetVehicles(ctx)
	require.ErrorIs(t, err, ErrMiss)

	stored := []models.Vehicle{{ID: 1, Plate: "ABC-123"}}
	require.NoError(t, c.SetVehicles(ctx, stored))

	got, err := c.GetVehicles(ctx)
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

func TestMemoryCacheInvalidateScopesIndependently(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.SetVehicles(ctx, []models.Vehicle{{ID: 1}}))
	require.NoError(t, c.SetClients(ctx, []models.Client{{ID: 2}}))

	require.NoError(t, c.InvalidateVehicles(ctx))

	_, err := c.GetVehicles(ctx)
	require.ErrorIs(t, err, ErrMiss)

	// Other scopes are untouched by a vehicle invalidation
	clients, err := c.GetClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestMemoryCacheReadsDoNotAlias(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.SetBrands(ctx, []models.Brand{{ID: 1, Name: "Nissan"}}))

	first, err := c.GetBrands(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := c.GetBrands(ctx)
	require.NoError(t, err)
	require.Equal(t, "Nissan", second[0].Name)
}

func TestMemoryCacheModelsKeyedPerBrand(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.SetModels(ctx, 1, []models.VehicleModel{{ID: 10, BrandID: 1, Name: "Versa"}}))

	_, err := c.GetModels(ctx, 2)
	require.ErrorIs(t, err, ErrMiss)

	mods, err := c.GetModels(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Versa", mods[0].Name)
}

func TestMemoryCacheSessionRoundtrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	session := delivery.NewSession()
	session.General = &delivery.GeneralInfo{VehicleID: 5, Plate: "ABC-123"}
	require.NoError(t, c.SaveSession(ctx, session))

	got, err := c.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, session.ID, got.ID)
	require.Equal(t, session.Step, got.Step)
	require.NotNil(t, got.General)

	require.NoError(t, c.DeleteSession(ctx, session.ID))
	_, err = c.GetSession(ctx, session.ID)
	require.ErrorIs(t, err, ErrMiss)
}
