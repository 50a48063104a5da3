package service

import (
	"context"
	"testing"

	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogCachedPerCategory(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	backend.On("ListCatalog", mock.Anything, models.CatalogColors).
		Return([]models.CatalogItem{{ID: 1, Category: models.CatalogColors, Name: "Rojo"}}, nil).Once()
	backend.On("ListCatalog", mock.Anything, models.CatalogTires).
		Return([]models.CatalogItem{{ID: 2, Category: models.CatalogTires, Name: "Bueno"}}, nil).Once()

	colors, err := svc.Catalog(ctx, models.CatalogColors)
	require.NoError(t, err)
	require.Equal(t, "Rojo", colors[0].Name)

	tires, err := svc.Catalog(ctx, models.CatalogTires)
	require.NoError(t, err)
	require.Equal(t, "Bueno", tires[0].Name)

	// Both categories now come from cache
	_, err = svc.Catalog(ctx, models.CatalogColors)
	require.NoError(t, err)
	_, err = svc.Catalog(ctx, models.CatalogTires)
	require.NoError(t, err)

	backend.AssertExpectations(t)
}

func TestRefreshCatalogsContinuesPastFailures(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	for _, category := range models.CatalogCategories {
		if category == models.CatalogColors {
			backend.On("ListCatalog", mock.Anything, category).
				Return([]models.CatalogItem{}, errors.New("boom")).Once()
			continue
		}
		backend.On("ListCatalog", mock.Anything, category).
			Return([]models.CatalogItem{{ID: 1, Category: category}}, nil).Once()
	}

	// One failed category surfaces as an error but does not stop the rest
	err := svc.RefreshCatalogs(ctx)
	require.Error(t, err)

	items, err := svc.Catalog(ctx, models.CatalogTires)
	require.NoError(t, err)
	require.Len(t, items, 1)

	backend.AssertExpectations(t)
}

func TestReportsBoundToDocsServer(t *testing.T) {
	svc, _ := newTestService(t)

	reports := svc.Reports()
	require.NotEmpty(t, reports)
	for _, r := range reports {
		require.Contains(t, r.ViewURL, "https://docs.example.com/reports/")
		require.Contains(t, r.DownloadURL, "?download=true")
	}
}
