package service

import (
	"context"
	"testing"

	"example.com/fleetdesk/internal/cache"
	"example.com/fleetdesk/internal/delivery"
	"example.com/fleetdesk/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBackend is a testify mock over the Backend interface
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockBackend) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(models.Vehicle), args.Error(1)
}

func (m *MockBackend) UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(models.Vehicle), args.Error(1)
}

func (m *MockBackend) DeleteVehicle(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) UploadVehicleImage(ctx context.Context, vehicleID int64, filename string, content []byte) (string, error) {
	args := m.Called(ctx, vehicleID, filename, content)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) ListBrands(ctx context.Context) ([]models.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Brand), args.Error(1)
}

func (m *MockBackend) ListModels(ctx context.Context, brandID int64) ([]models.VehicleModel, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).([]models.VehicleModel), args.Error(1)
}

func (m *MockBackend) ListClients(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockBackend) CreateClient(ctx context.Context, cl models.Client) (models.Client, error) {
	args := m.Called(ctx, cl)
	return args.Get(0).(models.Client), args.Error(1)
}

func (m *MockBackend) UpdateClient(ctx context.Context, cl models.Client) (models.Client, error) {
	args := m.Called(ctx, cl)
	return args.Get(0).(models.Client), args.Error(1)
}

func (m *MockBackend) DeleteClient(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ListConductores(ctx context.Context) ([]models.Conductor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Conductor), args.Error(1)
}

func (m *MockBackend) CreateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error) {
	args := m.Called(ctx, cd)
	return args.Get(0).(models.Conductor), args.Error(1)
}

func (m *MockBackend) UpdateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error) {
	args := m.Called(ctx, cd)
	return args.Get(0).(models.Conductor), args.Error(1)
}

func (m *MockBackend) DeleteConductor(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ListMaintenances(ctx context.Context) ([]models.Maintenance, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Maintenance), args.Error(1)
}

func (m *MockBackend) CreateMaintenance(ctx context.Context, rec models.Maintenance) (models.Maintenance, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.Maintenance), args.Error(1)
}

func (m *MockBackend) UpdateMaintenance(ctx context.Context, rec models.Maintenance) (models.Maintenance, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.Maintenance), args.Error(1)
}

func (m *MockBackend) DeleteMaintenance(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ListCatalog(ctx context.Context, category string) ([]models.CatalogItem, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.CatalogItem), args.Error(1)
}

func (m *MockBackend) CreateCase(ctx context.Context, info delivery.GeneralInfo) (int64, error) {
	args := m.Called(ctx, info)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBackend) UpdateStep(ctx context.Context, caseID int64, step delivery.Step, payload interface{}) error {
	args := m.Called(ctx, caseID, step, payload)
	return args.Error(0)
}

func (m *MockBackend) FinalizeCase(ctx context.Context, caseID int64) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}

func newTestService(t *testing.T) (Service, *MockBackend) {
	t.Helper()
	backend := new(MockBackend)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	svc, err := New(Config{
		Backend:     backend,
		Cache:       cache.NewMemoryCache(),
		Logger:      log,
		DocsBaseURL: "https://docs.example.com",
	})
	require.NoError(t, err)
	return svc, backend
}

func TestListVehiclesCachesCollection(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	backend.On("ListVehicles", mock.Anything).
		Return([]models.Vehicle{{ID: 1, Plate: "ABC-123"}}, nil).Once()

	first, err := svc.ListVehicles(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// The second read is served from cache: the single On(...).Once()
	// expectation would fail the test if the backend were hit again.
	second, err := svc.ListVehicles(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, second, 1)

	backend.AssertExpectations(t)
}

func TestCreateVehicleInvalidatesCache(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	backend.On("ListVehicles", mock.Anything).
		Return([]models.Vehicle{{ID: 1}}, nil).Once()
	_, err := svc.ListVehicles(ctx, "", "")
	require.NoError(t, err)

	backend.On("CreateVehicle", mock.Anything, mock.AnythingOfType("models.Vehicle")).
		Return(models.Vehicle{ID: 2, Plate: "NEW-001"}, nil).Once()
	created, err := svc.CreateVehicle(ctx, models.Vehicle{Plate: "NEW-001"})
	require.NoError(t, err)
	require.Equal(t, int64(2), created.ID)

	// The mutation dropped the cached collection, so the next list refetches
	backend.On("ListVehicles", mock.Anything).
		Return([]models.Vehicle{{ID: 1}, {ID: 2}}, nil).Once()
	refreshed, err := svc.ListVehicles(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, refreshed, 2)

	backend.AssertExpectations(t)
}

func TestDashboardCountsCollections(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	backend.On("ListVehicles", mock.Anything).Return([]models.Vehicle{
		{ID: 1, Status: models.VehicleAvailable},
		{ID: 2, Status: models.VehicleInMaintenance},
	}, nil).Once()
	backend.On("ListClients", mock.Anything).Return([]models.Client{{ID: 1}}, nil).Once()
	backend.On("ListConductores", mock.Anything).Return([]models.Conductor{
		{ID: 1, Status: models.ConductorActive},
		{ID: 2, Status: models.ConductorInactive},
	}, nil).Once()
	backend.On("ListMaintenances", mock.Anything).Return([]models.Maintenance{
		{ID: 1, Status: models.MaintenancePending, Priority: models.PriorityHigh},
		{ID: 2, Status: models.MaintenanceCompleted, Priority: models.PriorityLow},
	}, nil).Once()

	summary, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, summary.TotalVehicles)
	require.Equal(t, 1, summary.VehiclesByStatus[models.VehicleAvailable])
	require.Equal(t, 1, summary.VehiclesByStatus[models.VehicleInMaintenance])
	require.Equal(t, 1, summary.TotalClients)
	require.Equal(t, 1, summary.ActiveConductores)
	require.Equal(t, 1, summary.OpenMaintenance)
	require.Equal(t, 1, summary.OpenByPriority[models.PriorityHigh])

	backend.AssertExpectations(t)
}
