package service

import (
	"context"
	"sync"

	"example.com/fleetdesk/internal/cache"
	"example.com/fleetdesk/internal/delivery"
	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Backend is the slice of the fleet REST API the service consumes. It is
// implemented by backend.Client and mocked in tests.
type Backend interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error
	UploadVehicleImage(ctx context.Context, vehicleID int64, filename string, content []byte) (string, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	ListModels(ctx context.Context, brandID int64) ([]models.VehicleModel, error)

	ListClients(ctx context.Context) ([]models.Client, error)
	CreateClient(ctx context.Context, cl models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, cl models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, id int64) error

	ListConductores(ctx context.Context) ([]models.Conductor, error)
	CreateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error)
	UpdateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error)
	DeleteConductor(ctx context.Context, id int64) error

	ListMaintenances(ctx context.Context) ([]models.Maintenance, error)
	CreateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error)
	UpdateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id int64) error

	ListCatalog(ctx context.Context, category string) ([]models.CatalogItem, error)

	CreateCase(ctx context.Context, info delivery.GeneralInfo) (int64, error)
	UpdateStep(ctx context.Context, caseID int64, step delivery.Step, payload interface{}) error
	FinalizeCase(ctx context.Context, caseID int64) error
}

// Service defines the business logic operations behind the dashboard views
type Service interface {
	// Vehicle operations
	ListVehicles(ctx context.Context, query, status string) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error
	UploadVehicleImage(ctx context.Context, vehicleID int64, filename string, content []byte) (string, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	ListModels(ctx context.Context, brandID int64) ([]models.VehicleModel, error)

	// Client operations
	ListClients(ctx context.Context, query, clientType string) ([]models.Client, error)
	CreateClient(ctx context.Context, cl models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, cl models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, id int64) error

	// Conductor operations
	ListConductores(ctx context.Context, query, status string) ([]models.Conductor, error)
	CreateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error)
	UpdateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error)
	DeleteConductor(ctx context.Context, id int64) error

	// Maintenance operations
	ListMaintenances(ctx context.Context, query, status, mtype string) ([]models.Maintenance, error)
	CreateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error)
	UpdateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id int64) error

	// Lookup and reporting operations
	Catalog(ctx context.Context, category string) ([]models.CatalogItem, error)
	RefreshCatalogs(ctx context.Context) error
	Dashboard(ctx context.Context) (models.DashboardSummary, error)
	Reports() []models.Report

	// Delivery wizard operations
	StartDelivery(ctx context.Context) (*delivery.Session, error)
	GetDelivery(ctx context.Context, sessionID string) (*delivery.Session, error)
	SubmitGeneral(ctx context.Context, sessionID string, info delivery.GeneralInfo) (*delivery.Session, error)
	SubmitExterior(ctx context.Context, sessionID string, payload delivery.Exterior) (*delivery.Session, error)
	SubmitTires(ctx context.Context, sessionID string, payload delivery.Tires) (*delivery.Session, error)
	SubmitFluids(ctx context.Context, sessionID string, payload delivery.Fluids) (*delivery.Session, error)
	SubmitEquipment(ctx context.Context, sessionID string, payload delivery.Equipment) (*delivery.Session, error)
	DeliveryBack(ctx context.Context, sessionID string) (*delivery.Session, error)
	FinalizeDelivery(ctx context.Context, sessionID string, payload delivery.Signatures) (*delivery.Session, error)
	ResetDelivery(ctx context.Context, sessionID string) (*delivery.Session, error)
}

// service is an implementation of the Service interface
type service struct {
	backend     Backend
	cache       cache.Cache
	log         *logrus.Logger
	docsBaseURL string

	// Per-session locks guard the step 1 case creation against duplicate
	// submission: without them a double click could create two cases.
	sessionLocks sync.Map
}

// Config holds the dependencies for the service
type Config struct {
	Backend     Backend
	Cache       cache.Cache
	Logger      *logrus.Logger
	DocsBaseURL string
}

// New creates a new service instance
func New(cfg Config) (Service, error) {
	if cfg.Backend == nil {
		return nil, errors.New("backend client is required")
	}
	if cfg.Cache == nil {
		return nil, errors.New("cache is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	return &service{
		backend:     cfg.Backend,
		cache:       cfg.Cache,
		log:         cfg.Logger,
		docsBaseURL: cfg.DocsBaseURL,
	}, nil
}

func (s *service) lockSession(sessionID string) func() {
	value, _ := s.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// invalidate runs a cache invalidation after a successful mutation. A cache
// failure never fails the mutation; the collection simply stays stale until
// its TTL expires.
func (s *service) invalidate(scope string, fn func() error) {
	if err := fn(); err != nil {
		s.log.WithError(err).WithField("scope", scope).Warn("Failed to invalidate cache scope")
	}
}
