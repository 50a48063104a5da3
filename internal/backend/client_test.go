package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"example.com/fleetdesk/config"
	"example.com/fleetdesk/internal/delivery"
	"example.com/fleetdesk/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(config.BackendConfig{BaseURL: srv.URL, APIKey: "test-key"}, log), srv
}

func TestListVehiclesSingleRequest(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/vehicles", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"VehiculoId": "42", "Placas": "P-001", "Marca": "Nissan", "status": 1}]`))
	})

	vehicles, err := client.ListVehicles(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, requests)
	require.Len(t, vehicles, 1)

	// Aliased and string-typed ids normalize to the canonical shape
	require.Equal(t, int64(42), vehicles[0].ID)
	require.Equal(t, "P-001", vehicles[0].Plate)
	require.Equal(t, "Nissan", vehicles[0].Brand)
	require.Equal(t, models.VehicleSold, vehicles[0].Status)
}

func TestErrorMessageExtraction(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "placa duplicada"}`))
	})

	_, err := client.CreateVehicle(context.Background(), models.Vehicle{Plate: "P-001"})
	require.Error(t, err)
	require.True(t, IsValidation(err))

	var be *Error
	require.ErrorAs(t, err, &be)
	require.Equal(t, http.StatusBadRequest, be.StatusCode)
	require.Equal(t, "placa duplicada", be.Message)
}

func TestErrorMessageFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.ListClients(context.Background())
	var be *Error
	require.ErrorAs(t, err, &be)
	require.False(t, IsValidation(err))
	require.Equal(t, "backend returned status 502", be.Message)
}

func TestClientPayloadCarriesTypeCode(t *testing.T) {
	var received map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"id": 8, "fullName": "Acme SA", "clientType": 2}`))
	})

	created, err := client.CreateClient(context.Background(), models.Client{
		FullName: "Acme SA",
		Type:     models.ClientBusiness,
	})
	require.NoError(t, err)

	// The backend expects the lowercase key carrying the integer code
	require.Equal(t, float64(2), received["clienttype"])
	require.Equal(t, models.ClientBusiness, created.Type)
	require.Equal(t, int64(8), created.ID)
}

func TestMaintenancePayloadEncodesEnumsAndDates(t *testing.T) {
	var received map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"id": 3, "maintenance_type": 0, "status": 0, "service_date": "2026-03-15"}`))
	})

	_, err := client.CreateMaintenance(context.Background(), models.Maintenance{
		VehicleID:   12,
		Type:        models.MaintenancePreventive,
		Status:      models.MaintenancePending,
		Priority:    models.PriorityMedium,
		ServiceDate: "2026-03-15",
		Description: "cambio de aceite",
	})
	require.NoError(t, err)

	require.Equal(t, float64(0), received["maintenance_type"])
	require.Equal(t, float64(1), received["priority"])
	require.Equal(t, "2026-03-15", received["service_date"])
	require.Equal(t, float64(12), received["vehicle_id"])
	_, hasNext := received["next_service_date"]
	require.False(t, hasNext)
}

func TestCreateCaseResolvesAliasedID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/deliveries", r.URL.Path)
		w.Write([]byte(`{"InformacionId": 314}`))
	})

	id, err := client.CreateCase(context.Background(), delivery.GeneralInfo{VehicleID: 1})
	require.NoError(t, err)
	require.Equal(t, int64(314), id)
}

func TestCreateCaseRejectsMissingID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true}`))
	})

	_, err := client.CreateCase(context.Background(), delivery.GeneralInfo{VehicleID: 1})
	require.Error(t, err)
}

func TestUploadVehicleImageIsMultipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/vehicles/upload-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "7", r.FormValue("vehicleId"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "front.jpg", header.Filename)

		w.Write([]byte(`{"imageUrl": "https://cdn.example.com/front.jpg"}`))
	})

	url, err := client.UploadVehicleImage(context.Background(), 7, "front.jpg", []byte("jpegdata"))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/front.jpg", url)
}
