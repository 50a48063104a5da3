package service

import (
	"testing"

	"example.com/fleetdesk/internal/models"

	"github.com/stretchr/testify/require"
)

var filterVehicles = []models.Vehicle{
	{ID: 1, Plate: "ABC-123", Brand: "Nissan", Model: "Versa", Color: "rojo", Status: models.VehicleAvailable},
	{ID: 2, Plate: "XYZ-777", Brand: "Toyota", Model: "Hilux", Color: "blanco", Status: models.VehicleSold},
	{ID: 3, Plate: "QRS-456", Brand: "Nissan", Model: "Frontier", Color: "gris", Status: models.VehicleAvailable},
}

func TestFilterVehiclesEmptyQueryReturnsAll(t *testing.T) {
	out := FilterVehicles(filterVehicles, "", "")
	require.Len(t, out, 3)

	// "all" behaves exactly like an empty filter
	require.Len(t, FilterVehicles(filterVehicles, "", "all"), 3)
}

func TestFilterVehiclesCaseInsensitiveSubstring(t *testing.T) {
	out := FilterVehicles(filterVehicles, "NISSAN", "")
	require.Len(t, out, 2)

	out = FilterVehicles(filterVehicles, "xyz", "")
	require.Len(t, out, 1)
	require.Equal(t, int64(2), out[0].ID)

	require.Empty(t, FilterVehicles(filterVehicles, "ferrari", ""))
}

func TestFilterVehiclesCombinesQueryAndStatus(t *testing.T) {
	out := FilterVehicles(filterVehicles, "nissan", "disponible")
	require.Len(t, out, 2)

	out = FilterVehicles(filterVehicles, "nissan", "vendido")
	require.Empty(t, out)
}

func TestFilterClients(t *testing.T) {
	clients := []models.Client{
		{ID: 1, FullName: "Ana Perez", Email: "ana@example.com", Type: models.ClientIndividual},
		{ID: 2, FullName: "Acme SA", Email: "ventas@acme.mx", Type: models.ClientBusiness},
	}

	require.Len(t, FilterClients(clients, "", ""), 2)
	require.Len(t, FilterClients(clients, "acme", ""), 1)
	require.Len(t, FilterClients(clients, "", "empresa"), 1)
	require.Empty(t, FilterClients(clients, "ana", "empresa"))
}

func TestFilterConductoresMatchesFullName(t *testing.T) {
	conductores := []models.Conductor{
		{ID: 1, FirstName: "Luis", LastName: "Gomez", LicenseNumber: "LIC-001", Status: models.ConductorActive},
		{ID: 2, FirstName: "Marta", LastName: "Diaz", LicenseNumber: "LIC-002", Status: models.ConductorSuspended},
	}

	// The search term matches across the composed full name
	require.Len(t, FilterConductores(conductores, "luis gomez", ""), 1)
	require.Len(t, FilterConductores(conductores, "lic-002", ""), 1)
	require.Len(t, FilterConductores(conductores, "", "suspendido"), 1)
}

func TestFilterMaintenancesByStatusAndType(t *testing.T) {
	records := []models.Maintenance{
		{ID: 1, Description: "cambio de aceite", Mechanic: "Pedro", Type: models.MaintenancePreventive, Status: models.MaintenancePending},
		{ID: 2, Description: "frenos traseros", Mechanic: "Pedro", Type: models.MaintenanceCorrective, Status: models.MaintenancePending},
	}

	require.Len(t, FilterMaintenances(records, "", "", ""), 2)
	require.Len(t, FilterMaintenances(records, "pedro", "", ""), 2)
	require.Len(t, FilterMaintenances(records, "pedro", "", "correctivo"), 1)
	require.Len(t, FilterMaintenances(records, "aceite", "pendiente", "preventivo"), 1)
	require.Empty(t, FilterMaintenances(records, "aceite", "", "correctivo"))
}
