package models

// DashboardSummary is the aggregated snapshot served to the dashboard view.
// It is computed from the cached collections, never persisted.
type DashboardSummary struct {
	TotalVehicles      int                       `json:"total_vehicles"`
	VehiclesByStatus   map[VehicleStatus]int     `json:"vehicles_by_status"`
	TotalClients       int                       `json:"total_clients"`
	ActiveConductores  int                       `json:"active_conductores"`
	OpenMaintenance    int                       `json:"open_maintenance"`
	OpenByPriority     map[MaintenancePriority]int `json:"open_by_priority"`
}
