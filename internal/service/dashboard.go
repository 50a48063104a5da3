package service

import (
	"context"

	"example.com/fleetdesk/internal/models"
)

// Dashboard computes the aggregated summary from the cached collections
func (s *service) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	vehicles, err := s.ListVehicles(ctx, "", "")
	if err != nil {
		return models.DashboardSummary{}, err
	}
	clients, err := s.ListClients(ctx, "", "")
	if err != nil {
		return models.DashboardSummary{}, err
	}
	conductores, err := s.ListConductores(ctx, "", "")
	if err != nil {
		return models.DashboardSummary{}, err
	}
	maintenances, err := s.ListMaintenances(ctx, "", "", "")
	if err != nil {
		return models.DashboardSummary{}, err
	}

	summary := models.DashboardSummary{
		TotalVehicles:    len(vehicles),
		VehiclesByStatus: make(map[models.VehicleStatus]int),
		TotalClients:     len(clients),
		OpenByPriority:   make(map[models.MaintenancePriority]int),
	}
	for _, v := range vehicles {
		summary.VehiclesByStatus[v.Status]++
	}
	for _, cd := range conductores {
		if cd.Status == models.ConductorActive {
			summary.ActiveConductores++
		}
	}
	for _, m := range maintenances {
		if m.Status == models.MaintenancePending || m.Status == models.MaintenanceInProgress {
			summary.OpenMaintenance++
			summary.OpenByPriority[m.Priority]++
		}
	}
	return summary, nil
}

// Reports returns the fixed report list bound to the document server
func (s *service) Reports() []models.Report {
	return models.Reports(s.docsBaseURL)
}
