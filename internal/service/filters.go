package service

import (
	"strings"

	"example.com/fleetdesk/internal/models"
)

// The list views filter client-side: collections are fetched whole and the
// search term is a case-insensitive substring match over a documented field
// set. An empty term returns the collection untouched, and the enum filters
// treat "" and "all" as no filter.

func matches(term string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func filterAll(value string) bool {
	return value == "" || value == "all"
}

// FilterVehicles applies the vehicle list view's search and status filters
func FilterVehicles(vehicles []models.Vehicle, query, status string) []models.Vehicle {
	if query == "" && filterAll(status) {
		return vehicles
	}
	term := strings.ToLower(query)
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !filterAll(status) && string(v.Status) != status {
			continue
		}
		if term != "" && !matches(term, v.Plate, v.SerialNumber, v.Brand, v.Model, v.Color) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FilterClients applies the client list view's search and type filters
func FilterClients(clients []models.Client, query, clientType string) []models.Client {
	if query == "" && filterAll(clientType) {
		return clients
	}
	term := strings.ToLower(query)
	out := make([]models.Client, 0, len(clients))
	for _, cl := range clients {
		if !filterAll(clientType) && string(cl.Type) != clientType {
			continue
		}
		if term != "" && !matches(term, cl.FullName, cl.Email, cl.Phone) {
			continue
		}
		out = append(out, cl)
	}
	return out
}

// FilterConductores applies the driver list view's search and status filters
func FilterConductores(conductores []models.Conductor, query, status string) []models.Conductor {
	if query == "" && filterAll(status) {
		return conductores
	}
	term := strings.ToLower(query)
	out := make([]models.Conductor, 0, len(conductores))
	for _, cd := range conductores {
		if !filterAll(status) && string(cd.Status) != status {
			continue
		}
		if term != "" && !matches(term, cd.FullName(), cd.Email, cd.Phone, cd.LicenseNumber) {
			continue
		}
		out = append(out, cd)
	}
	return out
}

// FilterMaintenances applies the maintenance list view's search, status and
// type filters
func FilterMaintenances(records []models.Maintenance, query, status, mtype string) []models.Maintenance {
	if query == "" && filterAll(status) && filterAll(mtype) {
		return records
	}
	term := strings.ToLower(query)
	out := make([]models.Maintenance, 0, len(records))
	for _, m := range records {
		if !filterAll(status) && string(m.Status) != status {
			continue
		}
		if !filterAll(mtype) && string(m.Type) != mtype {
			continue
		}
		if term != "" && !matches(term, m.Description, m.Mechanic) {
			continue
		}
		out = append(out, m)
	}
	return out
}
