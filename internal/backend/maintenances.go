package backend

import (
	"context"
	"fmt"
	"net/http"

	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
)

// maintenanceFromRaw adapts a raw backend maintenance row into the canonical shape
func maintenanceFromRaw(raw rawObject) models.Maintenance {
	mtype, ok := models.MaintenanceTypeFromCode[int(raw.num("maintenance_type", "maintenanceType", "MaintenanceType", "tipo", "Tipo"))]
	if !ok {
		mtype = models.MaintenancePreventive
	}
	status, ok := models.MaintenanceStatusFromCode[int(raw.num("status", "Status", "estatus", "Estatus"))]
	if !ok {
		status = models.MaintenancePending
	}
	priority, ok := models.MaintenancePriorityFromCode[int(raw.num("priority", "Priority", "prioridad", "Prioridad"))]
	if !ok {
		priority = models.PriorityMedium
	}
	return models.Maintenance{
		ID:               raw.num("id", "ID", "maintenanceId", "MaintenanceId"),
		VehicleID:        raw.num("vehicle_id", "vehicleId", "VehicleId", "vehicleCatalogId", "VehiculoId", "vehiculoId"),
		Type:             mtype,
		Status:           status,
		Priority:         priority,
		ServiceDate:      raw.str("service_date", "serviceDate", "ServiceDate", "fechaServicio", "FechaServicio"),
		NextServiceDate:  raw.str("next_service_date", "nextServiceDate", "NextServiceDate", "fechaProximoServicio"),
		Cost:             raw.flt("cost", "Cost", "costo", "Costo"),
		Mechanic:         raw.str("mechanic", "Mechanic", "mecanico", "Mecanico"),
		MileageAtService: int(raw.num("mileage_at_service", "mileageAtService", "MileageAtService", "kilometraje", "Kilometraje")),
		Description:      raw.str("description", "Description", "descripcion", "Descripcion"),
	}
}

// maintenancePayload builds the wire payload. Enum labels become integer
// codes and dates stay ISO-8601.
func maintenancePayload(m models.Maintenance) map[string]interface{} {
	payload := map[string]interface{}{
		"vehicle_id":         m.VehicleID,
		"maintenance_type":   models.MaintenanceTypeCodes[m.Type],
		"status":             models.MaintenanceStatusCodes[m.Status],
		"priority":           models.MaintenancePriorityCodes[m.Priority],
		"service_date":       m.ServiceDate,
		"cost":               m.Cost,
		"mechanic":           m.Mechanic,
		"mileage_at_service": m.MileageAtService,
		"description":        m.Description,
	}
	if m.NextServiceDate != "" {
		payload["next_service_date"] = m.NextServiceDate
	}
	if m.ID > 0 {
		payload["id"] = m.ID
	}
	return payload
}

// ListMaintenances fetches the full maintenance collection
func (c *Client) ListMaintenances(ctx context.Context) ([]models.Maintenance, error) {
	data, err := c.do(ctx, http.MethodGet, "/maintenances", nil)
	if err != nil {
		return nil, err
	}
	raws, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	records := make([]models.Maintenance, len(raws))
	for i, raw := range raws {
		records[i] = maintenanceFromRaw(raw)
	}
	return records, nil
}

// CreateMaintenance creates a maintenance ticket
func (c *Client) CreateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error) {
	data, err := c.do(ctx, http.MethodPost, "/maintenances", maintenancePayload(m))
	if err != nil {
		return models.Maintenance{}, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return models.Maintenance{}, err
	}
	return maintenanceFromRaw(raw), nil
}

// UpdateMaintenance updates a maintenance ticket by id
func (c *Client) UpdateMaintenance(ctx context.Context, m models.Maintenance) (models.Maintenance, error) {
	if m.ID <= 0 {
		return models.Maintenance{}, errors.New("maintenance id is required for update")
	}
	data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/maintenances/%d", m.ID), maintenancePayload(m))
	if err != nil {
		return models.Maintenance{}, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return models.Maintenance{}, err
	}
	return maintenanceFromRaw(raw), nil
}

// DeleteMaintenance removes a maintenance ticket by id
func (c *Client) DeleteMaintenance(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/maintenances/%d", id), nil)
	return err
}
