package models

// MaintenanceType is an enum for the maintenance ticket type
type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventivo"
	MaintenanceCorrective MaintenanceType = "correctivo"
	MaintenanceInspection MaintenanceType = "inspeccion"
	MaintenanceRepair     MaintenanceType = "reparacion"
)

// MaintenanceTypeCodes maps maintenance type labels to the backend integer codes
var MaintenanceTypeCodes = map[MaintenanceType]int{
	MaintenancePreventive: 0,
	MaintenanceCorrective: 1,
	MaintenanceInspection: 2,
	MaintenanceRepair:     3,
}

// MaintenanceTypeFromCode is the reverse of MaintenanceTypeCodes
var MaintenanceTypeFromCode = reverseCodes(MaintenanceTypeCodes)

// MaintenanceStatus is an enum for the ticket lifecycle status
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pendiente"
	MaintenanceInProgress MaintenanceStatus = "en_proceso"
	MaintenanceCompleted  MaintenanceStatus = "completado"
	MaintenanceCancelled  MaintenanceStatus = "cancelado"
)

// MaintenanceStatusCodes maps ticket status labels to the backend integer codes
var MaintenanceStatusCodes = map[MaintenanceStatus]int{
	MaintenancePending:    0,
	MaintenanceInProgress: 1,
	MaintenanceCompleted:  2,
	MaintenanceCancelled:  3,
}

// MaintenanceStatusFromCode is the reverse of MaintenanceStatusCodes
var MaintenanceStatusFromCode = reverseCodes(MaintenanceStatusCodes)

// MaintenancePriority is an enum for the ticket priority
type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "baja"
	PriorityMedium MaintenancePriority = "media"
	PriorityHigh   MaintenancePriority = "alta"
	PriorityUrgent MaintenancePriority = "urgente"
)

// MaintenancePriorityCodes maps priority labels to the backend integer codes
var MaintenancePriorityCodes = map[MaintenancePriority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

// MaintenancePriorityFromCode is the reverse of MaintenancePriorityCodes
var MaintenancePriorityFromCode = reverseCodes(MaintenancePriorityCodes)

// Maintenance is the canonical maintenance ticket shape. Dates travel as
// ISO-8601 (2006-01-02) strings on the wire.
type Maintenance struct {
	ID               int64               `json:"id"`
	VehicleID        int64               `json:"vehicle_id"`
	Type             MaintenanceType     `json:"type"`
	Status           MaintenanceStatus   `json:"status"`
	Priority         MaintenancePriority `json:"priority"`
	ServiceDate      string              `json:"service_date"`
	NextServiceDate  string              `json:"next_service_date,omitempty"`
	Cost             float64             `json:"cost"`
	Mechanic         string              `json:"mechanic,omitempty"`
	MileageAtService int                 `json:"mileage_at_service"`
	Description      string              `json:"description"`
}
