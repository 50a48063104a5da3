package models

// ConductorStatus is an enum for the driver employment status
type ConductorStatus string

const (
	// ConductorActive represents a driver available for assignment
	ConductorActive ConductorStatus = "activo"
	// ConductorInactive represents a driver not currently working
	ConductorInactive ConductorStatus = "inactivo"
	// ConductorSuspended represents a suspended driver
	ConductorSuspended ConductorStatus = "suspendido"
)

// ConductorStatusCodes maps driver status labels to the backend integer codes
var ConductorStatusCodes = map[ConductorStatus]int{
	ConductorActive:    0,
	ConductorInactive:  1,
	ConductorSuspended: 2,
}

// ConductorStatusFromCode is the reverse of ConductorStatusCodes
var ConductorStatusFromCode = reverseCodes(ConductorStatusCodes)

// ConductorDocuments carries the driver document files. Files are transmitted
// to the backend as base64 strings embedded in the JSON payload, never as
// multipart parts.
type ConductorDocuments struct {
	Photo           string `json:"photo,omitempty"`
	IDCard          string `json:"id_card,omitempty"`
	AddressProof    string `json:"address_proof,omitempty"`
	License         string `json:"license,omitempty"`
	BackgroundCheck string `json:"background_check,omitempty"`
}

// Conductor is the canonical driver record shape
type Conductor struct {
	ID             int64              `json:"id"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	Address        string             `json:"address"`
	BirthDate      string             `json:"birth_date,omitempty"`
	BloodType      string             `json:"blood_type,omitempty"`
	Allergies      string             `json:"allergies,omitempty"`
	LicenseNumber  string             `json:"license_number"`
	LicenseType    string             `json:"license_type,omitempty"`
	LicenseExpiry  string             `json:"license_expiry,omitempty"`
	AssignedUnitID int64              `json:"assigned_unit_id,omitempty"`
	Status         ConductorStatus    `json:"status"`
	Documents      ConductorDocuments `json:"documents"`
}

// FullName returns the driver display name
func (c Conductor) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
