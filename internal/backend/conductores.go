package backend

import (
	"context"
	"fmt"
	"net/http"

	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
)

// conductorFromRaw adapts a raw backend driver row into the canonical shape
func conductorFromRaw(raw rawObject) models.Conductor {
	statusCode := int(raw.num("status", "Status", "estatus", "Estatus"))
	status, ok := models.ConductorStatusFromCode[statusCode]
	if !ok {
		status = models.ConductorActive
	}
	return models.Conductor{
		ID:             raw.num("id", "ID", "conductorId", "ConductorId"),
		FirstName:      raw.str("firstName", "FirstName", "nombre", "Nombre"),
		LastName:       raw.str("lastName", "LastName", "apellidos", "Apellidos"),
		Email:          raw.str("email", "Email", "correo", "Correo"),
		Phone:          raw.str("phone", "Phone", "telefono", "Telefono"),
		Address:        raw.str("address", "Address", "direccion", "Direccion"),
		BirthDate:      raw.str("birthDate", "BirthDate", "fechaNacimiento", "FechaNacimiento"),
		BloodType:      raw.str("bloodType", "BloodType", "tipoSangre", "TipoSangre"),
		Allergies:      raw.str("allergies", "Allergies", "alergias", "Alergias"),
		LicenseNumber:  raw.str("licenseNumber", "LicenseNumber", "numeroLicencia", "NumeroLicencia"),
		LicenseType:    raw.str("licenseType", "LicenseType", "tipoLicencia", "TipoLicencia"),
		LicenseExpiry:  raw.str("licenseExpiry", "LicenseExpiry", "vencimientoLicencia", "VencimientoLicencia"),
		AssignedUnitID: raw.num("assignedUnitId", "AssignedUnitId", "unidadAsignada", "UnidadAsignada"),
		Status:         status,
		Documents: models.ConductorDocuments{
			Photo:           raw.str("photo", "Photo", "foto", "Foto"),
			IDCard:          raw.str("idCard", "IdCard", "ine", "INE"),
			AddressProof:    raw.str("addressProof", "AddressProof", "comprobanteDomicilio", "ComprobanteDomicilio"),
			License:         raw.str("license", "License", "licencia", "Licencia"),
			BackgroundCheck: raw.str("backgroundCheck", "BackgroundCheck", "antecedentes", "Antecedentes"),
		},
	}
}

// conductorPayload builds the wire payload. Driver document files are
// embedded as base64 strings in the JSON body; the conductores endpoint does
// not accept multipart.
func conductorPayload(cd models.Conductor) map[string]interface{} {
	payload := map[string]interface{}{
		"firstName":      cd.FirstName,
		"lastName":       cd.LastName,
		"email":          cd.Email,
		"phone":          cd.Phone,
		"address":        cd.Address,
		"birthDate":      cd.BirthDate,
		"bloodType":      cd.BloodType,
		"allergies":      cd.Allergies,
		"licenseNumber":  cd.LicenseNumber,
		"licenseType":    cd.LicenseType,
		"licenseExpiry":  cd.LicenseExpiry,
		"assignedUnitId": cd.AssignedUnitID,
		"status":         models.ConductorStatusCodes[cd.Status],
	}
	docs := map[string]string{
		"photo":           cd.Documents.Photo,
		"idCard":          cd.Documents.IDCard,
		"addressProof":    cd.Documents.AddressProof,
		"license":         cd.Documents.License,
		"backgroundCheck": cd.Documents.BackgroundCheck,
	}
	for key, value := range docs {
		if value != "" {
			payload[key] = value
		}
	}
	if cd.ID > 0 {
		payload["id"] = cd.ID
	}
	return payload
}

// ListConductores fetches the full driver collection
func (c *Client) ListConductores(ctx context.Context) ([]models.Conductor, error) {
	data, err := c.do(ctx, http.MethodGet, "/conductores", nil)
	if err != nil {
		return nil, err
	}
	raws, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	conductores := make([]models.Conductor, len(raws))
	for i, raw := range raws {
		conductores[i] = conductorFromRaw(raw)
	}
	return conductores, nil
}

// CreateConductor creates a driver record
func (c *Client) CreateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error) {
	data, err := c.do(ctx, http.MethodPost, "/conductores", conductorPayload(cd))
	if err != nil {
		return models.Conductor{}, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return models.Conductor{}, err
	}
	return conductorFromRaw(raw), nil
}

// UpdateConductor updates a driver record by id
func (c *Client) UpdateConductor(ctx context.Context, cd models.Conductor) (models.Conductor, error) {
	if cd.ID <= 0 {
		return models.Conductor{}, errors.New("conductor id is required for update")
	}
	data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/conductores/%d", cd.ID), conductorPayload(cd))
	if err != nil {
		return models.Conductor{}, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return models.Conductor{}, err
	}
	return conductorFromRaw(raw), nil
}

// DeleteConductor removes a driver record by id
func (c *Client) DeleteConductor(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/conductores/%d", id), nil)
	return err
}
