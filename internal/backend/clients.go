package backend

import (
	"context"
	"fmt"
	"net/http"

	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
)

// clientFromRaw adapts a raw backend client row into the canonical shape
func clientFromRaw(raw rawObject) models.Client {
	typeCode := int(raw.num("clientType", "ClientType", "clienttype", "tipoCliente", "TipoCliente"))
	clientType, ok := models.ClientTypeFromCode[typeCode]
	if !ok {
		// A few endpoints return the label instead of the code.
		clientType = models.ClientType(raw.str("clientType", "ClientType", "tipoCliente"))
		if _, known := models.ClientTypeCodes[clientType]; !known {
			clientType = models.ClientIndividual
		}
	}
	return models.Client{
		ID:       raw.num("id", "ID", "clientId", "ClientId", "clienteId"),
		FullName: raw.str("fullName", "FullName", "nombreCompleto", "NombreCompleto", "name", "Name"),
		Email:    raw.str("email", "Email", "correo", "Correo"),
		Phone:    raw.str("phone", "Phone", "telefono", "Telefono"),
		Address:  raw.str("address", "Address", "direccion", "Direccion"),
		Type:     clientType,
		Notes:    raw.str("notes", "Notes", "notas", "Notas"),
	}
}

// clientPayload builds the wire payload. The backend expects the lowercase
// "clienttype" key carrying the integer code.
func clientPayload(cl models.Client) map[string]interface{} {
	payload := map[string]interface{}{
		"fullName":   cl.FullName,
		"email":      cl.Email,
		"phone":      cl.Phone,
		"address":    cl.Address,
		"clienttype": models.ClientTypeCodes[cl.Type],
		"notes":      cl.Notes,
	}
	if cl.ID > 0 {
		payload["id"] = cl.ID
	}
	return payload
}

// ListClients fetches the full client collection
func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	data, err := c.do(ctx, http.MethodGet, "/clients", nil)
	if err != nil {
		return nil, err
	}
	raws, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	clients := make([]models.Client, len(raws))
	for i, raw := range raws {
		clients[i] = clientFromRaw(raw)
	}
	return clients, nil
}

// CreateClient creates a client record
func (c *Client) CreateClient(ctx context.Context, cl models.Client) (models.Client, error) {
	data, err := c.do(ctx, http.MethodPost, "/clients", clientPayload(cl))
	if err != nil {
		return models.Client{}, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return models.Client{}, err
	}
	return clientFromRaw(raw), nil
}

// UpdateClient updates a client record by id
func (c *Client) UpdateClient(ctx context.Context, cl models.Client) (models.Client, error) {
	if cl.ID <= 0 {
		return models.Client{}, errors.New("client id is required for update")
	}
	data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/clients/%d", cl.ID), clientPayload(cl))
	if err != nil {
		return models.Client{}, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return models.Client{}, err
	}
	return clientFromRaw(raw), nil
}

// DeleteClient removes a client record by id
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil)
	return err
}
