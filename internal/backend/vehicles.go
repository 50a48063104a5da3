package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"example.com/fleetdesk/internal/models"

	"github.com/pkg/errors"
)

// vehicleFromRaw adapts a raw backend vehicle row into the canonical shape.
// The alias lists are ordered by how often each spelling is observed.
func vehicleFromRaw(raw rawObject) models.Vehicle {
	statusCode := int(raw.num("status", "Status", "estatus", "Estatus"))
	status, ok := models.VehicleStatusFromCode[statusCode]
	if !ok {
		status = models.VehicleAvailable
	}
	return models.Vehicle{
		ID:            raw.num("id", "ID", "vehicleCatalogId", "VehiculoId", "vehiculoId", "VehicleId"),
		BrandID:       raw.num("brandId", "BrandId", "marcaId", "MarcaId"),
		Brand:         raw.str("brand", "Brand", "marca", "Marca"),
		ModelID:       raw.num("modelId", "ModelId", "modeloId", "ModeloId"),
		Model:         raw.str("model", "Model", "modelo", "Modelo"),
		Year:          int(raw.num("year", "Year", "anio", "Anio")),
		SerialNumber:  raw.str("serialNumber", "SerialNumber", "numeroSerie", "NumeroSerie"),
		Plate:         raw.str("plate", "Plate", "placa", "Placa", "placas", "Placas"),
		ColorID:       raw.num("colorId", "ColorId"),
		Color:         raw.str("color", "Color"),
		Status:        status,
		PurchasePrice: raw.flt("purchasePrice", "PurchasePrice", "precioCompra", "PrecioCompra"),
		SalePrice:     raw.flt("salePrice", "SalePrice", "precioVenta", "PrecioVenta"),
		Mileage:       int(raw.num("mileage", "Mileage", "kilometraje", "Kilometraje")),
		FuelType:      raw.str("fuelType", "FuelType", "tipoCombustible", "TipoCombustible"),
		Transmission:  raw.str("transmission", "Transmission", "transmision", "Transmision"),
		OwnerID:       raw.num("ownerId", "OwnerId", "propietarioId", "PropietarioId"),
		DocumentURLs:  raw.strs("documentUrls", "DocumentUrls", "documentos", "Documentos"),
		Images:        raw.strs("images", "Images", "imagenes", "Imagenes"),
	}
}

// vehiclePayload builds the wire payload the backend expects
func vehiclePayload(v models.Vehicle) map[string]interface{} {
	payload := map[string]interface{}{
		"brandId":       v.BrandID,
		"modelId":       v.ModelID,
		"year":          v.Year,
		"serialNumber":  v.SerialNumber,
		"plate":         v.Plate,
		"colorId":       v.ColorID,
		"status":        models.VehicleStatusCodes[v.Status],
		"purchasePrice": v.PurchasePrice,
		"salePrice":     v.SalePrice,
		"mileage":       v.Mileage,
		"fuelType":      v.FuelType,
		"transmission":  v.Transmission,
		"ownerId":       v.OwnerID,
	}
	if v.ID > 0 {
		payload["id"] = v.ID
	}
	return payload
}

// ListVehicles fetches the full vehicle collection
func (c *Client) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	data, err := c.do(ctx, http.MethodGet, "/vehicles", nil)
	if err != nil {
		return nil, err
	}
	raws, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	vehicles := make([]models.Vehicle, len(raws))
	for i, raw := range raws {
		vehicles[i] = vehicleFromRaw(raw)
	}
	return vehicles, nil
}

// CreateVehicle creates a vehicle and returns the normalized record
func (c *Client) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	data, err := c.do(ctx, http.MethodPost, "/vehicles", vehiclePayload(v))
	if err != nil {
		return models.Vehicle{}, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return models.Vehicle{}, err
	}
	return vehicleFromRaw(raw), nil
}

// UpdateVehicle updates a vehicle by id
func (c *Client) UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	if v.ID <= 0 {
		return models.Vehicle{}, errors.New("vehicle id is required for update")
	}
	data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/vehicles/%d", v.ID), vehiclePayload(v))
	if err != nil {
		return models.Vehicle{}, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return models.Vehicle{}, err
	}
	return vehicleFromRaw(raw), nil
}

// DeleteVehicle removes a vehicle by id
func (c *Client) DeleteVehicle(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/vehicles/%d", id), nil)
	return err
}

// ListBrands fetches the vehicle brand catalog
func (c *Client) ListBrands(ctx context.Context) ([]models.Brand, error) {
	data, err := c.do(ctx, http.MethodGet, "/vehicles/brands", nil)
	if err != nil {
		return nil, err
	}
	raws, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	brands := make([]models.Brand, len(raws))
	for i, raw := range raws {
		brands[i] = models.Brand{
			ID:   raw.num("id", "ID", "brandId", "BrandId", "marcaId"),
			Name: raw.str("name", "Name", "nombre", "Nombre"),
		}
	}
	return brands, nil
}

// ListModels fetches the model catalog for one brand
func (c *Client) ListModels(ctx context.Context, brandID int64) ([]models.VehicleModel, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/vehicles/brands/%d/models", brandID), nil)
	if err != nil {
		return nil, err
	}
	raws, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	mods := make([]models.VehicleModel, len(raws))
	for i, raw := range raws {
		mods[i] = models.VehicleModel{
			ID:      raw.num("id", "ID", "modelId", "ModelId", "modeloId"),
			BrandID: brandID,
			Name:    raw.str("name", "Name", "nombre", "Nombre"),
		}
	}
	return mods, nil
}

// UploadVehicleImage uploads one image via multipart form and returns the
// stored image URL. Vehicle images are the one upload surface that is
// multipart; driver documents travel base64-in-JSON instead.
func (c *Client) UploadVehicleImage(ctx context.Context, vehicleID int64, filename string, content []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("vehicleId", fmt.Sprintf("%d", vehicleID)); err != nil {
		return "", errors.Wrap(err, "failed to write form field")
	}
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", errors.Wrap(err, "failed to create form file")
	}
	if _, err := part.Write(content); err != nil {
		return "", errors.Wrap(err, "failed to write image content")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/vehicles/upload-image", &buf)
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	data, err := c.send(req)
	if err != nil {
		return "", err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return "", err
	}
	return raw.str("url", "Url", "imageUrl", "ImageUrl"), nil
}
