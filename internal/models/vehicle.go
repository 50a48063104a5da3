package models

// VehicleStatus is an enum for the vehicle lifecycle status
type VehicleStatus string

const (
	// VehicleAvailable represents a vehicle ready for sale or assignment
	VehicleAvailable VehicleStatus = "disponible"
	// VehicleSold represents a sold vehicle
	VehicleSold VehicleStatus = "vendido"
	// VehicleInMaintenance represents a vehicle in the workshop
	VehicleInMaintenance VehicleStatus = "en_mantenimiento"
	// VehicleReserved represents a vehicle held for a client
	VehicleReserved VehicleStatus = "reservado"
)

// VehicleStatusCodes maps status labels to the backend integer codes
var VehicleStatusCodes = map[VehicleStatus]int{
	VehicleAvailable:     0,
	VehicleSold:          1,
	VehicleInMaintenance: 2,
	VehicleReserved:      3,
}

// VehicleStatusFromCode is the reverse of VehicleStatusCodes
var VehicleStatusFromCode = reverseCodes(VehicleStatusCodes)

// Vehicle is the canonical inventory vehicle shape used across the service.
// Backend responses are normalized into it by the backend package adapters.
type Vehicle struct {
	ID            int64         `json:"id"`
	BrandID       int64         `json:"brand_id"`
	Brand         string        `json:"brand,omitempty"`
	ModelID       int64         `json:"model_id"`
	Model         string        `json:"model,omitempty"`
	Year          int           `json:"year"`
	SerialNumber  string        `json:"serial_number"`
	Plate         string        `json:"plate"`
	ColorID       int64         `json:"color_id"`
	Color         string        `json:"color,omitempty"`
	Status        VehicleStatus `json:"status"`
	PurchasePrice float64       `json:"purchase_price"`
	SalePrice     float64       `json:"sale_price"`
	Mileage       int           `json:"mileage"`
	FuelType      string        `json:"fuel_type"`
	Transmission  string        `json:"transmission"`
	OwnerID       int64         `json:"owner_id"`
	DocumentURLs  []string      `json:"document_urls,omitempty"`
	Images        []string      `json:"images,omitempty"`
}

// Brand is a vehicle brand catalog entry
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VehicleModel is a model catalog entry scoped to a brand
type VehicleModel struct {
	ID      int64  `json:"id"`
	BrandID int64  `json:"brand_id"`
	Name    string `json:"name"`
}

func reverseCodes[K ~string](codes map[K]int) map[int]K {
	out := make(map[int]K, len(codes))
	for label, code := range codes {
		out[code] = label
	}
	return out
}
