package models

// Catalog categories known to the backend. Lookup lists are fetched by
// category name and used to populate selection controls.
const (
	CatalogBodywork     = "CARROCERIA"
	CatalogLightState   = "ESTADO_LUCES"
	CatalogTires        = "LLANTAS"
	CatalogDeliveryType = "TIPO_ENTREGA"
	CatalogColors       = "COLORES"
	CatalogFuelLevels   = "NIVEL_COMBUSTIBLE"
)

// CatalogCategories lists every category the worker keeps warm in the cache
var CatalogCategories = []string{
	CatalogBodywork,
	CatalogLightState,
	CatalogTires,
	CatalogDeliveryType,
	CatalogColors,
	CatalogFuelLevels,
}

// CatalogItem is a single lookup entry within a category
type CatalogItem struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
}
