package backend

import (
	"context"
	"net/http"
	"net/url"

	"example.com/fleetdesk/internal/models"
)

// ListCatalog fetches a lookup catalog by category name, e.g. CARROCERIA or
// ESTADO_LUCES
func (c *Client) ListCatalog(ctx context.Context, category string) ([]models.CatalogItem, error) {
	data, err := c.do(ctx, http.MethodGet, "/catalogs/"+url.PathEscape(category), nil)
	if err != nil {
		return nil, err
	}
	raws, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	items := make([]models.CatalogItem, len(raws))
	for i, raw := range raws {
		items[i] = models.CatalogItem{
			ID:       raw.num("id", "ID", "catalogId", "CatalogId"),
			Category: category,
			Name:     raw.str("name", "Name", "nombre", "Nombre", "descripcion", "Descripcion"),
			Code:     raw.str("code", "Code", "clave", "Clave"),
		}
	}
	return items, nil
}
