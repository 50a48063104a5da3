package backend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawObjectAliasPriority(t *testing.T) {
	raw, err := decodeObject([]byte(`{
		"vehicleCatalogId": 10,
		"VehiculoId": 20,
		"Placas": "ABC-123",
		"precioVenta": "185000.50",
		"Imagenes": ["a.jpg", "b.jpg"]
	}`))
	require.NoError(t, err)

	// The first defined alias wins
	require.Equal(t, int64(10), raw.num("id", "vehicleCatalogId", "VehiculoId"))
	require.Equal(t, int64(20), raw.num("VehiculoId", "vehicleCatalogId"))

	require.Equal(t, "ABC-123", raw.str("plate", "placa", "Placas"))
	require.Equal(t, 185000.50, raw.flt("salePrice", "precioVenta"))
	require.Equal(t, []string{"a.jpg", "b.jpg"}, raw.strs("images", "Imagenes"))
}

func TestRawObjectCoercions(t *testing.T) {
	raw, err := decodeObject([]byte(`{"id": "77", "code": 5, "broken": true}`))
	require.NoError(t, err)

	// Numeric strings count as numbers and numbers count as strings
	require.Equal(t, int64(77), raw.num("id"))
	require.Equal(t, "5", raw.str("code"))

	// Unknown aliases and unusable values fall back to zero values
	require.Equal(t, int64(0), raw.num("missing"))
	require.Equal(t, int64(0), raw.num("broken"))
	require.Equal(t, "", raw.str("missing"))
	require.Nil(t, raw.strs("missing"))
}

func TestDecodeListRejectsObjects(t *testing.T) {
	_, err := decodeList([]byte(`{"oops": 1}`))
	require.Error(t, err)

	raws, err := decodeList([]byte(`[{"id": 1}, {"id": 2}]`))
	require.NoError(t, err)
	require.Len(t, raws, 2)
}
