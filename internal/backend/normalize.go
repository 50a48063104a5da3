package backend

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// The backend is inconsistent about field casing and aliasing across its own
// endpoints: the same vehicle id can arrive as vehicleCatalogId, VehiculoId,
// vehiculoId, VehicleId or ID depending on which endpoint produced the row.
// Each adapter in this package decodes the raw object once and resolves every
// field through a prioritized alias list instead of spreading alias chains
// over the call sites.

// rawObject is a decoded backend JSON object with alias-aware accessors
type rawObject map[string]json.RawMessage

func decodeObject(data []byte) (rawObject, error) {
	var raw rawObject
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode backend object")
	}
	return raw, nil
}

func decodeList(data []byte) ([]rawObject, error) {
	var raws []rawObject
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, errors.Wrap(err, "failed to decode backend list")
	}
	return raws, nil
}

// str returns the first defined alias as a string
func (r rawObject) str(aliases ...string) string {
	for _, key := range aliases {
		raw, ok := r[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		// Some endpoints serialize numeric identifiers as numbers even for
		// nominally string fields.
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

// num returns the first defined alias as an int64, accepting both JSON
// numbers and numeric strings
func (r rawObject) num(aliases ...string) int64 {
	for _, key := range aliases {
		raw, ok := r[key]
		if !ok {
			continue
		}
		var n int64
		if err := json.Unmarshal(raw, &n); err == nil {
			return n
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				return v
			}
		}
	}
	return 0
}

// flt returns the first defined alias as a float64
func (r rawObject) flt(aliases ...string) float64 {
	for _, key := range aliases {
		raw, ok := r[key]
		if !ok {
			continue
		}
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil {
			return f
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				return v
			}
		}
	}
	return 0
}

// strs returns the first defined alias as a string slice
func (r rawObject) strs(aliases ...string) []string {
	for _, key := range aliases {
		raw, ok := r[key]
		if !ok {
			continue
		}
		var out []string
		if err := json.Unmarshal(raw, &out); err == nil {
			return out
		}
	}
	return nil
}
