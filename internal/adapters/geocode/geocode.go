// Package geocode implements the reverse-geocoding client: two backend
// providers bound to the road and locality purposes, a shared per-provider
// request gate, an in-process coordinate cache and retry with degradation.
package geocode

import (
	"context"
	"fmt"
	"strings"

	"track2text/internal/domain"
)

// Provider identifies a supported reverse-geocoding backend.
type Provider string

const (
	Nominatim Provider = "nominatim"
	Photon    Provider = "photon"
)

// ParseProvider maps a configured backend identifier onto a Provider.
// Unknown identifiers are rejected here, before any client is built.
func ParseProvider(s string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nominatim":
		return Nominatim, nil
	case "photon":
		return Photon, nil
	}
	return "", fmt.Errorf("unknown geocoder %q (supported: nominatim, photon)", s)
}

// Contract for a single concrete reverse-geocoding service. Reverse
// returns the parsed address fields plus the decoded raw payload; a nil
// error with empty fields means the provider had no answer, which is a
// valid result.
type Backend interface {
	Name() string
	Reverse(ctx context.Context, lat, lon float64, zoom int) (domain.Address, error)
}

// Address key priority lists shared by both backends. Order matters: the
// first present key wins.
var (
	roadKeys     = []string{"road", "pedestrian", "cycleway", "path", "footway", "steps", "track", "bridleway"}
	placeKeys    = []string{"city", "town", "village", "suburb", "hamlet", "municipality"}
	districtKeys = []string{"neighbourhood", "quarter", "locality", "borough", "city_district", "district", "municipality", "isolated_dwelling"}
)

// firstField returns the first non-empty value among keys, in order.
func firstField(address map[string]string, keys []string) string {
	for _, key := range keys {
		if v := address[key]; v != "" {
			return v
		}
	}
	return ""
}

// fieldsFromAddress applies the shared key priorities to one provider
// address map.
func fieldsFromAddress(address map[string]string) (road, place, district string) {
	return firstField(address, roadKeys),
		firstField(address, placeKeys),
		firstField(address, districtKeys)
}

// stringFields extracts the string-valued entries of a decoded JSON
// object. Non-string values (bounding boxes, numeric ranks) are dropped.
func stringFields(v any) map[string]string {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(obj))
	for k, val := range obj {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}
