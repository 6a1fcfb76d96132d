package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"track2text/internal/domain"
)

// NominatimBackend resolves coordinates through the OSM Nominatim
// /reverse endpoint. Zoom steers the detail level: 18 yields street
// addresses, lower values settlement names.
type NominatimBackend struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatim(session *http.Client, userAgent string) *NominatimBackend {
	return &NominatimBackend{
		session:   session,
		baseURL:   "https://nominatim.openstreetmap.org",
		userAgent: userAgent,
	}
}

func (b *NominatimBackend) Name() string { return string(Nominatim) }

func (b *NominatimBackend) Reverse(ctx context.Context, lat, lon float64, zoom int) (domain.Address, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", fmt.Sprintf("%.7f", lat))
	params.Set("lon", fmt.Sprintf("%.7f", lon))
	params.Set("zoom", strconv.Itoa(zoom))
	params.Set("addressdetails", "1")
	params.Set("extratags", "1")
	params.Set("namedetails", "1")

	payload, err := getJSON(ctx, b.session, b.baseURL+"/reverse?"+params.Encode(), b.userAgent)
	if err != nil {
		return domain.Address{}, fmt.Errorf("nominatim reverse: %w", err)
	}

	// A response without an address object is a valid "nothing here"
	// answer (open water, unmapped area), not a failure.
	address := stringFields(payload["address"])
	road, place, district := fieldsFromAddress(address)

	return domain.Address{
		Road:     road,
		Place:    place,
		District: district,
		Raw:      payload,
	}, nil
}
