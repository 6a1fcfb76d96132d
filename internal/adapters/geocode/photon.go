package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"track2text/internal/domain"
)

// PhotonBackend resolves coordinates through the Komoot Photon /reverse
// endpoint. Photon wraps results in a GeoJSON FeatureCollection and has
// no zoom parameter; the zoom argument is accepted and ignored so both
// backends stay interchangeable behind one binding.
type PhotonBackend struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewPhoton(session *http.Client, userAgent string) *PhotonBackend {
	return &PhotonBackend{
		session:   session,
		baseURL:   "https://photon.komoot.io",
		userAgent: userAgent,
	}
}

func (b *PhotonBackend) Name() string { return string(Photon) }

func (b *PhotonBackend) Reverse(ctx context.Context, lat, lon float64, _ int) (domain.Address, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%.7f", lat))
	params.Set("lon", fmt.Sprintf("%.7f", lon))

	payload, err := getJSON(ctx, b.session, b.baseURL+"/reverse?"+params.Encode(), b.userAgent)
	if err != nil {
		return domain.Address{}, fmt.Errorf("photon reverse: %w", err)
	}

	features, _ := payload["features"].([]any)
	if len(features) == 0 {
		// No feature near the coordinate. A valid empty answer.
		return domain.Address{Raw: payload}, nil
	}

	feature, _ := features[0].(map[string]any)
	props := stringFields(feature["properties"])

	// Photon names its keys differently from Nominatim; map street onto
	// road and keep the settlement keys, then apply the shared priorities.
	address := make(map[string]string, len(props))
	if v := props["street"]; v != "" {
		address["road"] = v
	}
	for _, key := range []string{"city", "district", "locality", "postcode", "county", "state", "country"} {
		if v := props[key]; v != "" {
			address[key] = v
		}
	}

	road, place, district := fieldsFromAddress(address)

	return domain.Address{
		Road:     road,
		Place:    place,
		District: district,
		Raw:      feature,
	}, nil
}
