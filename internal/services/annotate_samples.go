package services

import (
	"context"
	"fmt"

	"track2text/internal/domain"
	"track2text/internal/ports"
)

// Resolve road and locality names for every sample, strictly in track
// order. Each sample takes two lookups through the same resolver, one
// per purpose. The resolver degrades lookup failures to unknown
// addresses on its own, so the only error surfacing here is a canceled
// context.
func AnnotateSamples(
	ctx context.Context,
	samples []domain.Sample,
	resolver ports.AddressResolver,
	observer ports.ProgressObserver,
) ([]domain.AnnotatedSample, error) {
	annotated := make([]domain.AnnotatedSample, 0, len(samples))

	for i, s := range samples {
		road, err := resolver.Resolve(ctx, s.Point.Lat, s.Point.Lon, ports.PurposeRoad)
		if err != nil {
			return nil, fmt.Errorf("annotate samples: resolve road for sample %d: %w", i, err)
		}

		locality, err := resolver.Resolve(ctx, s.Point.Lat, s.Point.Lon, ports.PurposeLocality)
		if err != nil {
			return nil, fmt.Errorf("annotate samples: resolve locality for sample %d: %w", i, err)
		}

		addr := mergeAddress(road, locality)
		annotated = append(annotated, domain.AnnotatedSample{Sample: s, Address: addr})

		if observer != nil {
			observer.ObserveSample(s, addr, float64(i+1)/float64(len(samples)))
		}
	}

	return annotated, nil
}

// mergeAddress combines the two lookups into one address: the road
// lookup names the road, the locality lookup wins for place and
// district with the road lookup as fallback. Raw payloads are kept
// side by side for debugging.
func mergeAddress(road, locality domain.Address) domain.Address {
	merged := domain.Address{
		Road:     road.Road,
		Place:    locality.Place,
		District: locality.District,
	}

	if merged.Place == "" {
		merged.Place = road.Place
	}
	if merged.District == "" {
		merged.District = road.District
	}

	if road.Raw != nil || locality.Raw != nil {
		merged.Raw = map[string]any{}
		if road.Raw != nil {
			merged.Raw["road"] = road.Raw
		}
		if locality.Raw != nil {
			merged.Raw["locality"] = locality.Raw
		}
	}

	return merged
}
