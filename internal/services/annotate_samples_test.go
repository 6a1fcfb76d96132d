package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"track2text/internal/domain"
	"track2text/internal/ports"
)

type stubResolver struct {
	resolve func(ctx context.Context, lat, lon float64, purpose ports.Purpose) (domain.Address, error)
}

func (r *stubResolver) Resolve(ctx context.Context, lat, lon float64, purpose ports.Purpose) (domain.Address, error) {
	return r.resolve(ctx, lat, lon, purpose)
}

type recordingObserver struct {
	fractions []float64
}

func (o *recordingObserver) ObserveSample(_ domain.Sample, _ domain.Address, fraction float64) {
	o.fractions = append(o.fractions, fraction)
}

func sampleAt(lat, lon float64) domain.Sample {
	return domain.Sample{Point: domain.TrackPoint{Lat: lat, Lon: lon}}
}

func TestAnnotateMergesRoadAndLocality(t *testing.T) {
	resolver := &stubResolver{
		resolve: func(_ context.Context, _, _ float64, purpose ports.Purpose) (domain.Address, error) {
			if purpose == ports.PurposeRoad {
				return domain.Address{
					Road:  "Klosterweg",
					Place: "Roadside",
					Raw:   map[string]any{"source": "road"},
				}, nil
			}
			return domain.Address{
				Place:    "Ettal",
				District: "Graswang",
				Raw:      map[string]any{"source": "locality"},
			}, nil
		},
	}

	annotated, err := AnnotateSamples(context.Background(), []domain.Sample{sampleAt(47.57, 11.09)}, resolver, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(annotated) != 1 {
		t.Fatalf("expected 1 annotated sample, got %d", len(annotated))
	}

	want := domain.Address{
		Road:     "Klosterweg",
		Place:    "Ettal",
		District: "Graswang",
		Raw: map[string]any{
			"road":     map[string]any{"source": "road"},
			"locality": map[string]any{"source": "locality"},
		},
	}
	if diff := cmp.Diff(want, annotated[0].Address); diff != "" {
		t.Errorf("merged address mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnotateFallsBackToRoadLookup(t *testing.T) {
	resolver := &stubResolver{
		resolve: func(_ context.Context, _, _ float64, purpose ports.Purpose) (domain.Address, error) {
			if purpose == ports.PurposeRoad {
				return domain.Address{Road: "Klosterweg", Place: "Ettal", District: "Dorf"}, nil
			}
			return domain.Address{}, nil
		},
	}

	annotated, err := AnnotateSamples(context.Background(), []domain.Sample{sampleAt(47.57, 11.09)}, resolver, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	addr := annotated[0].Address
	if addr.Place != "Ettal" || addr.District != "Dorf" {
		t.Errorf("expected road lookup fallback, got place=%q district=%q", addr.Place, addr.District)
	}
}

func TestAnnotateResolvesRoadBeforeLocality(t *testing.T) {
	var order []ports.Purpose
	resolver := &stubResolver{
		resolve: func(_ context.Context, _, _ float64, purpose ports.Purpose) (domain.Address, error) {
			order = append(order, purpose)
			return domain.Address{}, nil
		},
	}

	samples := []domain.Sample{sampleAt(47.57, 11.09), sampleAt(47.58, 11.09)}
	if _, err := AnnotateSamples(context.Background(), samples, resolver, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []ports.Purpose{ports.PurposeRoad, ports.PurposeLocality, ports.PurposeRoad, ports.PurposeLocality}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("lookup order mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnotateReportsProgress(t *testing.T) {
	resolver := &stubResolver{
		resolve: func(_ context.Context, _, _ float64, _ ports.Purpose) (domain.Address, error) {
			return domain.Address{}, nil
		},
	}
	observer := &recordingObserver{}

	samples := []domain.Sample{sampleAt(47.57, 11.09), sampleAt(47.58, 11.09), sampleAt(47.59, 11.09)}
	if _, err := AnnotateSamples(context.Background(), samples, resolver, observer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{1.0 / 3.0, 2.0 / 3.0, 1.0}
	if diff := cmp.Diff(want, observer.fractions); diff != "" {
		t.Errorf("progress fractions mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnotateStopsOnResolverError(t *testing.T) {
	calls := 0
	resolver := &stubResolver{
		resolve: func(_ context.Context, _, _ float64, _ ports.Purpose) (domain.Address, error) {
			calls++
			if calls > 2 {
				return domain.Address{}, context.Canceled
			}
			return domain.Address{}, nil
		},
	}

	samples := []domain.Sample{sampleAt(47.57, 11.09), sampleAt(47.58, 11.09)}
	_, err := AnnotateSamples(context.Background(), samples, resolver, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected annotation to stop after the failing lookup, got %d calls", calls)
	}
}

func TestDegradedRunStillYieldsEvents(t *testing.T) {
	// A resolver that knows nothing still produces a renderable event
	// sequence, just without names.
	resolver := &stubResolver{
		resolve: func(_ context.Context, _, _ float64, _ ports.Purpose) (domain.Address, error) {
			return domain.Address{}, nil
		},
	}

	samples := []domain.Sample{
		{Point: domain.TrackPoint{Lat: 47.57, Lon: 11.09}, DistanceM: 0},
		{Point: domain.TrackPoint{Lat: 47.58, Lon: 11.09}, DistanceM: 1200},
	}

	annotated, err := AnnotateSamples(context.Background(), samples, resolver, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := ExtractEvents(annotated, 3, true)
	if len(events) != 2 {
		t.Fatalf("expected start and finish, got %d events", len(events))
	}
	if events[0].Kind != domain.EventStart || events[1].Kind != domain.EventFinish {
		t.Errorf("unexpected event kinds: %v, %v", events[0].Kind, events[1].Kind)
	}
	if !events[1].Address.Unknown() {
		t.Errorf("finish address should be unknown, got %+v", events[1].Address)
	}
}
