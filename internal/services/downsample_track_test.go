package services

import (
	"errors"
	"math"
	"testing"

	"track2text/internal/domain"
)

// Points marching north along a meridian, spacingM meters apart. One
// degree of latitude spans ~111.19 km on the sphere the haversine
// formula uses.
func meridianPoints(spacingM float64, n int) []domain.TrackPoint {
	const metersPerDegree = 111194.926

	points := make([]domain.TrackPoint, n)
	for i := range points {
		points[i] = domain.TrackPoint{
			Lat:           48.0 + float64(i)*spacingM/metersPerDegree,
			Lon:           11.0,
			SequenceIndex: i,
		}
	}
	return points
}

func TestDownsampleKeepsEndpointsAndSpacing(t *testing.T) {
	points := meridianPoints(30, 10)

	samples, err := DownsampleTrack(points, 200, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(samples) != 6 {
		t.Fatalf("expected 6 samples, got %d", len(samples))
	}
	if samples[0].Point.SequenceIndex != 0 {
		t.Errorf("first sample index = %d, want 0", samples[0].Point.SequenceIndex)
	}
	if got := samples[len(samples)-1].Point.SequenceIndex; got != 9 {
		t.Errorf("last sample index = %d, want 9", got)
	}

	// Every accepted pair except the forced final point keeps the
	// minimum spacing.
	for i := 1; i < len(samples)-1; i++ {
		a, b := samples[i-1].Point, samples[i].Point
		if d := domain.HaversineMeters(a.Lat, a.Lon, b.Lat, b.Lon); d < 50 {
			t.Errorf("samples %d and %d are %.1f m apart, want >= 50", i-1, i, d)
		}
	}
}

func TestDownsampleMeasuresDistanceOverAllPoints(t *testing.T) {
	// 30 m steps with a 50 m threshold: points 2, 4, ... are kept, but
	// their distances must count the skipped points too.
	points := meridianPoints(30, 10)

	samples, err := DownsampleTrack(points, 200, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := samples[1].DistanceM; math.Abs(got-60) > 0.5 {
		t.Errorf("second sample distance = %.2f m, want ~60", got)
	}
	if got := samples[len(samples)-1].DistanceM; math.Abs(got-270) > 0.5 {
		t.Errorf("final sample distance = %.2f m, want ~270", got)
	}

	for i := 1; i < len(samples); i++ {
		if samples[i].DistanceM <= samples[i-1].DistanceM {
			t.Fatalf("distances are not increasing at sample %d", i)
		}
	}
}

func TestDownsampleCapsSampleCount(t *testing.T) {
	points := meridianPoints(100, 500)

	samples, err := DownsampleTrack(points, 50, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(samples) != 50 {
		t.Fatalf("expected 50 samples, got %d", len(samples))
	}
	if samples[0].Point.SequenceIndex != 0 {
		t.Errorf("first sample index = %d, want 0", samples[0].Point.SequenceIndex)
	}
	if got := samples[len(samples)-1].Point.SequenceIndex; got != 499 {
		t.Errorf("last sample index = %d, want 499", got)
	}

	for i := 1; i < len(samples); i++ {
		if samples[i].Point.SequenceIndex <= samples[i-1].Point.SequenceIndex {
			t.Fatalf("sample order broken at index %d", i)
		}
	}
}

func TestDownsampleEmptyTrack(t *testing.T) {
	_, err := DownsampleTrack(nil, 200, 50)
	if !errors.Is(err, domain.ErrEmptyTrack) {
		t.Fatalf("expected ErrEmptyTrack, got %v", err)
	}
}

func TestDownsampleSinglePoint(t *testing.T) {
	samples, err := DownsampleTrack(meridianPoints(0, 1), 200, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if samples[0].DistanceM != 0 {
		t.Errorf("distance = %f, want 0", samples[0].DistanceM)
	}
}

func TestDownsampleRepeatedSpot(t *testing.T) {
	// A stationary recording collapses to a single sample.
	samples, err := DownsampleTrack(meridianPoints(0, 5), 200, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
}

func TestDownsampleRejectsTinyMaxSamples(t *testing.T) {
	if _, err := DownsampleTrack(meridianPoints(30, 10), 1, 50); err == nil {
		t.Fatal("expected error for maxSamples < 2")
	}
}
