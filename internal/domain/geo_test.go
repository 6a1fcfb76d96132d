package domain

import (
	"math"
	"testing"
)

func TestHaversineMeters(t *testing.T) {
	// 0.001 degrees of latitude is ~111.19 m everywhere on the sphere.
	d := HaversineMeters(52.5000, 13.4000, 52.5010, 13.4000)
	if math.Abs(d-111.19) > 0.5 {
		t.Errorf("latitude step distance = %.2f m, want ~111.19 m", d)
	}

	// Longitude steps shrink with cos(lat); at 60N one step is half as long.
	d = HaversineMeters(60.0, 10.0000, 60.0, 10.0010)
	if math.Abs(d-55.60) > 0.5 {
		t.Errorf("longitude step distance at 60N = %.2f m, want ~55.60 m", d)
	}

	if d := HaversineMeters(48.1, 11.6, 48.1, 11.6); d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}
}

func TestTrackDistanceMeters(t *testing.T) {
	points := []TrackPoint{
		{Lat: 52.5000, Lon: 13.4, SequenceIndex: 0},
		{Lat: 52.5010, Lon: 13.4, SequenceIndex: 1},
		{Lat: 52.5020, Lon: 13.4, SequenceIndex: 2},
	}

	got := TrackDistanceMeters(points)
	if math.Abs(got-222.39) > 1 {
		t.Errorf("track distance = %.2f m, want ~222.39 m", got)
	}

	if d := TrackDistanceMeters(points[:1]); d != 0 {
		t.Errorf("single point distance = %v, want 0", d)
	}
	if d := TrackDistanceMeters(nil); d != 0 {
		t.Errorf("nil track distance = %v, want 0", d)
	}
}

func TestTrackPointInRange(t *testing.T) {
	cases := []struct {
		lat, lon float64
		want     bool
	}{
		{52.5, 13.4, true},
		{-90, 180, true},
		{90.0001, 0, false},
		{0, -180.5, false},
	}

	for _, c := range cases {
		p := TrackPoint{Lat: c.lat, Lon: c.lon}
		if got := p.InRange(); got != c.want {
			t.Errorf("InRange(%v, %v) = %v, want %v", c.lat, c.lon, got, c.want)
		}
	}
}
