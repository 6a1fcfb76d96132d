package services

import (
	"errors"
	"fmt"
	"math"

	"track2text/internal/domain"
)

// Reduce a raw track to a bounded list of samples worth annotating.
//
// Two passes run in order: a distance pass keeps points at least
// minDistanceM apart (plus both endpoints), then an index pass thins
// evenly to maxSamples when the distance pass still kept too many.
// Cumulative sample distances are measured along the full track over
// every original point, not just the kept ones.
func DownsampleTrack(points []domain.TrackPoint, maxSamples int, minDistanceM float64) ([]domain.Sample, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("downsample track: %w", domain.ErrEmptyTrack)
	}
	if maxSamples < 2 {
		return nil, errors.New("downsample track: maxSamples must be at least 2")
	}

	samples := distancePass(points, minDistanceM)
	if len(samples) > maxSamples {
		samples = indexPass(samples, maxSamples)
	}

	return samples, nil
}

// distancePass walks the track once, accepting a point when its direct
// distance to the last accepted point reaches minDistanceM. The first
// point is always accepted, the last one is appended unless the final
// accepted point already sits on the same spot.
func distancePass(points []domain.TrackPoint, minDistanceM float64) []domain.Sample {
	samples := []domain.Sample{{Point: points[0], DistanceM: 0}}

	lastKept := points[0]
	traveled := 0.0

	for i := 1; i < len(points); i++ {
		p := points[i]
		traveled += domain.HaversineMeters(points[i-1].Lat, points[i-1].Lon, p.Lat, p.Lon)

		if domain.HaversineMeters(lastKept.Lat, lastKept.Lon, p.Lat, p.Lon) >= minDistanceM {
			samples = append(samples, domain.Sample{Point: p, DistanceM: traveled})
			lastKept = p
		}
	}

	last := points[len(points)-1]
	if !samples[len(samples)-1].Point.SameSpot(last) {
		samples = append(samples, domain.Sample{Point: last, DistanceM: traveled})
	}

	return samples
}

// indexPass thins samples to exactly max entries by picking evenly
// spaced indexes. The first and last sample always survive.
func indexPass(samples []domain.Sample, max int) []domain.Sample {
	step := float64(len(samples)-1) / float64(max-1)

	thinned := make([]domain.Sample, 0, max)
	lastIdx := -1
	for i := 0; i < max; i++ {
		idx := int(math.Round(float64(i) * step))
		if idx == lastIdx {
			continue
		}
		thinned = append(thinned, samples[idx])
		lastIdx = idx
	}

	return thinned
}
