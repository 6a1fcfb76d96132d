package track

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"

	"track2text/internal/domain"
)

// loadGPX reads trackpoints from every track segment in file order.
// Files that carry only a planned route (rtept, no trkpt) fall back to
// the route points.
func loadGPX(path string) (domain.Track, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return domain.Track{}, fmt.Errorf("parse gpx %q: %w", path, err)
	}

	var points []domain.TrackPoint
	appendPoint := func(p gpx.GPXPoint) error {
		tp := domain.TrackPoint{
			Lat:           p.Latitude,
			Lon:           p.Longitude,
			SequenceIndex: len(points),
		}
		if !tp.InRange() {
			return fmt.Errorf("point %d: coordinate (%v, %v) out of range", tp.SequenceIndex, tp.Lat, tp.Lon)
		}
		if p.Elevation.NotNull() {
			ele := p.Elevation.Value()
			tp.Elevation = &ele
		}
		if !p.Timestamp.IsZero() {
			ts := p.Timestamp
			tp.Timestamp = &ts
		}
		points = append(points, tp)
		return nil
	}

	for _, trk := range g.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				if err := appendPoint(p); err != nil {
					return domain.Track{}, fmt.Errorf("parse gpx %q: %w", path, err)
				}
			}
		}
	}

	if len(points) == 0 {
		for _, rte := range g.Routes {
			for _, p := range rte.Points {
				if err := appendPoint(p); err != nil {
					return domain.Track{}, fmt.Errorf("parse gpx %q: %w", path, err)
				}
			}
		}
	}

	if len(points) == 0 {
		return domain.Track{}, fmt.Errorf("load gpx %q: %w", path, domain.ErrEmptyTrack)
	}

	return domain.Track{Points: points}, nil
}
