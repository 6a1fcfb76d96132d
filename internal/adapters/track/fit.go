package track

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/tormoder/fit"

	"track2text/internal/domain"
)

// Unset FIT uint16 field, per the profile base types.
const fitUint16Invalid = 0xFFFF

// loadFIT decodes a FIT activity. Records without a GPS fix (indoor
// segments, cold starts) are skipped; the first session's totals become
// the track metrics.
func loadFIT(path string) (domain.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Track{}, fmt.Errorf("open fit %q: %w", path, err)
	}
	defer f.Close()

	decoded, err := fit.Decode(f)
	if err != nil {
		return domain.Track{}, fmt.Errorf("decode fit %q: %w", path, err)
	}

	activity, err := decoded.Activity()
	if err != nil {
		return domain.Track{}, fmt.Errorf("fit %q is not an activity file: %w", path, err)
	}

	points := recordsToPoints(activity.Records)
	if len(points) == 0 {
		return domain.Track{}, fmt.Errorf("load fit %q: %w", path, domain.ErrEmptyTrack)
	}

	trk := domain.Track{Points: points}
	if len(activity.Sessions) > 0 {
		m := sessionMetrics(activity.Sessions[0])
		trk.Metrics = &m
	}

	return trk, nil
}

func recordsToPoints(records []*fit.RecordMsg) []domain.TrackPoint {
	points := make([]domain.TrackPoint, 0, len(records))
	for _, r := range records {
		if r == nil || r.PositionLat.Invalid() || r.PositionLong.Invalid() {
			continue
		}

		tp := domain.TrackPoint{
			Lat:           r.PositionLat.Degrees(),
			Lon:           r.PositionLong.Degrees(),
			SequenceIndex: len(points),
		}
		if alt := r.GetAltitudeScaled(); !math.IsNaN(alt) {
			tp.Elevation = &alt
		}
		if !r.Timestamp.IsZero() {
			ts := r.Timestamp
			tp.Timestamp = &ts
		}
		points = append(points, tp)
	}
	return points
}

func sessionMetrics(s *fit.SessionMsg) domain.Metrics {
	m := domain.Metrics{
		Sport: s.Sport.String(),
	}

	if d := s.GetTotalDistanceScaled(); !math.IsNaN(d) {
		m.DistanceMeters = d
	}
	if sec := s.GetTotalElapsedTimeScaled(); !math.IsNaN(sec) {
		m.Elapsed = time.Duration(sec * float64(time.Second))
	}
	if s.TotalAscent != fitUint16Invalid {
		m.AscentMeters = int(s.TotalAscent)
	}
	if s.TotalDescent != fitUint16Invalid {
		m.DescentMeters = int(s.TotalDescent)
	}
	if !s.StartTime.IsZero() {
		st := s.StartTime
		m.StartTime = &st
	}

	return m
}
