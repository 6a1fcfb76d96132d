package domain

import "time"

// Immutable recorded GPS fix, ordered by SequenceIndex (recording order).
// Elevation and Timestamp are optional; not every device writes them.
type TrackPoint struct {
	Lat           float64
	Lon           float64
	SequenceIndex int
	Elevation     *float64
	Timestamp     *time.Time
}

// Reports whether the coordinates lie inside the WGS 84 domain.
func (p TrackPoint) InRange() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// SameSpot reports whether two points share the exact same coordinates.
// Elevation and timestamps are ignored; only position matters for
// deduplication.
func (p TrackPoint) SameSpot(o TrackPoint) bool {
	return p.Lat == o.Lat && p.Lon == o.Lon
}
