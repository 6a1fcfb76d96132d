package domain

import "time"

// A parsed input activity: the ordered trackpoints plus the optional
// device-provided session summary (FIT files carry one, GPX does not).
type Track struct {
	Points  []TrackPoint
	Metrics *Metrics
}

// Device-recorded totals for one activity session. Values are taken
// verbatim from the file and rendered in the report header; nothing in
// the pipeline recomputes or checks them.
type Metrics struct {
	Sport          string
	DistanceMeters float64
	Elapsed        time.Duration
	AscentMeters   int
	DescentMeters  int
	StartTime      *time.Time
}

// Run counters handed to the output writer.
type Summary struct {
	TrackPointCount int
	SampleCount     int
	TotalDistanceKm float64
}
