package domain

// A trackpoint selected by the downsampler. DistanceM is the cumulative
// along-track distance from the start of the full trackpoint sequence up
// to this point, measured over every original point, not just the kept
// ones.
type Sample struct {
	Point     TrackPoint
	DistanceM float64
}

// Km returns the cumulative distance in kilometers.
func (s Sample) Km() float64 { return s.DistanceM / 1000 }
