package domain

// EventKind names the narrative event types in the order they may occur.
type EventKind string

const (
	EventStart      EventKind = "start"
	EventRoadChange EventKind = "road_change"
	EventSection    EventKind = "section"
	EventFinish     EventKind = "finish"
)

// A single narrative item derived from the annotated samples. Events are
// immutable and ordered by SampleIndex; a road change at a sample sorts
// before a section boundary at the same sample.
type Event struct {
	Kind        EventKind
	SampleIndex int
	Address     Address
	DistanceKm  float64
	// Crossed distance boundary in whole kilometers. Only set for
	// section events.
	SectionKm int
}
