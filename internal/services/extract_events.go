package services

import (
	"math"
	"strings"

	"track2text/internal/domain"
)

// Turn annotated samples into the events the report renders: start,
// road changes, distance sections and finish.
//
// Samples with an unknown road never trigger a road change; the last
// known road, place and district carry forward instead, and the finish
// event reports those carried values. Road comparison ignores case.
// A sectionKm of zero (or less) disables section events.
func ExtractEvents(samples []domain.AnnotatedSample, sectionKm float64, includeStartFinish bool) []domain.Event {
	if len(samples) == 0 {
		return nil
	}

	first := samples[0]
	lastRoad := first.Address.Road
	lastPlace := first.Address.Place
	lastDistrict := first.Address.District

	events := []domain.Event{}
	if includeStartFinish {
		events = append(events, domain.Event{
			Kind:        domain.EventStart,
			SampleIndex: 0,
			Address:     first.Address,
			DistanceKm:  0,
		})
	}

	nextSectionKm := math.Inf(1)
	if sectionKm > 0 {
		nextSectionKm = sectionKm
	}

	for i := 1; i < len(samples); i++ {
		s := samples[i]
		km := s.Sample.Km()
		road := s.Address.Road

		// A road change at a sample is reported before a section
		// boundary at the same sample.
		if road != "" && !strings.EqualFold(road, lastRoad) {
			events = append(events, domain.Event{
				Kind:        domain.EventRoadChange,
				SampleIndex: i,
				Address:     s.Address,
				DistanceKm:  km,
			})
		}

		if road != "" {
			lastRoad = road
		}
		if s.Address.Place != "" {
			lastPlace = s.Address.Place
		}
		if s.Address.District != "" {
			lastDistrict = s.Address.District
		}

		// At most one section boundary per sample, even when a sparse
		// track skips over more than one mark.
		if km >= nextSectionKm {
			events = append(events, domain.Event{
				Kind:        domain.EventSection,
				SampleIndex: i,
				Address:     s.Address,
				DistanceKm:  km,
				SectionKm:   int(nextSectionKm),
			})
			nextSectionKm += sectionKm
		}
	}

	if includeStartFinish {
		lastIdx := len(samples) - 1
		events = append(events, domain.Event{
			Kind:        domain.EventFinish,
			SampleIndex: lastIdx,
			Address:     domain.Address{Road: lastRoad, Place: lastPlace, District: lastDistrict},
			DistanceKm:  samples[lastIdx].Sample.Km(),
		})
	}

	return events
}
