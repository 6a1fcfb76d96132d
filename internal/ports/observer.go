package ports

import "track2text/internal/domain"

// Contract for receiving one notification per annotated sample, in track
// order. Observers are informational only and must not alter pipeline
// state.
type ProgressObserver interface {
	// ObserveSample reports one finished sample. fraction is the share of
	// samples annotated so far, in (0, 1].
	ObserveSample(s domain.Sample, addr domain.Address, fraction float64)
}

// NopObserver discards progress notifications.
type NopObserver struct{}

func (NopObserver) ObserveSample(domain.Sample, domain.Address, float64) {}
