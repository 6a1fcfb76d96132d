package ports

import (
	"context"

	"track2text/internal/domain"
)

// Purpose selects which kind of address information a lookup is for. The
// purpose to backend binding is fixed once per run.
type Purpose string

const (
	// Street-level lookup, resolved at maximum zoom.
	PurposeRoad Purpose = "road"
	// Settlement-level lookup, resolved at a coarser configurable zoom.
	PurposeLocality Purpose = "locality"
)

// Contract for resolving a coordinate into address fields.
type AddressResolver interface {
	// Resolve returns the address for a coordinate. Lookup failures
	// degrade to an unknown Address with a nil error; the returned error
	// is non-nil only when ctx ends the wait.
	Resolve(ctx context.Context, lat, lon float64, purpose Purpose) (domain.Address, error)
}
