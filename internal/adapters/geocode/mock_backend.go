package geocode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"track2text/internal/domain"
)

// MockFix is one canned answer for a coordinate.
type MockFix struct {
	Lat, Lon float64
	Road     string
	Place    string
	District string
}

// MockBackend serves canned addresses for tests and offline runs. Call
// times are recorded so spacing behavior can be asserted.
type MockBackend struct {
	name string

	mu    sync.Mutex
	fixes map[string]domain.Address
	fail  error
	calls []time.Time
}

func NewMockBackend(name string, fixes []MockFix) *MockBackend {
	m := make(map[string]domain.Address, len(fixes))
	for _, f := range fixes {
		m[fmt.Sprintf("%.5f|%.5f", f.Lat, f.Lon)] = domain.Address{
			Road:     f.Road,
			Place:    f.Place,
			District: f.District,
		}
	}
	return &MockBackend{name: name, fixes: m}
}

// FailWith makes every following Reverse call return err.
func (m *MockBackend) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

func (m *MockBackend) Name() string { return m.name }

// Reverse returns the canned fix for the coordinate. A coordinate without
// a fix yields an unknown address, which mirrors a real provider having
// no data there.
func (m *MockBackend) Reverse(ctx context.Context, lat, lon float64, zoom int) (domain.Address, error) {
	m.mu.Lock()
	m.calls = append(m.calls, time.Now())
	fail := m.fail
	addr := m.fixes[fmt.Sprintf("%.5f|%.5f", lat, lon)]
	m.mu.Unlock()

	if fail != nil {
		return domain.Address{}, fail
	}

	return addr, nil
}

// Calls returns a copy of the recorded call times.
func (m *MockBackend) Calls() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Time, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many Reverse calls the backend served.
func (m *MockBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
