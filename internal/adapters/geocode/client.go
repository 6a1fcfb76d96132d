package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"track2text/internal/domain"
	"track2text/internal/platform/obs"
	"track2text/internal/ports"
)

const (
	// Street lookups always run at maximum detail; the locality zoom is
	// configurable.
	roadZoom = 18

	// Minimum spacing between requests to one provider, per the Nominatim
	// usage policy. Photon gets the same treatment.
	minRequestGap = time.Second

	maxAttempts    = 4
	initialBackoff = 200 * time.Millisecond
)

// Options configures a Client. Providers are identifiers accepted by
// ParseProvider; binding them to purposes happens once, in New.
type Options struct {
	RoadProvider     string
	LocalityProvider string
	LocalityZoom     int
	UserAgent        string
}

// One purpose binding: which backend answers, and at which zoom.
type binding struct {
	provider Provider
	backend  Backend
	zoom     int
}

// Client implements ports.AddressResolver on top of two purpose-bound
// backends.
//
// It coordinates:
//   - Purpose to provider binding, fixed at construction
//   - Per-provider request spacing shared across purposes
//   - An in-process cache keyed by quantized coordinates
//   - Retry with backoff, degrading to an unknown address
//
// The client is safe for concurrent use.
type Client struct {
	bindings map[ports.Purpose]binding
	limiters map[Provider]*rate.Limiter
	cache    *memoryCache
	backoff  time.Duration
	log      *zap.SugaredLogger
}

// New builds a client with the stock Nominatim and Photon backends. The
// user agent must identify the installation; anonymous clients violate
// the providers' usage policies and get blocked.
func New(opts Options, log *zap.SugaredLogger) (*Client, error) {
	if strings.TrimSpace(opts.UserAgent) == "" {
		return nil, errors.New("new geocode client: user agent is empty")
	}

	roadProvider, err := ParseProvider(opts.RoadProvider)
	if err != nil {
		return nil, fmt.Errorf("new geocode client: road purpose: %w", err)
	}
	localityProvider, err := ParseProvider(opts.LocalityProvider)
	if err != nil {
		return nil, fmt.Errorf("new geocode client: locality purpose: %w", err)
	}

	session := &http.Client{Timeout: 10 * time.Second}
	backends := map[Provider]Backend{
		Nominatim: NewNominatim(session, opts.UserAgent),
		Photon:    NewPhoton(session, opts.UserAgent),
	}

	localityZoom := opts.LocalityZoom
	if localityZoom == 0 {
		localityZoom = 12
	}

	bindings := map[ports.Purpose]binding{
		ports.PurposeRoad:     {provider: roadProvider, backend: backends[roadProvider], zoom: roadZoom},
		ports.PurposeLocality: {provider: localityProvider, backend: backends[localityProvider], zoom: localityZoom},
	}

	return newClient(bindings, minRequestGap, initialBackoff, log), nil
}

// newClient wires explicit bindings. Both purposes on the same provider
// share one spacing gate.
func newClient(bindings map[ports.Purpose]binding, gap, backoff time.Duration, log *zap.SugaredLogger) *Client {
	limiters := make(map[Provider]*rate.Limiter)
	for _, b := range bindings {
		if _, ok := limiters[b.provider]; !ok {
			limiters[b.provider] = rate.NewLimiter(rate.Every(gap), 1)
		}
	}

	return &Client{
		bindings: bindings,
		limiters: limiters,
		cache:    newMemoryCache(),
		backoff:  backoff,
		log:      log,
	}
}

// Resolve returns the address for a coordinate, consulting the cache
// before the network. Failed lookups degrade to an unknown address; the
// error return is reserved for context cancellation.
func (c *Client) Resolve(ctx context.Context, lat, lon float64, purpose ports.Purpose) (_ domain.Address, err error) {
	defer obs.Time(ctx, c.log, "geocode.resolve")(&err)

	b, ok := c.bindings[purpose]
	if !ok {
		return domain.Address{}, fmt.Errorf("resolve: no backend bound for purpose %q", purpose)
	}

	key := cacheKey(b.provider, b.zoom, lat, lon)
	if addr, ok := c.cache.get(key); ok {
		return addr, nil
	}

	addr, fresh, err := c.fetch(ctx, b, lat, lon)
	if err != nil {
		return domain.Address{}, err
	}

	// Degraded answers are not cached; a later sample at the same spot
	// deserves a fresh try.
	if fresh {
		c.cache.put(key, addr)
	}

	return addr, nil
}

// fetch runs the gated request with bounded retries. Every attempt waits
// for the provider's spacing gate first, so retries cannot hammer a
// struggling service. Exhausted retries return an unknown address and
// fresh=false.
func (c *Client) fetch(ctx context.Context, b binding, lat, lon float64) (domain.Address, bool, error) {
	backoff := c.backoff

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.limiters[b.provider].Wait(ctx); err != nil {
			return domain.Address{}, false, err
		}

		addr, err := b.backend.Reverse(ctx, lat, lon, b.zoom)
		if err == nil {
			return addr, true, nil
		}
		lastErr = err

		if err := ctx.Err(); err != nil {
			return domain.Address{}, false, err
		}

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return domain.Address{}, false, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	c.log.Warnw("reverse geocode degraded",
		"provider", b.provider,
		"lat", lat,
		"lon", lon,
		"attempts", maxAttempts,
		"err", lastErr,
	)

	return domain.Address{}, false, nil
}
