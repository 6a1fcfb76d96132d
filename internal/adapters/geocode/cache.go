package geocode

import (
	"fmt"
	"sync"

	"track2text/internal/domain"
)

// memoryCache holds resolved addresses for the lifetime of one process.
// Keys quantize the coordinate so adjacent GPS fixes of the same spot
// share an entry; nothing is evicted or persisted across runs.
type memoryCache struct {
	mu    sync.RWMutex
	items map[string]domain.Address
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string]domain.Address)}
}

func (c *memoryCache) get(key string) (domain.Address, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	addr, ok := c.items[key]
	return addr, ok
}

func (c *memoryCache) put(key string, addr domain.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = addr
}

func (c *memoryCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// cacheKey quantizes a coordinate to ~1 m precision. Provider and zoom
// are part of the key: the same spot resolved for different purposes is
// a different answer.
func cacheKey(p Provider, zoom int, lat, lon float64) string {
	return fmt.Sprintf("%s|%d|%.5f|%.5f", p, zoom, lat, lon)
}
