package harmony

import (
	"sync"
	"sync/atomic"
)

const DefaultCacheSize = 1024

// Cache memoizes GenerateSpec. Generation is a pure function of the
// normalized spec, so entries never go stale.
type Cache struct {
	mu      sync.RWMutex
	entries map[Spec]Palette
	max     int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates a cache holding at most max palettes (DefaultCacheSize if
// max <= 0).
func NewCache(max int) *Cache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{
		entries: make(map[Spec]Palette),
		max:     max,
	}
}

// Generate returns the cached palette for s, generating it on a miss.
func (c *Cache) Generate(s Spec) (Palette, error) {
	key, err := s.Normalize()
	if err != nil {
		return Palette{}, err
	}

	c.mu.RLock()
	p, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return p, nil
	}

	c.misses.Add(1)
	p, err = GenerateSpec(key)
	if err != nil {
		return Palette{}, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.max {
		// drop an arbitrary entry; any of them can be regenerated
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = p
	c.mu.Unlock()

	return p, nil
}

// Stats returns the hit and miss counts since creation.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
