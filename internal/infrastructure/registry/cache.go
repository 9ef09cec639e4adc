package registry

import (
	"context"
	"sort"
	"sync"
	"time"

	"dialpool/internal/shared/biztime"
)

// CacheStats is what operators see on the cache inspection endpoint.
type CacheStats struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

// PayloadCache stores raw registry payloads keyed by normalized identifier.
type PayloadCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Stats(ctx context.Context) (CacheStats, error)
	Clear(ctx context.Context) error
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCache is a process-local PayloadCache. It has no capacity bound;
// entries leave on expiry.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	clock   biztime.Clock
}

func NewMemoryCache(clock biztime.Clock) *MemoryCache {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		clock:   clock,
	}
}

var _ PayloadCache = (*MemoryCache)(nil)

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	now := c.clock.Now()

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !now.Before(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if current, still := c.entries[key]; still && !now.Before(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	return entry.payload, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: c.clock.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

// Stats purges expired entries first so the reported size is live.
func (c *MemoryCache) Stats(_ context.Context) (CacheStats, error) {
	c.Purge()

	c.mu.RLock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	c.mu.RUnlock()

	sort.Strings(keys)
	return CacheStats{Size: len(keys), Keys: keys}, nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

// Purge evicts every expired entry and returns how many were removed.
func (c *MemoryCache) Purge() int {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}
