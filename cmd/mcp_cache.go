package cmd

import (
	"sync"
	"time"

	"github.com/mj1618/window-walker/internal/model"
	"github.com/mj1618/window-walker/internal/platform"
)

// mcpCacheEntry holds a cached window list with its timestamp.
type mcpCacheEntry struct {
	windows   []model.Window
	timestamp time.Time
}

// mcpWindowCache provides a TTL-based cache for window listings so agents
// polling list_windows do not re-enumerate on every call.
type mcpWindowCache struct {
	mu      sync.Mutex
	entries map[platform.ListOptions]mcpCacheEntry
	ttl     time.Duration
}

// newMCPWindowCache creates a new cache. A ttl of 0 disables caching.
func newMCPWindowCache(ttl time.Duration) *mcpWindowCache {
	return &mcpWindowCache{
		entries: make(map[platform.ListOptions]mcpCacheEntry),
		ttl:     ttl,
	}
}

// listWindows returns cached windows if within TTL, otherwise lists fresh.
func (c *mcpWindowCache) listWindows(reader platform.Reader, opts platform.ListOptions) ([]model.Window, error) {
	if c.ttl == 0 {
		return reader.ListWindows(opts)
	}

	c.mu.Lock()
	if entry, ok := c.entries[opts]; ok && time.Since(entry.timestamp) < c.ttl {
		windows := entry.windows
		c.mu.Unlock()
		return windows, nil
	}
	c.mu.Unlock()

	windows, err := reader.ListWindows(opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[opts] = mcpCacheEntry{windows: windows, timestamp: time.Now()}
	c.mu.Unlock()

	return windows, nil
}

// invalidateAll clears the entire cache. Any live walk changes focus and
// z-order, so every entry is stale afterwards.
func (c *mcpWindowCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[platform.ListOptions]mcpCacheEntry)
}
