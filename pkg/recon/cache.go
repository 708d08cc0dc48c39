package recon

import (
	"context"
	"sync"
	"time"
)

// cacheEntry holds a cached structure with a timestamp for TTL expiration.
type cacheEntry struct {
	structure *PageStructure
	fetchedAt time.Time
}

// CachedExplorer wraps an Explorer with a thread-safe in-memory TTL
// cache keyed by URL. Expired entries are cleaned up lazily on lookup;
// no background goroutine.
type CachedExplorer struct {
	inner   Explorer
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewCachedExplorer wraps inner with a TTL cache.
func NewCachedExplorer(inner Explorer, ttl time.Duration) *CachedExplorer {
	return &CachedExplorer{
		inner:   inner,
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// ExplorePage serves from cache when possible.
func (c *CachedExplorer) ExplorePage(ctx context.Context, url string, timeout time.Duration) (*PageStructure, error) {
	if s, ok := c.get(url); ok {
		return s, nil
	}

	s, err := c.inner.ExplorePage(ctx, url, timeout)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[url] = &cacheEntry{structure: s, fetchedAt: time.Now()}
	c.mu.Unlock()
	return s, nil
}

func (c *CachedExplorer) get(url string) (*PageStructure, bool) {
	c.mu.RLock()
	entry, ok := c.entries[url]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired, clean up lazily. Re-check under write lock: a
		// concurrent store may have replaced the entry with a fresh one.
		c.mu.Lock()
		if current, ok := c.entries[url]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, url)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.structure, true
}
