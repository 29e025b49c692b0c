package content

import (
	"sync"
	"time"
)

// Cache is an in-memory cache of parsed collections with TTL, keyed by
// content directory. Serve mode reads through it so every request does not
// re-parse the whole tree; authors see edits after at most one TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	parser  *Parser
}

type cacheEntry struct {
	coll    *Collection
	fetched time.Time
}

// NewCache creates a Cache backed by the given Parser.
func NewCache(p *Parser, ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		parser:  p,
	}
}

func (c *Cache) valid(e cacheEntry) bool {
	return e.coll != nil && time.Since(e.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh parse.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Collection returns the parsed collection for dir, reparsing when the cached
// copy is missing or stale. It tries a read lock first; only takes a write
// lock if a reload is needed.
func (c *Cache) Collection(dir string) (*Collection, error) {
	c.mu.RLock()
	if e, ok := c.entries[dir]; ok && c.valid(e) {
		c.mu.RUnlock()
		return e.coll, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[dir]; ok && c.valid(e) {
		return e.coll, nil
	}
	coll, err := c.parser.ParseAll(dir)
	if err != nil {
		return nil, err
	}
	c.entries[dir] = cacheEntry{coll: coll, fetched: time.Now()}
	return coll, nil
}
