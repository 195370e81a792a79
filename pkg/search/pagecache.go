package search

import "sync"

// pageCache stores completed pages for the lifetime of a session. Entries
// are written once; a later write for the same page is dropped, so records
// a reader already saw cannot change underneath it.
type pageCache struct {
	mu      sync.RWMutex
	entries map[int]*Result
}

func newPageCache() *pageCache {
	return &pageCache{entries: make(map[int]*Result)}
}

func (c *pageCache) get(page int) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[page]
	return r, ok
}

// put stores r for page unless an entry already exists. It reports whether
// r was stored.
func (c *pageCache) put(page int, r *Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[page]; ok {
		return false
	}
	c.entries[page] = r
	return true
}
