package matching

import "sync"

// rankingCache memoizes computed rankings so that re-rendering a list does
// not rescore the whole catalogue. Entries are keyed by the subject plus the
// catalog and exclusion versions current at compute time; any write to
// clients, properties or the exclusion set changes a version and strands the
// stale entries. Strand-and-replace keeps the cache trivially correct at the
// few-hundred-record scale this serves.
type cacheKey struct {
	subjectID        string
	catalogVersion   uint64
	exclusionVersion uint64
}

type propertyRankCache struct {
	mu      sync.Mutex
	entries map[cacheKey][]scoredProperty
}

type buyerRankCache struct {
	mu      sync.Mutex
	entries map[cacheKey][]scoredClient
}

func (c *propertyRankCache) get(key cacheKey) ([]scoredProperty, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *propertyRankCache) put(key cacheKey, v []scoredProperty) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[cacheKey][]scoredProperty)
	}
	c.entries[key] = v
}

func (c *buyerRankCache) get(key cacheKey) ([]scoredClient, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *buyerRankCache) put(key cacheKey, v []scoredClient) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[cacheKey][]scoredClient)
	}
	c.entries[key] = v
}
