package translit

import (
	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of memoized transliterations.
const DefaultCacheSize = 1000

// resultCache is a bounded FIFO map. Lookups use Peek, which never refreshes an
// entry, and every key is added once on a miss, so the eviction order is insertion
// order. The underlying cache is safe for concurrent use.
type resultCache struct {
	entries *lru.Cache[string, []string]
	size    int
}

func newResultCache(size int) *resultCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.NewWithEvict(size, func(key string, _ []string) {
		log.Debugf("Evicted transliteration %q from cache", key)
	})
	if err != nil {
		// only returned for a non-positive size
		log.Fatalf("Failed to create transliteration cache: %v", err)
	}
	return &resultCache{entries: entries, size: size}
}

func (c *resultCache) get(key string) ([]string, bool) {
	return c.entries.Peek(key)
}

func (c *resultCache) put(key string, value []string) {
	c.entries.Add(key, value)
}

func (c *resultCache) clear() {
	c.entries.Purge()
}

func (c *resultCache) len() int {
	return c.entries.Len()
}
