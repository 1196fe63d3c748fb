// Package translit converts Latin names into their known Ethiopic renderings.
package translit

import (
	"strconv"
	"strings"

	"github.com/bastiangx/fidelmatch/internal/utils"
	"github.com/bastiangx/fidelmatch/pkg/trie"
	"github.com/charmbracelet/log"
)

// Options controls a single transliteration.
type Options struct {
	// IncludePartialMatches adds prefix and suffix-anchored matches to the exact ones.
	IncludePartialMatches bool
	// EnableCache reads and fills the result cache.
	EnableCache bool
}

// DefaultOptions enables partial matches and the cache.
func DefaultOptions() Options {
	return Options{IncludePartialMatches: true, EnableCache: true}
}

// Transliterator looks names up in a NameTrie and memoizes the results.
type Transliterator struct {
	trie  *trie.NameTrie
	cache *resultCache
}

// New creates a transliterator over t with a cache of cacheSize entries.
func New(t *trie.NameTrie, cacheSize int) *Transliterator {
	return &Transliterator{
		trie:  t,
		cache: newResultCache(cacheSize),
	}
}

// Transliterate returns the Ethiopic variants for text: exact matches first, then
// prefix matches, then suffix-anchored matches, without duplicates. Empty input
// yields an empty slice. The returned slice belongs to the caller.
func (t *Transliterator) Transliterate(text string, opts Options) []string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return []string{}
	}

	key := cacheKey(normalized, opts.IncludePartialMatches)
	if opts.EnableCache {
		if cached, ok := t.cache.get(key); ok {
			log.Debugf("Transliteration cache hit for %q", key)
			return clone(cached)
		}
	}

	results := utils.NewOrderedSet(t.trie.SearchExact(normalized)...)
	if opts.IncludePartialMatches {
		results.Add(t.trie.SearchPrefix(normalized)...)
		results.Add(t.trie.SearchContains(normalized)...)
	}
	variants := results.Items()

	if opts.EnableCache {
		t.cache.put(key, clone(variants))
	}
	return variants
}

// ClearCache drops every memoized result.
func (t *Transliterator) ClearCache() {
	t.cache.clear()
}

// CacheLen reports how many results are memoized.
func (t *Transliterator) CacheLen() int {
	return t.cache.len()
}

// CacheSize reports the cache capacity.
func (t *Transliterator) CacheSize() int {
	return t.cache.size
}

func cacheKey(normalized string, partial bool) string {
	return normalized + ":" + strconv.FormatBool(partial)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
