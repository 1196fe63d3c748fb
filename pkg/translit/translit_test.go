package translit

import (
	"testing"

	"github.com/bastiangx/fidelmatch/pkg/dictionary"
	"github.com/bastiangx/fidelmatch/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(cacheSize int) *Transliterator {
	return New(trie.FromEntries(dictionary.Default()), cacheSize)
}

func TestTransliterate(t *testing.T) {
	tr := newDefault(DefaultCacheSize)

	assert.Contains(t, tr.Transliterate("amanuel", DefaultOptions()), "አማኑኤል")
	assert.Equal(t, []string{"አማኑኤል"}, tr.Transliterate("  AMANUEL ", DefaultOptions()))
	assert.Equal(t, []string{"ሳራ"}, tr.Transliterate("sara", Options{}))
	assert.Empty(t, tr.Transliterate("   ", DefaultOptions()))
	assert.NotNil(t, tr.Transliterate("", DefaultOptions()))
}

func TestTransliterateOrder(t *testing.T) {
	tr := newDefault(DefaultCacheSize)

	// exact first, then keys extending the query, then keys starting inside it
	got := tr.Transliterate("mary", DefaultOptions())
	require.NotEmpty(t, got)
	assert.Equal(t, "ማርያም", got[0])

	got = tr.Transliterate("abruth", DefaultOptions())
	assert.Contains(t, got, "ሩት")
	assert.Empty(t, tr.Transliterate("abruth", Options{}))
}

func TestPartialFlagIsPartOfCacheKey(t *testing.T) {
	tr := newDefault(DefaultCacheSize)

	partial := tr.Transliterate("mar", DefaultOptions())
	exact := tr.Transliterate("mar", Options{EnableCache: true})

	assert.NotEmpty(t, partial)
	assert.Empty(t, exact)
	assert.Equal(t, 2, tr.CacheLen())
}

func TestCacheIdempotence(t *testing.T) {
	tr := newDefault(DefaultCacheSize)
	noCache := Options{IncludePartialMatches: true}

	for _, text := range []string{"amanuel", "sara", "hirut", "mar", "zzz", "dawitabebe"} {
		first := tr.Transliterate(text, DefaultOptions())
		second := tr.Transliterate(text, DefaultOptions())
		fresh := tr.Transliterate(text, noCache)

		assert.ElementsMatch(t, first, second, text)
		assert.ElementsMatch(t, fresh, second, text)
	}
}

func TestCachedResultIsCopied(t *testing.T) {
	tr := newDefault(DefaultCacheSize)

	got := tr.Transliterate("sara", DefaultOptions())
	require.NotEmpty(t, got)
	got[0] = "changed"

	assert.Equal(t, "ሳራ", tr.Transliterate("sara", DefaultOptions())[0])
}

func TestCacheEvictsInInsertionOrder(t *testing.T) {
	tr := newDefault(2)
	opts := DefaultOptions()

	tr.Transliterate("abebe", opts)
	tr.Transliterate("hana", opts)
	// a hit does not refresh abebe
	tr.Transliterate("abebe", opts)
	tr.Transliterate("sara", opts)

	_, ok := tr.cache.get(cacheKey("abebe", true))
	assert.False(t, ok, "oldest insert should be evicted")
	_, ok = tr.cache.get(cacheKey("hana", true))
	assert.True(t, ok)
	_, ok = tr.cache.get(cacheKey("sara", true))
	assert.True(t, ok)
	assert.Equal(t, 2, tr.CacheLen())
}

func TestClearCache(t *testing.T) {
	tr := newDefault(DefaultCacheSize)
	tr.Transliterate("abebe", DefaultOptions())
	tr.Transliterate("hana", DefaultOptions())
	require.Equal(t, 2, tr.CacheLen())

	tr.ClearCache()
	assert.Zero(t, tr.CacheLen())
	assert.Contains(t, tr.Transliterate("abebe", DefaultOptions()), "አበበ")
}

func TestCacheSizeFallback(t *testing.T) {
	assert.Equal(t, DefaultCacheSize, newDefault(0).CacheSize())
	assert.Equal(t, DefaultCacheSize, newDefault(-5).CacheSize())
	assert.Equal(t, 7, newDefault(7).CacheSize())
}
