package match

import (
	"strings"
	"testing"

	"github.com/bastiangx/fidelmatch/pkg/dictionary"
	"github.com/bastiangx/fidelmatch/pkg/translit"
	"github.com/bastiangx/fidelmatch/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatch(t *testing.T, e *Engine, name, query string, opts Options) bool {
	t.Helper()
	ok, err := e.Matches(name, query, opts)
	require.NoError(t, err, "%q / %q", name, query)
	return ok
}

func TestScenarios(t *testing.T) {
	e := NewDefault()
	opts := DefaultOptions()

	variants, err := e.Transliterate("amanuel", translit.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, variants, "አማኑኤል")

	assert.True(t, mustMatch(t, e, "አማኑኤል", "amanuel", opts))
	assert.True(t, mustMatch(t, e, "Amanuel Tsegaye", "አማኑኤል", opts))
	assert.True(t, mustMatch(t, e, "አማኑኤል", "Ama", opts))
	assert.False(t, mustMatch(t, e, "John", "amanuel", opts))
	assert.False(t, mustMatch(t, e, "አማኑኤል", "john", opts))

	expanded, err := e.ExpandQuery("amanuel")
	require.NoError(t, err)
	assert.Equal(t, []string{"amanuel", "አማኑኤል"}, expanded)

	assert.False(t, mustMatch(t, e, "Amanuel", "", opts))
}

func TestMatchStages(t *testing.T) {
	e := NewDefault()
	fuzzy := Options{Fuzzy: true, MaxDistance: 2}
	phonetic := Options{Phonetic: true, MaxDistance: 2}

	testCases := []struct {
		name     string
		n, q     string
		opts     Options
		expected bool
	}{
		{"containment", "Sara Tesfaye", "sara", DefaultOptions(), true},
		{"containment reversed", "Sara", "sara tesfaye", DefaultOptions(), true},
		{"prefix variant", "Selam", "salam", DefaultOptions(), true},
		{"whole word equal", "Sara", "sara", Options{WholeWord: true}, true},
		{"whole word rejects substring", "Sara Tesfaye", "sara", Options{WholeWord: true}, false},
		{"case sensitive", "Sara", "sara", Options{CaseSensitive: true, MaxDistance: 2}, false},
		{"containment without fuzzy ignores lengths", "abcxyzqqsara", "sara", DefaultOptions(), true},
		{"fuzzy guards containment by length ratio", "abcxyzqqsara", "sara", fuzzy, false},
		{"fuzzy off", "Alemayehu", "alemaxexu", DefaultOptions(), false},
		{"fuzzy on", "Alemayehu", "alemaxexu", fuzzy, true},
		{"phonetic off", "Tigist", "tgst", DefaultOptions(), false},
		{"phonetic on", "Tigist", "tgst", phonetic, true},
		{"romanized name", "ፀጋዬ", "tsegaye", DefaultOptions(), true},
		{"romanized name every word", "ፀጋዬ ብሩክ", "tsegay bruk", DefaultOptions(), true},
		{"every query word must find a name word", "ፀጋዬ ብሩክ", "tsegay xqzw", DefaultOptions(), false},
		{"romanized query", "Hana Tesfaye", "ሃና", DefaultOptions(), true},
		{"dictionary transliteration", "ኃይሉ በቀለ", "bekele", DefaultOptions(), true},
		{"romanized query contains name", "Dawit", "ዳዊት", DefaultOptions(), true},
		{"dictionary scan", "Michael", "ሚካኤል", DefaultOptions(), true},
		{"unrelated", "Kebede", "ሳራ", DefaultOptions(), false},
		// name is one edit from "abebe" but the query lines up with no rendering
		{"dictionary scan needs both sides", "Abebx", "xyzq", fuzzy, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mustMatch(t, e, tc.n, tc.q, tc.opts))
		})
	}
}

func TestDictionaryBidirectional(t *testing.T) {
	e := NewDefault()
	for _, entry := range dictionary.Default() {
		assert.True(t, mustMatch(t, e, entry.Ethiopic, entry.Latin, DefaultOptions()), "%s -> %s", entry.Ethiopic, entry.Latin)
		assert.True(t, mustMatch(t, e, entry.Latin, entry.Ethiopic, DefaultOptions()), "%s -> %s", entry.Latin, entry.Ethiopic)
	}
}

func TestCaseInvariance(t *testing.T) {
	e := NewDefault()
	pairs := [][2]string{
		{"Amanuel", "amanuel"}, {"John", "amanuel"}, {"Sara Tesfaye", "SARA"},
		{"Kebede", "bekele"}, {"Mulugeta", "mulu"}, {"Yohannes", "yonas"},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t,
			mustMatch(t, e, a, b, DefaultOptions()),
			mustMatch(t, e, strings.ToUpper(a), strings.ToLower(b), DefaultOptions()),
			"%q / %q", a, b)
	}
}

func TestMonotonicFuzziness(t *testing.T) {
	e := NewDefault()
	pairs := [][2]string{
		{"Alemayehu", "alemaxexu"}, {"Yohannes", "yohanes"}, {"Tewodros", "tewdros"},
		{"Mulugeta", "mulugkpa"}, {"Kebede", "kebebe"}, {"አማኑኤል", "amanuelo"},
	}
	distances := []float64{0, 0.5, 1, 2, 3, 5}

	for _, p := range pairs {
		matched := false
		for _, d := range distances {
			got := mustMatch(t, e, p[0], p[1], Options{Fuzzy: true, MaxDistance: d})
			if matched {
				assert.True(t, got, "%q / %q lost its match at distance %v", p[0], p[1], d)
			}
			matched = matched || got
		}
	}
}

func TestMatchesValidation(t *testing.T) {
	e := NewDefault()

	_, err := e.Matches("", "sara", DefaultOptions())
	assert.ErrorIs(t, err, validate.ErrEmpty)

	_, err = e.Matches(strings.Repeat("ሀ", 101), "sara", DefaultOptions())
	assert.ErrorIs(t, err, validate.ErrTooLong)

	_, err = e.Matches("\x00\x01", "sara", DefaultOptions())
	assert.ErrorIs(t, err, validate.ErrInvalidCharacters)

	// queries degrade to "no match"
	ok, err := e.Matches("Sara", "\x00\x01", DefaultOptions())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = e.Matches("Sara", strings.Repeat("a", 101), DefaultOptions())
	assert.ErrorIs(t, err, validate.ErrTooLong)
}

func TestTransliterateValidation(t *testing.T) {
	e := NewDefault()

	_, err := e.Transliterate("  ", translit.DefaultOptions())
	assert.ErrorIs(t, err, validate.ErrEmpty)

	_, err = e.Transliterate(strings.Repeat("a", 101), translit.DefaultOptions())
	assert.ErrorIs(t, err, validate.ErrTooLong)
}

func TestExpandQuery(t *testing.T) {
	e := NewDefault()

	for _, q := range []string{"amanuel", " Sara ", "a", "xyz", "ዳዊት", "mar"} {
		terms, err := e.ExpandQuery(q)
		require.NoError(t, err)
		require.NotEmpty(t, terms, q)
		assert.Equal(t, strings.TrimSpace(q), terms[0], "sanitized query comes first")
	}

	terms, err := e.ExpandQuery("mar")
	require.NoError(t, err)
	assert.Subset(t, terms, []string{"mar", "ማርያም", "ማርታ"})

	for _, q := range []string{"", "   ", "\x00", "\xff"} {
		terms, err := e.ExpandQuery(q)
		require.NoError(t, err)
		assert.NotNil(t, terms)
		assert.Empty(t, terms)
	}
}

func TestExpandDropsShortVariants(t *testing.T) {
	e := New([]dictionary.Entry{{Latin: "ab", Ethiopic: "አ"}, {Latin: "abc", Ethiopic: "አብክ"}}, DefaultSettings())

	terms, err := e.ExpandQuery("ab")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "አብክ"}, terms)

	terms, err = e.ExpandQuery("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "አ", "አብክ"}, terms)
}

func TestCacheLifecycle(t *testing.T) {
	e := NewDefault()
	stats := e.Stats()
	assert.Equal(t, len(dictionary.Default()), stats["entries"])
	assert.Zero(t, stats["cacheLen"])
	assert.Equal(t, translit.DefaultCacheSize, stats["cacheSize"])

	_, err := e.ExpandQuery("sara")
	require.NoError(t, err)
	assert.Equal(t, 1, e.Stats()["cacheLen"])

	e.ClearCache()
	assert.Zero(t, e.Stats()["cacheLen"])
}

func TestDictionaryIsCopied(t *testing.T) {
	entries := []dictionary.Entry{{Latin: "kidane", Ethiopic: "ኪዳነ"}}
	e := New(entries, DefaultSettings())
	entries[0].Ethiopic = "changed"

	got := e.Dictionary()
	assert.Equal(t, "ኪዳነ", got[0].Ethiopic)
	got[0].Ethiopic = "changed"
	assert.Equal(t, "ኪዳነ", e.Dictionary()[0].Ethiopic)
	assert.True(t, mustMatch(t, e, "ኪዳነ", "kidane", DefaultOptions()))
}
