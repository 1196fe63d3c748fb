// Package match decides whether two name strings, in Ethiopic or Latin script,
// spell the same name, and expands search queries into their script variants.
//
// An Engine owns the dictionary, the name trie built from it and the
// transliteration cache. Build one at startup and share it; it is safe for
// concurrent use.
package match

import (
	"github.com/bastiangx/fidelmatch/internal/utils"
	"github.com/bastiangx/fidelmatch/pkg/dictionary"
	"github.com/bastiangx/fidelmatch/pkg/translit"
	"github.com/bastiangx/fidelmatch/pkg/trie"
	"github.com/bastiangx/fidelmatch/pkg/validate"
	"github.com/charmbracelet/log"
)

// Engine is the matcher entry point.
type Engine struct {
	entries  []dictionary.Entry
	trie     *trie.NameTrie
	translit *translit.Transliterator
	settings Settings
	digest   string
}

// New builds an engine over entries. The slice is copied.
func New(entries []dictionary.Entry, settings Settings) *Engine {
	own := dictionary.Entries(entries)
	t := trie.FromEntries(own)
	e := &Engine{
		entries:  own,
		trie:     t,
		translit: translit.New(t, settings.CacheSize),
		settings: settings,
		digest:   dictionary.Fingerprint(own),
	}
	log.Debugf("Match engine ready: %d entries, %d trie keys, cache size %d, dictionary %s",
		len(own), t.Len(), e.translit.CacheSize(), e.digest)
	return e
}

// NewDefault builds an engine over the built-in dictionary with default settings.
func NewDefault() *Engine {
	return New(dictionary.Default(), DefaultSettings())
}

// Transliterate returns the Ethiopic variants of text. text is validated strictly.
func (e *Engine) Transliterate(text string, opts translit.Options) ([]string, error) {
	clean, err := validate.Sanitize(text, e.settings.MaxTextLength, "text")
	if err != nil {
		return nil, err
	}
	return e.translit.Transliterate(clean, opts), nil
}

// Matches reports whether name and query denote the same name. name is validated
// strictly; a query that is empty or holds only stripped characters never matches.
func (e *Engine) Matches(name, query string, opts Options) (bool, error) {
	cleanName, err := validate.Sanitize(name, e.settings.MaxNameLength, "name")
	if err != nil {
		return false, err
	}
	cleanQuery, err := validate.SanitizeQuery(query, e.settings.MaxQueryLength, "query")
	if err != nil {
		return false, err
	}
	return e.matchesName(cleanName, cleanQuery, opts), nil
}

// ExpandQuery returns the sanitized query followed by its transliteration variants.
// Variants shorter than two characters are dropped unless the query itself is a
// single character. An empty or stripped-to-nothing query yields an empty slice.
func (e *Engine) ExpandQuery(query string) ([]string, error) {
	clean, err := validate.SanitizeQuery(query, e.settings.MaxQueryLength, "query")
	if err != nil {
		return nil, err
	}
	if clean == "" {
		return []string{}, nil
	}

	terms := utils.NewOrderedSet(clean)
	singleChar := utils.RuneLen(clean) == 1
	for _, v := range e.translit.Transliterate(clean, e.settings.Expand) {
		if utils.RuneLen(v) >= 2 || singleChar {
			terms.Add(v)
		}
	}
	return terms.Items(), nil
}

// ClearCache resets the transliteration cache.
func (e *Engine) ClearCache() {
	e.translit.ClearCache()
}

// Dictionary returns a copy of the engine's name table.
func (e *Engine) Dictionary() []dictionary.Entry {
	return dictionary.Entries(e.entries)
}

// Fingerprint returns the dictionary.Fingerprint of the engine's table.
func (e *Engine) Fingerprint() string {
	return e.digest
}

// Stats reports table and cache sizes.
func (e *Engine) Stats() map[string]int {
	return map[string]int{
		"entries":   len(e.entries),
		"trieKeys":  e.trie.Len(),
		"cacheLen":  e.translit.CacheLen(),
		"cacheSize": e.translit.CacheSize(),
	}
}
