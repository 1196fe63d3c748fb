// Package trie indexes Latin name keys in a Patricia trie. Every key carries the
// set of Ethiopic renderings inserted for it.
package trie

import (
	"strings"

	"github.com/bastiangx/fidelmatch/internal/utils"
	"github.com/bastiangx/fidelmatch/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// NameTrie is built once and read-only afterwards. Reads are safe for concurrent use
// as long as nobody calls Insert.
type NameTrie struct {
	root *patricia.Trie
	keys int
}

// New returns an empty trie.
func New() *NameTrie {
	return &NameTrie{root: patricia.NewTrie()}
}

// FromEntries builds a trie holding every dictionary pair.
func FromEntries(entries []dictionary.Entry) *NameTrie {
	t := New()
	for _, e := range entries {
		t.Insert(e.Latin, e.Ethiopic)
	}
	log.Debugf("Name trie built: %d keys from %d entries", t.keys, len(entries))
	return t
}

// Insert adds ethiopic to the variant set of the lowercased key.
// Repeated inserts merge into the existing set.
func (t *NameTrie) Insert(latinKey, ethiopic string) {
	key := patricia.Prefix(strings.ToLower(latinKey))
	if len(key) == 0 {
		return
	}
	if item := t.root.Get(key); item != nil {
		item.(*utils.OrderedSet).Add(ethiopic)
		return
	}
	t.root.Insert(key, utils.NewOrderedSet(ethiopic))
	t.keys++
}

// Len returns the number of distinct keys.
func (t *NameTrie) Len() int {
	return t.keys
}

// SearchExact returns the variants of the key equal to query, or an empty slice.
func (t *NameTrie) SearchExact(query string) []string {
	key := strings.ToLower(query)
	if key == "" {
		return []string{}
	}
	item := t.root.Get(patricia.Prefix(key))
	if item == nil {
		return []string{}
	}
	return item.(*utils.OrderedSet).Items()
}

// SearchPrefix returns the variants of every key starting with prefix, the key equal
// to prefix included. A prefix that is not a path in the trie yields an empty slice;
// the empty prefix yields every variant.
func (t *NameTrie) SearchPrefix(prefix string) []string {
	out := utils.NewOrderedSet()
	t.collectPrefix(strings.ToLower(prefix), out)
	return out.Items()
}

// SearchContains runs SearchPrefix for every suffix of query and unions the results.
// It finds keys that start with some suffix of the query ("ruth" for "abruth",
// "mary" for "annamar"), never keys that only contain the query ("ar" does not
// find "mary").
func (t *NameTrie) SearchContains(query string) []string {
	lower := strings.ToLower(query)
	out := utils.NewOrderedSet()
	for _, offset := range utils.RuneOffsets(lower) {
		t.collectPrefix(lower[offset:], out)
	}
	return out.Items()
}

func (t *NameTrie) collectPrefix(prefix string, out *utils.OrderedSet) {
	err := t.root.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		out.Add(item.(*utils.OrderedSet).Items()...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting name trie subtree: %v", err)
	}
}
