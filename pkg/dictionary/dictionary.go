// Package dictionary holds the Latin → Ethiopic name table.
//
// The built-in table is immutable. Extra tables can be loaded from text or msgpack
// files and merged over it; the result is again a plain slice that callers treat as
// read-only.
package dictionary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
)

// Entry is one known name pair.
type Entry struct {
	Latin    string `msgpack:"l"`
	Ethiopic string `msgpack:"e"`
}

var (
	ErrEmptyKey   = errors.New("empty latin key")
	ErrUpperKey   = errors.New("latin key is not lowercase")
	ErrEmptyValue = errors.New("empty ethiopic value")
)

// Default returns a copy of the built-in table.
func Default() []Entry {
	return Entries(builtin)
}

// Entries returns a copy of entries so the caller may keep or modify it freely.
func Entries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Validate checks the key/value invariants of every entry.
func Validate(entries []Entry) error {
	for i, e := range entries {
		if err := validateEntry(e); err != nil {
			return fmt.Errorf("entry %d (%q): %w", i, e.Latin, err)
		}
	}
	return nil
}

func validateEntry(e Entry) error {
	switch {
	case e.Latin == "":
		return ErrEmptyKey
	case strings.ToLower(e.Latin) != e.Latin:
		return ErrUpperKey
	case strings.TrimSpace(e.Ethiopic) == "":
		return ErrEmptyValue
	}
	return nil
}

// Merge overlays extra tables on base. A key repeated later overrides the earlier
// value in place, so the first-seen key order is kept.
func Merge(base []Entry, extra ...[]Entry) []Entry {
	index := make(map[string]int, len(base))
	out := make([]Entry, 0, len(base))

	add := func(e Entry) {
		if i, ok := index[e.Latin]; ok {
			if out[i].Ethiopic != e.Ethiopic {
				log.Warnf("Dictionary key %q remapped from %s to %s", e.Latin, out[i].Ethiopic, e.Ethiopic)
			}
			out[i].Ethiopic = e.Ethiopic
			return
		}
		index[e.Latin] = len(out)
		out = append(out, e)
	}

	for _, e := range base {
		add(e)
	}
	for _, table := range extra {
		for _, e := range table {
			add(e)
		}
	}
	return out
}

// Fingerprint identifies a table by content. Equal tables in equal order share a
// fingerprint, so clients can tell which dictionary a server has loaded.
func Fingerprint(entries []Entry) string {
	d := xxhash.New()
	for _, e := range entries {
		_, _ = d.WriteString(e.Latin)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(e.Ethiopic)
		_, _ = d.Write([]byte{'\n'})
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
