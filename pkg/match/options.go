package match

import "github.com/bastiangx/fidelmatch/pkg/translit"

// Options tunes a single Matches call. Start from DefaultOptions; the zero value
// has MaxDistance 0, which makes fuzzy matching exact.
type Options struct {
	CaseSensitive bool
	WholeWord     bool
	Fuzzy         bool
	MaxDistance   float64
	Phonetic      bool
}

// DefaultOptions is lenient: case-insensitive substring matching, no fuzzy or
// phonetic stages, MaxDistance 2 for when fuzzy is switched on.
func DefaultOptions() Options {
	return Options{MaxDistance: 2}
}

// Settings are the engine-wide limits.
type Settings struct {
	CacheSize      int
	MaxNameLength  int
	MaxQueryLength int
	MaxTextLength  int
	// Expand is used by ExpandQuery and by the dictionary transliteration stage.
	Expand translit.Options
}

// DefaultSettings mirrors the defaults of the config file.
func DefaultSettings() Settings {
	return Settings{
		CacheSize:      translit.DefaultCacheSize,
		MaxNameLength:  100,
		MaxQueryLength: 100,
		MaxTextLength:  100,
		Expand:         translit.DefaultOptions(),
	}
}
