package match

import (
	"strings"

	"github.com/bastiangx/fidelmatch/internal/utils"
	"github.com/bastiangx/fidelmatch/pkg/distance"
	"github.com/bastiangx/fidelmatch/pkg/dictionary"
	"github.com/bastiangx/fidelmatch/pkg/phonetic"
	"github.com/bastiangx/fidelmatch/pkg/romanize"
	"github.com/charmbracelet/log"
)

// Thresholds of the matching stages.
const (
	containmentMinRatio = 0.7

	prefixVariantThreshold = distance.DefaultVariantThreshold

	fuzzyMaxNormalized = 0.25
	fuzzyMinRatio      = 0.6

	// name in Fidel, query in Latin
	romanNameWordThreshold = 2.0
	romanNameWordEdits     = 2
	romanNameMaxNormalized = 0.35
	romanNameMinRatio      = 0.5

	// query in Fidel, name in Latin
	romanQueryVariantThreshold = 1.5
	romanQueryEdits            = 1
	romanQueryMaxNormalized    = 0.4
	romanQueryMinRatio         = 0.4
)

// matchesName runs the stages cheapest first and stops at the first hit.
// Both inputs are already sanitized.
func (e *Engine) matchesName(name, query string, opts Options) bool {
	nameN, queryN := strings.TrimSpace(name), strings.TrimSpace(query)
	if !opts.CaseSensitive {
		nameN, queryN = strings.ToLower(nameN), strings.ToLower(queryN)
	}

	if queryN == "" {
		return false
	}
	if opts.WholeWord {
		return nameN == queryN
	}

	nameLen, queryLen := utils.RuneLen(nameN), utils.RuneLen(queryN)

	if !opts.Fuzzy || utils.LengthRatio(nameLen, queryLen) >= containmentMinRatio {
		if utils.ContainsEither(nameN, queryN) {
			return hit("containment", name, query)
		}
	}

	if !opts.CaseSensitive && queryLen >= 2 && nameLen >= queryLen {
		prefix := utils.FirstRunes(nameN, queryLen)
		if distance.MatchesVariant(prefix, queryN, prefixVariantThreshold) {
			return hit("prefix variant", name, query)
		}
	}

	if opts.Fuzzy && fuzzyWithin(nameN, queryN, opts.MaxDistance, fuzzyMaxNormalized, fuzzyMinRatio) {
		return hit("fuzzy", name, query)
	}

	if opts.Phonetic && phonetic.IsSimilar(nameN, queryN) {
		return hit("phonetic", name, query)
	}

	nameEthiopic, queryEthiopic := romanize.ContainsEthiopic(nameN), romanize.ContainsEthiopic(queryN)

	if nameEthiopic && !queryEthiopic && romanizedNameMatches(nameN, queryN, opts) {
		return hit("romanized name", name, query)
	}

	if queryEthiopic && !nameEthiopic && romanizedQueryMatches(nameN, queryN, opts) {
		return hit("romanized query", name, query)
	}

	for _, variant := range e.translit.Transliterate(queryN, e.settings.Expand) {
		if strings.Contains(nameN, variant) {
			return hit("transliteration", name, query)
		}
		if opts.Fuzzy && float64(distance.Levenshtein(nameN, variant)) <= opts.MaxDistance {
			return hit("fuzzy transliteration", name, query)
		}
	}

	for _, entry := range e.entries {
		if pairMatches(nameN, queryN, entry, opts) {
			return hit("dictionary scan", name, query)
		}
	}

	return false
}

func hit(stage, name, query string) bool {
	log.Debug("Name matched", "stage", stage, "name", name, "query", query)
	return true
}

// fuzzyWithin checks the whole-string Levenshtein distance against an absolute
// bound, a length-normalized bound and a minimum length ratio.
func fuzzyWithin(a, b string, maxDistance, maxNormalized, minRatio float64) bool {
	la, lb := utils.RuneLen(a), utils.RuneLen(b)
	longest := max(la, lb)
	if longest == 0 {
		return false
	}
	d := float64(distance.Levenshtein(a, b))
	return d <= maxDistance &&
		d/float64(longest) <= maxNormalized &&
		utils.LengthRatio(la, lb) >= minRatio
}

// romanizedNameMatches compares a Fidel name with a Latin query through the
// romanized name. Multi-word queries match when every query word finds a name word.
func romanizedNameMatches(nameN, queryN string, opts Options) bool {
	roman := romanize.ToASCII(nameN)
	query := strings.ToLower(queryN)
	if roman == "" {
		return false
	}
	if roman == query || utils.ContainsEither(roman, query) {
		return true
	}

	queryWords := strings.Fields(query)
	if len(queryWords) > 1 && allWordsMatch(queryWords, strings.Fields(roman)) {
		return true
	}

	return opts.Fuzzy && fuzzyWithin(roman, query, opts.MaxDistance, romanNameMaxNormalized, romanNameMinRatio)
}

func allWordsMatch(queryWords, nameWords []string) bool {
	for _, qw := range queryWords {
		found := false
		for _, nw := range nameWords {
			if wordMatches(nw, qw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// wordMatches compares one romanized name word with one query word. The distance
// checks look only at the name word's prefix of the query word's length.
func wordMatches(nameWord, queryWord string) bool {
	if utils.ContainsEither(nameWord, queryWord) || utils.HasPrefixEither(nameWord, queryWord) {
		return true
	}
	prefix := utils.FirstRunes(nameWord, utils.RuneLen(queryWord))
	return distance.MatchesVariant(prefix, queryWord, romanNameWordThreshold) ||
		distance.Levenshtein(prefix, queryWord) <= romanNameWordEdits
}

// romanizedQueryMatches compares a Latin name with a Fidel query through the
// romanized query.
func romanizedQueryMatches(nameN, queryN string, opts Options) bool {
	roman := romanize.ToASCII(queryN)
	name := strings.ToLower(nameN)
	if roman == "" {
		return false
	}
	if roman == name || strings.Contains(name, roman) || strings.HasPrefix(name, roman) {
		return true
	}

	prefix := utils.FirstRunes(name, utils.RuneLen(roman))
	if distance.MatchesVariant(prefix, roman, romanQueryVariantThreshold) ||
		distance.Levenshtein(prefix, roman) <= romanQueryEdits {
		return true
	}

	// very short names are contained in the romanized query
	if strings.Contains(roman, name) {
		return true
	}

	return opts.Fuzzy && fuzzyWithin(name, roman, opts.MaxDistance, romanQueryMaxNormalized, romanQueryMinRatio)
}

// pairMatches is the exhaustive fallback: name and query must line up with the two
// sides of one dictionary pair, in either orientation.
func pairMatches(nameN, queryN string, entry dictionary.Entry, opts Options) bool {
	return (sideMatches(nameN, entry.Latin, opts) && sideMatches(queryN, entry.Ethiopic, opts)) ||
		(sideMatches(nameN, entry.Ethiopic, opts) && sideMatches(queryN, entry.Latin, opts))
}

func sideMatches(s, counterpart string, opts Options) bool {
	if strings.Contains(s, counterpart) {
		return true
	}
	if opts.Fuzzy && float64(distance.Levenshtein(s, counterpart)) <= opts.MaxDistance {
		return true
	}
	return opts.Phonetic && phonetic.IsSimilar(s, counterpart)
}
