// Package phonetic reduces names to short sound-alike codes.
package phonetic

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/fidelmatch/pkg/distance"
)

const (
	hashLength = 6
	// SimilarityThreshold is the minimum hash similarity for IsSimilar.
	SimilarityThreshold = 0.7
)

// classRow maps a whole Fidel row (seven orders plus the labialized slot) to one
// consonant-class letter. Rows sharing a sound share a letter.
type classRow struct {
	base  rune
	class byte
}

var classRows = []classRow{
	{0x1200, 'H'}, {0x1208, 'L'}, {0x1210, 'H'}, {0x1218, 'M'},
	{0x1220, 'S'}, {0x1228, 'R'}, {0x1230, 'S'}, {0x1238, 'S'},
	{0x1240, 'K'}, {0x1260, 'B'}, {0x1268, 'B'}, {0x1270, 'T'},
	{0x1278, 'C'}, {0x1280, 'H'}, {0x1290, 'N'}, {0x1298, 'N'},
	{0x12A8, 'K'}, {0x12B8, 'H'}, {0x12C8, 'W'}, {0x12D8, 'Z'},
	{0x12E0, 'Z'}, {0x12E8, 'Y'}, {0x12F0, 'D'}, {0x1300, 'J'},
	{0x1308, 'G'}, {0x1320, 'T'}, {0x1328, 'C'}, {0x1330, 'P'},
	{0x1338, 'S'}, {0x1340, 'S'}, {0x1348, 'F'}, {0x1350, 'P'},
}

// vowel carriers (አ, ዐ rows) carry no consonant and map to nothing.
var silentRows = []rune{0x12A0, 0x12D0}

var classes = buildClasses()

func buildClasses() map[rune]string {
	m := make(map[rune]string, len(classRows)*8+len(silentRows)*8)
	for _, row := range classRows {
		for i := rune(0); i < 8; i++ {
			m[row.base+i] = string(row.class)
		}
	}
	for _, base := range silentRows {
		for i := rune(0); i < 8; i++ {
			m[base+i] = ""
		}
	}
	return m
}

// Hash returns a code of at most six letters. Fidel characters collapse to their
// consonant class, ASCII letters are uppercased and anything else is skipped.
// Only the first occurrence of each letter is kept. When nothing maps, the first
// six characters of the normalized input are used, uppercased.
func Hash(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return ""
	}

	var b strings.Builder
	mapped := false
	for _, r := range normalized {
		if class, ok := classes[r]; ok {
			if class != "" {
				b.WriteString(class)
				mapped = true
			}
			continue
		}
		if r < utf8.RuneSelf && 'a' <= r && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
			mapped = true
		}
	}

	if !mapped {
		return strings.ToUpper(firstN(normalized, hashLength))
	}
	return firstN(dedupe(b.String()), hashLength)
}

// IsSimilar reports whether the hashes of a and b agree closely enough.
func IsSimilar(a, b string) bool {
	ha, hb := Hash(a), Hash(b)
	if ha == "" || hb == "" {
		return false
	}
	if ha == hb {
		return true
	}
	return distance.SimilarityRatio(ha, hb) >= SimilarityThreshold
}

// dedupe keeps the first occurrence of every rune, wherever repeats appear.
func dedupe(s string) string {
	seen := make(map[rune]bool, len(s))
	var b strings.Builder
	for _, r := range s {
		if seen[r] {
			continue
		}
		seen[r] = true
		b.WriteRune(r)
	}
	return b.String()
}

func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
