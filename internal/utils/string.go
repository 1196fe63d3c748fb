package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CollapseSpaces replaces every whitespace run with a single space and trims the ends.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RuneLen counts code points, not bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// FirstRunes returns the first n code points of s, or s itself when it is shorter.
func FirstRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// RuneOffsets returns the byte offset of every code point in s.
func RuneOffsets(s string) []int {
	offsets := make([]int, 0, len(s))
	for pos := range s {
		offsets = append(offsets, pos)
	}
	return offsets
}

// LengthRatio is min/max of two lengths, 1 when both are zero.
func LengthRatio(a, b int) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 1.0
	}
	return float64(lo) / float64(hi)
}

// StripControl removes control characters (tabs and newlines included).
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// ContainsEither reports whether a contains b or b contains a.
func ContainsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// HasPrefixEither reports whether a starts with b or b starts with a.
func HasPrefixEither(a, b string) bool {
	return strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
}
