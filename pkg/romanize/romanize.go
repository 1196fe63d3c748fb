// Package romanize turns Ethiopic (Fidel) text into a stable lowercase ASCII proxy.
//
// The mapping is lossy and not reversible. It exists so that Ethiopic and Latin
// spellings of a name can be compared with plain string and edit-distance tools.
package romanize

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/fidelmatch/internal/utils"
)

// ToASCII romanizes text one code point at a time. Mapped Fidel characters become
// their syllable, ASCII letters and digits pass through lowercased, a space stays a
// space and everything else turns into a separator space. The result is lowercased,
// whitespace runs are collapsed and the ends trimmed.
func ToASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if s, ok := syllable(r); ok {
			b.WriteString(s)
			continue
		}
		switch {
		case r == ' ':
			b.WriteByte(' ')
		case r < utf8.RuneSelf && isASCIIAlnum(byte(r)):
			b.WriteByte(toLowerASCII(byte(r)))
		default:
			b.WriteByte(' ')
		}
	}

	return utils.CollapseSpaces(strings.ToLower(b.String()))
}

// ContainsEthiopic reports whether any code point of text is in the Ethiopic block.
func ContainsEthiopic(text string) bool {
	for _, r := range text {
		if r >= ethiopicFirst && r <= ethiopicLast {
			return true
		}
	}
	return false
}

func isASCIIAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
