// Package validate sanitizes caller input before it reaches the matcher.
//
// Name-like fields are validated strictly and every failure is returned. Search
// queries go through SanitizeQuery, which turns empty and stripped-to-nothing input
// into an empty query instead of an error.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/fidelmatch/internal/utils"
	"golang.org/x/text/unicode/norm"
)

// Sanitize strips control characters, normalizes to NFC and trims input.
// Input that is not valid UTF-8 is rejected as InvalidCharacters.
// maxLength counts code points; zero disables the check.
func Sanitize(input string, maxLength int, field string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &Error{Kind: Empty, Field: field}
	}
	if n := utils.RuneLen(trimmed); maxLength > 0 && n > maxLength {
		return "", &Error{Kind: TooLong, Field: field, MaxLength: maxLength, Length: n}
	}
	if !utf8.ValidString(trimmed) {
		return "", &Error{Kind: InvalidCharacters, Field: field}
	}

	cleaned := strings.TrimSpace(norm.NFC.String(utils.StripControl(trimmed)))
	if cleaned == "" {
		return "", &Error{Kind: InvalidCharacters, Field: field}
	}
	return cleaned, nil
}

// SanitizeQuery is the lenient form of Sanitize: empty input and input made only of
// stripped characters become "", other failures are returned.
func SanitizeQuery(input string, maxLength int, field string) (string, error) {
	cleaned, err := Sanitize(input, maxLength, field)
	if errors.Is(err, ErrInvalidCharacters) || errors.Is(err, ErrEmpty) {
		return "", nil
	}
	return cleaned, err
}

// String asserts that a decoded wire value is a string.
func String(v any, field string) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case nil:
		return "", nil
	default:
		return "", &Error{Kind: InvalidType, Field: field}
	}
}

var dangerousPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"sql keyword sequence", regexp.MustCompile(`(?i)\b(select|insert|update|delete|drop|union|alter)\b.+\b(from|into|table|select|set|where)\b`)},
	{"sql comment", regexp.MustCompile(`--|/\*|\*/`)},
	{"sql tautology", regexp.MustCompile(`(?i)'\s*or\s+'?\d*'?\s*=\s*'?\d*`)},
	{"script tag", regexp.MustCompile(`(?i)<\s*/?\s*script`)},
	{"javascript url", regexp.MustCompile(`(?i)javascript\s*:`)},
	{"event handler", regexp.MustCompile(`(?i)\bon[a-z]+\s*=`)},
}

// CheckDangerous rejects input that looks like SQL injection or markup injection.
// It is not part of the matching path; callers that forward input to other
// systems run it before Sanitize.
func CheckDangerous(input, field string) error {
	for _, p := range dangerousPatterns {
		if p.re.MatchString(input) {
			return &SecurityError{Field: field, Pattern: p.name}
		}
	}
	return nil
}
