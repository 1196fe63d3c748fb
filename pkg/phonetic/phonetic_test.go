package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"latin", "amanuel", "AMNUEL"},
		{"latin upper", "  AMANUEL ", "AMNUEL"},
		{"fidel drops vowel carriers", "አማኑኤል", "MNL"},
		{"fidel rows share a class", "ፀጋዬ", "SGY"},
		{"laryngeals collapse", "ሀሐኀ", "H"},
		{"truncated to six", "bcdfghjklm", "BCDFGH"},
		{"repeats anywhere are dropped", "abab", "AB"},
		{"nothing maps", "1234567", "123456"},
		{"empty", "", ""},
		{"blank", "   ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Hash(tc.input))
		})
	}
}

func TestIsSimilar(t *testing.T) {
	assert.True(t, IsSimilar("amanuel", "Amanuel"))
	assert.True(t, IsSimilar("ሰላም", "ሠላም"))
	assert.False(t, IsSimilar("amanuel", "john"))
	assert.False(t, IsSimilar("", "john"))
	assert.False(t, IsSimilar("   ", "   "))
}
