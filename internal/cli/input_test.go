package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/fidelmatch/pkg/match"
	"github.com/bastiangx/fidelmatch/pkg/translit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		line     string
		expected Command
	}{
		{"match አማኑኤል | amanuel", Command{Verb: "match", Args: []string{"አማኑኤል", "amanuel"}}},
		{"m Amanuel Tsegaye|ama", Command{Verb: "match", Args: []string{"Amanuel Tsegaye", "ama"}}},
		{"MATCH a | ", Command{Verb: "match", Args: []string{"a", ""}}},
		{"expand  sara ", Command{Verb: "expand", Args: []string{"sara"}}},
		{"e", Command{Verb: "expand", Args: []string{""}}},
		{"tr mar", Command{Verb: "tr", Args: []string{"mar"}}},
		{"translit amanuel", Command{Verb: "tr", Args: []string{"amanuel"}}},
		{"stats", Command{Verb: "stats"}},
		{" clear\n", Command{Verb: "clear"}},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := ParseCommand(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	for _, bad := range []string{"", "match no separator", "hello"} {
		_, err := ParseCommand(bad)
		assert.ErrorIs(t, err, errUsage, bad)
	}
}

type stubMatcher struct {
	matches []string
	cleared bool
}

func (s *stubMatcher) Matches(name, query string, _ match.Options) (bool, error) {
	s.matches = append(s.matches, name+"|"+query)
	return true, nil
}

func (s *stubMatcher) ExpandQuery(query string) ([]string, error) {
	return []string{query, "ሳራ"}, nil
}

func (s *stubMatcher) Transliterate(string, translit.Options) ([]string, error) {
	return nil, nil
}

func (s *stubMatcher) ClearCache() { s.cleared = true }

func (s *stubMatcher) Stats() map[string]int { return map[string]int{"entries": 3} }

func TestInputHandler(t *testing.T) {
	stub := &stubMatcher{}
	in := strings.NewReader("match ሳራ | sara\nexpand sara\ntr zzz\nbogus\nstats\nclear")
	var out bytes.Buffer

	h := NewInputHandlerWithIO(stub, match.DefaultOptions(), translit.DefaultOptions(), in, &out)
	require.NoError(t, h.Start())

	assert.Equal(t, []string{"ሳራ|sara"}, stub.matches)
	assert.True(t, stub.cleared, "last line without newline is still handled")
	assert.Equal(t, 6, h.requestCount)

	text := out.String()
	assert.Contains(t, text, "ሳራ")
	assert.Contains(t, text, "No variants found")
	assert.Contains(t, text, "usage:")
}

func TestInputHandlerWithEngine(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandlerWithIO(match.NewDefault(), match.DefaultOptions(), translit.DefaultOptions(),
		strings.NewReader("expand amanuel\n"), &out)
	require.NoError(t, h.Start())
	assert.Contains(t, out.String(), "አማኑኤል")
}
