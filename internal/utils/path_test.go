package utils

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathResolver(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	pr, err := NewPathResolver("fidelmatch")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "fidelmatch"), pr.GetConfigDir())
	assert.Equal(t, filepath.Join(base, "fidelmatch", "config.toml"), pr.GetConfigPath("config.toml"))

	dict := filepath.Join(pr.GetConfigDir(), "names.tsv")
	require.NoError(t, os.WriteFile(dict, []byte("abebe\tአበበ\n"), 0o644))

	got, err := pr.ResolveFile("names.tsv")
	require.NoError(t, err)
	assert.Equal(t, dict, got)

	got, err = pr.ResolveFile(dict)
	require.NoError(t, err)
	assert.Equal(t, dict, got)

	_, err = pr.ResolveFile("missing.tsv")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	data := struct {
		Name string `toml:"name"`
	}{Name: "ሳራ"}

	require.NoError(t, SaveTOMLFile(data, path))
	assert.True(t, FileExists(path))

	parsed, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	assert.Equal(t, "ሳራ", parsed["name"])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}
