package indexcache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("APPLE\ndef\n"), 0o644))
	return path
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := writeSource(t)
	entries := map[string][]string{"apple": {"a fruit"}}
	original := map[string]string{"apple": "APPLE"}
	require.NoError(t, Save(path, []string{"apple"}, entries, original))

	idx, ok, err := Load(path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"apple"}, idx.Words)
	assert.Equal(t, entries, idx.Entries)
	assert.Equal(t, original, idx.Original)
}

func TestLoadNoSidecar(t *testing.T) {
	path := writeSource(t)
	_, ok, err := Load(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadStaleSidecar(t *testing.T) {
	path := writeSource(t)
	require.NoError(t, Save(path, []string{"apple"}, map[string][]string{"apple": {"x"}}, nil))

	// Grow the source and push its mtime forward; the sidecar must be
	// treated as stale.
	require.NoError(t, os.WriteFile(path, []byte("APPLE\ndef\nPEAR\ndef\n"), 0o644))
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	_, ok, err := Load(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadCorruptSidecar(t *testing.T) {
	path := writeSource(t)
	require.NoError(t, os.WriteFile(path+".wordtool.idx", []byte("not gob"), 0o644))

	_, ok, err := Load(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	path := writeSource(t)
	require.NoError(t, Save(path, []string{"apple"}, map[string][]string{"apple": {"x"}}, nil))
	require.NoError(t, Save(path, []string{"apple"}, map[string][]string{"apple": {"y"}}, nil))

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{path, path + ".wordtool.idx"}, matches)

	idx, ok, err := Load(path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"y"}, idx.Entries["apple"])
}

func TestLoadMissingSource(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
