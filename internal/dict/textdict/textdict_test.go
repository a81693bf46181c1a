package textdict

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagerenn/wordtool/internal/dict"
)

const sampleCorpus = `Some file header text that is not a definition.

APPLE
Ap"ple, n.

1. The fleshy pome or fruit of a rosaceous tree.

2. Any tree genus Pyrus which has the stalk sunken into the base of the
fruit.

SLAY
Slay, v. t.

Defn: To put to death with a weapon, or by violence; to kill.

SLAY
Slay, n.

Defn: See Sley.

*** END OF THE PROJECT ***
trailing junk that must not be indexed
`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLookup(t *testing.T) {
	c, err := Load("corpus", "Corpus", writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	entries, err := c.Lookup("apple")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "APPLE", entries[0].Word)
	assert.Contains(t, entries[0].Definition, "1. The fleshy pome")
	assert.Contains(t, entries[0].Definition, "2. Any tree genus")
}

func TestLookupCaseInsensitive(t *testing.T) {
	c, err := Load("corpus", "Corpus", writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	for _, w := range []string{"Apple", "APPLE", "apple"} {
		entries, err := c.Lookup(w)
		require.NoError(t, err, "word %q", w)
		assert.Len(t, entries, 1, "word %q", w)
	}
}

func TestLookupRepeatedHeadword(t *testing.T) {
	c, err := Load("corpus", "Corpus", writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	entries, err := c.Lookup("slay")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Definition, "To put to death")
	assert.Contains(t, entries[1].Definition, "See Sley.")
}

func TestDefnPrefixStripped(t *testing.T) {
	c, err := Load("corpus", "Corpus", writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	entries, err := c.Lookup("slay")
	require.NoError(t, err)
	assert.NotContains(t, entries[0].Definition, "Defn:")
}

func TestLookupNotFound(t *testing.T) {
	c, err := Load("corpus", "Corpus", writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	_, err = c.Lookup("zzzxxxqqq")
	assert.True(t, errors.Is(err, dict.ErrNotFound))
}

func TestEndMarkerStopsScan(t *testing.T) {
	c, err := Load("corpus", "Corpus", writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	_, err = c.Lookup("trailing")
	assert.True(t, errors.Is(err, dict.ErrNotFound))
}

func TestWordsSorted(t *testing.T) {
	c, err := Load("corpus", "Corpus", writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "slay"}, c.Words())
}

func TestIndexSidecarReused(t *testing.T) {
	path := writeCorpus(t, sampleCorpus)
	_, err := Load("corpus", "Corpus", path)
	require.NoError(t, err)

	// The sidecar must exist and satisfy a second load even if the source
	// is unreadable by then.
	_, err = os.Stat(path + ".wordtool.idx")
	require.NoError(t, err)

	c, err := Load("corpus", "Corpus", path)
	require.NoError(t, err)
	entries, err := c.Lookup("apple")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("corpus", "Corpus", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
