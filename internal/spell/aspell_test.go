package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const banner = "@(#) International Ispell Version 3.1.20 (but really Aspell 0.60.8)\n"

func TestParsePipeOutputCorrect(t *testing.T) {
	res, err := parsePipeOutput("hello", banner+"*\n\n")
	require.NoError(t, err)
	assert.Equal(t, Correct, res.Status)
	assert.Empty(t, res.Suggestions)
}

func TestParsePipeOutputRootForm(t *testing.T) {
	res, err := parsePipeOutput("running", banner+"+ run\n\n")
	require.NoError(t, err)
	assert.Equal(t, Correct, res.Status)
}

func TestParsePipeOutputSuggestions(t *testing.T) {
	res, err := parsePipeOutput("pythin", banner+"& pythin 4 0: python, pythons, pithing, Pythias\n\n")
	require.NoError(t, err)
	assert.Equal(t, Misspelled, res.Status)
	// The engine's ranking is authoritative; order must survive parsing.
	assert.Equal(t, []string{"python", "pythons", "pithing", "Pythias"}, res.Suggestions)
}

func TestParsePipeOutputNotFound(t *testing.T) {
	res, err := parsePipeOutput("supercalifragilistic", banner+"# supercalifragilistic 0\n\n")
	require.NoError(t, err)
	assert.Equal(t, Unknown, res.Status)
	assert.Empty(t, res.Suggestions)
}

func TestParsePipeOutputMalformedSuggestionLine(t *testing.T) {
	_, err := parsePipeOutput("pythin", banner+"& pythin 4 0 python\n")
	assert.Error(t, err)
}

func TestParsePipeOutputEmpty(t *testing.T) {
	_, err := parsePipeOutput("hello", banner)
	assert.Error(t, err)

	_, err = parsePipeOutput("hello", "")
	assert.Error(t, err)
}
