package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagerenn/wordtool/internal/render"
	"github.com/sagerenn/wordtool/internal/spell"
)

func TestGatherWordsFromArgs(t *testing.T) {
	words, err := gatherWords([]string{"hello", "world"}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, words)
}

func TestGatherWordsSplitsQuotedString(t *testing.T) {
	words, err := gatherWords([]string{"hello world again"}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "again"}, words)
}

func TestGatherWordsFromStdin(t *testing.T) {
	words, err := gatherWords(nil, true, strings.NewReader("one\ntwo three\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, words)
}

func TestGatherWordsArgsBeatStdin(t *testing.T) {
	words, err := gatherWords([]string{"arg"}, true, strings.NewReader("stdin"))
	require.NoError(t, err)
	assert.Equal(t, []string{"arg"}, words)
}

func TestGatherWordsNone(t *testing.T) {
	_, err := gatherWords(nil, false, nil)
	assert.Error(t, err)

	_, err = gatherWords(nil, true, strings.NewReader("  \n"))
	assert.Error(t, err)
}

func mixedResults() []spell.Result {
	return []spell.Result{
		{Word: "hello", Status: spell.Correct},
		{Word: "wrold", Status: spell.Misspelled, Suggestions: []string{"world", "word"}},
		{Word: "qqqqq", Status: spell.Unknown},
	}
}

func TestPrintResultsIncorrectOnly(t *testing.T) {
	var out bytes.Buffer
	printResults(&out, render.New(&out, true), mixedResults(), true)

	got := out.String()
	assert.NotContains(t, got, "hello")
	assert.Contains(t, got, "wrold:")
	assert.Contains(t, got, "world")
	assert.Contains(t, got, "<not found>")
	assert.Less(t, strings.Index(got, "wrold"), strings.Index(got, "qqqqq"))
}

func TestPrintResultsKeepsInputOrder(t *testing.T) {
	var out bytes.Buffer
	printResults(&out, render.New(&out, true), mixedResults(), false)

	got := out.String()
	require.Contains(t, got, "hello")
	assert.Less(t, strings.Index(got, "hello"), strings.Index(got, "wrold"))
	assert.Less(t, strings.Index(got, "wrold"), strings.Index(got, "qqqqq"))
}
