package dict

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

// Entry is a single headword/definition pair. A word with several senses in
// one source still produces one Entry per stored definition block.
type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Provider is one lookup tier. Lookup returns ErrNotFound when the word is
// absent from the tier; any other error means the tier itself is unusable
// and callers may fall through to the next one.
type Provider interface {
	ID() string
	Name() string
	Lookup(word string) ([]Entry, error)
}

// ErrNotFound reports that a word has no definition in a provider.
var ErrNotFound = errors.New("word not found")

// Normalize produces the canonical lookup key for a word: trimmed and
// Unicode case-folded, so APPLE, Apple and apple all resolve identically.
// A fresh Caser per call: they are stateful and not goroutine-safe.
func Normalize(word string) string {
	return cases.Fold().String(strings.TrimSpace(word))
}
