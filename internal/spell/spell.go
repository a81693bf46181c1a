// Package spell wraps a spelling suggestion engine behind a small interface
// so callers never touch subprocess mechanics. The primary backend shells
// out to aspell; a wordlist backend ranks corpus headwords by edit distance.
package spell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sagerenn/wordtool/internal/observability"
)

type Status int

const (
	// Correct: the engine knows the word and it is spelled right.
	Correct Status = iota
	// Misspelled: the engine proposes corrections, in its own ranking.
	Misspelled
	// Unknown: the engine has no data for the word at all.
	Unknown
)

// Result is the outcome for one checked word. Suggestions is non-empty only
// for Misspelled, and keeps the engine's order verbatim.
type Result struct {
	Word        string
	Status      Status
	Suggestions []string
}

type Suggester interface {
	Check(ctx context.Context, word string) (Result, error)
	CheckAll(ctx context.Context, words []string) ([]Result, error)
}

// ErrEngineUnavailable reports that the external engine binary cannot be
// found. The define tool degrades to "no suggestions"; the spell tool
// reports it and exits.
var ErrEngineUnavailable = errors.New("suggestion engine unavailable")

// Options configures backend construction in New.
type Options struct {
	Backend        string // "aspell" (default) or "wordlist"
	Command        string
	Timeout        time.Duration
	MaxDistance    int
	MaxSuggestions int

	// Words supplies the headword list for the wordlist backend; called
	// lazily so the corpus is only loaded when that backend is selected.
	Words func() []string
}

// New builds the configured suggestion backend.
func New(opts Options, log *observability.Logger) (Suggester, error) {
	switch opts.Backend {
	case "wordlist":
		var words []string
		if opts.Words != nil {
			words = opts.Words()
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: wordlist backend has no headwords", ErrEngineUnavailable)
		}
		return NewWordlist(words, opts.MaxDistance, opts.MaxSuggestions), nil
	case "", "aspell":
		a, err := NewAspell(opts.Command, opts.Timeout, log)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown suggestion backend %q", opts.Backend)
	}
}

// checkAll runs Check sequentially, preserving input order.
func checkAll(ctx context.Context, s Suggester, words []string) ([]Result, error) {
	results := make([]Result, 0, len(words))
	for _, w := range words {
		res, err := s.Check(ctx, w)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
