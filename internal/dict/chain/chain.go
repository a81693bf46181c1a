// Package chain composes lookup providers into one ordered fallback tier
// list: the first provider with entries wins, tiers are never merged, and a
// broken tier (unreadable store, corrupt file) is skipped rather than
// surfaced to the user.
package chain

import (
	"errors"
	"fmt"

	"github.com/sagerenn/wordtool/internal/dict"
	"github.com/sagerenn/wordtool/internal/observability"
)

type Chain struct {
	providers []dict.Provider
	log       *observability.Logger
}

func New(log *observability.Logger, providers ...dict.Provider) *Chain {
	return &Chain{providers: providers, log: log}
}

// Providers returns the tiers in lookup order.
func (c *Chain) Providers() []dict.Provider {
	out := make([]dict.Provider, len(c.providers))
	copy(out, c.providers)
	return out
}

func (c *Chain) Lookup(word string) ([]dict.Entry, error) {
	for _, p := range c.providers {
		entries, err := p.Lookup(word)
		if err != nil {
			if errors.Is(err, dict.ErrNotFound) {
				c.log.Debug("tier miss", "tier", p.ID(), "word", word)
				continue
			}
			c.log.Debug("tier unavailable, falling through", "tier", p.ID(), "error", err)
			continue
		}
		if len(entries) > 0 {
			c.log.Debug("tier hit", "tier", p.ID(), "word", word, "entries", len(entries))
			return entries, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", word, dict.ErrNotFound)
}
