package spell

import (
	"context"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/sagerenn/wordtool/internal/dict"
)

// Wordlist suggests corrections from a fixed headword list by Levenshtein
// distance. It needs no external binary, so it can stand in for aspell on
// systems without one — selected explicitly through configuration, never as
// a silent fallback.
type Wordlist struct {
	words       []string
	known       map[string]struct{}
	maxDistance int
	maxResults  int
}

func NewWordlist(words []string, maxDistance, maxResults int) *Wordlist {
	if maxDistance <= 0 {
		maxDistance = 2
	}
	if maxResults <= 0 {
		maxResults = 20
	}
	known := make(map[string]struct{}, len(words))
	normed := make([]string, 0, len(words))
	for _, w := range words {
		n := dict.Normalize(w)
		if n == "" {
			continue
		}
		if _, ok := known[n]; ok {
			continue
		}
		known[n] = struct{}{}
		normed = append(normed, n)
	}
	sort.Strings(normed)
	return &Wordlist{
		words:       normed,
		known:       known,
		maxDistance: maxDistance,
		maxResults:  maxResults,
	}
}

func (w *Wordlist) Check(_ context.Context, word string) (Result, error) {
	q := dict.Normalize(word)
	if _, ok := w.known[q]; ok {
		return Result{Word: word, Status: Correct}, nil
	}

	type scored struct {
		word string
		dist int
	}
	var candidates []scored
	for _, cand := range w.words {
		// Length difference is a lower bound on edit distance.
		if diff := len(cand) - len(q); diff > w.maxDistance || -diff > w.maxDistance {
			continue
		}
		d := edlib.LevenshteinDistance(q, cand)
		if d <= w.maxDistance {
			candidates = append(candidates, scored{word: cand, dist: d})
		}
	}
	if len(candidates) == 0 {
		return Result{Word: word, Status: Unknown}, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].word < candidates[j].word
	})
	if len(candidates) > w.maxResults {
		candidates = candidates[:w.maxResults]
	}
	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, strings.ToLower(c.word))
	}
	return Result{Word: word, Status: Misspelled, Suggestions: suggestions}, nil
}

func (w *Wordlist) CheckAll(ctx context.Context, words []string) ([]Result, error) {
	return checkAll(ctx, w, words)
}
