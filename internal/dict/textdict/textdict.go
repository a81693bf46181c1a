// Package textdict reads a Webster's-style plain text corpus: upper-case
// headword lines, numbered sense lines, and definition bodies introduced by
// a "Defn: " prefix. It is the fallback tier behind the structured store.
package textdict

import (
	"bufio"
	"errors"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/sagerenn/wordtool/internal/dict"
	"github.com/sagerenn/wordtool/internal/indexcache"
)

var (
	headwordPat = regexp.MustCompile(`^[A-Z-]+$`)
	sensePat    = regexp.MustCompile(`^[1-9][0-9]{0,2}\.`)
)

const defnPrefix = "Defn: "

// Corpus entry markers that end the definitions section of the file.
var endMarkers = []string{"*** END", "End of Project"}

type Corpus struct {
	id       string
	name     string
	index    map[string][]string
	words    []string
	original map[string]string
}

// Load scans the corpus at path into an in-memory index, reusing a gob
// sidecar when one is current.
func Load(id, name, path string) (*Corpus, error) {
	if id == "" || name == "" {
		return nil, errors.New("id and name are required")
	}
	if idx, ok, err := indexcache.Load(path); err == nil && ok {
		return &Corpus{
			id:       id,
			name:     name,
			index:    idx.Entries,
			words:    idx.Words,
			original: idx.Original,
		}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	idx := make(map[string][]string)
	orig := make(map[string]string)
	var scanErr error
	scan(file, func(word, definition string) {
		key := dict.Normalize(word)
		idx[key] = append(idx[key], definition)
		if _, ok := orig[key]; !ok {
			orig[key] = word
		}
	}, &scanErr)
	if scanErr != nil {
		return nil, scanErr
	}

	words := make([]string, 0, len(idx))
	for k := range idx {
		words = append(words, k)
	}
	sort.Strings(words)

	_ = indexcache.Save(path, words, idx, orig)

	return &Corpus{
		id:       id,
		name:     name,
		index:    idx,
		words:    words,
		original: orig,
	}, nil
}

// scan walks the corpus line by line and emits one (word, definition) pair
// per headword occurrence. Numbered senses keep their own lines inside the
// definition block; "Defn: " prefixes are stripped.
func scan(r io.Reader, emit func(word, definition string), scanErr *error) {
	var (
		current  string
		deflines []string
	)
	flush := func() {
		if current != "" && len(deflines) > 0 {
			emit(current, strings.TrimSpace(strings.Join(deflines, "\n")))
		}
		deflines = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isEndMarker(line) {
			break
		}
		if headwordPat.MatchString(line) {
			flush()
			current = line
			continue
		}
		if current == "" {
			// Still in the file header.
			continue
		}
		switch {
		case sensePat.MatchString(line):
			deflines = append(deflines, "\n"+line)
		case strings.HasPrefix(line, defnPrefix):
			deflines = append(deflines, "\n"+strings.TrimPrefix(line, defnPrefix))
		default:
			deflines = append(deflines, line)
		}
	}
	flush()
	*scanErr = scanner.Err()
}

func isEndMarker(line string) bool {
	for _, m := range endMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

func (c *Corpus) ID() string {
	return c.id
}

func (c *Corpus) Name() string {
	return c.name
}

func (c *Corpus) Lookup(word string) ([]dict.Entry, error) {
	key := dict.Normalize(word)
	defs := c.index[key]
	if len(defs) == 0 {
		return nil, dict.ErrNotFound
	}
	entries := make([]dict.Entry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, dict.Entry{Word: c.original[key], Definition: def})
	}
	return entries, nil
}

// Words returns the sorted normalized headwords, used by the wordlist
// suggestion backend.
func (c *Corpus) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}
