// Package stardict adapts a StarDict dictionary (.ifo plus idx/dict files)
// as an extra lookup tier, rendering article payloads to plain text for
// terminal output.
package stardict

import (
	"errors"
	"sort"
	"strings"

	std "github.com/ianlewis/go-stardict"
	"github.com/ianlewis/go-stardict/dict"
	"github.com/ianlewis/go-stardict/idx"
	"github.com/k3a/html2text"

	gd "github.com/sagerenn/wordtool/internal/dict"
)

type entry struct {
	word   string
	offset uint64
	size   uint32
}

type Dictionary struct {
	id      string
	name    string
	sd      *std.Stardict
	dict    *dict.Dict
	entries []entry
	index   map[string][]int
}

func Load(id, name, ifoPath string) (*Dictionary, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	sd, err := std.Open(ifoPath, nil)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = sd.Bookname()
	}
	d, err := sd.Dict()
	if err != nil {
		return nil, err
	}

	sc, err := sd.IndexScanner()
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	entries := make([]entry, 0, 1024)
	index := make(map[string][]int)
	for sc.Scan() {
		w := sc.Word()
		pos := len(entries)
		entries = append(entries, entry{word: w.Word, offset: w.Offset, size: w.Size})
		norm := gd.Normalize(w.Word)
		index[norm] = append(index[norm], pos)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for _, idxs := range index {
		sort.Ints(idxs)
	}

	return &Dictionary{
		id:      id,
		name:    name,
		sd:      sd,
		dict:    d,
		entries: entries,
		index:   index,
	}, nil
}

func (d *Dictionary) ID() string {
	return d.id
}

func (d *Dictionary) Name() string {
	return d.name
}

func (d *Dictionary) Lookup(word string) ([]gd.Entry, error) {
	idxs := d.index[gd.Normalize(word)]
	if len(idxs) == 0 {
		return nil, gd.ErrNotFound
	}
	out := make([]gd.Entry, 0, len(idxs))
	for _, i := range idxs {
		e := d.entries[i]
		def, err := d.readDefinition(e)
		if err != nil {
			return nil, err
		}
		if def == "" {
			continue
		}
		out = append(out, gd.Entry{Word: e.word, Definition: def})
	}
	if len(out) == 0 {
		return nil, gd.ErrNotFound
	}
	return out, nil
}

func (d *Dictionary) readDefinition(e entry) (string, error) {
	word := idx.Word{Word: e.word, Offset: e.offset, Size: e.size}
	w, err := d.dict.Word(&word)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, data := range w.Data {
		s := strings.TrimSpace(renderData(data))
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s)
	}
	return strings.TrimSpace(b.String()), nil
}

func renderData(d *dict.Data) string {
	switch d.Type {
	case dict.HTMLType, dict.XDXFType, dict.PangoTextType:
		return html2text.HTML2Text(string(d.Data))
	case dict.UTFTextType, dict.LocaleTextType, dict.PhoneticType,
		dict.YinBiaoOrKataType, dict.MediaWikiType, dict.WordNetType:
		return string(d.Data)
	default:
		// Media payloads have no terminal rendering.
		return ""
	}
}
