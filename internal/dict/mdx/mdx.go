// Package mdx adapts an MDX dictionary as an extra lookup tier. Article
// HTML is flattened to plain text for terminal output; @@@LINK redirects
// are resolved within the same dictionary.
package mdx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"strings"
	"unicode/utf16"

	"github.com/ChaosNyaruko/ondict/decoder"
	"github.com/ChaosNyaruko/ondict/util"
	"github.com/k3a/html2text"

	"github.com/sagerenn/wordtool/internal/dict"
)

type wordEntry struct {
	word    string
	offsets []int
}

type Dictionary struct {
	id       string
	name     string
	mdx      *decoder.MDict
	entries  []wordEntry
	index    map[string][]int
	encoding string
}

func Load(id, name, path string) (*Dictionary, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	if name == "" {
		name = id
	}
	md := &decoder.MDict{}
	if err := md.Decode(path, false); err != nil {
		return nil, err
	}

	_ = md.Keys() // populate keymap
	keymap := mdictKeyMap(md)
	if len(keymap) == 0 {
		return nil, errors.New("mdx: empty key map")
	}

	entries := make([]wordEntry, 0, len(keymap))
	index := make(map[string][]int)
	for word, offs := range keymap {
		pos := len(entries)
		o := make([]int, 0, len(offs))
		for _, v := range offs {
			o = append(o, int(v))
		}
		entries = append(entries, wordEntry{word: word, offsets: o})
		norm := dict.Normalize(word)
		index[norm] = append(index[norm], pos)
	}

	return &Dictionary{
		id:       id,
		name:     name,
		mdx:      md,
		entries:  entries,
		index:    index,
		encoding: mdictEncoding(md),
	}, nil
}

func (d *Dictionary) ID() string {
	return d.id
}

func (d *Dictionary) Name() string {
	return d.name
}

func (d *Dictionary) Lookup(word string) ([]dict.Entry, error) {
	out := d.lookup(word, make(map[string]bool))
	if len(out) == 0 {
		return nil, dict.ErrNotFound
	}
	return out, nil
}

func (d *Dictionary) lookup(word string, visited map[string]bool) []dict.Entry {
	q := dict.Normalize(word)
	if visited[q] {
		return nil
	}
	visited[q] = true
	idxs := d.index[q]
	if len(idxs) == 0 {
		return nil
	}
	var out []dict.Entry
	for _, i := range idxs {
		entry := d.entries[i]
		for _, off := range entry.offsets {
			raw := d.decode(d.mdx.ReadAtOffset(off))
			if target := parseRedirect(raw); target != "" {
				out = append(out, d.lookup(target, visited)...)
				continue
			}
			def := strings.TrimSpace(html2text.HTML2Text(util.ReplaceLINK(raw)))
			if def == "" {
				continue
			}
			out = append(out, dict.Entry{Word: entry.word, Definition: def})
		}
	}
	return out
}

func (d *Dictionary) decode(b []byte) string {
	if d.encoding == "UTF-16" {
		runes := make([]uint16, len(b)/2)
		_ = binary.Read(bytes.NewBuffer(b), binary.LittleEndian, runes)
		return string(utf16.Decode(runes))
	}
	return string(b)
}

// The decoder keeps its key map and encoding unexported; mirror them out.
func mdictEncoding(m *decoder.MDict) string {
	v := reflect.ValueOf(m).Elem().FieldByName("encoding")
	if v.IsValid() && v.Kind() == reflect.String {
		return v.String()
	}
	return "UTF-8"
}

func mdictKeyMap(m *decoder.MDict) map[string][]uint64 {
	v := reflect.ValueOf(m).Elem().FieldByName("keymap")
	if !v.IsValid() || v.IsNil() {
		return nil
	}
	out := make(map[string][]uint64)
	for _, k := range v.MapKeys() {
		vals := v.MapIndex(k)
		offs := make([]uint64, 0, vals.Len())
		for i := 0; i < vals.Len(); i++ {
			offs = append(offs, uint64(vals.Index(i).Uint()))
		}
		out[k.String()] = offs
	}
	return out
}

func parseRedirect(raw string) string {
	if !strings.HasPrefix(raw, "@@@LINK=") {
		return ""
	}
	target := strings.TrimPrefix(raw, "@@@LINK=")
	target = strings.TrimRight(target, "\x00")
	return strings.TrimSpace(strings.TrimRight(target, "\r\n"))
}
