// Package loader builds lookup providers from configuration, in the order
// the configuration lists them.
package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sagerenn/wordtool/internal/config"
	"github.com/sagerenn/wordtool/internal/dict"
	"github.com/sagerenn/wordtool/internal/dict/mdx"
	"github.com/sagerenn/wordtool/internal/dict/sqlitedict"
	"github.com/sagerenn/wordtool/internal/dict/stardict"
	"github.com/sagerenn/wordtool/internal/dict/textdict"
)

type Result struct {
	Providers []dict.Provider
	Errs      []error
}

// Close releases providers that hold open handles, like the SQLite store.
func (r Result) Close() {
	for _, p := range r.Providers {
		if c, ok := p.(io.Closer); ok {
			_ = c.Close()
		}
	}
}

// LoadAll loads every configured dictionary. A tier that fails to load is
// recorded in Errs and skipped; the remaining tiers still form a usable
// chain.
func LoadAll(cfg config.Config) Result {
	res := Result{Providers: make([]dict.Provider, 0, len(cfg.Dictionaries))}
	for _, d := range cfg.Dictionaries {
		if strings.TrimSpace(d.Path) == "" {
			res.Errs = append(res.Errs, fmt.Errorf("dictionary %q missing path", d.ID))
			continue
		}
		if strings.TrimSpace(d.ID) == "" {
			res.Errs = append(res.Errs, fmt.Errorf("dictionary entry missing id for path %q", d.Path))
			continue
		}
		name := d.Name
		if strings.TrimSpace(name) == "" {
			name = d.ID
		}
		typ := strings.ToLower(strings.TrimSpace(d.Type))
		if typ == "" {
			typ = detectType(d.Path)
		}
		var (
			loaded dict.Provider
			err    error
		)
		switch typ {
		case "sqlite", "sqlite3", "db":
			loaded, err = sqlitedict.Open(d.ID, name, d.Path)
		case "text", "txt", "corpus":
			loaded, err = textdict.Load(d.ID, name, d.Path)
		case "stardict", "ifo":
			loaded, err = stardict.Load(d.ID, name, d.Path)
		case "mdx", "mdict":
			loaded, err = mdx.Load(d.ID, name, d.Path)
		default:
			err = fmt.Errorf("unsupported dictionary type: %q", typ)
		}
		if err != nil {
			res.Errs = append(res.Errs, fmt.Errorf("load %s: %w", d.ID, err))
			continue
		}
		res.Providers = append(res.Providers, loaded)
	}
	return res
}

func detectType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sqlite3", ".sqlite", ".db":
		return "sqlite"
	case ".ifo":
		return "stardict"
	case ".mdx":
		return "mdx"
	case ".txt":
		return "text"
	default:
		return ""
	}
}
