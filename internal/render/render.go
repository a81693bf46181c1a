// Package render formats definitions and suggestion lists for the terminal.
// Colors go through termenv so output degrades to plain text on dumb
// terminals and pipes.
package render

import (
	"io"
	"regexp"
	"strings"

	"github.com/muesli/termenv"

	"github.com/sagerenn/wordtool/internal/dict"
	"github.com/sagerenn/wordtool/internal/spell"
)

var senseLine = regexp.MustCompile(`^[1-9][0-9]{0,2}\.`)

// Suggestion rows are packed to fit 80 columns with a 4-space indent.
const suggestionWidth = 76

type Renderer struct {
	out *termenv.Output
}

func New(w io.Writer, noColor bool) *Renderer {
	opts := []termenv.OutputOption{}
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) headword(s string) string {
	return r.out.String(s).Foreground(r.out.Color("2")).Bold().String()
}

func (r *Renderer) body(s string) string {
	return r.out.String(s).Foreground(r.out.Color("4")).String()
}

func (r *Renderer) sense(s string) string {
	return r.out.String(s).Faint().String()
}

func (r *Renderer) misspelled(s string) string {
	return r.out.String(s).Foreground(r.out.Color("1")).Bold().String()
}

func (r *Renderer) correct(s string) string {
	return r.out.String(s).Foreground(r.out.Color("2")).String()
}

// Definition renders all entries for one headword: the headword once, then
// each definition block with numbered sense lines dimmed.
func (r *Renderer) Definition(entries []dict.Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(r.headword(strings.ToUpper(e.Word)))
		for _, line := range strings.Split(e.Definition, "\n") {
			b.WriteByte('\n')
			if senseLine.MatchString(line) {
				b.WriteString(r.sense(line))
			} else {
				b.WriteString(r.body(line))
			}
		}
	}
	return b.String()
}

// WordResult renders one spell-check outcome. Correct words echo back in
// green; misspelled words get their candidates in aligned columns; unknown
// words get the literal <not found> marker.
func (r *Renderer) WordResult(res spell.Result) string {
	switch res.Status {
	case spell.Correct:
		return r.correct(res.Word)
	case spell.Unknown:
		return r.misspelled(res.Word) + ":\n    <not found>"
	default:
		return r.misspelled(res.Word) + ":\n" + r.Columns(res.Suggestions)
	}
}

// Columns lays words out left-justified in rows of at most suggestionWidth
// characters, indented four spaces.
func (r *Renderer) Columns(words []string) string {
	if len(words) == 0 {
		return ""
	}
	longest := 0
	for _, w := range words {
		if len(w) > longest {
			longest = len(w)
		}
	}
	longest++ // room for a space
	perRow := suggestionWidth / longest
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for i := 0; i < len(words); i += perRow {
		end := i + perRow
		if end > len(words) {
			end = len(words)
		}
		var b strings.Builder
		b.WriteString("    ")
		for _, w := range words[i:end] {
			padded := w + strings.Repeat(" ", longest-len(w))
			b.WriteString(r.body(padded))
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(rows, "\n")
}

// Status renders a label/value diagnostic line, e.g. "Can't find: pythin".
func (r *Renderer) Status(label, value string) string {
	if value == "" {
		return r.correct(label)
	}
	return r.correct(label) + " " + r.out.String(value).Foreground(r.out.Color("4")).Bold().String()
}
