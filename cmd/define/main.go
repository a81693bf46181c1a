// Command define resolves a word to its dictionary definition through an
// ordered chain of lookup tiers, suggesting alternative spellings when the
// word is not defined anywhere.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sagerenn/wordtool/internal/config"
	"github.com/sagerenn/wordtool/internal/dict"
	"github.com/sagerenn/wordtool/internal/dict/chain"
	"github.com/sagerenn/wordtool/internal/dict/loader"
	"github.com/sagerenn/wordtool/internal/dict/textdict"
	"github.com/sagerenn/wordtool/internal/observability"
	"github.com/sagerenn/wordtool/internal/render"
	"github.com/sagerenn/wordtool/internal/spell"
)

const version = "0.1.0"

// errNotDefined signals "word not found" to main for the exit status; the
// user-facing message has already been printed by then.
var errNotDefined = errors.New("not defined")

// stemRetries bounds how many stripped-suffix forms get a second lookup.
const stemRetries = 2

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errNotDefined) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		noColor bool
	)
	cmd := &cobra.Command{
		Use:     "define WORD",
		Short:   "Look up a word's definition",
		Long:    "Looks a word up in the structured definition store, falling back to the plain text corpus, and suggests alternative spellings when the word is not defined.",
		Args:    cobra.ExactArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Args are valid; failures past this point are not usage errors.
			cmd.SilenceUsage = true
			return run(cmd.OutOrStdout(), args[0], cfgPath, noColor)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolP("version", "v", false, "show version")
	cmd.SilenceErrors = true
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	return cmd
}

func run(out io.Writer, word, cfgPath string, noColor bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return err
	}
	log := observability.New(cfg.Log.Level)
	r := render.New(out, noColor)

	loaded := loader.LoadAll(cfg)
	defer loaded.Close()
	for _, e := range loaded.Errs {
		log.Debug("dictionary load error", "error", e)
	}
	ch := chain.New(log, loaded.Providers...)

	fmt.Fprintln(out, r.Status("Searching for:", word))

	entries, err := ch.Lookup(word)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, r.Definition(entries))
		return nil
	}
	if !errors.Is(err, dict.ErrNotFound) {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	// The word may just be misspelled.
	if suggestions := getSuggestions(cfg, log, loaded, word); len(suggestions) > 0 {
		fmt.Fprintln(out, r.Status("Can't find:", word))
		fmt.Fprintln(out, r.Status("Did you mean one of these?:", ""))
		fmt.Fprintln(out, r.Columns(suggestions))
		return errNotDefined
	}

	// No alternative spellings; try root forms like "slay" for "slayed".
	tryword := word
	for i := 0; i < stemRetries; i++ {
		tryword = stem(tryword)
		if tryword == "" {
			break
		}
		fmt.Fprintln(out, r.Status("Trying:", tryword))
		if entries, err := ch.Lookup(tryword); err == nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, r.Definition(entries))
			return nil
		}
	}

	fmt.Fprintln(out, r.Status("Can't find:", word))
	return errNotDefined
}

// getSuggestions asks the configured engine for corrections. An unavailable
// engine means no suggestions, never a fatal error here.
func getSuggestions(cfg config.Config, log *observability.Logger, loaded loader.Result, word string) []string {
	sugg, err := spell.New(spell.Options{
		Backend:        cfg.Engine.Backend,
		Command:        cfg.Engine.Command,
		Timeout:        cfg.Engine.Timeout,
		MaxDistance:    cfg.Engine.MaxDistance,
		MaxSuggestions: cfg.Engine.MaxSuggestions,
		Words:          func() []string { return corpusWords(loaded) },
	}, log)
	if err != nil {
		log.Debug("no suggestions available", "error", err)
		return nil
	}
	res, err := sugg.Check(context.Background(), word)
	if err != nil {
		log.Debug("suggestion check failed", "error", err)
		return nil
	}
	if res.Status != spell.Misspelled {
		return nil
	}
	return res.Suggestions
}

func corpusWords(loaded loader.Result) []string {
	for _, p := range loaded.Providers {
		if c, ok := p.(*textdict.Corpus); ok {
			return c.Words()
		}
	}
	return nil
}

// stem strips one derivational suffix, or returns "" when none applies.
func stem(word string) string {
	switch {
	case hasAnySuffix(word, "ed", "er", "es"):
		return word[:len(word)-2]
	case hasAnySuffix(word, "ing", "ify", "ize"):
		return word[:len(word)-3]
	default:
		return ""
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) && len(s) > len(suf) {
			return true
		}
	}
	return false
}
