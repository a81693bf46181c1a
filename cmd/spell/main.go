// Command spell checks the spelling of one or more words through the
// configured suggestion engine and prints candidate corrections.
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
	"github.com/sagerenn/wordtool/internal/dict/loader"
	"github.com/sagerenn/wordtool/internal/dict/textdict"
	"github.com/sagerenn/wordtool/internal/observability"
	"github.com/sagerenn/wordtool/internal/render"
	"github.com/sagerenn/wordtool/internal/spell"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath       string
		noColor       bool
		incorrectOnly bool
		debug         bool
		useStdin      bool
	)
	cmd := &cobra.Command{
		Use:     "spell [WORD...]",
		Short:   "Check the spelling of words",
		Long:    "Checks words against the suggestion engine. Misspelled words are listed with the engine's candidate corrections, in the engine's own order.",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := gatherWords(args, useStdin, cmd.InOrStdin())
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return run(cmd.OutOrStdout(), words, options{
				cfgPath:       cfgPath,
				noColor:       noColor,
				incorrectOnly: incorrectOnly,
				debug:         debug,
			})
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&incorrectOnly, "incorrect", "i", false, "only show the incorrect words")
	cmd.Flags().BoolVarP(&debug, "debug", "D", false, "show the raw engine interaction")
	cmd.Flags().BoolVarP(&useStdin, "stdin", "s", false, "read words from stdin")
	cmd.Flags().BoolP("version", "v", false, "show version")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	return cmd
}

type options struct {
	cfgPath       string
	noColor       bool
	incorrectOnly bool
	debug         bool
}

func gatherWords(args []string, useStdin bool, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		// Words may also arrive as one quoted string.
		var words []string
		for _, a := range args {
			words = append(words, strings.Fields(a)...)
		}
		return words, nil
	}
	if !useStdin {
		return nil, errors.New("no words to check; pass words or use --stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	words := strings.Fields(string(data))
	if len(words) == 0 {
		return nil, errors.New("no words on stdin")
	}
	return words, nil
}

func run(out io.Writer, words []string, opts options) error {
	cfg, err := config.Load(opts.cfgPath)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if opts.debug {
		level = "debug"
	}
	log := observability.New(level)
	r := render.New(out, opts.noColor)

	sugg, err := spell.New(spell.Options{
		Backend:        cfg.Engine.Backend,
		Command:        cfg.Engine.Command,
		Timeout:        cfg.Engine.Timeout,
		MaxDistance:    cfg.Engine.MaxDistance,
		MaxSuggestions: cfg.Engine.MaxSuggestions,
		Words:          func() []string { return corpusWords(cfg, log) },
	}, log)
	if err != nil {
		return err
	}

	results, err := sugg.CheckAll(context.Background(), words)
	if err != nil {
		return err
	}
	printResults(out, r, results, opts.incorrectOnly)
	// Spelling problems are results, not failures.
	return nil
}

// printResults writes the outcomes in input order. Correct words echo as a
// plain line unless incorrectOnly suppresses them; problem words get a
// separating blank line plus their suggestion block.
func printResults(out io.Writer, r *render.Renderer, results []spell.Result, incorrectOnly bool) {
	for _, res := range results {
		if res.Status == spell.Correct {
			if !incorrectOnly {
				fmt.Fprintln(out, r.WordResult(res))
			}
			continue
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, r.WordResult(res))
	}
}

func corpusWords(cfg config.Config, log *observability.Logger) []string {
	loaded := loader.LoadAll(cfg)
	defer loaded.Close()
	for _, e := range loaded.Errs {
		log.Debug("dictionary load error", "error", e)
	}
	for _, p := range loaded.Providers {
		if c, ok := p.(*textdict.Corpus); ok {
			return c.Words()
		}
	}
	return nil
}
