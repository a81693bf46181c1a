package spell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sagerenn/wordtool/internal/observability"
)

// Aspell drives the aspell binary in its pipe ("-a") mode, one subprocess
// per checked word. The pipe protocol is the pinned external contract:
//
//	@(#) ...              identification banner, once per run
//	*                      word is correct
//	+ root                 correct via affix root
//	-                      correct compound
//	& word n off: s1, s2   misspelled, ranked suggestions
//	# word off             unknown to the dictionary, no suggestions
type Aspell struct {
	path    string
	timeout time.Duration
	log     *observability.Logger
}

// NewAspell resolves the engine binary up front. A missing binary yields
// ErrEngineUnavailable so callers can degrade instead of failing later.
func NewAspell(command string, timeout time.Duration, log *observability.Logger) (*Aspell, error) {
	if command == "" {
		command = "aspell"
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("%w: %q not found in PATH", ErrEngineUnavailable, command)
	}
	return &Aspell{path: path, timeout: timeout, log: log}, nil
}

func (a *Aspell) Check(ctx context.Context, word string) (Result, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return Result{}, fmt.Errorf("empty word")
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, a.path, "-a")
	cmd.Stdin = strings.NewReader(word + "\n")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if strings.TrimSpace(stderr.String()) != "" {
			return Result{}, fmt.Errorf("aspell: %s", strings.TrimSpace(stderr.String()))
		}
		return Result{}, fmt.Errorf("aspell: %w", err)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return Result{}, fmt.Errorf("aspell: %s", msg)
	}

	a.log.Debug("engine output", "word", word, "raw", stdout.String())
	return parsePipeOutput(word, stdout.String())
}

func (a *Aspell) CheckAll(ctx context.Context, words []string) ([]Result, error) {
	return checkAll(ctx, a, words)
}

// parsePipeOutput interprets one pipe-mode run for a single word.
func parsePipeOutput(word, raw string) (Result, error) {
	sawResult := false
	res := Result{Word: word, Status: Correct}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "@(#)") {
			continue
		}
		sawResult = true
		switch line[0] {
		case '&':
			// "& word n offset: s1, s2, ..."
			_, tail, ok := strings.Cut(line, ":")
			if !ok {
				return Result{}, fmt.Errorf("aspell: malformed suggestion line %q", line)
			}
			res.Status = Misspelled
			for _, s := range strings.Split(tail, ",") {
				if s = strings.TrimSpace(s); s != "" {
					res.Suggestions = append(res.Suggestions, s)
				}
			}
		case '#':
			res.Status = Unknown
		default:
			// "*", "+ root", "-": all spellings of "correct".
		}
	}
	if !sawResult {
		return Result{}, fmt.Errorf("aspell: no output for %q", word)
	}
	return res, nil
}
