package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jorge-barreto/doccheck/internal/check"
	"github.com/jorge-barreto/doccheck/internal/commands"
	"github.com/jorge-barreto/doccheck/internal/config"
	"github.com/jorge-barreto/doccheck/internal/corpus"
	"github.com/jorge-barreto/doccheck/internal/deprecated"
	"github.com/jorge-barreto/doccheck/internal/dispatch"
	"github.com/jorge-barreto/doccheck/internal/links"
	"github.com/jorge-barreto/doccheck/internal/ux"
)

// ErrSetup wraps failures that prevent any check from running.
var ErrSetup = errors.New("setup failed")

// Console is what the runner reports through.
type Console interface {
	ux.Logger
	Header(index, total int, title string)
}

// Runner sequences the checks over one corpus directory.
type Runner struct {
	Config  *config.Config
	Corpus  string
	WorkDir string
	Console Console
	Prober  dispatch.Prober // nil uses dispatch.ExecProber
}

// Run validates the corpus. The returned error is non-nil only for setup
// failures; findings are reported through the verdict.
func (r *Runner) Run(ctx context.Context) (check.Verdict, error) {
	var v check.Verdict

	if err := corpus.Check(r.Corpus); err != nil {
		return v, fmt.Errorf("%w: corpus directory: %w", ErrSetup, err)
	}
	cfg := r.Config
	docs, err := corpus.Load(r.Corpus, corpus.Options{
		Extension: cfg.Links.Extension,
		Recursive: cfg.Links.Recursive,
	})
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrSetup, err)
	}
	extractor, err := links.NewExtractor(cfg.Links.Syntax, cfg.Links.Extension)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	env := r.environment()
	prober := r.Prober
	if prober == nil {
		prober = &dispatch.ExecProber{
			Timeout: time.Duration(cfg.Commands.Timeout) * time.Second,
			Dir:     env.WorkDir,
			Env:     dispatch.BuildEnv(env),
		}
	}

	const total = 3
	r.Console.Info("checking %d document(s) in %s", len(docs), r.Corpus)

	r.Console.Header(0, total, "Internal links")
	v.Add((&links.Validator{Extractor: extractor, Log: r.Console}).Validate(docs))

	r.Console.Header(1, total, "Documented commands")
	verifier := &commands.Verifier{Prober: prober, Log: r.Console, Parallel: cfg.Commands.Parallel}
	v.Add(verifier.Verify(ctx, commands.Items(cfg.Commands.Run, env.Vars())))

	r.Console.Header(2, total, "Deprecated patterns")
	scanner := &deprecated.Scanner{
		Log:       r.Console,
		Dir:       r.Corpus,
		Extension: cfg.Links.Extension,
		Recursive: cfg.Links.Recursive,
	}
	v.Add(scanner.Scan(docs, cfg.Deprecated.Patterns))

	r.summarize(v)
	return v, nil
}

func (r *Runner) environment() *dispatch.Environment {
	corpusDir, err := filepath.Abs(r.Corpus)
	if err != nil {
		corpusDir = r.Corpus
	}
	env := &dispatch.Environment{CorpusDir: corpusDir, WorkDir: r.WorkDir}
	if len(r.Config.Vars) > 0 {
		env.CustomVars = dispatch.ExpandConfigVars(r.Config.Vars, env.Vars())
	}
	return env
}

// Summary renders the one-line verdict.
func Summary(v check.Verdict) string {
	l, _ := v.Outcome(links.Name)
	c, _ := v.Outcome(commands.Name)
	d, _ := v.Outcome(deprecated.Name)
	return fmt.Sprintf("%d error(s), %d warning(s) (links: %d broken, commands: %d/%d failed, deprecated: %d matched)",
		v.Errors(), v.Warnings(), l.Count(), c.Count(), c.Checked, d.Count())
}

func (r *Runner) summarize(v check.Verdict) {
	line := Summary(v)
	if v.Failed() {
		r.Console.Error("FAILED: %s", line)
		return
	}
	r.Console.Success("PASSED: %s", line)
}
