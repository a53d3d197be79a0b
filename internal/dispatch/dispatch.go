package dispatch

import (
	"context"
	"os"
	"time"
)

// Environment holds the execution context for command probes.
type Environment struct {
	CorpusDir   string
	WorkDir     string
	CustomVars  map[string]string
	filteredEnv []string // lazily populated base env
}

// Vars returns the variable substitution map for command invocations.
// Custom vars are included first; built-ins always win.
func (e *Environment) Vars() map[string]string {
	m := make(map[string]string, 2+len(e.CustomVars))
	for k, v := range e.CustomVars {
		m[k] = v
	}
	m["CORPUS_DIR"] = e.CorpusDir
	m["WORK_DIR"] = e.WorkDir
	return m
}

// BuildEnv returns the environment variables for child processes.
// It inherits the current environment and adds DOCCHECK_ variables.
// The base environment is snapshotted once per Environment and reused across calls.
func BuildEnv(env *Environment) []string {
	if env.filteredEnv == nil {
		env.filteredEnv = os.Environ()
	}
	result := make([]string, len(env.filteredEnv), len(env.filteredEnv)+2+len(env.CustomVars))
	copy(result, env.filteredEnv)
	for k, v := range env.CustomVars {
		result = append(result, "DOCCHECK_"+k+"="+v)
	}
	result = append(result,
		"DOCCHECK_CORPUS_DIR="+env.CorpusDir,
		"DOCCHECK_WORK_DIR="+env.WorkDir,
	)
	return result
}

// Prober runs one tokenized invocation and reports whether it exited zero.
// Tests can substitute a mock.
type Prober interface {
	Probe(ctx context.Context, argv []string) bool
}

// ExecProber runs invocations as real subprocesses.
type ExecProber struct {
	Timeout time.Duration // per probe; zero means no limit
	Dir     string
	Env     []string
}

func (p *ExecProber) Probe(ctx context.Context, argv []string) bool {
	if len(argv) == 0 {
		return false
	}
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	return runChecked(ctx, p.Dir, p.Env, argv[0], argv[1:]...)
}
