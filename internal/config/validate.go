package config

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	defaultExtension = ".md"
	defaultTimeout   = 30
	defaultParallel  = 4
)

var validSyntaxes = map[string]bool{
	SyntaxPattern:  true,
	SyntaxMarkdown: true,
}

var varNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Builtins are variable names provided by the runtime environment.
var Builtins = map[string]bool{
	"CORPUS_DIR": true,
	"WORK_DIR":   true,
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Corpus == "" {
		cfg.Corpus = DefaultCorpus
	}

	seenVars := make(map[string]bool)
	for _, v := range cfg.Vars {
		if v.Key == "" {
			return fmt.Errorf("config: vars: empty variable name")
		}
		if !varNameRe.MatchString(v.Key) {
			return fmt.Errorf("config: vars: %q is not a valid variable name (must match [A-Za-z_][A-Za-z0-9_]*)", v.Key)
		}
		if Builtins[v.Key] {
			return fmt.Errorf("config: vars: %q overrides a built-in variable", v.Key)
		}
		if seenVars[v.Key] {
			return fmt.Errorf("config: vars: duplicate variable %q", v.Key)
		}
		seenVars[v.Key] = true
	}

	if cfg.Links.Extension == "" {
		cfg.Links.Extension = defaultExtension
	}
	if !strings.HasPrefix(cfg.Links.Extension, ".") || len(cfg.Links.Extension) < 2 {
		return fmt.Errorf("config: links.extension %q must start with '.'", cfg.Links.Extension)
	}
	if cfg.Links.Syntax == "" {
		cfg.Links.Syntax = SyntaxPattern
	}
	if !validSyntaxes[cfg.Links.Syntax] {
		return fmt.Errorf("config: links.syntax %q is unknown (must be pattern or markdown)", cfg.Links.Syntax)
	}

	if cfg.Commands.Timeout < 0 {
		return fmt.Errorf("config: commands.timeout must be >= 0")
	}
	if cfg.Commands.Timeout == 0 {
		cfg.Commands.Timeout = defaultTimeout
	}
	if cfg.Commands.Parallel < 0 {
		return fmt.Errorf("config: commands.parallel must be >= 0")
	}
	if cfg.Commands.Parallel == 0 {
		cfg.Commands.Parallel = defaultParallel
	}
	for i, c := range cfg.Commands.Run {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("config: commands.run[%d]: entries must be non-empty", i)
		}
	}

	for i, p := range cfg.Deprecated.Patterns {
		if p == "" {
			return fmt.Errorf("config: deprecated.patterns[%d]: entries must be non-empty", i)
		}
	}

	return nil
}
