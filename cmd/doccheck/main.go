package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jorge-barreto/doccheck/internal/check"
	"github.com/jorge-barreto/doccheck/internal/config"
	"github.com/jorge-barreto/doccheck/internal/runner"
	"github.com/jorge-barreto/doccheck/internal/ux"
	cli "github.com/urfave/cli/v3"
)

// errDied is returned from the action after Die when the exit hook returns.
var errDied = errors.New("setup failed")

func main() {
	console := ux.NewConsole(os.Stdout, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	code := run(ctx, os.Args, console)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, console *ux.Console) int {
	code := check.ExitOK
	app := &cli.Command{
		Name:      "doccheck",
		Usage:     "Check a documentation corpus for broken links, stale commands, and deprecated terms",
		ArgsUsage: "[corpus-dir]",
		Description: "Configuration is read from $DOCCHECK_CONFIG or the nearest " + config.FileName +
			" above the working directory.\nExit status: 0 pass (warnings allowed), 1 errors found, 2 setup failure.",
		Writer:    console.Out,
		ErrWriter: console.Err,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return fmt.Errorf("expected at most one corpus directory, got %d arguments", cmd.Args().Len())
			}

			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, corpusDir, err := loadConfig(wd)
			if err != nil {
				console.Die("loading config: %v", err)
				return errDied
			}
			if arg := cmd.Args().First(); arg != "" {
				corpusDir = arg
			}

			r := &runner.Runner{
				Config:  cfg,
				Corpus:  corpusDir,
				WorkDir: wd,
				Console: console,
			}
			v, err := r.Run(ctx)
			if err != nil {
				console.Die("%v", err)
				return errDied
			}
			code = v.ExitCode()
			return nil
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if !errors.Is(err, errDied) {
			console.Error("error: %v", err)
		}
		return ux.ExitSetup
	}
	return code
}

// loadConfig returns the config and the default corpus directory it names.
// A relative corpus in a config file is resolved against the file's directory.
func loadConfig(wd string) (*config.Config, string, error) {
	path := os.Getenv("DOCCHECK_CONFIG")
	if path == "" {
		path = findConfig(wd)
	}
	if path == "" {
		cfg := config.Default()
		return cfg, cfg.Corpus, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	corpusDir := cfg.Corpus
	if !filepath.IsAbs(corpusDir) {
		corpusDir = filepath.Join(filepath.Dir(path), corpusDir)
	}
	return cfg, corpusDir, nil
}

// findConfig walks up from dir looking for the config file.
func findConfig(dir string) string {
	for {
		p := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
