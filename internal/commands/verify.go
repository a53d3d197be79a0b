// Package commands probes documented command invocations against the
// installed toolchain and reports which of them fail.
package commands

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jorge-barreto/doccheck/internal/check"
	"github.com/jorge-barreto/doccheck/internal/dispatch"
	"github.com/jorge-barreto/doccheck/internal/ux"
)

// Name identifies this check in outcomes and summaries.
const Name = "commands"

// Item is one invocation to probe.
type Item struct {
	Invocation string   // as configured; identity for dedup and reporting
	Argv       []string // program followed by its arguments
}

// Tokenize splits an invocation on whitespace. Quoting and globbing are not
// supported: `echo "a b"` yields three tokens, `"a` and `b"` included.
func Tokenize(invocation string) []string {
	return strings.Fields(invocation)
}

// Items expands vars in each invocation, tokenizes it and drops repeats of
// an invocation already seen. Order of first appearance is kept.
func Items(invocations []string, vars map[string]string) []Item {
	seen := make(map[string]bool, len(invocations))
	items := make([]Item, 0, len(invocations))
	for _, inv := range invocations {
		if seen[inv] {
			continue
		}
		seen[inv] = true
		items = append(items, Item{
			Invocation: inv,
			Argv:       Tokenize(dispatch.ExpandVars(inv, vars)),
		})
	}
	return items
}

// Verifier runs every item through a Prober.
type Verifier struct {
	Prober   dispatch.Prober
	Log      ux.Logger
	Parallel int // concurrent probes; values < 1 mean one at a time

	// lookPath annotates failures; nil uses dispatch.OnPath.
	lookPath func(string) bool
}

// Verify probes all items and returns a fatal outcome with one finding per
// failed item. Probes may run concurrently but results are logged in item
// order.
func (v *Verifier) Verify(ctx context.Context, items []Item) check.Outcome {
	if len(items) == 0 {
		v.Log.Info("no commands configured")
		return check.NewFatal(Name, 0, nil)
	}

	ok := make([]bool, len(items))
	g, gctx := errgroup.WithContext(ctx)
	limit := v.Parallel
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for i, item := range items {
		g.Go(func() error {
			ok[i] = v.Prober.Probe(gctx, item.Argv)
			return nil
		})
	}
	_ = g.Wait()

	onPath := v.lookPath
	if onPath == nil {
		onPath = dispatch.OnPath
	}

	var findings []check.Finding
	for i, item := range items {
		if ok[i] {
			v.Log.Success("%s", item.Invocation)
			continue
		}
		detail := "non-zero exit"
		if len(item.Argv) == 0 {
			detail = "empty after expansion"
		} else if !onPath(item.Argv[0]) {
			detail = "not found on PATH"
		}
		findings = append(findings, check.Finding{Source: item.Invocation, Detail: detail})
		v.Log.Error("%s (%s)", item.Invocation, detail)
	}

	if len(findings) > 0 {
		v.Log.Error("%d of %d command(s) failed", len(findings), len(items))
	} else {
		v.Log.Success("all %d command(s) succeeded", len(items))
	}
	return check.NewFatal(Name, len(items), findings)
}
