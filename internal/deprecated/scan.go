// Package deprecated flags stale terminology in the corpus. Its findings are
// advisory: a match may be a legitimate mention, such as a legacy note.
package deprecated

import (
	"strings"

	"github.com/jorge-barreto/doccheck/internal/check"
	"github.com/jorge-barreto/doccheck/internal/corpus"
	"github.com/jorge-barreto/doccheck/internal/ux"
)

// Name identifies this check in outcomes and summaries.
const Name = "deprecated"

// Scanner searches documents for literal patterns.
type Scanner struct {
	Log ux.Logger

	// Dir, Extension and Recursive describe the scanned corpus. They only
	// shape the manual search hint, which covers the same files as the scan.
	Dir       string
	Extension string
	Recursive bool
}

// Scan warns once per pattern found in at least one document. Matching is a
// case-sensitive substring search, not a regular expression.
func (s *Scanner) Scan(docs []corpus.Document, patterns []string) check.Outcome {
	if len(patterns) == 0 {
		s.Log.Info("no deprecated patterns configured")
		return check.NewAdvisory(Name, 0, nil)
	}

	var findings []check.Finding
	for _, p := range patterns {
		n := countMatches(docs, p)
		if n == 0 {
			continue
		}
		findings = append(findings, check.Finding{Target: p})
		s.Log.Warn("deprecated pattern %q found in %d document(s); review with: %s",
			p, n, s.reviewCommand(p))
	}

	if len(findings) > 0 {
		s.Log.Warn("%d of %d deprecated pattern(s) found", len(findings), len(patterns))
	} else {
		s.Log.Success("no deprecated patterns found (%d checked)", len(patterns))
	}
	return check.NewAdvisory(Name, len(patterns), findings)
}

func countMatches(docs []corpus.Document, pattern string) int {
	n := 0
	for _, d := range docs {
		if strings.Contains(d.Content, pattern) {
			n++
		}
	}
	return n
}

// reviewCommand returns a grep invocation listing every line the scan matched.
func (s *Scanner) reviewCommand(pattern string) string {
	if s.Recursive {
		include := ""
		if s.Extension != "" {
			include = "--include=" + shellQuote("*"+s.Extension) + " "
		}
		return "grep -rnF " + include + "-- " + shellQuote(pattern) + " " + shellQuote(s.Dir)
	}
	return "grep -nF -- " + shellQuote(pattern) + " " + shellQuote(s.Dir) + "/*" + shellQuote(s.Extension)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
