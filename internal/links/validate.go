// Package links checks that every intra-corpus reference points at an
// existing regular file.
package links

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jorge-barreto/doccheck/internal/check"
	"github.com/jorge-barreto/doccheck/internal/corpus"
	"github.com/jorge-barreto/doccheck/internal/ux"
)

// Name identifies this check in outcomes and summaries.
const Name = "links"

// Resolve returns the filesystem path a reference points at: the target
// without a leading "./", relative to the directory of the source document.
func Resolve(source, target string) string {
	target, _, _ = strings.Cut(target, "#")
	target = strings.TrimPrefix(target, "./")
	return filepath.Join(filepath.Dir(source), target)
}

// Validator resolves every reference in a set of documents.
type Validator struct {
	Extractor Extractor
	Log       ux.Logger
}

// Validate reports each unresolved reference individually and returns a
// fatal outcome. It never stops at the first broken link.
func (v *Validator) Validate(docs []corpus.Document) check.Outcome {
	var (
		checked  int
		findings []check.Finding
	)
	for _, doc := range docs {
		for _, ref := range v.Extractor.Extract(doc.Path, doc.Content) {
			checked++
			resolved := Resolve(doc.Path, ref.Path)
			reason := "not found"
			if info, err := os.Stat(resolved); err == nil {
				if !info.IsDir() {
					continue
				}
				reason = "is a directory"
			}
			findings = append(findings, check.Finding{
				Source: doc.Path,
				Target: ref.Raw,
				Detail: resolved,
			})
			v.Log.Error("broken link in %s: %s (%s %s)", doc.Path, ref.Raw, resolved, reason)
		}
	}

	if len(findings) > 0 {
		v.Log.Error("%d broken link(s) across %d document(s)", len(findings), len(docs))
	} else {
		v.Log.Success("all %d link(s) resolve across %d document(s)", checked, len(docs))
	}
	return check.NewFatal(Name, checked, findings)
}
