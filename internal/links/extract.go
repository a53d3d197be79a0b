package links

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/jorge-barreto/doccheck/internal/config"
)

// Reference is an intra-corpus link found in a document.
type Reference struct {
	Source string // path of the document containing the link
	Raw    string // reference as written, e.g. "](./b.md)"
	Path   string // target with the syntax wrapper removed, e.g. "./b.md"
}

// Extractor finds references in a document's content.
type Extractor interface {
	Extract(source, content string) []Reference
}

// NewExtractor returns the extractor for the given syntax and extension.
func NewExtractor(syntax, ext string) (Extractor, error) {
	switch syntax {
	case config.SyntaxPattern, "":
		return NewPatternExtractor(ext), nil
	case config.SyntaxMarkdown:
		return &MarkdownExtractor{ext: ext, md: goldmark.New()}, nil
	default:
		return nil, fmt.Errorf("unknown link syntax %q", syntax)
	}
}

// PatternExtractor matches "](<path><ext>)" anywhere in the text, with an
// optional #fragment. The path needs a non-empty stem and may not contain
// '#'. The label before the bracket is not inspected.
type PatternExtractor struct {
	re *regexp.Regexp
}

func NewPatternExtractor(ext string) *PatternExtractor {
	return &PatternExtractor{
		re: regexp.MustCompile(`\]\(([^()\s#]+` + regexp.QuoteMeta(ext) + `)(#[^()\s]*)?\)`),
	}
}

func (e *PatternExtractor) Extract(source, content string) []Reference {
	var refs []Reference
	for _, m := range e.re.FindAllStringSubmatch(content, -1) {
		if isExternal(m[1]) {
			continue
		}
		refs = append(refs, Reference{Source: source, Raw: m[0], Path: m[1]})
	}
	return refs
}

// MarkdownExtractor walks the goldmark AST, so links inside code spans and
// fenced blocks are not reported.
type MarkdownExtractor struct {
	ext string
	md  goldmark.Markdown
}

func (e *MarkdownExtractor) Extract(source, content string) []Reference {
	src := []byte(content)
	doc := e.md.Parser().Parse(text.NewReader(src))

	var refs []Reference
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		var dest string
		switch node := n.(type) {
		case *ast.Link:
			dest = string(node.Destination)
		case *ast.Image:
			dest = string(node.Destination)
		default:
			return ast.WalkContinue, nil
		}
		path, _, _ := strings.Cut(dest, "#")
		if isExternal(path) || !strings.HasSuffix(path, e.ext) || len(path) <= len(e.ext) {
			return ast.WalkContinue, nil
		}
		refs = append(refs, Reference{Source: source, Raw: "](" + dest + ")", Path: path})
		return ast.WalkContinue, nil
	})
	return refs
}

func isExternal(target string) bool {
	return strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:")
}
