// Package corpus enumerates and reads the documents a run validates.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// skipDirs are never descended into during recursive enumeration.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// Document is a single text file, read once per run and never mutated.
type Document struct {
	Path    string
	Content string
}

// Options controls which files count as documents.
type Options struct {
	Extension string // e.g. ".md"; matched case-sensitively
	Recursive bool
}

// ErrNotDir is returned by Check when the corpus path is not a directory.
var ErrNotDir = errors.New("not a directory")

// Check verifies that dir exists, is a directory and can be listed.
func Check(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDir)
	}
	if _, err := os.ReadDir(dir); err != nil {
		return err
	}
	return nil
}

// List returns document paths under dir in lexical order. Without Recursive
// only files directly inside dir are returned. Hidden files are ignored, as
// are hidden directories when recursing.
func List(dir string, opts Options) ([]string, error) {
	if !opts.Recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		var paths []string
		for _, e := range entries {
			if e.IsDir() || !isDocument(e.Name(), opts.Extension) {
				continue
			}
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
		return paths, nil
	}

	// WalkDir does not descend into a symlinked root, so walk the target and
	// report paths under dir as given.
	root, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isDocument(d.Name(), opts.Extension) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.Join(dir, rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func isDocument(name, ext string) bool {
	return !strings.HasPrefix(name, ".") && strings.HasSuffix(name, ext) && len(name) > len(ext)
}

// Load lists and reads every document under dir.
func Load(dir string, opts Options) ([]Document, error) {
	paths, err := List(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	docs := make([]Document, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		docs = append(docs, Document{Path: p, Content: string(data)})
	}
	return docs, nil
}
