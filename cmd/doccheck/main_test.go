package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-barreto/doccheck/internal/ux"
)

type harness struct {
	console  *ux.Console
	out, err *bytes.Buffer
	died     int
}

func newHarness() *harness {
	h := &harness{out: &bytes.Buffer{}, err: &bytes.Buffer{}, died: -1}
	h.console = ux.NewConsole(h.out, h.err)
	h.console.Exit = func(code int) { h.died = code }
	return h
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func withConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".doccheck.yaml")
	writeFile(t, path, yaml)
	t.Setenv("DOCCHECK_CONFIG", path)
}

func TestRun_EndToEndExitCode(t *testing.T) {
	withConfig(t, `commands:
  run:
    - echo hi
    - nonexistent-binary-xyz
deprecated:
  patterns:
    - foo-deprecated
`)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "[text](./b.md) [text](./c.md)\n")
	writeFile(t, filepath.Join(dir, "b.md"), "\n")

	h := newHarness()
	code := run(context.Background(), []string{"doccheck", dir}, h.console)

	require.Equal(t, 1, code, "stdout:\n%s\nstderr:\n%s", h.out, h.err)
	assert.Contains(t, h.err.String(), "✗ FAILED: 2 error(s), 0 warning(s)")
	assert.Contains(t, h.err.String(), "](./c.md)")
	assert.Contains(t, h.out.String(), "✓ echo hi")
}

func TestRun_CleanCorpusWithWarningsPasses(t *testing.T) {
	withConfig(t, "deprecated:\n  patterns: [old-term]\n")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "mentions old-term and [self](a.md)\n")

	h := newHarness()
	code := run(context.Background(), []string{"doccheck", dir}, h.console)

	require.Equal(t, 0, code, "stderr:\n%s", h.err)
	assert.Contains(t, h.out.String(), "⚠ deprecated pattern \"old-term\"")
	assert.Contains(t, h.out.String(), "PASSED: 0 error(s), 1 warning(s)")
}

func TestRun_MissingCorpusDies(t *testing.T) {
	withConfig(t, "{}\n")
	h := newHarness()
	code := run(context.Background(), []string{"doccheck", filepath.Join(t.TempDir(), "missing")}, h.console)

	assert.Equal(t, ux.ExitSetup, code)
	assert.Equal(t, ux.ExitSetup, h.died)
	assert.Contains(t, h.err.String(), "corpus directory")
}

func TestRun_InvalidConfigDies(t *testing.T) {
	withConfig(t, "links:\n  syntax: html\n")
	h := newHarness()
	code := run(context.Background(), []string{"doccheck", t.TempDir()}, h.console)

	assert.Equal(t, ux.ExitSetup, code)
	assert.Equal(t, ux.ExitSetup, h.died)
	assert.Contains(t, h.err.String(), "links.syntax")
}

func TestRun_TooManyArgs(t *testing.T) {
	withConfig(t, "{}\n")
	h := newHarness()
	code := run(context.Background(), []string{"doccheck", "a", "b"}, h.console)

	assert.Equal(t, ux.ExitSetup, code)
	assert.Contains(t, h.err.String(), "at most one corpus directory")
}

func TestRun_DefaultCorpusFromConfig(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, ".doccheck.yaml")
	writeFile(t, cfgPath, "corpus: pages\n")
	writeFile(t, filepath.Join(root, "pages", "index.md"), "[x](missing.md)\n")
	t.Setenv("DOCCHECK_CONFIG", cfgPath)

	h := newHarness()
	code := run(context.Background(), []string{"doccheck"}, h.console)

	assert.Equal(t, 1, code, "broken link in config-relative corpus\nstderr:\n%s", h.err)
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(root, ".doccheck.yaml"), "{}\n")

	assert.Equal(t, filepath.Join(root, ".doccheck.yaml"), findConfig(nested))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DOCCHECK_CONFIG", "")
	// A fresh temp dir has no config above it unless the system root has one.
	dir := t.TempDir()
	if findConfig(dir) != "" {
		t.Skip("a config file exists above the temp directory")
	}
	cfg, corpusDir, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "docs", corpusDir)
	assert.Equal(t, ".md", cfg.Links.Extension)
}
