package ux

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferConsole() (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewConsole(&out, &errOut), &out, &errOut
}

// fileStreams returns stdout and stderr stand-ins backed by temp files, and
// marks only the stderr one as a terminal.
func fileStreams(t *testing.T) (out, errOut *os.File) {
	t.Helper()
	dir := t.TempDir()
	var err error
	out, err = os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	errOut, err = os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	t.Cleanup(func() {
		out.Close()
		errOut.Close()
	})

	prev := isTTY
	isTTY = func(fd uintptr) bool { return fd == errOut.Fd() }
	t.Cleanup(func() { isTTY = prev })
	return out, errOut
}

func readFile(t *testing.T, f *os.File) string {
	t.Helper()
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	return string(data)
}

func TestConsole_Streams(t *testing.T) {
	c, out, errOut := newBufferConsole()
	c.Info("info %d", 1)
	c.Success("ok")
	c.Warn("careful")
	c.Error("broken %s", "thing")

	assert.Equal(t, "ℹ info 1\n✓ ok\n⚠ careful\n", out.String())
	assert.Equal(t, "✗ broken thing\n", errOut.String())
}

func TestConsole_NoColorForBuffers(t *testing.T) {
	c, out, _ := newBufferConsole()
	c.Success("plain")
	assert.NotContains(t, out.String(), "\033[")
}

func TestConsole_ColorPerStream(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	out, errOut := fileStreams(t)

	c := NewConsole(out, errOut)
	c.Info("to a pipe")
	c.Error("to a terminal")

	assert.Equal(t, "ℹ to a pipe\n", readFile(t, out))
	assert.Contains(t, readFile(t, errOut), "\033[")
	assert.Contains(t, readFile(t, errOut), "to a terminal")
}

func TestConsole_ColorDisabledByEnv(t *testing.T) {
	tests := []struct {
		name, noColor, term string
	}{
		{"NO_COLOR set", "1", "xterm"},
		{"dumb terminal", "", "dumb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			out, errOut := fileStreams(t)

			c := NewConsole(out, errOut)
			c.Error("plain")

			assert.Equal(t, "✗ plain\n", readFile(t, errOut))
		})
	}
}

func TestConsole_Header(t *testing.T) {
	c, out, _ := newBufferConsole()
	c.Header(0, 3, "Links")
	assert.Contains(t, out.String(), "[1/3] Links")
}

func TestConsole_Die(t *testing.T) {
	c, _, errOut := newBufferConsole()
	code := -1
	c.Exit = func(status int) { code = status }

	c.Die("corpus directory %q not found", "docs")

	assert.Equal(t, ExitSetup, code)
	assert.Contains(t, errOut.String(), `✗ corpus directory "docs" not found`)
}

func TestConsole_NilWriters(t *testing.T) {
	c := NewConsole(nil, nil)
	assert.NotPanics(t, func() {
		c.Info("dropped")
		c.Error("dropped")
		c.Header(0, 1, "x")
	})
}
