package ux

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Line prefixes. These are part of the output contract and must stay stable.
const (
	GlyphInfo    = "ℹ"
	GlyphSuccess = "✓"
	GlyphWarn    = "⚠"
	GlyphError   = "✗"
)

// ExitSetup is the status Die exits with.
const ExitSetup = 2

// Logger is the reporting surface checks write to.
type Logger interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Console writes classified lines: info, success and warn to Out, error to Err.
type Console struct {
	Out io.Writer
	Err io.Writer

	// Exit is called by Die. Defaults to os.Exit.
	Exit func(code int)

	mu       sync.Mutex
	colorOut bool
	colorErr bool
}

// NewConsole creates a Console. Colour is decided per stream: a stream is
// coloured when it is a terminal, NO_COLOR is empty and TERM is not "dumb".
func NewConsole(out, err io.Writer) *Console {
	return &Console{
		Out:      out,
		Err:      err,
		Exit:     os.Exit,
		colorOut: useColor(out),
		colorErr: useColor(err),
	}
}

// Replaced in tests.
var (
	getenv = os.Getenv
	isTTY  = func(fd uintptr) bool {
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// useColor does not consult color.NoColor, which fatih/color derives from
// stdout alone.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	return isTTY(f.Fd())
}

var (
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

func (c *Console) write(w io.Writer, colored bool, col *color.Color, glyph, msg string) {
	if w == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if colored {
		// fatih/color honours its global NoColor; force it for streams we
		// have already decided are terminals.
		col.EnableColor()
		glyph = col.Sprint(glyph)
	}
	fmt.Fprintf(w, "%s %s\n", glyph, msg)
}

func (c *Console) Info(format string, args ...any) {
	c.write(c.Out, c.colorOut, infoColor, GlyphInfo, fmt.Sprintf(format, args...))
}

func (c *Console) Success(format string, args ...any) {
	c.write(c.Out, c.colorOut, successColor, GlyphSuccess, fmt.Sprintf(format, args...))
}

func (c *Console) Warn(format string, args ...any) {
	c.write(c.Out, c.colorOut, warnColor, GlyphWarn, fmt.Sprintf(format, args...))
}

func (c *Console) Error(format string, args ...any) {
	c.write(c.Err, c.colorErr, errorColor, GlyphError, fmt.Sprintf(format, args...))
}

// Header prints a section banner for check index of total.
func (c *Console) Header(index, total int, title string) {
	if c.Out == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	banner := fmt.Sprintf("══ [%d/%d] %s ══", index+1, total, title)
	if c.colorOut {
		headerColor.EnableColor()
		banner = headerColor.Sprint(banner)
	}
	fmt.Fprintf(c.Out, "\n%s\n", banner)
}

// Die logs an error and terminates with ExitSetup. Only for failures that
// prevent any check from running.
func (c *Console) Die(format string, args ...any) {
	c.Error(format, args...)
	exit := c.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(ExitSetup)
}
