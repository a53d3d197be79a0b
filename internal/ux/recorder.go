package ux

import (
	"fmt"
	"sync"
)

// Entry is one line captured by a Recorder.
type Entry struct {
	Level   string // info, success, warn, error
	Message string
}

// Recorder is a Logger that keeps lines in memory. Tests use it to assert on
// exactly what a check reported.
type Recorder struct {
	mu      sync.Mutex
	Entries []Entry
}

func (r *Recorder) add(level, format string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Info(format string, args ...any)    { r.add("info", format, args) }
func (r *Recorder) Success(format string, args ...any) { r.add("success", format, args) }
func (r *Recorder) Warn(format string, args ...any)    { r.add("warn", format, args) }
func (r *Recorder) Error(format string, args ...any)   { r.add("error", format, args) }

func (r *Recorder) Header(index, total int, title string) {
	r.add("header", "[%d/%d] %s", []any{index + 1, total, title})
}

// Level returns the messages logged at level, in order.
func (r *Recorder) Level(level string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
