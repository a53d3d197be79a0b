package dispatch

import (
	"context"
	"os/exec"
)

// RunChecked runs name with args to completion and reports whether it exited
// zero. Output is discarded. A program that cannot be started counts as a
// failure like any non-zero exit, so callers can keep accumulating results.
func RunChecked(ctx context.Context, name string, args ...string) bool {
	return runChecked(ctx, "", nil, name, args...)
}

func runChecked(ctx context.Context, dir string, env []string, name string, args ...string) bool {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env
	// nil Stdout/Stderr connect the child to the null device.
	cmd.Stdout = nil
	cmd.Stderr = nil

	code, err := exitCode(cmd.Run())
	return err == nil && code == 0
}
