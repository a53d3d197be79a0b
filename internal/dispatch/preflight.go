package dispatch

import "os/exec"

// OnPath reports whether name resolves to an executable on PATH.
// It only annotates failures; a missing program is still an ordinary
// failed probe.
func OnPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
