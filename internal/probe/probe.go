package probe

import "os/exec"

// Prober reports whether any of the given command names resolves on PATH.
// Install and verification code take a Prober rather than calling the real
// lookup directly so tests can substitute a fake.
type Prober func(names ...string) bool

// Command is the real Prober. It returns true if at least one of the given
// command names resolves on the executable search path. Absence is a normal
// result, not an error: exec.LookPath failures are swallowed deliberately.
// Some tools ship under alternate names (Debian installs fd as fdfind), which
// is why the probe accepts several candidates.
func Command(names ...string) bool {
	for _, name := range names {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
