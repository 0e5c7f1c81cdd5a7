package main

import (
	"nvim-bootstrap/cmd" // CLI commands and execution logic
)

// main is the program entry point. It delegates to cmd.Execute() which handles
// command line argument parsing and execution.
//
// nvim-bootstrap prepares a development machine for a Neovim distribution:
//   - Detects the host platform (macOS, or a Debian/Fedora/Arch-family Linux)
//   - Installs the external tools the distribution depends on through the
//     host's native package manager (Homebrew, apt, dnf, or pacman)
//   - Treats every install as idempotent: a tool already on PATH is skipped,
//     so re-running the bootstrap on a configured machine changes nothing
//   - Verifies the result and prints a tool-by-tool report, distinguishing
//     required tools (missing is an error) from optional ones (a warning)
//   - Optionally installs a Nerd Font fetched from GitHub releases
//
// Error handling strategy:
//   - A failed install step for a required tool aborts the remaining steps;
//     already-applied steps are left in place (no rollback)
//   - Optional tool failures are reported as warnings and never change the
//     exit status
//   - Declining the confirmation prompt is a clean exit, not an error
func main() {
	cmd.Execute()
}
