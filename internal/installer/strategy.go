package installer

import (
	"fmt"

	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/platform"
)

// Guarded is a preliminary command that runs only when none of the Unless
// binaries resolve on PATH. With no Unless binaries the command always runs
// when its step runs; such commands must be safe to repeat (e.g. enabling a
// repository that is already enabled).
type Guarded struct {
	Unless []string
	Cmd    Command
}

// Step ensures one tool is present: probe first, and only when the tool is
// absent run the Pre commands followed by the Install commands, in order.
// An empty Install means the platform has no package for the tool and the
// step can only report it missing.
type Step struct {
	Tool    catalog.Tool
	Pre     []Guarded
	Install []Command
}

// Strategy turns the tool catalog into the fixed, ordered step list for one
// platform family. Implementations exist for Homebrew, apt, dnf, and pacman;
// supporting another family means adding one more implementation.
type Strategy interface {
	// Name identifies the package manager, for display.
	Name() string
	// Refresh returns the package-index refresh commands run once before the
	// steps. Refresh failures are warnings, not fatal: a stale index usually
	// still installs.
	Refresh() []Command
	// Steps maps the catalog to install steps, preserving catalog order.
	Steps(tools []catalog.Tool) []Step
}

// ForPlatform selects the strategy matching the platform family. An unknown
// family is fatal for the run: there is nothing to dispatch to.
func ForPlatform(p platform.Platform) (Strategy, error) {
	switch p.Family {
	case platform.FamilyMacOS:
		return brewStrategy{}, nil
	case platform.FamilyDebian:
		return aptStrategy{}, nil
	case platform.FamilyFedora:
		return dnfStrategy{}, nil
	case platform.FamilyArch:
		return pacmanStrategy{}, nil
	default:
		return nil, fmt.Errorf("unsupported platform %s: no install strategy available", p)
	}
}

// npmInstall builds the shared step shape for npm-distributed CLIs: install
// the Node.js runtime through the native manager only if npm is absent, then
// install the package globally. sudo is skipped on macOS where the Homebrew
// npm prefix is user-writable.
func npmInstall(pkg catalog.Package, nativeInstall func(name string) Command, sudo bool) ([]Guarded, []Command) {
	pre := []Guarded{{Unless: []string{"npm"}, Cmd: nativeInstall(pkg.Needs)}}
	install := Command{Name: "npm", Args: []string{"install", "-g", pkg.Name}}
	if sudo {
		install = Command{Name: "sudo", Args: append([]string{"npm"}, install.Args...)}
	}
	return pre, []Command{install}
}
