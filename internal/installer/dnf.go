package installer

import (
	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/platform"
)

// dnfStrategy installs through dnf on Fedora-family distributions.
type dnfStrategy struct{}

func (dnfStrategy) Name() string { return "dnf" }

// Refresh is empty: dnf refreshes expired metadata on its own.
func (dnfStrategy) Refresh() []Command { return nil }

func (dnfStrategy) Steps(tools []catalog.Tool) []Step {
	var steps []Step
	for _, t := range tools {
		step := Step{Tool: t}
		pkg, ok := t.Packages[string(platform.FamilyFedora)]
		if !ok {
			steps = append(steps, step)
			continue
		}

		if pkg.Via == "npm" {
			step.Pre, step.Install = npmInstall(pkg, dnfInstall, true)
		} else {
			if pkg.Repo != "" {
				// Enabling an already-enabled COPR is a no-op, so the
				// pre-command needs no probe guard.
				step.Pre = append(step.Pre, Guarded{Cmd: Command{
					Name: "sudo", Args: []string{"dnf", "copr", "enable", "-y", pkg.Repo},
				}})
			}
			step.Install = []Command{dnfInstall(pkg.Name)}
		}
		steps = append(steps, step)
	}
	return steps
}

func dnfInstall(name string) Command {
	return Command{Name: "sudo", Args: []string{"dnf", "install", "-y", name}}
}
