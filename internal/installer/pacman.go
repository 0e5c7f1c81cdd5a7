package installer

import (
	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/platform"
)

// pacmanStrategy installs through pacman on Arch-family distributions.
type pacmanStrategy struct{}

func (pacmanStrategy) Name() string { return "pacman" }

func (pacmanStrategy) Refresh() []Command {
	return []Command{{Name: "sudo", Args: []string{"pacman", "-Sy"}}}
}

func (pacmanStrategy) Steps(tools []catalog.Tool) []Step {
	var steps []Step
	for _, t := range tools {
		step := Step{Tool: t}
		pkg, ok := t.Packages[string(platform.FamilyArch)]
		if !ok {
			steps = append(steps, step)
			continue
		}

		if pkg.Via == "npm" {
			step.Pre, step.Install = npmInstall(pkg, pacmanInstall, true)
		} else {
			step.Install = []Command{pacmanInstall(pkg.Name)}
		}
		steps = append(steps, step)
	}
	return steps
}

func pacmanInstall(name string) Command {
	// --needed keeps the invocation idempotent even when the probe and the
	// package disagree about presence.
	return Command{Name: "sudo", Args: []string{"pacman", "-S", "--noconfirm", "--needed", name}}
}
