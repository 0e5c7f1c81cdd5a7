package installer

import (
	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/platform"
)

// brewStrategy installs through Homebrew on macOS.
type brewStrategy struct{}

func (brewStrategy) Name() string { return "brew" }

func (brewStrategy) Refresh() []Command {
	return []Command{{Name: "brew", Args: []string{"update"}}}
}

func (brewStrategy) Steps(tools []catalog.Tool) []Step {
	var steps []Step
	for _, t := range tools {
		step := Step{Tool: t}

		// The compiler comes from the Xcode Command Line Tools on macOS,
		// not from a Homebrew formula.
		if t.Name == "c-compiler" {
			step.Install = []Command{{Name: "xcode-select", Args: []string{"--install"}}}
			steps = append(steps, step)
			continue
		}

		pkg, ok := t.Packages[string(platform.FamilyMacOS)]
		if !ok {
			steps = append(steps, step)
			continue
		}

		switch {
		case pkg.Via == "npm":
			step.Pre, step.Install = npmInstall(pkg, brewInstall, false)
		case pkg.Cask:
			step.Install = []Command{{Name: "brew", Args: []string{"install", "--cask", pkg.Name}}}
		default:
			if pkg.Repo != "" {
				step.Pre = append(step.Pre, Guarded{Cmd: Command{Name: "brew", Args: []string{"tap", pkg.Repo}}})
			}
			step.Install = []Command{brewInstall(pkg.Name)}
		}
		steps = append(steps, step)
	}
	return steps
}

func brewInstall(name string) Command {
	return Command{Name: "brew", Args: []string{"install", name}}
}
