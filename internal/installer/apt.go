package installer

import (
	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/platform"
)

// aptStrategy installs through apt on Debian-family distributions.
type aptStrategy struct{}

func (aptStrategy) Name() string { return "apt" }

func (aptStrategy) Refresh() []Command {
	return []Command{{Name: "sudo", Args: []string{"apt-get", "update"}}}
}

func (aptStrategy) Steps(tools []catalog.Tool) []Step {
	var steps []Step
	for _, t := range tools {
		step := Step{Tool: t}
		pkg, ok := t.Packages[string(platform.FamilyDebian)]
		if !ok {
			steps = append(steps, step)
			continue
		}

		if pkg.Via == "npm" {
			step.Pre, step.Install = npmInstall(pkg, aptInstall, true)
		} else {
			if pkg.Repo != "" {
				step.Pre = append(step.Pre, Guarded{Cmd: Command{
					Name: "sudo", Args: []string{"add-apt-repository", "-y", "ppa:" + pkg.Repo},
				}})
			}
			step.Install = []Command{aptInstall(pkg.Name)}
		}
		steps = append(steps, step)
	}
	return steps
}

func aptInstall(name string) Command {
	return Command{Name: "sudo", Args: []string{"apt-get", "install", "-y", name}}
}
