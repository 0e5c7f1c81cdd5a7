package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tools.yaml
var defaultCatalog []byte

// Tool is a named external dependency of the editor distribution.
// Bins lists the command names whose presence on PATH satisfies the tool
// (alternate names included, e.g. fd installs as fdfind on Debian).
// Packages maps a platform family to the package that provides the tool
// there; a family with no entry means the tool cannot be installed on it.
type Tool struct {
	Name     string             `yaml:"name"`
	Bins     []string           `yaml:"bins"`
	Required bool               `yaml:"required"`
	Packages map[string]Package `yaml:"packages"`
}

// Package describes how one platform family installs a tool.
type Package struct {
	Name  string `yaml:"name"`            // package name in the family's package manager
	Via   string `yaml:"via,omitempty"`   // "npm" installs through npm -g instead of the native manager
	Needs string `yaml:"needs,omitempty"` // native package installed first when the Via runtime is absent
	Repo  string `yaml:"repo,omitempty"`  // extra repository to enable before installing (e.g. a COPR)
	Cask  bool   `yaml:"cask,omitempty"`  // Homebrew cask rather than formula
}

// Catalog is the full declared tool set, in install order.
type Catalog struct {
	Tools []Tool `yaml:"tools"`
}

// Load returns the tool catalog. With an empty path it parses the embedded
// default; otherwise it reads the given YAML file, letting an operator swap
// in their own tool set.
func Load(path string) (*Catalog, error) {
	raw := defaultCatalog
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
	}

	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate rejects catalogs that would break the install/verify passes:
// every tool needs a name and at least one probe binary, and names must be
// unique so the report classifies each tool exactly once.
func (c *Catalog) validate() error {
	if len(c.Tools) == 0 {
		return fmt.Errorf("catalog declares no tools")
	}
	seen := make(map[string]bool, len(c.Tools))
	for _, t := range c.Tools {
		if t.Name == "" {
			return fmt.Errorf("catalog contains a tool without a name")
		}
		if seen[t.Name] {
			return fmt.Errorf("catalog declares tool %q twice", t.Name)
		}
		seen[t.Name] = true
		if len(t.Bins) == 0 {
			return fmt.Errorf("tool %q declares no probe binaries", t.Name)
		}
	}
	return nil
}

// Required returns the required subset in declared order.
func (c *Catalog) Required() []Tool {
	var out []Tool
	for _, t := range c.Tools {
		if t.Required {
			out = append(out, t)
		}
	}
	return out
}

// Optional returns the optional subset in declared order.
func (c *Catalog) Optional() []Tool {
	var out []Tool
	for _, t := range c.Tools {
		if !t.Required {
			out = append(out, t)
		}
	}
	return out
}
