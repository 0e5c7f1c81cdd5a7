package installer

import (
	"testing"

	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/platform"
)

func TestForPlatform(t *testing.T) {
	tests := []struct {
		family platform.Family
		name   string
	}{
		{platform.FamilyMacOS, "brew"},
		{platform.FamilyDebian, "apt"},
		{platform.FamilyFedora, "dnf"},
		{platform.FamilyArch, "pacman"},
	}
	for _, tt := range tests {
		s, err := ForPlatform(platform.Platform{Family: tt.family})
		if err != nil {
			t.Errorf("ForPlatform(%s): %v", tt.family, err)
			continue
		}
		if s.Name() != tt.name {
			t.Errorf("ForPlatform(%s).Name() = %q, want %q", tt.family, s.Name(), tt.name)
		}
	}
}

func TestForPlatformUnknown(t *testing.T) {
	if _, err := ForPlatform(platform.Platform{Family: platform.FamilyUnknown, ID: "unknown-distro"}); err == nil {
		t.Error("expected error for unknown platform family")
	}
}

func defaultTools(t *testing.T) []catalog.Tool {
	t.Helper()
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c.Tools
}

func findStep(t *testing.T, steps []Step, name string) Step {
	t.Helper()
	for _, s := range steps {
		if s.Tool.Name == name {
			return s
		}
	}
	t.Fatalf("no step for tool %s", name)
	return Step{}
}

func TestStepsPreserveCatalogOrder(t *testing.T) {
	tools := defaultTools(t)
	for _, s := range []Strategy{brewStrategy{}, aptStrategy{}, dnfStrategy{}, pacmanStrategy{}} {
		steps := s.Steps(tools)
		if len(steps) != len(tools) {
			t.Errorf("%s: %d steps for %d tools", s.Name(), len(steps), len(tools))
			continue
		}
		for i, step := range steps {
			if step.Tool.Name != tools[i].Name {
				t.Errorf("%s: step %d is %s, want %s", s.Name(), i, step.Tool.Name, tools[i].Name)
			}
		}
	}
}

func TestAptSteps(t *testing.T) {
	steps := aptStrategy{}.Steps(defaultTools(t))

	git := findStep(t, steps, "git")
	if got := git.Install[0].String(); got != "sudo apt-get install -y git" {
		t.Errorf("git install = %q", got)
	}

	fd := findStep(t, steps, "fd")
	if got := fd.Install[0].String(); got != "sudo apt-get install -y fd-find" {
		t.Errorf("fd install = %q", got)
	}

	// tree-sitter routes through npm with a guarded Node.js pre-step.
	ts := findStep(t, steps, "tree-sitter")
	if len(ts.Pre) != 1 {
		t.Fatalf("tree-sitter pre steps = %v", ts.Pre)
	}
	if ts.Pre[0].Unless[0] != "npm" {
		t.Errorf("tree-sitter pre guard = %v, want npm", ts.Pre[0].Unless)
	}
	if got := ts.Pre[0].Cmd.String(); got != "sudo apt-get install -y nodejs" {
		t.Errorf("tree-sitter pre = %q", got)
	}
	if got := ts.Install[0].String(); got != "sudo npm install -g tree-sitter-cli" {
		t.Errorf("tree-sitter install = %q", got)
	}

	// lazygit has no Debian package, so its step carries no install action.
	lazygit := findStep(t, steps, "lazygit")
	if len(lazygit.Install) != 0 {
		t.Errorf("lazygit install = %v, want none", lazygit.Install)
	}
}

func TestDnfSteps(t *testing.T) {
	steps := dnfStrategy{}.Steps(defaultTools(t))

	// The Fedora lazygit package needs its COPR enabled first.
	lazygit := findStep(t, steps, "lazygit")
	if len(lazygit.Pre) != 1 {
		t.Fatalf("lazygit pre steps = %v", lazygit.Pre)
	}
	if got := lazygit.Pre[0].Cmd.String(); got != "sudo dnf copr enable -y atim/lazygit" {
		t.Errorf("lazygit pre = %q", got)
	}
	if got := lazygit.Install[0].String(); got != "sudo dnf install -y lazygit" {
		t.Errorf("lazygit install = %q", got)
	}

	if refresh := (dnfStrategy{}).Refresh(); len(refresh) != 0 {
		t.Errorf("dnf refresh = %v, want none", refresh)
	}
}

func TestPacmanSteps(t *testing.T) {
	steps := pacmanStrategy{}.Steps(defaultTools(t))

	cc := findStep(t, steps, "c-compiler")
	if got := cc.Install[0].String(); got != "sudo pacman -S --noconfirm --needed base-devel" {
		t.Errorf("c-compiler install = %q", got)
	}
}

func TestBrewSteps(t *testing.T) {
	steps := brewStrategy{}.Steps(defaultTools(t))

	// The compiler comes from the Xcode CLT, not Homebrew.
	cc := findStep(t, steps, "c-compiler")
	if got := cc.Install[0].String(); got != "xcode-select --install" {
		t.Errorf("c-compiler install = %q", got)
	}

	kitty := findStep(t, steps, "kitty")
	if got := kitty.Install[0].String(); got != "brew install --cask kitty" {
		t.Errorf("kitty install = %q", got)
	}

	// npm tools skip sudo under Homebrew.
	ts := findStep(t, steps, "tree-sitter")
	if got := ts.Install[0].String(); got != "npm install -g tree-sitter-cli" {
		t.Errorf("tree-sitter install = %q", got)
	}
	if got := ts.Pre[0].Cmd.String(); got != "brew install node" {
		t.Errorf("tree-sitter pre = %q", got)
	}
}
