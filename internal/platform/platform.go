package platform

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"nvim-bootstrap/internal/logger"
)

// Family is a coarse platform bucket sharing one native package manager.
type Family string

const (
	FamilyMacOS   Family = "macos"
	FamilyDebian  Family = "debian"
	FamilyFedora  Family = "fedora"
	FamilyArch    Family = "arch"
	FamilyUnknown Family = "unknown"
)

// Platform identifies the host: the family selects the install strategy,
// while ID and Version are raw strings kept only for display. A Platform is
// resolved exactly once per run and never mutated afterwards.
type Platform struct {
	Family  Family
	ID      string // distro id from os-release, or "macos"
	Version string // distro/product version, best effort
}

// osReleasePath is the standard release-metadata file on Linux.
const osReleasePath = "/etc/os-release"

// familyByID maps os-release ids to their platform family. Derivatives that
// keep their parent's package manager map to the parent's family.
var familyByID = map[string]Family{
	"ubuntu":      FamilyDebian,
	"debian":      FamilyDebian,
	"linuxmint":   FamilyDebian,
	"pop":         FamilyDebian,
	"elementary":  FamilyDebian,
	"zorin":       FamilyDebian,
	"raspbian":    FamilyDebian,
	"fedora":      FamilyFedora,
	"rhel":        FamilyFedora,
	"centos":      FamilyFedora,
	"rocky":       FamilyFedora,
	"almalinux":   FamilyFedora,
	"nobara":      FamilyFedora,
	"arch":        FamilyArch,
	"manjaro":     FamilyArch,
	"endeavouros": FamilyArch,
	"garuda":      FamilyArch,
	"cachyos":     FamilyArch,
}

// Detect identifies the host platform. On darwin the family is macOS and the
// version comes from sw_vers. On Linux it parses /etc/os-release. Anything
// unrecognized resolves to FamilyUnknown; the caller decides whether that is
// fatal.
func Detect() Platform {
	return detect(runtime.GOOS, osReleasePath)
}

// detect is the testable core of Detect, parameterized by the GOOS value and
// the release file path.
func detect(goos, releasePath string) Platform {
	if goos == "darwin" {
		return Platform{Family: FamilyMacOS, ID: "macos", Version: macOSVersion()}
	}

	f, err := os.Open(releasePath)
	if err != nil {
		logger.Debug("[DEBUG] Cannot read %s: %v\n", releasePath, err)
		return Platform{Family: FamilyUnknown}
	}
	defer f.Close()

	fields := parseOSRelease(f)
	id := fields["ID"]
	p := Platform{Family: classify(id, fields["ID_LIKE"]), ID: id, Version: fields["VERSION_ID"]}
	logger.Debug("[DEBUG] os-release ID=%q ID_LIKE=%q -> family %s\n", id, fields["ID_LIKE"], p.Family)
	return p
}

// classify maps a distro id to its family, falling back to the ID_LIKE
// tokens so unlisted derivatives still resolve (e.g. ID_LIKE="arch").
func classify(id, idLike string) Family {
	if fam, ok := familyByID[id]; ok {
		return fam
	}
	for _, like := range strings.Fields(idLike) {
		if fam, ok := familyByID[like]; ok {
			return fam
		}
	}
	return FamilyUnknown
}

// parseOSRelease reads KEY=value lines, stripping surrounding quotes from
// values. Comment and malformed lines are skipped.
func parseOSRelease(r io.Reader) map[string]string {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"'`)
	}
	return fields
}

// macOSVersion reads the product version via sw_vers. Failure is tolerated
// since the version is display-only.
func macOSVersion() string {
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		logger.Debug("[DEBUG] sw_vers failed: %v\n", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

// String renders the platform for display, e.g. "ubuntu 24.04 (debian family)".
func (p Platform) String() string {
	s := p.ID
	if p.Version != "" {
		s += " " + p.Version
	}
	if p.Family != FamilyMacOS && p.Family != FamilyUnknown {
		s += " (" + string(p.Family) + " family)"
	}
	if s == "" {
		s = string(p.Family)
	}
	return s
}
