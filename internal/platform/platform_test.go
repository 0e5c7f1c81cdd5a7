package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nvim-bootstrap/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		id     string
		idLike string
		want   Family
	}{
		{"ubuntu", "debian", FamilyDebian},
		{"debian", "", FamilyDebian},
		{"linuxmint", "ubuntu debian", FamilyDebian},
		{"pop", "ubuntu debian", FamilyDebian},
		{"fedora", "", FamilyFedora},
		{"rhel", "fedora", FamilyFedora},
		{"centos", "rhel fedora", FamilyFedora},
		{"arch", "", FamilyArch},
		{"manjaro", "arch", FamilyArch},
		{"endeavouros", "arch", FamilyArch},
		// Unlisted derivative resolves through ID_LIKE.
		{"artix", "arch", FamilyArch},
		{"neon", "ubuntu debian", FamilyDebian},
		// Nothing recognizable.
		{"gentoo", "", FamilyUnknown},
		{"unknown-distro", "", FamilyUnknown},
		{"", "", FamilyUnknown},
	}
	for _, tt := range tests {
		if got := classify(tt.id, tt.idLike); got != tt.want {
			t.Errorf("classify(%q, %q) = %s, want %s", tt.id, tt.idLike, got, tt.want)
		}
	}
}

func TestParseOSRelease(t *testing.T) {
	input := `NAME="Ubuntu"
VERSION="24.04 LTS (Noble Numbat)"
ID=ubuntu
ID_LIKE=debian
# a comment
VERSION_ID="24.04"
PRETTY_NAME='Ubuntu 24.04 LTS'
MALFORMED LINE
`
	fields := parseOSRelease(strings.NewReader(input))
	if fields["ID"] != "ubuntu" {
		t.Errorf("ID = %q, want ubuntu", fields["ID"])
	}
	if fields["ID_LIKE"] != "debian" {
		t.Errorf("ID_LIKE = %q, want debian", fields["ID_LIKE"])
	}
	if fields["VERSION_ID"] != "24.04" {
		t.Errorf("VERSION_ID = %q, want 24.04", fields["VERSION_ID"])
	}
	if fields["PRETTY_NAME"] != "Ubuntu 24.04 LTS" {
		t.Errorf("single quotes not stripped: %q", fields["PRETTY_NAME"])
	}
	if _, ok := fields["MALFORMED LINE"]; ok {
		t.Error("malformed line should be skipped")
	}
}

func TestDetectLinux(t *testing.T) {
	tests := []struct {
		name    string
		release string
		family  Family
		id      string
	}{
		{
			name:    "ubuntu",
			release: "ID=ubuntu\nID_LIKE=debian\nVERSION_ID=\"24.04\"\n",
			family:  FamilyDebian,
			id:      "ubuntu",
		},
		{
			name:    "fedora",
			release: "ID=fedora\nVERSION_ID=41\n",
			family:  FamilyFedora,
			id:      "fedora",
		},
		{
			name:    "arch derivative via id_like",
			release: "ID=someforkos\nID_LIKE=\"arch\"\n",
			family:  FamilyArch,
			id:      "someforkos",
		},
		{
			name:    "unrecognized distro",
			release: "ID=unknown-distro\nVERSION_ID=1.0\n",
			family:  FamilyUnknown,
			id:      "unknown-distro",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "os-release")
			if err := os.WriteFile(path, []byte(tt.release), 0644); err != nil {
				t.Fatalf("write os-release: %v", err)
			}
			p := detect("linux", path)
			if p.Family != tt.family {
				t.Errorf("family = %s, want %s", p.Family, tt.family)
			}
			if p.ID != tt.id {
				t.Errorf("id = %q, want %q", p.ID, tt.id)
			}
		})
	}
}

func TestDetectMissingReleaseFile(t *testing.T) {
	p := detect("linux", filepath.Join(t.TempDir(), "does-not-exist"))
	if p.Family != FamilyUnknown {
		t.Errorf("family = %s, want unknown", p.Family)
	}
}

func TestPlatformString(t *testing.T) {
	p := Platform{Family: FamilyDebian, ID: "ubuntu", Version: "24.04"}
	if got := p.String(); got != "ubuntu 24.04 (debian family)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Platform{Family: FamilyUnknown}).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
