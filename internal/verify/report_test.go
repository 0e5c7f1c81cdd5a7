package verify

import (
	"os"
	"testing"

	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

func prober(present ...string) func(names ...string) bool {
	set := make(map[string]bool, len(present))
	for _, p := range present {
		set[p] = true
	}
	return func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}
}

var tools = []catalog.Tool{
	{Name: "git", Bins: []string{"git"}, Required: true},
	{Name: "fd", Bins: []string{"fd", "fdfind"}, Required: true},
	{Name: "lazygit", Bins: []string{"lazygit"}, Required: false},
}

func TestBuildClassifiesEveryToolOnce(t *testing.T) {
	report := Build(tools, prober("git", "fdfind"), nil)
	if len(report.Results) != len(tools) {
		t.Fatalf("results = %d, want %d", len(report.Results), len(tools))
	}
	seen := make(map[string]int)
	for _, res := range report.Results {
		seen[res.Tool.Name]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("tool %s classified %d times", name, n)
		}
	}
}

func TestBuildOutcomes(t *testing.T) {
	report := Build(tools, prober("git", "fdfind"), map[string]bool{"fd": true})

	want := map[string]Outcome{
		"git":     OutcomePresent,
		"fd":      OutcomeInstalled, // resolves via fdfind and was installed this run
		"lazygit": OutcomeMissingOptional,
	}
	for _, res := range report.Results {
		if res.Outcome != want[res.Tool.Name] {
			t.Errorf("%s outcome = %s, want %s", res.Tool.Name, res.Outcome, want[res.Tool.Name])
		}
	}
	if !report.OK() {
		t.Error("report with all required tools present should be OK")
	}
}

func TestOKFalseIffRequiredMissing(t *testing.T) {
	// Required tool missing: not OK.
	report := Build(tools, prober("git"), nil)
	var fdOutcome Outcome
	for _, res := range report.Results {
		if res.Tool.Name == "fd" {
			fdOutcome = res.Outcome
		}
	}
	if fdOutcome != OutcomeMissingRequired {
		t.Errorf("fd outcome = %s, want missing-required", fdOutcome)
	}
	if report.OK() {
		t.Error("report with a missing required tool should not be OK")
	}

	// Only optional tools missing: still OK.
	report = Build(tools, prober("git", "fd"), nil)
	if !report.OK() {
		t.Error("missing optional tools should not fail the report")
	}
}

func TestBuildEmptyCatalog(t *testing.T) {
	report := Build(nil, prober(), nil)
	if len(report.Results) != 0 {
		t.Errorf("results = %v, want empty", report.Results)
	}
	if !report.OK() {
		t.Error("empty report should be OK")
	}
}
