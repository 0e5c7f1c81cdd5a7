package verify

import (
	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/logger"
	"nvim-bootstrap/internal/probe"
)

// Outcome classifies one tool after the install pass.
type Outcome string

const (
	// OutcomePresent: the tool was already on PATH before this run.
	OutcomePresent Outcome = "present"
	// OutcomeInstalled: the tool was installed by this run and now resolves.
	OutcomeInstalled Outcome = "installed"
	// OutcomeMissingRequired: a required tool does not resolve; the run fails.
	OutcomeMissingRequired Outcome = "missing-required"
	// OutcomeMissingOptional: an optional tool does not resolve; warning only.
	OutcomeMissingOptional Outcome = "missing-optional"
)

// Result pairs a tool with its verification outcome.
type Result struct {
	Tool    catalog.Tool
	Outcome Outcome
}

// Report holds one Result per declared tool, in catalog order. It is built by
// re-probing after the install pass so it reflects the actual state of the
// host rather than assumed install success.
type Report struct {
	Results []Result
}

// Build re-probes every tool and classifies it. installed names the tools the
// install engine claims to have installed this run, distinguishing
// "installed" from "present"; pass nil when only auditing.
func Build(tools []catalog.Tool, pr probe.Prober, installed map[string]bool) Report {
	results := make([]Result, 0, len(tools))
	for _, t := range tools {
		var outcome Outcome
		switch {
		case pr(t.Bins...):
			outcome = OutcomePresent
			if installed[t.Name] {
				outcome = OutcomeInstalled
			}
		case t.Required:
			outcome = OutcomeMissingRequired
		default:
			outcome = OutcomeMissingOptional
		}
		results = append(results, Result{Tool: t, Outcome: outcome})
	}
	return Report{Results: results}
}

// OK reports whether every required tool is satisfied.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if res.Outcome == OutcomeMissingRequired {
			return false
		}
	}
	return true
}

// Print writes the tool-by-tool verification table to stdout, one line per
// tool in catalog order.
func (r Report) Print() {
	logger.Info("\nVerification results:\n")
	for _, res := range r.Results {
		kind := "optional"
		if res.Tool.Required {
			kind = "required"
		}
		switch res.Outcome {
		case OutcomePresent:
			logger.Info("  [PASS] %-14s %s, already present\n", res.Tool.Name, kind)
		case OutcomeInstalled:
			logger.Info("  [PASS] %-14s %s, installed this run\n", res.Tool.Name, kind)
		case OutcomeMissingRequired:
			logger.Error("  [FAIL] %-14s required tool is missing\n", res.Tool.Name)
		case OutcomeMissingOptional:
			logger.Warn("  [WARN] %-14s optional tool is missing\n", res.Tool.Name)
		}
	}
	if r.OK() {
		logger.Info("\nAll required tools are installed.\n")
	} else {
		logger.Error("\nSome required tools are missing.\n")
	}
}
