package installer

import (
	"fmt"

	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/logger"
	"nvim-bootstrap/internal/probe"
)

// Engine runs a strategy's steps strictly in order. It holds the runner and
// prober so tests can substitute fakes for both.
type Engine struct {
	runner Runner
	probe  probe.Prober
}

// New builds an Engine around the given runner and prober.
func New(runner Runner, prober probe.Prober) *Engine {
	return &Engine{runner: runner, probe: prober}
}

// Run executes the full install sequence: index refresh first, then one step
// per tool in catalog order. It returns the set of tool names actually
// installed this run.
//
// A failed step for a required tool aborts the remaining steps (fail-fast;
// already-applied steps stay applied). A failed step for an optional tool is
// logged as a warning and the sequence continues.
func (e *Engine) Run(s Strategy, tools []catalog.Tool) (map[string]bool, error) {
	for _, cmd := range s.Refresh() {
		if err := e.runner.Run(cmd); err != nil {
			logger.Warn("[WARN] Package index refresh failed: %v. Continuing with the existing index.\n", err)
		}
	}

	installed := make(map[string]bool)
	for _, step := range s.Steps(tools) {
		did, err := e.ensurePresent(step)
		if err != nil {
			if step.Tool.Required {
				return installed, fmt.Errorf("failed to install required tool %s: %w", step.Tool.Name, err)
			}
			logger.Warn("[WARN] Failed to install optional tool %s: %v. Continuing.\n", step.Tool.Name, err)
			continue
		}
		if did {
			installed[step.Tool.Name] = true
		}
	}
	return installed, nil
}

// ensurePresent is the probe-then-install primitive shared by every step:
// skip when any probe binary resolves, otherwise run the guarded pre-commands
// and the install commands in order. Returns whether an install was performed.
func (e *Engine) ensurePresent(step Step) (bool, error) {
	if e.probe(step.Tool.Bins...) {
		logger.Info("[INFO] %s is already installed. Skipping.\n", step.Tool.Name)
		return false, nil
	}

	if len(step.Install) == 0 {
		logger.Warn("[WARN] No package available for %s on this platform. Install it manually.\n", step.Tool.Name)
		return false, nil
	}

	logger.Info("[INFO] Installing %s...\n", step.Tool.Name)
	for _, pre := range step.Pre {
		if len(pre.Unless) > 0 && e.probe(pre.Unless...) {
			logger.Debug("[DEBUG] Pre-step for %s already satisfied, skipping %s\n", step.Tool.Name, pre.Cmd)
			continue
		}
		if err := e.runner.Run(pre.Cmd); err != nil {
			return false, err
		}
	}
	for _, cmd := range step.Install {
		if err := e.runner.Run(cmd); err != nil {
			return false, err
		}
	}
	logger.Info("[INFO] Installed %s.\n", step.Tool.Name)
	return true, nil
}
