package installer

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"nvim-bootstrap/internal/logger"
)

// Command is a single external invocation, typically a package-manager call.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes external commands. The install engine goes through this
// interface so tests can count and inspect invocations without touching the
// host.
type Runner interface {
	Run(cmd Command) error
}

// ExecRunner runs commands against the real host, streaming output to the
// terminal. Stdin is attached so sudo can prompt for a password and package
// managers can ask their own questions.
type ExecRunner struct{}

func (ExecRunner) Run(cmd Command) error {
	logger.Debug("[DEBUG] Running command: %s\n", cmd)
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", cmd.String(), err)
	}
	return nil
}
