// Where: internal/runner/runner.go
// What: External command execution abstraction.
// Why: Every collaborator is an external CLI; a single seam keeps tests binary-free.
package runner

import (
	"context"
	"os"
	"os/exec"
)

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	// Run executes the command attached to the terminal (stdin, stdout,
	// stderr). Used for interactive tools.
	Run(ctx context.Context, name string, args ...string) error
	// RunOutput executes the command and returns its combined output.
	RunOutput(ctx context.Context, name string, args ...string) ([]byte, error)
	// RunQuiet executes the command discarding all output.
	RunQuiet(ctx context.Context, name string, args ...string) error
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct{}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r ExecRunner) RunOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

func (r ExecRunner) RunQuiet(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Run()
}

// Available reports whether the named binary is on PATH. Package variable so
// tests can pretend tools are present or missing.
var Available = func(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
