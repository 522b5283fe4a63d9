// Package shell runs external commands and reports their outcome.
//
// A nonzero exit code is data, not an error: Run returns an error only
// when the command could not be executed at all (missing binary, no
// permission). Callers inspect Result.ExitCode for command-level failure.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result holds the captured output and exit code of a command.
type Result struct {
	// Stdout is the raw standard output, not trimmed. Callers that
	// display it verbatim depend on the original line structure.
	Stdout string
	// Stderr is trimmed, since it is only ever embedded in messages.
	Stderr   string
	ExitCode int
}

// Runner executes commands. The interface exists so tests can substitute
// a fake instead of spawning real processes.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// DefaultRunner executes commands with os/exec.
type DefaultRunner struct{}

// NewRunner returns a Runner backed by real process execution.
func NewRunner() Runner {
	return &DefaultRunner{}
}

// Run executes the command and captures its output.
func (r *DefaultRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1
	return result, fmt.Errorf("failed to execute '%s': %w", name, err)
}

// Run executes a command with a background context.
func Run(name string, args ...string) (*Result, error) {
	return NewRunner().Run(context.Background(), name, args...)
}

// CommandExists checks if a command is available in PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
