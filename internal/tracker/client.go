// Package tracker invokes the zeit time-tracking CLI and normalizes its
// output for display. All domain semantics (what tracking means, where
// entries live, how durations are computed) belong to zeit itself; this
// package only builds argument lists and captures text.
package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeittui/zeittui/internal/ui"
	"github.com/zeittui/zeittui/pkg/shell"
)

// DefaultCommand is the zeit binary invoked when no override is configured.
const DefaultCommand = "zeit"

// Sentinels shown in place of real status output.
const (
	noActiveTracking = "No active tracking."
	statusErrorText  = "Error getting tracking status."
)

// StartOptions carries the answers collected for a start operation.
// Project is required; Task and Begin are passed through only when
// non-empty after trimming.
type StartOptions struct {
	Project string
	Task    string
	Begin   string
}

// FinishOptions carries the answers collected for a finish operation.
// All fields are optional.
type FinishOptions struct {
	Task   string
	Begin  string
	Finish string
}

// Client is the capability boundary to the external tool. The TUI depends
// on this interface so tests can substitute a fake without spawning
// processes.
type Client interface {
	// Status returns the current tracking report, or a sentinel when
	// there is nothing tracked or the query failed.
	Status() string
	// Start begins tracking a project.
	Start(opts StartOptions) error
	// Finish ends the current tracking entry.
	Finish(opts FinishOptions) error
	// List returns the tracked-activities report.
	List() string
	// Stats returns the statistics report.
	Stats() string
}

// ZeitClient invokes the real zeit binary through a shell.Runner.
type ZeitClient struct {
	bin    string
	runner shell.Runner
}

// NewClient creates a client for the given zeit binary.
func NewClient(bin string, runner shell.Runner) *ZeitClient {
	if bin == "" {
		bin = DefaultCommand
	}
	return &ZeitClient{bin: bin, runner: runner}
}

// run invokes zeit with the given arguments, always appending --no-colors
// so captured output is free of ANSI escapes.
func (c *ZeitClient) run(args ...string) (*shell.Result, error) {
	argv := append(args, "--no-colors")
	ui.Debugf("%s %s", c.bin, strings.Join(argv, " "))
	return c.runner.Run(context.Background(), c.bin, argv...)
}

// Status queries the current tracking state via `zeit tracking`.
//
// Empty output means nothing is being tracked and maps to a fixed
// sentinel so the panel is never blank. A nonzero exit also maps to a
// fixed sentinel; stderr is deliberately not shown here because the
// status line repaints every poll interval.
func (c *ZeitClient) Status() string {
	result, err := c.run("tracking")
	if err != nil {
		return fmt.Sprintf("zeit is not available: %v", err)
	}

	if result.ExitCode != 0 {
		return statusErrorText
	}

	if strings.TrimSpace(result.Stdout) == "" {
		return noActiveTracking
	}
	return result.Stdout
}

// Start begins tracking via `zeit track`.
func (c *ZeitClient) Start(opts StartOptions) error {
	args := []string{"track", "--project", opts.Project}
	if task := strings.TrimSpace(opts.Task); task != "" {
		args = append(args, "--task", task)
	}
	if begin := strings.TrimSpace(opts.Begin); begin != "" {
		args = append(args, "--begin", begin)
	}

	result, err := c.run(args...)
	if err != nil {
		return fmt.Errorf("failed to start tracking: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("failed to start tracking: %s", result.Stderr)
	}
	return nil
}

// Finish ends the current tracking entry via `zeit finish`.
func (c *ZeitClient) Finish(opts FinishOptions) error {
	args := []string{"finish"}
	if task := strings.TrimSpace(opts.Task); task != "" {
		args = append(args, "--task", task)
	}
	if begin := strings.TrimSpace(opts.Begin); begin != "" {
		args = append(args, "--begin", begin)
	}
	if finish := strings.TrimSpace(opts.Finish); finish != "" {
		args = append(args, "--finish", finish)
	}

	result, err := c.run(args...)
	if err != nil {
		return fmt.Errorf("failed to finish tracking: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("failed to finish tracking: %s", result.Stderr)
	}
	return nil
}

// List returns the tracked-activities report via `zeit list`.
func (c *ZeitClient) List() string {
	result, err := c.run("list")
	if err != nil {
		return fmt.Sprintf("Error getting list: %v", err)
	}
	if result.ExitCode != 0 {
		return fmt.Sprintf("Error getting list: %s", result.Stderr)
	}
	return result.Stdout
}

// Stats returns the statistics report via `zeit stats`.
func (c *ZeitClient) Stats() string {
	result, err := c.run("stats")
	if err != nil {
		return fmt.Sprintf("Error getting stats: %v", err)
	}
	if result.ExitCode != 0 {
		return fmt.Sprintf("Error getting stats: %s", result.Stderr)
	}
	return result.Stdout
}
