package shell

import (
	"context"
	"testing"
)

func TestRun_EchoCommand(t *testing.T) {
	result, err := Run("echo", "hello world")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stdout != "hello world\n" {
		t.Errorf("Run() stdout = %q, want %q", result.Stdout, "hello world\n")
	}

	if result.ExitCode != 0 {
		t.Errorf("Run() exitCode = %d, want 0", result.ExitCode)
	}
}

func TestRun_PreservesStdoutVerbatim(t *testing.T) {
	result, err := Run("sh", "-c", "printf '  indented\\n\\ntrailing  \\n'")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "  indented\n\ntrailing  \n"
	if result.Stdout != want {
		t.Errorf("Run() stdout = %q, want %q", result.Stdout, want)
	}
}

func TestRun_NonExistentCommand(t *testing.T) {
	result, err := Run("this-command-does-not-exist-12345")
	if err == nil {
		t.Error("Run() expected error for non-existent command")
	}

	if result.ExitCode != -1 {
		t.Errorf("Run() exitCode = %d, want -1 for non-existent command", result.ExitCode)
	}
}

func TestRun_CommandWithExitCode(t *testing.T) {
	// 'false' always exits with code 1
	result, err := Run("false")
	if err != nil {
		t.Fatalf("Run() error = %v, want nil (exit codes are not errors)", err)
	}

	if result.ExitCode != 1 {
		t.Errorf("Run() exitCode = %d, want 1", result.ExitCode)
	}
}

func TestRun_CapturesStderr(t *testing.T) {
	result, err := Run("sh", "-c", "echo error >&2")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stderr != "error" {
		t.Errorf("Run() stderr = %q, want %q", result.Stderr, "error")
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner()
	_, err := runner.Run(ctx, "sleep", "10")
	if err == nil {
		t.Error("Run() expected error for cancelled context")
	}
}

func TestCommandExists(t *testing.T) {
	if !CommandExists("sh") {
		t.Error("CommandExists(\"sh\") = false, want true")
	}

	if CommandExists("this-command-does-not-exist-12345") {
		t.Error("CommandExists() = true for non-existent command")
	}
}
