package commandrunner_test

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/sa6mwa/progrun/adapters/commandrunner"
)

func TestDefaultRunnerSeparateStreams(t *testing.T) {
	cmd := exec.Command("/bin/sh", "-c", "echo out && echo err >&2")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := commandrunner.Default.Run(cmd); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stdout.String() != "out\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
	if stderr.String() != "err\n" {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
	if cmd.ProcessState == nil {
		t.Fatalf("expected ProcessState after Run")
	}
}

func TestDefaultRunnerExitStatus(t *testing.T) {
	cmd := exec.Command("/bin/sh", "-c", "exit 5")
	err := commandrunner.DefaultRunner{}.Run(cmd)
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError, got %v", err)
	}
	if exitErr.ExitCode() != 5 {
		t.Fatalf("unexpected exit code: %d", exitErr.ExitCode())
	}
}

func TestDefaultRunnerMissingBinary(t *testing.T) {
	cmd := exec.Command("/nonexistent/progrun-test-binary")
	if err := commandrunner.Default.Run(cmd); err == nil {
		t.Fatalf("expected error for missing binary")
	}
	if cmd.ProcessState != nil {
		t.Fatalf("expected nil ProcessState for a process that never started")
	}
}
