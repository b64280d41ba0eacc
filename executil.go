package progrun

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sa6mwa/progrun/adapters/commandcapture"
	"github.com/sa6mwa/progrun/port"
)

// RunCommand executes cmd using the supplied runner while capturing stdout
// and stderr into separate buffers. The captured streams are returned as
// copies together with the runner error. cmd must not have Stdout or Stderr
// configured.
func RunCommand(runner port.CommandRunner, cmd *exec.Cmd) (stdout, stderr []byte, err error) {
	if runner == nil {
		return nil, nil, fmt.Errorf("nil command runner")
	}
	capture, err := commandcapture.New(cmd)
	if err != nil {
		return nil, nil, err
	}
	err = runner.Run(cmd)
	stdout, stderr = capture.Finish()
	return stdout, stderr, err
}

type exitCoder interface {
	ExitCode() int
}

// processRan reports whether runErr came from a process that was started,
// as opposed to one that could not be created at all.
func processRan(runErr error, state *os.ProcessState) bool {
	if runErr == nil || state != nil {
		return true
	}
	var coder exitCoder
	return errors.As(runErr, &coder)
}

func exitCodeFrom(waitErr error, state *os.ProcessState) int {
	if state != nil {
		return state.ExitCode()
	}
	if waitErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) && exitErr.ProcessState != nil {
		return exitErr.ProcessState.ExitCode()
	}
	var coder exitCoder
	if errors.As(waitErr, &coder) {
		return coder.ExitCode()
	}
	return -1
}
