package progrun

import (
	"errors"
	"fmt"
)

var (
	// ErrLaunchFailure matches every *LaunchError.
	ErrLaunchFailure = errors.New("progrun: program could not be started")
	// ErrNonZeroExit matches every *ExitError.
	ErrNonZeroExit = errors.New("progrun: program exited with non-zero status")

	errEmptyArgs = errors.New("empty argument vector")
)

// LaunchReason classifies why a program could not be started.
type LaunchReason int

const (
	LaunchOther         LaunchReason = iota // unclassified OS or runner error
	LaunchInvalid                           // empty argument vector
	LaunchNotFound                          // executable missing from path or PATH
	LaunchPermission                        // no execute permission
	LaunchNotExecutable                     // file is not in a format the OS can run
)

func (r LaunchReason) String() string {
	switch r {
	case LaunchOther:
		return "other"
	case LaunchInvalid:
		return "invalid"
	case LaunchNotFound:
		return "not found"
	case LaunchPermission:
		return "permission denied"
	case LaunchNotExecutable:
		return "not executable"
	default:
		return fmt.Sprintf("reason(%d)", r)
	}
}

// LaunchError is returned when no process could be created for the argument
// vector. It is returned regardless of FailOnError since there is no exit
// code to evaluate.
type LaunchError struct {
	Args   []string
	Reason LaunchReason
	Err    error
}

func (e *LaunchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	name := "<empty>"
	if len(e.Args) > 0 {
		name = e.Args[0]
	}
	return fmt.Sprintf("progrun: launch %q: %s: %v", name, e.Reason, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailure
}

// ExitError is returned in strict mode when the program ran but exited with
// a non-zero status. Result holds everything that was captured.
type ExitError struct {
	Result ProgramResult
}

func (e *ExitError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Result.ErrorMessage
}

func (e *ExitError) Is(target error) bool {
	return target == ErrNonZeroExit
}

// ExitCode returns the exit status of the program.
func (e *ExitError) ExitCode() int {
	return e.Result.ReturnCode
}
