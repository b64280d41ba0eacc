// Package progrun runs an external program from an argument vector, without
// a shell, and reports its exit status together with its trimmed stdout and
// stderr.
//
//	res, err := progrun.Run([]string{"git", "rev-parse", "HEAD"})
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Stdout)
//
// A non-zero exit status is an *ExitError unless AllowFailure is given, in
// which case it is reported through ProgramResult.ErrorMessage. A program
// that cannot be started is always a *LaunchError.
package progrun

import (
	"bytes"
	"os/exec"
	"slices"
	"time"

	"github.com/sa6mwa/progrun/adapters/commandrunner"
	"github.com/sa6mwa/progrun/port"
	"github.com/sirupsen/logrus"
)

// Runner holds invocation settings. It keeps no per-call state, so one
// Runner may be shared between goroutines.
type Runner struct {
	failOnError bool
	dir         string
	env         []string
	logger      logrus.FieldLogger
	runner      port.CommandRunner
}

// New returns a Runner that fails on non-zero exit unless told otherwise.
func New(opts ...Option) *Runner {
	r := &Runner{failOnError: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run is shorthand for New(opts...).Run(args).
func Run(args []string, opts ...Option) (ProgramResult, error) {
	return New(opts...).Run(args)
}

// Run starts args[0] with args[1:] as arguments and blocks until it exits.
func (r *Runner) Run(args []string) (ProgramResult, error) {
	if len(args) == 0 {
		return ProgramResult{}, &LaunchError{Reason: LaunchInvalid, Err: errEmptyArgs}
	}
	args = slices.Clone(args)

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = r.dir
	if r.env != nil {
		cmd.Env = slices.Clone(r.env)
	}

	log := r.log().WithField("args", args)
	if r.dir != "" {
		log = log.WithField("dir", r.dir)
	}
	log.Debug("executing program")

	started := time.Now()
	stdout, stderr, err := RunCommand(r.commandRunner(), cmd)
	if !processRan(err, cmd.ProcessState) {
		log.WithError(err).Debug("program failed to launch")
		return ProgramResult{}, &LaunchError{
			Args:   args,
			Reason: classifyLaunchError(err),
			Err:    err,
		}
	}

	res := newProgramResult(args, exitCodeFrom(err, cmd.ProcessState),
		trimOutput(stdout), trimOutput(stderr))
	log.WithFields(logrus.Fields{
		"exit_code": res.ReturnCode,
		"duration":  time.Since(started).String(),
	}).Debug("program exited")

	if !res.Success() && r.failOnError {
		return ProgramResult{}, &ExitError{Result: res}
	}
	return res, nil
}

// asciiSpace is the set trimmed from captured output. Unicode spaces such as
// U+00A0 are kept.
const asciiSpace = " \t\n\v\f\r"

func trimOutput(b []byte) string {
	return string(bytes.Trim(b, asciiSpace))
}

func (r *Runner) log() logrus.FieldLogger {
	if r.logger == nil {
		return logrus.StandardLogger()
	}
	return r.logger
}

func (r *Runner) commandRunner() port.CommandRunner {
	if r.runner == nil {
		return commandrunner.Default
	}
	return r.runner
}
