package progrun

import (
	"slices"

	"github.com/sa6mwa/progrun/port"
	"github.com/sirupsen/logrus"
)

// Option configures a Runner.
type Option func(*Runner)

// FailOnError controls whether a non-zero exit status is returned as an
// *ExitError (true, the default) or as a populated ProgramResult.
func FailOnError(fail bool) Option {
	return func(r *Runner) {
		r.failOnError = fail
	}
}

// AllowFailure is shorthand for FailOnError(false).
func AllowFailure() Option {
	return FailOnError(false)
}

// WithDir sets the working directory of the child process.
func WithDir(dir string) Option {
	return func(r *Runner) {
		r.dir = dir
	}
}

// WithEnv replaces the environment of the child process. A nil env inherits
// the caller's environment.
func WithEnv(env []string) Option {
	return func(r *Runner) {
		r.env = slices.Clone(env)
	}
}

// WithLogger sets the logger used for debug events. The logger is never
// reconfigured.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithCommandRunner replaces the os/exec backend, mainly for tests.
func WithCommandRunner(runner port.CommandRunner) Option {
	return func(r *Runner) {
		r.runner = runner
	}
}
