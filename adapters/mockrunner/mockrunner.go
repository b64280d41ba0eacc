package mockrunner

import (
	"os/exec"
	"slices"
	"sync"

	"github.com/sa6mwa/progrun/port"
)

// Behavior represents a single command execution path for the mock runner.
// It may write to cmd.Stdout and cmd.Stderr to simulate program output.
type Behavior func(cmd *exec.Cmd) error

// Runner is a thread-safe mock implementation of port.CommandRunner.
type Runner struct {
	mu        sync.Mutex
	behaviors []Behavior
	Calls     int
	Paths     []string
	Args      [][]string
}

var _ port.CommandRunner = (*Runner)(nil)

// New constructs a Runner that will invoke behaviors sequentially for each call.
func New(behaviors ...Behavior) *Runner {
	return &Runner{behaviors: slices.Clone(behaviors)}
}

// Run records the call metadata and dispatches to the next behavior. Once
// the queue is exhausted calls succeed without output.
func (r *Runner) Run(cmd *exec.Cmd) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls++
	r.Paths = append(r.Paths, cmd.Path)
	r.Args = append(r.Args, slices.Clone(cmd.Args))

	if len(r.behaviors) == 0 {
		return nil
	}
	behavior := r.behaviors[0]
	r.behaviors = r.behaviors[1:]
	return behavior(cmd)
}

// Remaining returns the number of queued behaviors that have not yet been consumed.
func (r *Runner) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.behaviors)
}
