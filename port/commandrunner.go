package port

import (
	"os/exec"
)

// CommandRunner abstracts command execution so runners can be plugged in
// without depending on a specific adapter implementation. Run must block until
// the process has exited and leave cmd.ProcessState populated when the process
// was started.
type CommandRunner interface {
	Run(cmd *exec.Cmd) error
}
