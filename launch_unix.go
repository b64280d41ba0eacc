//go:build unix

package progrun

import (
	"errors"
	"os/exec"

	"golang.org/x/sys/unix"
)

func classifyLaunchError(err error) LaunchReason {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENOTDIR):
		return LaunchNotFound
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return LaunchPermission
	case errors.Is(err, unix.ENOEXEC):
		return LaunchNotExecutable
	default:
		return LaunchOther
	}
}
