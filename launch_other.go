//go:build !unix

package progrun

import (
	"errors"
	"io/fs"
	"os/exec"
)

func classifyLaunchError(err error) LaunchReason {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return LaunchNotFound
	case errors.Is(err, fs.ErrPermission):
		return LaunchPermission
	default:
		return LaunchOther
	}
}
