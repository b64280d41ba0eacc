package commandcapture

import (
	"bytes"
	"errors"
	"os/exec"
	"slices"
	"sync"

	"github.com/sa6mwa/progrun/port"
)

var (
	// ErrNilCommand is returned by New when cmd is nil.
	ErrNilCommand = errors.New("nil command")
	// ErrStreamsConfigured is returned by New when cmd already has Stdout or Stderr set.
	ErrStreamsConfigured = errors.New("capture requested with configured stdout or stderr")
)

// capture implements port.StreamCapture.
type capture struct {
	stdout port.Buffer
	stderr port.Buffer
	reset  func()
	once   sync.Once
}

// New binds a fresh stdout and stderr buffer to cmd and returns the capture
// that owns them. The command must not have Stdout or Stderr configured.
// Each stream gets its own buffer, os/exec drains them on separate goroutines.
func New(cmd *exec.Cmd) (port.StreamCapture, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}
	if cmd.Stdout != nil || cmd.Stderr != nil {
		return nil, ErrStreamsConfigured
	}
	return Bind(cmd, &bytes.Buffer{}, &bytes.Buffer{}), nil
}

// Bind wires stdout and stderr to cmd unconditionally. Restore puts the
// previously configured writers back.
func Bind(cmd *exec.Cmd, stdout, stderr port.Buffer) port.StreamCapture {
	origStdout, origStderr := cmd.Stdout, cmd.Stderr
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return &capture{
		stdout: stdout,
		stderr: stderr,
		reset: func() {
			cmd.Stdout = origStdout
			cmd.Stderr = origStderr
		},
	}
}

func (c *capture) Finish() ([]byte, []byte) {
	c.Restore()
	return clone(c.stdout), clone(c.stderr)
}

func (c *capture) Restore() {
	if c == nil {
		return
	}
	c.once.Do(func() {
		if c.reset != nil {
			c.reset()
			c.reset = nil
		}
	})
}

func clone(buf port.Buffer) []byte {
	if buf == nil {
		return nil
	}
	return slices.Clone(buf.Bytes())
}
