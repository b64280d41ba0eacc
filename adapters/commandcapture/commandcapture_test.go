package commandcapture

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
	"testing"
)

type stubBuffer struct {
	data []byte
}

func (s *stubBuffer) Write(p []byte) (int, error) {
	s.data = append(s.data, p...)
	return len(p), nil
}

func (s *stubBuffer) Bytes() []byte {
	return s.data
}

func TestNewSeparatesStreams(t *testing.T) {
	cmd := exec.Command("/bin/sh", "-c", "echo out; echo err >&2")
	cap, err := New(cmd)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	stdout, stderr := cap.Finish()
	if string(stdout) != "out\n" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	if string(stderr) != "err\n" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
	if cmd.Stdout != nil || cmd.Stderr != nil {
		t.Fatalf("expected Finish to restore nil writers")
	}
}

func TestNewRejectsConfiguredStreams(t *testing.T) {
	cmd := exec.Command("/bin/true")
	cmd.Stderr = io.Discard
	if _, err := New(cmd); !errors.Is(err, ErrStreamsConfigured) {
		t.Fatalf("expected ErrStreamsConfigured, got %v", err)
	}
}

func TestNewNilCommand(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilCommand) {
		t.Fatalf("expected ErrNilCommand, got %v", err)
	}
}

func TestBindWithStubBuffers(t *testing.T) {
	cmd := &exec.Cmd{}
	out := &stubBuffer{}
	errBuf := &stubBuffer{data: []byte("initial")}
	cap := Bind(cmd, out, errBuf)
	if _, err := cmd.Stdout.Write([]byte("hello")); err != nil {
		t.Fatalf("write stdout: %v", err)
	}
	stdout, stderr := cap.Finish()
	if string(stdout) != "hello" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	if string(stderr) != "initial" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
	stdout[0] = 'j'
	if string(out.data) != "hello" {
		t.Fatalf("Finish did not return a copy, buffer now %q", out.data)
	}
}

func TestRestoreIdempotent(t *testing.T) {
	var orig bytes.Buffer
	cmd := &exec.Cmd{Stdout: &orig}
	cap := Bind(cmd, &bytes.Buffer{}, &bytes.Buffer{})
	cap.Restore()
	cmd.Stdout = io.Discard
	cap.Restore()
	if cmd.Stdout != io.Discard {
		t.Fatalf("second Restore reset writers again")
	}
}
