package port

// StreamCapture captures stdout and stderr of a command into separate
// buffers. Implementations are provided by adapters/commandcapture.
type StreamCapture interface {
	Finish() (stdout, stderr []byte)
	Restore()
}

// Buffer abstracts the minimal buffer API needed by StreamCapture.
type Buffer interface {
	Write(p []byte) (int, error)
	Bytes() []byte
}
