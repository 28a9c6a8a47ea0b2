package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned when the connection is absent and
	// reconnection is impossible (client closed or dial failed permanently).
	ErrNotConnected = errors.New("bridge: not connected")

	// ErrTimeout is returned when no response arrives within the
	// per-command deadline.
	ErrTimeout = errors.New("bridge: command timed out")

	// ErrQueueFull is returned when the bounded send queue overflows.
	// Callers decide between shedding and waiting.
	ErrQueueFull = errors.New("bridge: send queue full")

	// ErrConnectionReset is returned to in-flight requests when the
	// connection drops before their response arrives.
	ErrConnectionReset = errors.New("bridge: connection reset")

	// ErrClosed is returned by Send after Close.
	ErrClosed = errors.New("bridge: client closed")
)

// RemoteError carries the host's reported message when a response object
// has status "error".
type RemoteError struct {
	Command string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error on %s: %s", e.Command, e.Message)
}
