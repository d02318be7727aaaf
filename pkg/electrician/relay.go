package electrician

import (
	"context"
	"time"
)

// RelayRequest is the byte-level publish envelope.
type RelayRequest struct {
	Topic   string
	Body    []byte
	Headers map[string]string
	Timeout time.Duration
}

// RelayClient publishes opaque payloads off-process. Close releases the
// underlying wire and relay.
type RelayClient interface {
	Publish(ctx context.Context, rr RelayRequest) error
	Close() error
}

// noopRelay accepts publishes and discards them.
type noopRelay struct{}

func (noopRelay) Publish(context.Context, RelayRequest) error { return nil }
func (noopRelay) Close() error                                { return nil }

// IsNoop reports whether c discards everything it is given.
func IsNoop(c RelayClient) bool {
	_, ok := c.(noopRelay)
	return ok
}
