package electrician

import (
	"fmt"

	"github.com/joeydtaylor/steeze-activities/pkg/codec"
)

// Envelope is the unit submitted to the wire. The forward relay carries
// opaque bytes, so topic and per-message headers travel inside it.
type Envelope struct {
	Topic   string            `json:"topic"`
	Headers map[string]string `json:"headers,omitempty"`
	Payload []byte            `json:"payload"`
}

func encodeEnvelope(rr RelayRequest) ([]byte, error) {
	b, err := codec.JSONStrict.Marshal(Envelope{Topic: rr.Topic, Headers: rr.Headers, Payload: rr.Body})
	if err != nil {
		return nil, fmt.Errorf("relay envelope: %w", err)
	}
	return b, nil
}

// DecodeEnvelope is the receiving side of a published message.
func DecodeEnvelope(b []byte) (Envelope, error) {
	var e Envelope
	if err := codec.JSONStrict.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("relay envelope: %w", err)
	}
	return e, nil
}
