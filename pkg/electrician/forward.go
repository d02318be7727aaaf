package electrician

// Publish-only RelayClient built from an Electrician wire feeding a forward
// relay. Each message is an Envelope holding topic, headers and payload.

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/joeydtaylor/electrician/pkg/builder"
)

var errMissingTopic = errors.New("relay: missing topic")

type forwardClient struct {
	submit func(context.Context, []byte) error // captures wire.Submit
	stop   context.CancelFunc
}

// NewRelayFromEnv loads RelayOptions from the environment and builds a relay.
func NewRelayFromEnv() (RelayClient, error) {
	opt, err := LoadRelayOptionsFromEnv()
	if err != nil {
		return nil, err
	}
	return NewRelay(opt)
}

// NewRelay returns a forward relay feeding opt.Targets, or a noop relay when
// no target is configured. The relay runs until Close.
func NewRelay(opt RelayOptions) (RelayClient, error) {
	if !opt.Enabled() {
		return noopRelay{}, nil
	}

	logger := builder.NewLogger(builder.LoggerWithDevelopment(false))

	ctx, cancel := context.WithCancel(context.Background())
	wire := builder.NewWire[[]byte](ctx, builder.WireWithLogger[[]byte](logger))

	perf := builder.NewPerformanceOptions(opt.CompressSnappy, builder.COMPRESS_SNAPPY)
	sec := builder.NewSecurityOptions(opt.EncryptAESGCM, builder.ENCRYPTION_AES_GCM)
	tlsCfg := builder.NewTlsClientConfig(
		opt.TLSEnable,
		opt.TLSClientCrt, opt.TLSClientKey, opt.TLSCA,
		tls.VersionTLS13, tls.VersionTLS13,
	)

	relay := builder.NewForwardRelay[[]byte](
		ctx,
		builder.ForwardRelayWithLogger[[]byte](logger),
		builder.ForwardRelayWithTarget[[]byte](opt.Targets...),
		builder.ForwardRelayWithPerformanceOptions[[]byte](perf),
		builder.ForwardRelayWithSecurityOptions[[]byte](sec, string(opt.AESKey)),
		builder.ForwardRelayWithTLSConfig[[]byte](tlsCfg),
		builder.ForwardRelayWithStaticHeaders[[]byte](opt.StaticHeaders),
		builder.ForwardRelayWithInput(wire),
	)

	if err := wire.Start(ctx); err != nil {
		cancel()
		return nil, fmt.Errorf("builder wire start: %w", err)
	}
	if err := relay.Start(ctx); err != nil {
		cancel()
		return nil, fmt.Errorf("builder relay start: %w", err)
	}

	return &forwardClient{
		submit: func(ctx context.Context, b []byte) error { return wire.Submit(ctx, b) },
		stop:   cancel,
	}, nil
}

// Publish wraps rr in an Envelope and submits it to the wire. A topic is
// required.
func (c *forwardClient) Publish(ctx context.Context, rr RelayRequest) error {
	if rr.Topic == "" {
		return errMissingTopic
	}
	b, err := encodeEnvelope(rr)
	if err != nil {
		return err
	}
	if rr.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rr.Timeout)
		defer cancel()
	}
	return c.submit(ctx, b)
}

// Close stops the wire and relay.
func (c *forwardClient) Close() error {
	c.stop()
	return nil
}
