package activities

import (
	"context"
	"time"

	"github.com/joeydtaylor/steeze-activities/pkg/codec"
	"github.com/joeydtaylor/steeze-activities/pkg/electrician"
	"github.com/joeydtaylor/steeze-activities/pkg/manifest"
	"go.uber.org/zap"
)

// RosterEvent is published after every successful signup or unregister.
type RosterEvent struct {
	Type         string    `json:"type"`
	Activity     string    `json:"activity"`
	Email        string    `json:"email"`
	Participants int       `json:"participants"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Publisher is the part of a relay client the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, rr electrician.RelayRequest) error
}

const publishTimeout = 2 * time.Second

// Notifier publishes roster events over the relay. A nil relay or disabled
// events make it a no-op.
type Notifier struct {
	relay Publisher
	topic string
	log   *zap.Logger
	now   func() time.Time
}

func NewNotifier(relay Publisher, cfg manifest.Events, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.Enable {
		relay = nil
	}
	return &Notifier{relay: relay, topic: cfg.Topic, log: log, now: time.Now}
}

// Notify publishes ev. Failures are logged and otherwise ignored; the roster
// change has already happened.
func (n *Notifier) Notify(ctx context.Context, ev RosterEvent) {
	if n == nil || n.relay == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = n.now().UTC()
	}
	body, err := codec.JSONStrict.Marshal(ev)
	if err != nil {
		n.log.Error("roster event encode failed", zap.Error(err))
		return
	}
	err = n.relay.Publish(ctx, electrician.RelayRequest{
		Topic:   n.topic,
		Body:    body,
		Timeout: publishTimeout,
		Headers: map[string]string{
			"Content-Type": codec.JSONStrict.ContentType(),
			"X-Event-Type": ev.Type,
		},
	})
	if err != nil {
		n.log.Warn("roster event publish failed",
			zap.String("topic", n.topic),
			zap.String("activity", ev.Activity),
			zap.String("type", ev.Type),
			zap.Error(err),
		)
	}
}
