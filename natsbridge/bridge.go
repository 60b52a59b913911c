// Package natsbridge forwards registry change events onto NATS subjects
// so other processes (dashboard instances, cache layers) can react to
// pack registration without polling. Events are published best-effort:
// a failed publish is logged, never propagated back into the registry
// mutation that triggered it.
package natsbridge

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/efeecllk/game-insights-sub001/errors"
	"github.com/efeecllk/game-insights-sub001/registry"
)

// DefaultSubjectPrefix is the subject tree events are published under:
// <prefix>.<event type>, e.g. "packs.events.registered".
const DefaultSubjectPrefix = "packs.events"

// Publisher is the minimal messaging surface the bridge needs. It is
// satisfied by NATSPublisher in production and by fakes in tests.
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// Bridge subscribes to one registry and republishes its events
type Bridge struct {
	reg    *registry.Registry
	pub    Publisher
	prefix string
	logger *slog.Logger
	unsub  func()
}

// Option configures a Bridge
type Option func(*Bridge)

// WithSubjectPrefix overrides the subject tree events are published under
func WithSubjectPrefix(prefix string) Option {
	return func(b *Bridge) {
		b.prefix = prefix
	}
}

// WithLogger sets the bridge's logger
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// New creates a bridge between a registry and a publisher. Call Start to
// begin forwarding.
func New(reg *registry.Registry, pub Publisher, opts ...Option) *Bridge {
	b := &Bridge{
		reg:    reg,
		pub:    pub,
		prefix: DefaultSubjectPrefix,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start subscribes the bridge to its registry. Events observed after
// Start are forwarded; packs registered earlier are not replayed.
func (b *Bridge) Start() error {
	if b.pub == nil {
		return errors.WrapInvalid(
			stderrors.New("publisher cannot be nil"),
			"Bridge", "Start", "publisher validation")
	}
	b.unsub = b.reg.Subscribe(b.forward)
	return nil
}

// Stop detaches the bridge from the registry. Safe to call repeatedly.
func (b *Bridge) Stop() {
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
}

// forward publishes one registry event. The returned error feeds the
// registry's listener failure accounting; delivery to other listeners is
// unaffected either way.
func (b *Bridge) forward(event registry.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "Bridge", "forward", "event serialization")
	}

	subject := b.prefix + "." + string(event.Type)
	if err := b.pub.Publish(context.Background(), subject, data); err != nil {
		b.logger.Warn("registry event publish failed",
			"subject", subject,
			"pack", string(event.PackID),
			"error", err)
		return errors.Wrap(err, "Bridge", "forward", "event publish")
	}
	return nil
}

// natsPublisher adapts a core NATS connection to the Publisher interface
type natsPublisher struct {
	conn *nats.Conn
}

// NATSPublisher wraps a NATS connection for use with the bridge
func NATSPublisher(conn *nats.Conn) Publisher {
	return &natsPublisher{conn: conn}
}

func (p *natsPublisher) Publish(_ context.Context, subject string, data []byte) error {
	return p.conn.Publish(subject, data)
}
