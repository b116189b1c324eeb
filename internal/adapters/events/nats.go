// Package events publica las notificaciones emitidas en NATS JetStream para
// consumidores externos (push, auditoría).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"pet-finder/internal/domain/notifications"
	"pet-finder/internal/platform/logger"
)

const (
	StreamName    = "PETFINDER_NOTIFICATIONS"
	SubjectPrefix = "petfinder.notifications."
	EnvelopeVer   = "1.0.0"
)

// Publisher es lo mínimo que el sink necesita de JetStream.
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
	Close() error
}

// Envelope envuelve cada evento publicado.
type Envelope struct {
	Type          string    `json:"type"`
	Version       string    `json:"version"`
	OccurredAt    time.Time `json:"occurredAt"`
	CorrelationID string    `json:"correlationId"`
	Payload       any       `json:"payload"`
}

// Sink implementa alerts.Sink sobre un Publisher.
type Sink struct {
	pub Publisher
	now func() time.Time
}

func NewSink(pub Publisher) *Sink {
	if pub == nil {
		pub = noop{}
	}
	return &Sink{pub: pub, now: time.Now}
}

func (s *Sink) Name() string { return "nats" }

func Subject(t notifications.Type) string {
	return SubjectPrefix + string(t)
}

func (s *Sink) Deliver(ctx context.Context, n notifications.Notification) error {
	env := Envelope{
		Type:          Subject(n.Type),
		Version:       EnvelopeVer,
		OccurredAt:    s.now().UTC(),
		CorrelationID: uuid.NewString(),
		Payload:       n,
	}
	b, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	return s.pub.Publish(ctx, Subject(n.Type), b)
}

func (s *Sink) Close() error { return s.pub.Close() }

type noop struct{}

func (noop) Publish(context.Context, string, []byte) error { return nil }
func (noop) Close() error                                  { return nil }

type jetStream struct {
	nc *nats.Conn
	js nats.JetStreamContext
}

func (j *jetStream) Publish(ctx context.Context, subject string, data []byte) error {
	if _, err := j.js.Publish(subject, data, nats.Context(ctx)); err != nil {
		return fmt.Errorf("nats publish %s: %w", subject, err)
	}
	return nil
}

func (j *jetStream) Close() error {
	j.nc.Close()
	return nil
}

// Connect arma un Publisher JetStream. Con url vacía o si el servidor no
// responde devuelve un publisher noop: la app sigue sin streaming.
func Connect(url string, log logger.Logger) Publisher {
	if log == nil {
		log = logger.Discard()
	}
	if url == "" {
		return noop{}
	}

	nc, err := nats.Connect(url, nats.Name("pet-finder"))
	if err != nil {
		log.Warn("nats connect failed, using noop publisher", map[string]any{"err": err})
		return noop{}
	}
	js, err := nc.JetStream()
	if err != nil {
		log.Warn("nats jetstream unavailable, using noop publisher", map[string]any{"err": err})
		nc.Close()
		return noop{}
	}
	if err := ensureStream(js); err != nil {
		log.Warn("nats stream init failed, using noop publisher", map[string]any{"err": err})
		nc.Close()
		return noop{}
	}
	return &jetStream{nc: nc, js: js}
}

func ensureStream(js nats.JetStreamContext) error {
	_, err := js.AddStream(&nats.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{SubjectPrefix + "*"},
		Retention: nats.LimitsPolicy,
		MaxAge:    7 * 24 * time.Hour,
		Discard:   nats.DiscardOld,
		Storage:   nats.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("add stream %s: %w", StreamName, err)
	}
	return nil
}
