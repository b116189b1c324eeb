package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-finder/internal/domain/alerts"
	"pet-finder/internal/domain/notifications"
)

var _ alerts.Sink = (*Sink)(nil)

type recordingPublisher struct {
	subjects []string
	bodies   [][]byte
	err      error
	closed   bool
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	p.bodies = append(p.bodies, data)
	return nil
}

func (p *recordingPublisher) Close() error {
	p.closed = true
	return nil
}

func TestSink_Deliver(t *testing.T) {
	pub := &recordingPublisher{}
	sink := NewSink(pub)
	fixed := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	sink.now = func() time.Time { return fixed }

	n := notifications.Notification{
		ID:      "NT01",
		UserID:  "u2",
		Type:    notifications.TypeSightingMatch,
		Urgency: notifications.UrgencyMedium,
		Message: "Possible match for your pet (score 88). Distance ~0.83 km.",
	}
	require.NoError(t, sink.Deliver(context.Background(), n))

	require.Equal(t, []string{"petfinder.notifications.sighting-match"}, pub.subjects)

	var got struct {
		Type          string                     `json:"type"`
		Version       string                     `json:"version"`
		OccurredAt    time.Time                  `json:"occurredAt"`
		CorrelationID string                     `json:"correlationId"`
		Payload       notifications.Notification `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(pub.bodies[0], &got))
	assert.Equal(t, "petfinder.notifications.sighting-match", got.Type)
	assert.Equal(t, EnvelopeVer, got.Version)
	assert.True(t, got.OccurredAt.Equal(fixed))
	assert.NotEmpty(t, got.CorrelationID)
	assert.Equal(t, "NT01", got.Payload.ID)
	assert.Equal(t, n.Message, got.Payload.Message)

	require.NoError(t, sink.Close())
	assert.True(t, pub.closed)
}

func TestSink_PublishError(t *testing.T) {
	boom := errors.New("no responders")
	sink := NewSink(&recordingPublisher{err: boom})

	err := sink.Deliver(context.Background(), notifications.Notification{Type: notifications.TypeLostNearby})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "nats", sink.Name())
}

func TestConnect_EmptyURLIsNoop(t *testing.T) {
	pub := Connect("", nil)
	assert.NoError(t, pub.Publish(context.Background(), "x", nil))
	assert.NoError(t, pub.Close())

	sink := NewSink(nil)
	assert.NoError(t, sink.Deliver(context.Background(), notifications.Notification{Type: notifications.TypeLostNearby}))
}
