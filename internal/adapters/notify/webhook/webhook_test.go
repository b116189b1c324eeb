package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-finder/internal/domain/alerts"
	"pet-finder/internal/domain/notifications"
	"pet-finder/internal/platform/httpclient"
)

var _ alerts.Sink = (*Sink)(nil)

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("ftp://example.com/hook", "", time.Second)
	assert.Error(t, err)

	_, err = New("not a url", "", time.Second)
	assert.Error(t, err)
}

func TestSink_Deliver(t *testing.T) {
	var got Body
	var secret, eventType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret = r.Header.Get("X-Webhook-Secret")
		eventType = r.Header.Get("X-Event-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sink, err := New(srv.URL, "s3cr3t", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "webhook", sink.Name())

	n := notifications.Notification{ID: "NT01", UserID: "u2", Type: notifications.TypeLostNearby, Urgency: notifications.UrgencyHigh}
	require.NoError(t, sink.Deliver(context.Background(), n))

	assert.Equal(t, "s3cr3t", secret)
	assert.Equal(t, "lost-nearby", eventType)
	assert.Equal(t, "notification.lost-nearby", got.Event)
	assert.Equal(t, "NT01", got.Notification.ID)
}

func TestSink_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink, err := New(srv.URL, "", time.Second)
	require.NoError(t, err)
	sink.client.Backoff = time.Millisecond

	require.NoError(t, sink.Deliver(context.Background(), notifications.Notification{ID: "NT02", Type: notifications.TypeSightingMatch}))
	assert.Equal(t, int32(3), calls.Load())
}

func TestSink_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	sink, err := New(srv.URL, "", time.Second)
	require.NoError(t, err)

	err = sink.Deliver(context.Background(), notifications.Notification{ID: "NT03", Type: notifications.TypeLostNearby})
	var he *httpclient.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}
