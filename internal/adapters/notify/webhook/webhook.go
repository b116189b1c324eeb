// Package webhook entrega cada notificación emitida por POST JSON a una URL
// configurada (WEBHOOK_URL).
package webhook

import (
	"context"
	"fmt"
	"time"

	"pet-finder/internal/domain/notifications"
	"pet-finder/internal/platform/httpclient"
)

// Body es lo que recibe el endpoint.
type Body struct {
	Event        string                     `json:"event"`
	Notification notifications.Notification `json:"notification"`
}

type Sink struct {
	url    string
	secret string
	client *httpclient.Client
}

// New valida la URL. secret, si no está vacío, viaja en X-Webhook-Secret.
func New(url, secret string, timeout time.Duration) (*Sink, error) {
	if err := httpclient.ValidateURL(url); err != nil {
		return nil, fmt.Errorf("webhook: %w", err)
	}
	c := httpclient.New(timeout)
	c.Retries = 2
	return &Sink{url: url, secret: secret, client: c}, nil
}

func (s *Sink) Name() string { return "webhook" }

func (s *Sink) Deliver(ctx context.Context, n notifications.Notification) error {
	headers := map[string]string{"X-Event-Type": string(n.Type)}
	if s.secret != "" {
		headers["X-Webhook-Secret"] = s.secret
	}
	body := Body{Event: "notification." + string(n.Type), Notification: n}
	if err := s.client.PostJSON(ctx, s.url, headers, body); err != nil {
		return fmt.Errorf("webhook deliver %s: %w", n.ID, err)
	}
	return nil
}
