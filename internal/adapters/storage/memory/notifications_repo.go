package memory

import (
	"context"
	"errors"
	"sync"

	"pet-finder/internal/domain/notifications"
)

// notificationRepo: un inbox por usuario, más nuevo primero.
type notificationRepo struct {
	mu      sync.RWMutex
	byUser  map[string][]notifications.Notification
	persist *Persister
}

func NewNotificationRepo(p *Persister) notifications.Repository {
	r := &notificationRepo{byUser: make(map[string][]notifications.Notification), persist: p}
	var saved map[string][]notifications.Notification
	if p.load(KeyNotifications, &saved) && saved != nil {
		r.byUser = saved
	}
	return r
}

func (r *notificationRepo) Prepend(ctx context.Context, n notifications.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" || n.UserID == "" {
		return errors.New("notification id and user id required")
	}
	r.byUser[n.UserID] = append([]notifications.Notification{n}, r.byUser[n.UserID]...)
	r.persist.save(KeyNotifications, r.byUser)
	return nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID string) ([]notifications.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byUser[userID]
	out := make([]notifications.Notification, len(items))
	copy(out, items)
	return out, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byUser[userID]
	for i := range items {
		if items[i].ID == id {
			items[i].Read = true
			r.persist.save(KeyNotifications, r.byUser)
			return nil
		}
	}
	return notifications.ErrNotFound
}

func (r *notificationRepo) Clear(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.byUser[userID])
	delete(r.byUser, userID)
	r.persist.save(KeyNotifications, r.byUser)
	return n, nil
}
