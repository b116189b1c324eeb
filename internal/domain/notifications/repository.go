package notifications

import "context"

// Repository guarda el inbox de cada usuario, más nuevo primero.
type Repository interface {
	Prepend(ctx context.Context, n Notification) error
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	Clear(ctx context.Context, userID string) (int, error)
}
