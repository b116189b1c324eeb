package notifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-finder/internal/platform/ids"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("notification not found")
)

// IDPrefix de las notificaciones: "NT" + ULID (ordenable por tiempo).
const IDPrefix = "NT"

type Service struct {
	repo Repository
	ids  *ids.Generator
	now  func() time.Time
}

func NewService(repo Repository, gen *ids.Generator) *Service {
	if gen == nil {
		gen = ids.NewGenerator(time.Now)
	}
	return &Service{
		repo: repo,
		ids:  gen,
		now:  time.Now,
	}
}

// Push asigna id y timestamp y la deja primera en el inbox del usuario.
func (s *Service) Push(ctx context.Context, n Notification) (Notification, error) {
	if strings.TrimSpace(n.UserID) == "" || n.Type == "" {
		return Notification{}, ErrInvalidInput
	}

	n.ID = s.ids.New(IDPrefix)
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}
	n.Read = false

	if err := s.repo.Prepend(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.MarkRead(ctx, userID, id)
}

// Clear vacía el inbox y devuelve cuántas se borraron.
func (s *Service) Clear(ctx context.Context, userID string) (int, error) {
	return s.repo.Clear(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, it := range items {
		if !it.Read {
			n++
		}
	}
	return n, nil
}

// WithClock reemplaza el reloj (tests, CLI, reloj fijo del router).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}
