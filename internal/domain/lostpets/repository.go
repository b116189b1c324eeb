package lostpets

import (
	"context"

	"pet-finder/internal/domain/reports"
)

type Repository interface {
	Create(ctx context.Context, p reports.LostPet) error
	GetByID(ctx context.Context, id string) (reports.LostPet, error)
	List(ctx context.Context) ([]reports.LostPet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]reports.LostPet, error)
	Delete(ctx context.Context, id string) error
}
