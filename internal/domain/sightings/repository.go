package sightings

import (
	"context"

	"pet-finder/internal/domain/reports"
)

// Repository: los avistamientos son inmutables y nunca se borran.
type Repository interface {
	Create(ctx context.Context, s reports.Sighting) error
	GetByID(ctx context.Context, id string) (reports.Sighting, error)
	List(ctx context.Context) ([]reports.Sighting, error)
}
