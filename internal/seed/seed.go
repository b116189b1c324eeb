// Package seed tiene el set de datos de demo (Bangkok) y lo carga en los repos.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/domain/lostpets"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/sightings"
)

const (
	// OwnerID es el dueño de las mascotas de demo: con X-User-ID: demo-user
	// se ven sus reportes y las alertas de match.
	OwnerID    = "demo-user"
	ReporterID = "seed"
)

// CreatedAt fijo para que los datos sean reproducibles.
var CreatedAt = time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)

func LostPets() []reports.LostPet {
	return []reports.LostPet{
		lost("LP001", "Milo", reports.SpeciesDog, "golden_retriever", "gold", reports.SizeLarge, reports.AgeAdult, "2025-09-01T10:00", 13.7563, 100.5018),
		lost("LP002", "Luna", reports.SpeciesDog, "labrador_retriever", "black", reports.SizeLarge, reports.AgeAdult, "2025-09-01T20:30", 13.745, 100.534),
		lost("LP003", "Kuma", reports.SpeciesDog, "siberian_husky", "gray white", reports.SizeLarge, reports.AgeAdult, "2025-08-31T22:15", 13.72, 100.515),
		lost("LP004", "Pom", reports.SpeciesDog, "pomeranian", "cream", reports.SizeSmall, reports.AgeAdult, "2025-08-30T18:00", 13.818, 100.56),
		lost("LP005", "Dang", reports.SpeciesDog, "thai_ridgeback", "red brown", reports.SizeMedium, reports.AgeAdult, "2025-09-01T06:45", 13.67, 100.606),
		lost("LP006", "Mali", reports.SpeciesCat, "siamese", "cream brown", reports.SizeMedium, reports.AgeAdult, "2025-09-01T12:10", 13.735, 100.523),
		lost("LP007", "Nin", reports.SpeciesCat, "persian", "white", reports.SizeMedium, reports.AgeKitten, "2025-09-01T08:20", 13.71, 100.485),
		lost("LP008", "Bao", reports.SpeciesCat, "thai_domestic", "tabby brown", reports.SizeSmall, reports.AgeAdult, "2025-08-31T19:30", 13.79, 100.58),
	}
}

func Sightings() []reports.Sighting {
	return []reports.Sighting{
		sighting("SG101", reports.SpeciesDog, "labrador_retriever", "black", "เห็นวิ่งข้างสวนลุม", "2025-09-01T21:00", 13.742, 100.541),
		sighting("SG102", reports.SpeciesDog, "pomeranian", "cream", "มีปลอกคอสีฟ้า", "2025-08-30T18:20", 13.82, 100.565),
		sighting("SG103", reports.SpeciesCat, "siamese", "cream brown", "ร้องอยู่ใต้สะพาน", "2025-09-01T12:40", 13.733, 100.525),
	}
}

func lost(id, name string, sp reports.Species, breed, color string, size reports.Size, age reports.LifeStage, at string, lat, lng float64) reports.LostPet {
	return reports.LostPet{
		ID:          id,
		OwnerUserID: OwnerID,
		Name:        name,
		Species:     sp,
		Breed:       breed,
		Color:       color,
		Size:        size,
		Age:         age,
		LastSeenAt:  at,
		Location:    geo.Location{Lat: lat, Lng: lng},
		CreatedAt:   CreatedAt,
	}
}

func sighting(id string, sp reports.Species, breed, color, notes, at string, lat, lng float64) reports.Sighting {
	return reports.Sighting{
		ID:             id,
		ReporterUserID: ReporterID,
		Species:        sp,
		Breed:          breed,
		Color:          color,
		Notes:          notes,
		Time:           at,
		Location:       geo.Location{Lat: lat, Lng: lng},
		CreatedAt:      CreatedAt,
	}
}

type LostPetStore interface {
	Create(ctx context.Context, p reports.LostPet) error
	GetByID(ctx context.Context, id string) (reports.LostPet, error)
}

type SightingStore interface {
	Create(ctx context.Context, s reports.Sighting) error
	GetByID(ctx context.Context, id string) (reports.Sighting, error)
}

// Result cuenta lo insertado; lo que ya existía se saltea.
type Result struct {
	LostPets  int `json:"lost_pets"`
	Sightings int `json:"sightings"`
}

// Load inserta el set de demo. Es idempotente: si un id ya existe no se toca.
// Se inserta en orden inverso porque los repos listan el más nuevo primero.
func Load(ctx context.Context, lost LostPetStore, sights SightingStore) (Result, error) {
	var res Result

	pets := LostPets()
	for i := len(pets) - 1; i >= 0; i-- {
		p := pets[i]
		_, err := lost.GetByID(ctx, p.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, lostpets.ErrNotFound) {
			return res, fmt.Errorf("seed lost pet %s: %w", p.ID, err)
		}
		if err := lost.Create(ctx, p); err != nil {
			return res, fmt.Errorf("seed lost pet %s: %w", p.ID, err)
		}
		res.LostPets++
	}

	sg := Sightings()
	for i := len(sg) - 1; i >= 0; i-- {
		s := sg[i]
		_, err := sights.GetByID(ctx, s.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, sightings.ErrNotFound) {
			return res, fmt.Errorf("seed sighting %s: %w", s.ID, err)
		}
		if err := sights.Create(ctx, s); err != nil {
			return res, fmt.Errorf("seed sighting %s: %w", s.ID, err)
		}
		res.Sightings++
	}
	return res, nil
}
