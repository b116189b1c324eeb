package reports

import (
	"context"
	"time"

	"pet-finder/internal/domain/geo"
)

// Species soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Size es opcional en ambos reportes.
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// LifeStage depende de la especie (puppy solo perro, kitten solo gato).
type LifeStage string

const (
	AgePuppy  LifeStage = "puppy"
	AgeKitten LifeStage = "kitten"
	AgeAdult  LifeStage = "adult"
)

// Razas por especie (mismo catálogo que los formularios).
var (
	DogBreeds = []string{
		"golden_retriever",
		"labrador_retriever",
		"siberian_husky",
		"pomeranian",
		"thai_ridgeback",
	}
	CatBreeds = []string{
		"siamese",
		"persian",
		"british_shorthair",
		"scottish_fold",
		"thai_domestic",
	}
)

// LostPet es el reporte de una mascota perdida. Inmutable salvo borrado ("found") por su dueño.
type LostPet struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"owner_user_id"`

	Name    string    `json:"name,omitempty"`
	Species Species   `json:"species"`
	Breed   string    `json:"breed"`
	Color   string    `json:"color"`
	Size    Size      `json:"size,omitempty"`
	Age     LifeStage `json:"age,omitempty"`

	// LastSeenAt es fecha-hora local sin zona ("2025-09-01T10:00").
	LastSeenAt string       `json:"last_seen_at"`
	Location   geo.Location `json:"geo"`

	GPSEnabled   bool `json:"gps_enabled"`
	SpecialNeeds bool `json:"special_needs"`

	// PhotoRef es opaco: data URL o referencia de blob store.
	PhotoRef string `json:"photo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Sighting es un avistamiento. Nunca se borra en el flujo normal.
type Sighting struct {
	ID             string `json:"id"`
	ReporterUserID string `json:"reporter_user_id"`

	Species Species   `json:"species"`
	Breed   string    `json:"breed"`
	Color   string    `json:"color"`
	Size    Size      `json:"size,omitempty"`
	Age     LifeStage `json:"age,omitempty"`
	Notes   string    `json:"notes,omitempty"`

	Time     string       `json:"time"`
	Location geo.Location `json:"geo"`

	PhotoRef string `json:"photo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// BreedsFor devuelve el catálogo de razas de la especie.
func BreedsFor(sp Species) []string {
	switch sp {
	case SpeciesDog:
		return DogBreeds
	case SpeciesCat:
		return CatBreeds
	default:
		return nil
	}
}

// LifeStagesFor devuelve las etapas de vida válidas de la especie.
func LifeStagesFor(sp Species) []LifeStage {
	switch sp {
	case SpeciesDog:
		return []LifeStage{AgePuppy, AgeAdult}
	case SpeciesCat:
		return []LifeStage{AgeKitten, AgeAdult}
	default:
		return nil
	}
}

// Listener recibe los reportes nuevos (lo usa el dispatcher de alertas).
// Vive acá para evitar ciclos de imports entre lostpets/sightings y alerts.
type Listener interface {
	LostPetReported(ctx context.Context, p LostPet)
	SightingReported(ctx context.Context, s Sighting)
}
