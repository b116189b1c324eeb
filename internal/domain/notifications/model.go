package notifications

import (
	"time"

	"pet-finder/internal/domain/matching"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/risk"
)

// Type de notificación.
// @Enum lost-nearby, sighting-match
type Type string

const (
	TypeLostNearby    Type = "lost-nearby"
	TypeSightingMatch Type = "sighting-match"
)

// Urgency de notificación.
// @Enum high, medium, low
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Payload guarda copias de los registros que dispararon la alerta y las
// métricas calculadas en ese momento.
type Payload struct {
	LostPet      *reports.LostPet      `json:"lost_pet,omitempty"`
	Sighting     *reports.Sighting     `json:"sighting,omitempty"`
	DistanceKm   float64               `json:"distance_km"`
	ZoneRadiusKm float64               `json:"zone_radius_km,omitempty"`
	Risk         risk.Level            `json:"risk"`
	Match        *matching.ScoredMatch `json:"match,omitempty"`
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      Type      `json:"type"`
	Urgency   Urgency   `json:"urgency"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
	Payload   Payload   `json:"payload"`
	Read      bool      `json:"read"`
}
