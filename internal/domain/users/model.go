package users

import (
	"time"

	"pet-finder/internal/domain/geo"
)

// Frequency de alertas.
// @Enum immediate, mute
type Frequency string

const (
	FrequencyImmediate Frequency = "immediate"
	FrequencyMute      Frequency = "mute"
)

const DefaultAlertRadiusKm = 5.0

// DefaultLocation: centro de Bangkok, donde arranca cualquier usuario nuevo.
var DefaultLocation = geo.Location{Lat: 13.7563, Lng: 100.5018}

// Preferences de alertas. AlertRadiusKm nil o 0 = sin límite.
type Preferences struct {
	AlertRadiusKm *float64  `json:"alert_radius_km,omitempty"`
	Frequency     Frequency `json:"frequency"`
}

func (p Preferences) Muted() bool {
	return p.Frequency == FrequencyMute
}

// WithinAlertRadius reporta si una distancia cae dentro del radio elegido.
func (p Preferences) WithinAlertRadius(km float64) bool {
	if p.AlertRadiusKm == nil || *p.AlertRadiusKm <= 0 {
		return true
	}
	return km <= *p.AlertRadiusKm
}

// User simulado: no hay autenticación, el id viene del header X-User-ID.
type User struct {
	ID          string       `json:"id"`
	Location    geo.Location `json:"location"`
	Preferences Preferences  `json:"preferences"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func Radius(km float64) *float64 {
	return &km
}
