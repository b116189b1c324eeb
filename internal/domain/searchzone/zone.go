package searchzone

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"pet-finder/internal/platform/clock"
)

const (
	// GPSMaxRadiusKm: con collar GPS el radio nunca supera 1 km.
	GPSMaxRadiusKm = 1.0
	// SpecialNeedsFactor: mascotas con necesidades especiales se alejan menos.
	SpecialNeedsFactor = 0.6
)

// Tier es un tramo de horas transcurridas con su radio base.
type Tier struct {
	UpToHours float64 // exclusivo; +Inf en el último
	RadiusKm  float64
	Label     string
}

// Tiers en orden creciente. El radio base nunca decrece con el tiempo.
var Tiers = []Tier{
	{UpToHours: 6, RadiusKm: 2, Label: "< 6h → 2 km"},
	{UpToHours: 24, RadiusKm: 5, Label: "< 24h → 5 km"},
	{UpToHours: 72, RadiusKm: 10, Label: "< 72h → 10 km"},
	{UpToHours: math.Inf(1), RadiusKm: 15, Label: "≥ 72h → 15 km"},
}

type Zone struct {
	RadiusKm     float64 `json:"radius_km"`
	ElapsedHours float64 `json:"elapsed_hours"`
	Tier         string  `json:"tier"`
}

type Engine struct {
	now clock.Now
}

func NewEngine(now clock.Now) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Compute calcula el radio de búsqueda recomendado.
// Orden de modificadores: primero el clamp GPS, después el factor 0.6.
func (e *Engine) Compute(lastSeenAt string, gpsEnabled, specialNeeds bool) Zone {
	elapsed := clock.HoursSince(lastSeenAt, e.now())
	tier := TierFor(elapsed)

	r := tier.RadiusKm
	if gpsEnabled {
		r = math.Min(r, GPSMaxRadiusKm)
	}
	if specialNeeds {
		r *= SpecialNeedsFactor
	}

	return Zone{
		RadiusKm:     decimal.NewFromFloat(r).Round(2).InexactFloat64(),
		ElapsedHours: elapsed,
		Tier:         tier.Label,
	}
}

// TierFor devuelve el tramo que aplica a elapsed (negativos cuentan como 0).
func TierFor(elapsed float64) Tier {
	if elapsed < 0 || math.IsNaN(elapsed) {
		elapsed = 0
	}
	for _, t := range Tiers {
		if elapsed < t.UpToHours {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}
