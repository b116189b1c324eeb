package risk

import (
	"time"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/platform/clock"
)

type Level string

const (
	LevelLow      Level = "low"
	LevelNormal   Level = "normal"
	LevelCritical Level = "critical"
)

const (
	// NearbyKm y RecentHours son inclusivos.
	NearbyKm    = 2.0
	RecentHours = 72.0

	// CriticalCount avistamientos cercanos y recientes => zona crítica.
	CriticalCount = 5
)

type Engine struct {
	now clock.Now
}

func NewEngine(now clock.Now) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Assess clasifica la zona alrededor de loc según la actividad reciente.
func (e *Engine) Assess(loc geo.Location, sightings []reports.Sighting) Level {
	return Classify(e.CountRecentNearby(loc, sightings))
}

// CountRecentNearby cuenta avistamientos a ≤2 km y de las últimas ≤72 h.
// Timestamps ilegibles cuentan como "ahora".
func (e *Engine) CountRecentNearby(loc geo.Location, sightings []reports.Sighting) int {
	now := e.now()
	n := 0
	for _, s := range sightings {
		if clock.HoursSince(s.Time, now) > RecentHours {
			continue
		}
		if !loc.Within(s.Location, NearbyKm) {
			continue
		}
		n++
	}
	return n
}

func Classify(count int) Level {
	switch {
	case count >= CriticalCount:
		return LevelCritical
	case count >= 1:
		return LevelNormal
	default:
		return LevelLow
	}
}
