package alerts

import (
	"fmt"
	"strconv"
	"time"

	"pet-finder/internal/domain/matching"
	"pet-finder/internal/domain/notifications"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/risk"
	"pet-finder/internal/domain/scoring"
	"pet-finder/internal/domain/searchzone"
	"pet-finder/internal/domain/users"
	"pet-finder/internal/platform/clock"
)

// MatchThreshold: confianza mínima (inclusiva) para avisar un posible match.
const MatchThreshold = 70

// HighUrgencyHours: menos de esto desde la pérdida => urgencia alta.
const HighUrgencyHours = 6.0

// Motivos por los que una evaluación no produce notificación.
const (
	ReasonMuted          = "muted"
	ReasonOutsideZone    = "outside-zone"
	ReasonOutsideRadius  = "outside-alert-radius"
	ReasonNoCandidates   = "no-candidates"
	ReasonBelowThreshold = "below-threshold"
)

// Result de evaluar un evento para un observador. Si Emit es false, Reason
// dice por qué. La notificación sale sin id: la asigna el inbox.
type Result struct {
	Emit         bool
	Reason       string
	Notification notifications.Notification
}

// Engine decide qué notificaciones genera cada evento. No guarda estado:
// recibe el observador y las colecciones actuales y devuelve un Result.
type Engine struct {
	matcher *matching.Engine
	zones   *searchzone.Engine
	risk    *risk.Engine
	now     clock.Now
}

func NewEngine(cfg scoring.Config, now clock.Now) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		matcher: matching.NewEngine(cfg, now),
		zones:   searchzone.NewEngine(now),
		risk:    risk.NewEngine(now),
		now:     now,
	}
}

// UrgencyFor: riesgo crítico o pérdida reciente => high; riesgo normal =>
// medium; si no, low.
func UrgencyFor(level risk.Level, elapsedHours float64) notifications.Urgency {
	switch {
	case level == risk.LevelCritical:
		return notifications.UrgencyHigh
	case elapsedHours < HighUrgencyHours:
		return notifications.UrgencyHigh
	case level == risk.LevelNormal:
		return notifications.UrgencyMedium
	default:
		return notifications.UrgencyLow
	}
}

// LostAdded evalúa un lost pet recién reportado para un observador.
// sightings son todos los avistamientos conocidos (para el riesgo de zona).
func (e *Engine) LostAdded(lost reports.LostPet, observer users.User, sightings []reports.Sighting) Result {
	if observer.Preferences.Muted() {
		return Result{Reason: ReasonMuted}
	}

	zone := e.zones.Compute(lost.LastSeenAt, lost.GPSEnabled, lost.SpecialNeeds)
	d := lost.Location.DistanceKm(observer.Location)
	if d > zone.RadiusKm {
		return Result{Reason: ReasonOutsideZone}
	}
	if !observer.Preferences.WithinAlertRadius(d) {
		return Result{Reason: ReasonOutsideRadius}
	}

	level := e.risk.Assess(lost.Location, sightings)
	p := lost
	return Result{
		Emit: true,
		Notification: notifications.Notification{
			UserID:    observer.ID,
			Type:      notifications.TypeLostNearby,
			Urgency:   UrgencyFor(level, zone.ElapsedHours),
			CreatedAt: e.now(),
			Message: fmt.Sprintf("Lost pet reported near you (~%.1f km). Suggested search radius %s km (%s).",
				d, formatKm(zone.RadiusKm), level),
			Payload: notifications.Payload{
				LostPet:      &p,
				DistanceKm:   d,
				ZoneRadiusKm: zone.RadiusKm,
				Risk:         level,
			},
		},
	}
}

// SightingAdded evalúa un avistamiento nuevo contra los lost pets propios
// del observador. Solo avisa el mejor match y si llega a MatchThreshold.
func (e *Engine) SightingAdded(s reports.Sighting, observer users.User, observerLost []reports.LostPet, sightings []reports.Sighting) Result {
	if observer.Preferences.Muted() {
		return Result{Reason: ReasonMuted}
	}

	mine := make([]reports.LostPet, 0, len(observerLost))
	for _, p := range observerLost {
		if p.OwnerUserID == observer.ID {
			mine = append(mine, p)
		}
	}

	best, m, ok := e.matcher.BestLostFor(s, mine)
	if !ok {
		return Result{Reason: ReasonNoCandidates}
	}
	if m.TotalConfidence < MatchThreshold {
		return Result{Reason: ReasonBelowThreshold}
	}

	level := e.risk.Assess(s.Location, sightings)
	hoursDiff := clock.HoursBetween(best.LastSeenAt, s.Time, e.now())
	sc := s
	match := m

	return Result{
		Emit: true,
		Notification: notifications.Notification{
			UserID:    observer.ID,
			Type:      notifications.TypeSightingMatch,
			Urgency:   UrgencyFor(level, hoursDiff),
			CreatedAt: e.now(),
			Message: fmt.Sprintf("Possible match for your pet (score %d). Distance ~%s km.",
				m.TotalConfidence, formatKm(m.DistanceKm)),
			Payload: notifications.Payload{
				LostPet:    &best,
				Sighting:   &sc,
				DistanceKm: m.DistanceKm,
				Risk:       level,
				Match:      &match,
			},
		},
	}
}

func formatKm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
