package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/domain/notifications"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/risk"
	"pet-finder/internal/domain/scoring"
	"pet-finder/internal/domain/users"
	"pet-finder/internal/platform/clock"
)

var (
	now  = time.Date(2025, 9, 2, 12, 0, 0, 0, time.UTC)
	home = geo.Location{Lat: 13.7563, Lng: 100.5018}
)

func hoursAgo(h float64) string {
	return clock.Format(now.Add(-time.Duration(h * float64(time.Hour))))
}

func newEngine() *Engine {
	return NewEngine(scoring.DefaultConfig(), clock.Fixed(now))
}

func observer(loc geo.Location, radius *float64, freq users.Frequency) users.User {
	return users.User{
		ID:          "u2",
		Location:    loc,
		Preferences: users.Preferences{AlertRadiusKm: radius, Frequency: freq},
	}
}

func lostDog(lastSeen string) reports.LostPet {
	return reports.LostPet{
		ID:          "LP1",
		OwnerUserID: "u1",
		Species:     reports.SpeciesDog,
		Breed:       "golden_retriever",
		Color:       "gold",
		LastSeenAt:  lastSeen,
		Location:    home,
	}
}

// ~1 km al norte de home.
var oneKmNorth = geo.Location{Lat: home.Lat + 0.009, Lng: home.Lng}

// ~3 km al norte de home.
var threeKmNorth = geo.Location{Lat: home.Lat + 0.027, Lng: home.Lng}

func TestLostAdded_MuteSuppressesEverything(t *testing.T) {
	res := newEngine().LostAdded(lostDog(hoursAgo(1)), observer(home, nil, users.FrequencyMute), nil)
	assert.False(t, res.Emit)
	assert.Equal(t, ReasonMuted, res.Reason)
}

func TestLostAdded_NearbyRecent(t *testing.T) {
	res := newEngine().LostAdded(lostDog(hoursAgo(3)), observer(oneKmNorth, users.Radius(5), users.FrequencyImmediate), nil)
	require.True(t, res.Emit, res.Reason)

	n := res.Notification
	assert.Equal(t, "u2", n.UserID)
	assert.Equal(t, notifications.TypeLostNearby, n.Type)
	assert.Equal(t, notifications.UrgencyHigh, n.Urgency, "menos de 6 h")
	assert.Equal(t, "Lost pet reported near you (~1.0 km). Suggested search radius 2 km (low).", n.Message)
	assert.Equal(t, now, n.CreatedAt)
	assert.Empty(t, n.ID)

	require.NotNil(t, n.Payload.LostPet)
	assert.Equal(t, "LP1", n.Payload.LostPet.ID)
	assert.Equal(t, 2.0, n.Payload.ZoneRadiusKm)
	assert.InDelta(t, 1.0, n.Payload.DistanceKm, 0.01)
	assert.Equal(t, risk.LevelLow, n.Payload.Risk)
}

func TestLostAdded_OutsideZone(t *testing.T) {
	res := newEngine().LostAdded(lostDog(hoursAgo(3)), observer(threeKmNorth, nil, users.FrequencyImmediate), nil)
	assert.False(t, res.Emit)
	assert.Equal(t, ReasonOutsideZone, res.Reason)
}

func TestLostAdded_UsesRecordModifiers(t *testing.T) {
	lost := lostDog(hoursAgo(30))
	lost.GPSEnabled = true

	res := newEngine().LostAdded(lost, observer(oneKmNorth, nil, users.FrequencyImmediate), nil)
	assert.False(t, res.Emit, "con GPS la zona es <= 1 km")
	assert.Equal(t, ReasonOutsideZone, res.Reason)
}

func TestLostAdded_AlertRadius(t *testing.T) {
	lost := lostDog(hoursAgo(30)) // zona 10 km

	res := newEngine().LostAdded(lost, observer(threeKmNorth, users.Radius(2), users.FrequencyImmediate), nil)
	assert.False(t, res.Emit)
	assert.Equal(t, ReasonOutsideRadius, res.Reason)

	res = newEngine().LostAdded(lost, observer(threeKmNorth, nil, users.FrequencyImmediate), nil)
	assert.True(t, res.Emit, "sin radio = sin límite")

	res = newEngine().LostAdded(lost, observer(threeKmNorth, users.Radius(0), users.FrequencyImmediate), nil)
	assert.True(t, res.Emit)
}

func TestLostAdded_UrgencyFromRisk(t *testing.T) {
	lost := lostDog(hoursAgo(30))
	o := observer(oneKmNorth, nil, users.FrequencyImmediate)
	nearby := reports.Sighting{Species: reports.SpeciesCat, Location: home, Time: hoursAgo(2)}

	res := newEngine().LostAdded(lost, o, nil)
	require.True(t, res.Emit)
	assert.Equal(t, notifications.UrgencyLow, res.Notification.Urgency)

	res = newEngine().LostAdded(lost, o, []reports.Sighting{nearby})
	assert.Equal(t, notifications.UrgencyMedium, res.Notification.Urgency)
	assert.Equal(t, risk.LevelNormal, res.Notification.Payload.Risk)

	five := []reports.Sighting{nearby, nearby, nearby, nearby, nearby}
	res = newEngine().LostAdded(lost, o, five)
	assert.Equal(t, notifications.UrgencyHigh, res.Notification.Urgency)
}

func TestSightingAdded_Threshold(t *testing.T) {
	lost := lostDog(hoursAgo(10))
	o := observer(home, nil, users.FrequencyImmediate)
	o.ID = "u1"

	// misma ubicación y hora, golden vs labrador, colores distintos: 30+20+20 = 70
	exact := reports.Sighting{
		ID:       "S70",
		Species:  reports.SpeciesDog,
		Breed:    "labrador_retriever",
		Color:    "black",
		Time:     lost.LastSeenAt,
		Location: home,
	}
	res := newEngine().SightingAdded(exact, o, []reports.LostPet{lost}, nil)
	require.True(t, res.Emit, res.Reason)
	assert.Equal(t, 70, res.Notification.Payload.Match.TotalConfidence)
	assert.Equal(t, notifications.TypeSightingMatch, res.Notification.Type)
	assert.Equal(t, "Possible match for your pet (score 70). Distance ~0 km.", res.Notification.Message)
	assert.Equal(t, notifications.UrgencyHigh, res.Notification.Urgency, "hoursDiff 0")

	// 3.5 h de diferencia: tiempo 95 => 30+19+20 = 69
	below := exact
	below.ID = "S69"
	below.Time = hoursAgo(6.5)
	res = newEngine().SightingAdded(below, o, []reports.LostPet{lost}, nil)
	assert.False(t, res.Emit)
	assert.Equal(t, ReasonBelowThreshold, res.Reason)
}

func TestSightingAdded_BestOfSameSpecies(t *testing.T) {
	o := observer(home, nil, users.FrequencyImmediate)
	o.ID = "u1"

	golden := lostDog(hoursAgo(10))
	pom := golden
	pom.ID = "LP2"
	pom.Breed = "pomeranian"
	pom.Color = "cream"
	cat := golden
	cat.ID = "LP3"
	cat.Species = reports.SpeciesCat

	s := reports.Sighting{
		ID:       "S1",
		Species:  reports.SpeciesDog,
		Breed:    "golden_retriever",
		Color:    "gold",
		Time:     hoursAgo(9),
		Location: oneKmNorth,
	}
	res := newEngine().SightingAdded(s, o, []reports.LostPet{pom, cat, golden}, nil)
	require.True(t, res.Emit)
	assert.Equal(t, "LP1", res.Notification.Payload.LostPet.ID)
	assert.Equal(t, "S1", res.Notification.Payload.Sighting.ID)
	assert.Equal(t, res.Notification.Payload.Match.DistanceKm, res.Notification.Payload.DistanceKm)

	res = newEngine().SightingAdded(s, o, []reports.LostPet{cat}, nil)
	assert.False(t, res.Emit)
	assert.Equal(t, ReasonNoCandidates, res.Reason)
}

func TestSightingAdded_IgnoresOthersPets(t *testing.T) {
	o := observer(home, nil, users.FrequencyImmediate)
	o.ID = "u3"

	lost := lostDog(hoursAgo(1))
	s := reports.Sighting{Species: reports.SpeciesDog, Breed: lost.Breed, Color: lost.Color, Time: lost.LastSeenAt, Location: home}

	res := newEngine().SightingAdded(s, o, []reports.LostPet{lost}, nil)
	assert.False(t, res.Emit)
	assert.Equal(t, ReasonNoCandidates, res.Reason)
}

func TestSightingAdded_IgnoresOwnerlessPets(t *testing.T) {
	o := observer(home, nil, users.FrequencyImmediate)
	o.ID = "u1"

	lost := lostDog(hoursAgo(1))
	lost.OwnerUserID = ""
	s := reports.Sighting{Species: reports.SpeciesDog, Breed: lost.Breed, Color: lost.Color, Time: lost.LastSeenAt, Location: home}

	res := newEngine().SightingAdded(s, o, []reports.LostPet{lost}, nil)
	assert.False(t, res.Emit)
	assert.Equal(t, ReasonNoCandidates, res.Reason)
}

func TestSightingAdded_Mute(t *testing.T) {
	o := observer(home, nil, users.FrequencyMute)
	o.ID = "u1"
	lost := lostDog(hoursAgo(1))
	s := reports.Sighting{Species: reports.SpeciesDog, Breed: lost.Breed, Color: lost.Color, Time: lost.LastSeenAt, Location: home}

	res := newEngine().SightingAdded(s, o, []reports.LostPet{lost}, nil)
	assert.False(t, res.Emit)
	assert.Equal(t, ReasonMuted, res.Reason)
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, notifications.UrgencyHigh, UrgencyFor(risk.LevelCritical, 100))
	assert.Equal(t, notifications.UrgencyHigh, UrgencyFor(risk.LevelLow, 5.9))
	assert.Equal(t, notifications.UrgencyMedium, UrgencyFor(risk.LevelNormal, 6))
	assert.Equal(t, notifications.UrgencyLow, UrgencyFor(risk.LevelLow, 6))
}
