package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/scoring"
	"pet-finder/internal/platform/clock"
)

var now = time.Date(2025, 9, 2, 12, 0, 0, 0, time.UTC)

func newEngine() *Engine {
	return NewEngine(scoring.DefaultConfig(), clock.Fixed(now))
}

func luna() reports.LostPet {
	return reports.LostPet{
		ID:         "LP002",
		Name:       "Luna",
		Species:    reports.SpeciesDog,
		Breed:      "labrador_retriever",
		Color:      "black",
		Size:       reports.SizeLarge,
		Age:        reports.AgeAdult,
		LastSeenAt: "2025-09-01T20:30",
		Location:   geo.Location{Lat: 13.745, Lng: 100.534},
	}
}

func sighting(id string, sp reports.Species, breed, color string, loc geo.Location, at string) reports.Sighting {
	return reports.Sighting{ID: id, Species: sp, Breed: breed, Color: color, Location: loc, Time: at}
}

func TestScore_SeedPair(t *testing.T) {
	s := sighting("SG101", reports.SpeciesDog, "labrador_retriever", "black", geo.Location{Lat: 13.742, Lng: 100.541}, "2025-09-01T21:00")

	m := newEngine().Score(luna(), s)

	assert.Equal(t, "SG101", m.Sighting.ID)
	assert.InDelta(t, 0.83, m.DistanceKm, 0.02)
	assert.Equal(t, 0.5, m.TimeDiffHours)
	assert.Equal(t, 100, m.BreedScore)
	assert.Equal(t, 100, m.ColorScore)
	assert.Equal(t, 0, m.SizeScore, "el avistamiento no trae tamaño")
	assert.Equal(t, 0, m.AgeScore)
	assert.Equal(t, 94, m.DistanceScore)
	assert.Equal(t, 99, m.TimeScore)
	// 0.30*94 + 0.20*99 + 0.25*100 + 0.15*100 = 88
	assert.Equal(t, 88, m.TotalConfidence)
	assert.Equal(t, "0.30*94 + 0.20*99 + 0.25*100 + 0.15*100 + 0.05*0 + 0.05*0", m.Explanation)
}

func TestRankMatches_SortedAndSpeciesFiltered(t *testing.T) {
	lost := luna()
	sightings := []reports.Sighting{
		sighting("far", reports.SpeciesDog, "labrador_retriever", "black", geo.Location{Lat: 13.85, Lng: 100.60}, "2025-09-01T21:00"),
		sighting("cat", reports.SpeciesCat, "siamese", "black", lost.Location, "2025-09-01T21:00"),
		sighting("near", reports.SpeciesDog, "labrador_retriever", "black", lost.Location, "2025-09-01T21:00"),
		sighting("other-breed", reports.SpeciesDog, "pomeranian", "cream", lost.Location, "2025-09-01T21:00"),
	}

	got := newEngine().RankMatches(lost, sightings)
	require.Len(t, got, 3)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].TotalConfidence, got[i].TotalConfidence)
	}
	for _, m := range got {
		assert.NotEqual(t, "cat", m.Sighting.ID)
	}
	assert.Equal(t, "near", got[0].Sighting.ID)
}

func TestRankMatches_EmptyWhenNoSpeciesMatch(t *testing.T) {
	lost := luna()
	got := newEngine().RankMatches(lost, []reports.Sighting{
		sighting("c1", reports.SpeciesCat, "persian", "white", lost.Location, "2025-09-01T21:00"),
	})
	assert.Empty(t, got)
	assert.NotNil(t, got)

	assert.Empty(t, newEngine().RankMatches(lost, nil))
}

func TestRankMatches_NearerNeverScoresLower(t *testing.T) {
	lost := luna()
	base := lost.Location
	for _, offset := range []float64{0.001, 0.01, 0.03, 0.06, 0.1, 0.2} {
		near := sighting("near", reports.SpeciesDog, "labrador_retriever", "black", geo.Location{Lat: base.Lat + offset/2, Lng: base.Lng}, "2025-09-01T22:00")
		far := sighting("far", reports.SpeciesDog, "labrador_retriever", "black", geo.Location{Lat: base.Lat + offset, Lng: base.Lng}, "2025-09-01T22:00")

		e := newEngine()
		assert.GreaterOrEqual(t, e.Score(lost, near).TotalConfidence, e.Score(lost, far).TotalConfidence, "offset=%v", offset)
	}
}

func TestRankMatches_StableTies(t *testing.T) {
	lost := luna()
	same := func(id string) reports.Sighting {
		return sighting(id, reports.SpeciesDog, "labrador_retriever", "black", lost.Location, "2025-09-01T20:30")
	}

	got := newEngine().RankMatches(lost, []reports.Sighting{same("a"), same("b"), same("c")})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Sighting.ID, got[1].Sighting.ID, got[2].Sighting.ID})
}

func TestRankMatches_Idempotent(t *testing.T) {
	lost := luna()
	sightings := []reports.Sighting{
		sighting("x", reports.SpeciesDog, "golden_retriever", "gold", geo.Location{Lat: 13.75, Lng: 100.52}, "2025-09-01T10:00"),
		sighting("y", reports.SpeciesDog, "labrador_retriever", "black", geo.Location{Lat: 13.70, Lng: 100.50}, "2025-08-31T10:00"),
	}
	e := newEngine()
	assert.Equal(t, e.RankMatches(lost, sightings), e.RankMatches(lost, sightings))
}

func TestScore_UnparseableTimestampIsNow(t *testing.T) {
	lost := luna()
	lost.LastSeenAt = "garbage"
	s := sighting("s", reports.SpeciesDog, "labrador_retriever", "black", lost.Location, "2025-09-02T12:00")

	m := newEngine().Score(lost, s)
	assert.Equal(t, 0.0, m.TimeDiffHours)
	assert.Equal(t, 100, m.TimeScore)
}

func TestBestLostFor(t *testing.T) {
	lost := luna()
	other := lost
	other.ID = "LP999"
	other.Breed = "pomeranian"
	cat := lost
	cat.ID = "CAT"
	cat.Species = reports.SpeciesCat

	s := sighting("s", reports.SpeciesDog, "labrador_retriever", "black", lost.Location, "2025-09-01T21:00")

	best, m, ok := newEngine().BestLostFor(s, []reports.LostPet{other, cat, lost})
	require.True(t, ok)
	assert.Equal(t, "LP002", best.ID)
	assert.Equal(t, "s", m.Sighting.ID)

	_, _, ok = newEngine().BestLostFor(s, []reports.LostPet{cat})
	assert.False(t, ok)
}
