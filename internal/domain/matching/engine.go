package matching

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/scoring"
	"pet-finder/internal/platform/clock"
)

// ScoredMatch es derivado y efímero: se recalcula siempre, nunca se persiste.
type ScoredMatch struct {
	Sighting reports.Sighting `json:"sighting"`

	DistanceKm    float64 `json:"distance_km"`
	TimeDiffHours float64 `json:"time_diff_hours"`

	BreedScore int `json:"breed_score"`
	ColorScore int `json:"color_score"`
	SizeScore  int `json:"size_score"`
	AgeScore   int `json:"age_score"`

	DistanceScore int `json:"distance_score"`
	TimeScore     int `json:"time_score"`

	TotalConfidence int    `json:"total_confidence"`
	Explanation     string `json:"explanation"`
}

// Engine puntúa avistamientos contra una mascota perdida. Sin estado.
type Engine struct {
	cfg scoring.Config
	now clock.Now
}

func NewEngine(cfg scoring.Config, now clock.Now) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{cfg: cfg, now: now}
}

func (e *Engine) Config() scoring.Config { return e.cfg }

// Score compara un lost pet con un avistamiento (sin filtrar especie).
func (e *Engine) Score(lost reports.LostPet, s reports.Sighting) ScoredMatch {
	now := e.now()

	dKm := lost.Location.DistanceKm(s.Location)
	hDiff := clock.HoursBetween(lost.LastSeenAt, s.Time, now)

	breed := e.cfg.BreedScore(lost.Breed, s.Breed)
	color := scoring.ColorScore(lost.Color, s.Color)
	size := e.cfg.SizeScore(string(lost.Size), string(s.Size))
	age := scoring.AgeScore(string(lost.Age), string(s.Age))

	distS := scoring.DistanceScore(dKm)
	timeS := scoring.TimeScore(hDiff)

	return ScoredMatch{
		Sighting:      s,
		DistanceKm:    round(dKm, 2),
		TimeDiffHours: round(hDiff, 1),
		BreedScore:    breed,
		ColorScore:    color,
		SizeScore:     size,
		AgeScore:      age,
		DistanceScore: distS,
		TimeScore:     timeS,
		TotalConfidence: e.cfg.TotalConfidence(scoring.Inputs{
			DistanceKm: dKm,
			HoursDiff:  hDiff,
			Breed:      breed,
			Color:      color,
			Size:       size,
			Age:        age,
		}),
		Explanation: e.cfg.Formula(distS, timeS, breed, color, size, age),
	}
}

// RankMatches filtra por especie, puntúa y ordena desc por confianza.
// Empates: se respeta el orden de entrada (sort estable).
func (e *Engine) RankMatches(lost reports.LostPet, sightings []reports.Sighting) []ScoredMatch {
	out := make([]ScoredMatch, 0, len(sightings))
	for _, s := range sightings {
		if s.Species != lost.Species {
			continue
		}
		out = append(out, e.Score(lost, s))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalConfidence > out[j].TotalConfidence
	})
	return out
}

// BestLostFor busca, entre los lost pets de la misma especie, el que mejor
// matchea el avistamiento. ok=false si ninguno comparte especie.
func (e *Engine) BestLostFor(s reports.Sighting, lost []reports.LostPet) (reports.LostPet, ScoredMatch, bool) {
	var (
		bestPet   reports.LostPet
		bestMatch ScoredMatch
		found     bool
	)
	for _, p := range lost {
		if p.Species != s.Species {
			continue
		}
		m := e.Score(p, s)
		if !found || m.TotalConfidence > bestMatch.TotalConfidence {
			bestPet, bestMatch, found = p, m, true
		}
	}
	return bestPet, bestMatch, found
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
