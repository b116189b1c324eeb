package scoring

import (
	"math"
	"strings"
	"unicode"
)

const (
	MinScore = 0
	MaxScore = 100

	// DefaultBreedFallback: misma especie, raza distinta sin relación conocida.
	// No es 0 para no sobre-penalizar (la gente confunde razas).
	DefaultBreedFallback = 25

	// ColorPartialScore cuando comparten al menos un token de color.
	ColorPartialScore = 50
	// SizeAdjacentScore para SizeRuleTiered.
	SizeAdjacentScore = 50
)

// BreedTable guarda similitudes (0..1) entre pares no ordenados de razas.
type BreedTable map[BreedPair]float64

type BreedPair [2]string

// Pair normaliza el par para que (a,b) y (b,a) sean la misma clave.
func Pair(a, b string) BreedPair {
	a, b = normalize(a), normalize(b)
	if b < a {
		a, b = b, a
	}
	return BreedPair{a, b}
}

var DefaultBreedSimilarity = BreedTable{
	Pair("golden_retriever", "labrador_retriever"): 0.8,
}

// Lookup devuelve la similitud del par, si existe.
func (t BreedTable) Lookup(a, b string) (float64, bool) {
	v, ok := t[Pair(a, b)]
	return v, ok
}

// BreedScore con la tabla y fallback por defecto.
func BreedScore(a, b string) int {
	return DefaultConfig().BreedScore(a, b)
}

func (c Config) BreedScore(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return MinScore
	}
	if a == b {
		return MaxScore
	}
	if sim, ok := c.BreedSimilarity.Lookup(a, b); ok {
		return clampScore(int(math.Round(sim * 100)))
	}
	return clampScore(c.BreedFallback)
}

// ColorScore compara colores en texto libre ("gray white", "black/tan").
func ColorScore(a, b string) int {
	if a == "" || b == "" {
		return MinScore
	}
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return MaxScore
	}

	tokens := make(map[string]struct{})
	for _, t := range colorTokens(a) {
		tokens[t] = struct{}{}
	}
	for _, t := range colorTokens(b) {
		if _, ok := tokens[t]; ok {
			return ColorPartialScore
		}
	}
	return MinScore
}

func colorTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '/'
	})
}

var sizeRank = map[string]int{
	"small":  0,
	"medium": 1,
	"large":  2,
}

// SizeScore usa la regla estricta.
func SizeScore(a, b string) int {
	return DefaultConfig().SizeScore(a, b)
}

func (c Config) SizeScore(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return MinScore
	}
	if c.SizeRule != SizeRuleTiered {
		if a == b {
			return MaxScore
		}
		return MinScore
	}

	i, okA := sizeRank[a]
	j, okB := sizeRank[b]
	if !okA || !okB {
		return MinScore
	}
	switch d := i - j; {
	case d == 0:
		return MaxScore
	case d == 1 || d == -1:
		return SizeAdjacentScore
	default:
		return MinScore
	}
}

// AgeScore compara etapas de vida (puppy, kitten, adult).
func AgeScore(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return MinScore
	}
	if a == b {
		return MaxScore
	}
	return MinScore
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clampScore(v int) int {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
