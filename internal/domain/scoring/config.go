package scoring

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Weights de la suma ponderada. Deben sumar 1.0.
type Weights struct {
	Distance float64 `json:"distance"`
	Time     float64 `json:"time"`
	Breed    float64 `json:"breed"`
	Color    float64 `json:"color"`
	Size     float64 `json:"size"`
	Age      float64 `json:"age"`
}

var (
	// DefaultWeights es el set canónico: Distance 30%, Time 20%, Breed 25%, Color 15%, Size 5%, Age 5%.
	DefaultWeights = Weights{Distance: 0.30, Time: 0.20, Breed: 0.25, Color: 0.15, Size: 0.05, Age: 0.05}

	// AttributeHeavyWeights le da más peso a size/age. No es el default.
	AttributeHeavyWeights = Weights{Distance: 0.25, Time: 0.20, Breed: 0.25, Color: 0.10, Size: 0.10, Age: 0.10}
)

var ErrInvalidWeights = errors.New("scoring: weights must be >= 0 and sum to 1.0")

// Nombres de los sets de pesos seleccionables por config o flag.
const (
	WeightSetDefault        = "default"
	WeightSetAttributeHeavy = "attribute-heavy"
)

// ParseWeights resuelve un set de pesos por nombre. Vacío es el default.
func ParseWeights(name string) (Weights, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", WeightSetDefault:
		return DefaultWeights, nil
	case WeightSetAttributeHeavy:
		return AttributeHeavyWeights, nil
	default:
		return Weights{}, fmt.Errorf("scoring: unknown weight set %q", name)
	}
}

func (w Weights) Sum() float64 {
	return w.Distance + w.Time + w.Breed + w.Color + w.Size + w.Age
}

func (w Weights) Validate() error {
	for _, v := range []float64{w.Distance, w.Time, w.Breed, w.Color, w.Size, w.Age} {
		if v < 0 || math.IsNaN(v) {
			return ErrInvalidWeights
		}
	}
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		return ErrInvalidWeights
	}
	return nil
}

// SizeRule decide cómo se comparan los tamaños.
type SizeRule string

const (
	// SizeRuleStrict: 100 si son iguales, 0 si no.
	SizeRuleStrict SizeRule = "strict"
	// SizeRuleTiered: adyacentes (small-medium, medium-large) valen 50.
	SizeRuleTiered SizeRule = "tiered"
)

func ParseSizeRule(s string) (SizeRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SizeRuleStrict):
		return SizeRuleStrict, nil
	case string(SizeRuleTiered):
		return SizeRuleTiered, nil
	default:
		return "", fmt.Errorf("scoring: unknown size rule %q", s)
	}
}

// Config agrupa las tablas y pesos del score. El zero value no sirve: usar DefaultConfig.
type Config struct {
	Weights         Weights
	SizeRule        SizeRule
	BreedSimilarity BreedTable
	// BreedFallback se usa para razas distintas sin relación conocida (misma especie).
	BreedFallback int
}

func DefaultConfig() Config {
	return Config{
		Weights:         DefaultWeights,
		SizeRule:        SizeRuleStrict,
		BreedSimilarity: DefaultBreedSimilarity,
		BreedFallback:   DefaultBreedFallback,
	}
}

func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if _, err := ParseSizeRule(string(c.SizeRule)); err != nil {
		return err
	}
	if c.BreedFallback < 0 || c.BreedFallback > MaxScore {
		return fmt.Errorf("scoring: breed fallback %d out of range", c.BreedFallback)
	}
	return nil
}
