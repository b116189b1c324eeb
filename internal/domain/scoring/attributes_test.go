package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreedScore(t *testing.T) {
	assert.Equal(t, 100, BreedScore("pomeranian", "pomeranian"))
	assert.Equal(t, 0, BreedScore("", "anything"))
	assert.Equal(t, 0, BreedScore("siamese", ""))

	// tabla simétrica
	assert.Equal(t, 80, BreedScore("golden_retriever", "labrador_retriever"))
	assert.Equal(t, 80, BreedScore("labrador_retriever", "golden_retriever"))

	// misma especie, relación desconocida => fallback
	assert.Equal(t, DefaultBreedFallback, BreedScore("siberian_husky", "pomeranian"))
}

func TestBreedScore_CustomTable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BreedSimilarity = BreedTable{Pair("persian", "british_shorthair"): 0.6}
	cfg.BreedFallback = 10

	assert.Equal(t, 60, cfg.BreedScore("british_shorthair", "persian"))
	assert.Equal(t, 10, cfg.BreedScore("golden_retriever", "labrador_retriever"))
}

func TestColorScore(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"black", "black", 100},
		{"Black", "BLACK", 100},
		{"gray white", "gray", 50},
		{"black/tan", "tan", 50},
		{"cream, brown", "brown", 50},
		{"gold", "black", 0},
		{"", "black", 0},
		{"black", "", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ColorScore(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestSizeScore_Strict(t *testing.T) {
	assert.Equal(t, 100, SizeScore("large", "large"))
	assert.Equal(t, 0, SizeScore("small", "medium"))
	assert.Equal(t, 0, SizeScore("small", "large"))
	assert.Equal(t, 0, SizeScore("", "large"))
}

func TestSizeScore_Tiered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SizeRule = SizeRuleTiered

	assert.Equal(t, 100, cfg.SizeScore("medium", "Medium"))
	assert.Equal(t, 50, cfg.SizeScore("small", "medium"))
	assert.Equal(t, 50, cfg.SizeScore("large", "medium"))
	assert.Equal(t, 0, cfg.SizeScore("small", "large"))
	assert.Equal(t, 0, cfg.SizeScore("tiny", "small"))
}

func TestAgeScore(t *testing.T) {
	assert.Equal(t, 100, AgeScore("adult", "adult"))
	assert.Equal(t, 0, AgeScore("kitten", "adult"))
	assert.Equal(t, 0, AgeScore("", "adult"))
}
