package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeights_SumToOne(t *testing.T) {
	require.NoError(t, DefaultWeights.Validate())
	require.NoError(t, AttributeHeavyWeights.Validate())

	bad := DefaultWeights
	bad.Color = 0.5
	assert.ErrorIs(t, bad.Validate(), ErrInvalidWeights)

	neg := DefaultWeights
	neg.Size, neg.Age = -0.05, 0.15
	assert.ErrorIs(t, neg.Validate(), ErrInvalidWeights)
}

func TestTotalConfidence_KnownValues(t *testing.T) {
	perfect := Inputs{DistanceKm: 0, HoursDiff: 0, Breed: 100, Color: 100, Size: 100, Age: 100}
	assert.Equal(t, 100, TotalConfidence(perfect))

	nothing := Inputs{DistanceKm: 50, HoursDiff: 200}
	assert.Equal(t, 0, TotalConfidence(nothing))

	// 0.30*100 + 0.20*100 + 0.25*80 = 70
	assert.Equal(t, 70, TotalConfidence(Inputs{Breed: 80}))
	// 0.30*100 + 0.20*95 + 0.25*80 = 69
	assert.Equal(t, 69, TotalConfidence(Inputs{HoursDiff: 3.5, Breed: 80}))
}

func TestTotalConfidence_AlwaysInRange(t *testing.T) {
	subs := []int{-50, 0, 25, 50, 80, 100, 250}
	for _, km := range []float64{0, 1, 7, 15, 99} {
		for _, h := range []float64{0, 5, 48, 72, 500} {
			for _, s := range subs {
				got := TotalConfidence(Inputs{DistanceKm: km, HoursDiff: h, Breed: s, Color: s, Size: s, Age: s})
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, 100)
			}
		}
	}
}

func TestTotalConfidence_AlternateWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = AttributeHeavyWeights

	// 0.25*100 + 0.20*100 + 0.25*100 + 0.10*0 + 0.10*100 + 0.10*100 = 90
	got := cfg.TotalConfidence(Inputs{Breed: 100, Size: 100, Age: 100})
	assert.Equal(t, 90, got)
}

func TestFormula(t *testing.T) {
	got := DefaultConfig().Formula(86, 99, 100, 50, 0, 0)
	assert.Equal(t, "0.30*86 + 0.20*99 + 0.25*100 + 0.15*50 + 0.05*0 + 0.05*0", got)
}

func TestParseSizeRule(t *testing.T) {
	r, err := ParseSizeRule("")
	require.NoError(t, err)
	assert.Equal(t, SizeRuleStrict, r)

	r, err = ParseSizeRule(" Tiered ")
	require.NoError(t, err)
	assert.Equal(t, SizeRuleTiered, r)

	_, err = ParseSizeRule("fuzzy")
	assert.Error(t, err)
}

func TestParseWeights(t *testing.T) {
	w, err := ParseWeights("")
	require.NoError(t, err)
	assert.Equal(t, DefaultWeights, w)

	w, err = ParseWeights(" Attribute-Heavy ")
	require.NoError(t, err)
	assert.Equal(t, AttributeHeavyWeights, w)
	assert.NoError(t, w.Validate())

	_, err = ParseWeights("heavy")
	assert.Error(t, err)
}
