package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceScore(t *testing.T) {
	assert.Equal(t, 100, DistanceScore(0))
	assert.Equal(t, 50, DistanceScore(7.5))
	for _, km := range []float64{15, 15.01, 40, 10000} {
		assert.Equal(t, 0, DistanceScore(km), "km=%v", km)
	}
	assert.Equal(t, 0, DistanceScore(math.NaN()))

	prev := DistanceScore(0)
	for km := 0.0; km <= 20; km += 0.25 {
		cur := DistanceScore(km)
		assert.LessOrEqual(t, cur, prev, "not monotonic at km=%v", km)
		prev = cur
	}
}

func TestTimeScore(t *testing.T) {
	assert.Equal(t, 100, TimeScore(0))
	assert.Equal(t, 50, TimeScore(36))
	assert.Equal(t, 95, TimeScore(3.5))
	for _, h := range []float64{72, 100, 1e6} {
		assert.Equal(t, 0, TimeScore(h), "h=%v", h)
	}
}
