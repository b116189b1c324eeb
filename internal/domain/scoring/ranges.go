package scoring

import "math"

const (
	// MaxDistanceKm: a partir de acá DistanceScore es 0.
	MaxDistanceKm = 15.0
	// MaxTimeHours: a partir de acá TimeScore es 0.
	MaxTimeHours = 72.0
)

// DistanceScore decae linealmente: 100 en 0 km, 0 desde 15 km.
func DistanceScore(km float64) int {
	return linearDecay(km, MaxDistanceKm)
}

// TimeScore decae linealmente: 100 en 0 h, 0 desde 72 h.
func TimeScore(hours float64) int {
	return linearDecay(hours, MaxTimeHours)
}

func linearDecay(v, limit float64) int {
	if math.IsNaN(v) {
		return MinScore
	}
	if v < 0 {
		v = 0
	}
	s := 1 - math.Min(v, limit)/limit
	return clampScore(int(math.Round(s * 100)))
}
