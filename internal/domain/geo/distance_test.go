package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	bangkok   = Location{Lat: 13.7563, Lng: 100.5018}
	lumpini   = Location{Lat: 13.742, Lng: 100.541}
	chiangMai = Location{Lat: 18.7883, Lng: 98.9853}
)

func TestDistanceKm_SymmetricAndZero(t *testing.T) {
	pairs := [][2]Location{
		{bangkok, lumpini},
		{bangkok, chiangMai},
		{{Lat: -33.86, Lng: 151.2}, {Lat: 51.5, Lng: -0.12}},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0].Lat, p[0].Lng, p[1].Lat, p[1].Lng)
		ba := DistanceKm(p[1].Lat, p[1].Lng, p[0].Lat, p[0].Lng)
		assert.InDelta(t, ab, ba, 1e-9)
		assert.Greater(t, ab, 0.0)
	}

	assert.Equal(t, 0.0, DistanceKm(bangkok.Lat, bangkok.Lng, bangkok.Lat, bangkok.Lng))
	assert.Equal(t, 0.0, bangkok.DistanceKm(bangkok))
}

func TestDistanceKm_KnownValues(t *testing.T) {
	// 1 grado de latitud ~ 111.19 km con R = 6371
	assert.InDelta(t, 111.19, DistanceKm(0, 0, 1, 0), 0.01)
	// Bangkok centro -> Lumpini ~ 4.5 km
	assert.InDelta(t, 4.5, bangkok.DistanceKm(lumpini), 0.2)
	// Bangkok -> Chiang Mai ~ 580 km
	assert.InDelta(t, 582, bangkok.DistanceKm(chiangMai), 5)
}

func TestWithin(t *testing.T) {
	assert.True(t, bangkok.Within(lumpini, 5))
	assert.False(t, bangkok.Within(lumpini, 2))
	assert.False(t, bangkok.Within(chiangMai, 500))
	// borde inclusivo
	assert.True(t, bangkok.Within(lumpini, bangkok.DistanceKm(lumpini)))
}
