package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadiusKm es el radio medio usado por la fórmula haversine.
const EarthRadiusKm = 6371.0

// Location es un punto lat/lng en grados.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l Location) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(l.Lat, l.Lng)
}

// DistanceKm es la distancia great-circle entre dos coordenadas.
// s2.LatLng.Distance usa haversine, así que es simétrica y 0 para puntos iguales.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return angleToKm(a.Distance(b))
}

// DistanceKm entre dos Location.
func (l Location) DistanceKm(other Location) float64 {
	return angleToKm(l.latLng().Distance(other.latLng()))
}

// Within reporta si other cae dentro de radiusKm (inclusive).
func (l Location) Within(other Location, radiusKm float64) bool {
	return l.DistanceKm(other) <= radiusKm
}

func angleToKm(a s1.Angle) float64 {
	return a.Radians() * EarthRadiusKm
}
