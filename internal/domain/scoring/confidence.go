package scoring

import (
	"fmt"
	"math"
)

// Inputs del agregador: magnitudes crudas + sub-scores de atributos.
type Inputs struct {
	DistanceKm float64
	HoursDiff  float64
	Breed      int
	Color      int
	Size       int
	Age        int
}

// TotalConfidence con los pesos canónicos.
func TotalConfidence(in Inputs) int {
	return DefaultConfig().TotalConfidence(in)
}

// TotalConfidence devuelve la suma ponderada redondeada, siempre en [0,100].
func (c Config) TotalConfidence(in Inputs) int {
	w := c.Weights
	total := w.Distance*float64(DistanceScore(in.DistanceKm)) +
		w.Time*float64(TimeScore(in.HoursDiff)) +
		w.Breed*float64(clampScore(in.Breed)) +
		w.Color*float64(clampScore(in.Color)) +
		w.Size*float64(clampScore(in.Size)) +
		w.Age*float64(clampScore(in.Age))
	return clampScore(int(math.Round(total)))
}

// Formula arma la explicación legible del score, p.ej.
// "0.30*86 + 0.20*99 + 0.25*100 + 0.15*100 + 0.05*0 + 0.05*0".
func (c Config) Formula(distance, time, breed, color, size, age int) string {
	w := c.Weights
	return fmt.Sprintf("%.2f*%d + %.2f*%d + %.2f*%d + %.2f*%d + %.2f*%d + %.2f*%d",
		w.Distance, distance,
		w.Time, time,
		w.Breed, breed,
		w.Color, color,
		w.Size, size,
		w.Age, age,
	)
}
