package engine

import "math"

// Escalate projects base over years, compounding rate annually. Element i
// (0-based) is base × (1+rate)^i. The returned total is the direct running sum
// of the elements in order, so it matches summing the slice by hand exactly.
//
// A horizon below 1 returns an empty series and a zero total.
func Escalate(base, rate float64, years int) ([]float64, float64) {
	if years < 1 {
		return []float64{}, 0
	}

	growth := 1 + rate
	series := make([]float64, years)
	var total float64
	for i := range series {
		series[i] = base * math.Pow(growth, float64(i))
		total += series[i]
	}
	return series, total
}
