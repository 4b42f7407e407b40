package engine

import "math"

// CashFlow builds the cumulative cash-flow series for charting: year 0 is the
// negated net system cost and each later year adds that year's savings.
//
// Every point is rounded to whole dollars, and the next point is built from the
// rounded previous point rather than from an unrounded running total. The
// series has len(series)+1 points.
func CashFlow(netSystemCost float64, series []float64) []CashFlowPoint {
	points := make([]CashFlowPoint, 0, len(series)+1)

	running := roundDollars(-netSystemCost)
	points = append(points, CashFlowPoint{Year: 0, Cumulative: running})

	for i, s := range series {
		running = roundDollars(running + s)
		points = append(points, CashFlowPoint{Year: i + 1, Cumulative: running})
	}
	return points
}

// roundDollars rounds half away from zero and normalizes -0 to 0.
func roundDollars(v float64) float64 {
	r := math.Round(v)
	if r == 0 {
		return 0
	}
	return r
}
