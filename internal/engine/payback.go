package engine

// PaybackYear scans series in year order and returns the first 1-based year at
// which cumulative savings reach or exceed netSystemCost. A year where the
// running total exactly equals the cost counts as paid back.
//
// The result is undefined when the series ends first; nothing is extrapolated
// beyond the series.
func PaybackYear(series []float64, netSystemCost float64) NullInt {
	var cumulative float64
	for i, s := range series {
		cumulative += s
		if cumulative >= netSystemCost {
			return SomeInt(i + 1)
		}
	}
	return NullInt{}
}

// ROIPercent returns (totalSavings − netSystemCost) / netSystemCost × 100, or
// an undefined value when netSystemCost is zero.
func ROIPercent(totalSavings, netSystemCost float64) NullFloat {
	if netSystemCost == 0 {
		return NullFloat{}
	}
	return SomeFloat((totalSavings - netSystemCost) / netSystemCost * PercentageMultiplier)
}
