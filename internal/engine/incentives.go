package engine

// Incentives itemizes the incentives applied to a system cost.
type Incentives struct {
	FederalITC    float64
	Depreciation  float64
	Local         float64
	Total         float64
	NetSystemCost float64
}

// Incentives computes the federal ITC, the depreciation benefit on the cost
// remaining after the ITC, and the local incentive for the selected kind.
//
// No cap is applied: incentives larger than the system cost produce a negative
// net system cost, which is passed through.
func (m Model) Incentives(systemCost float64, in Inputs) Incentives {
	itc := m.FederalITCRate * systemCost
	depreciation := m.DepreciationRate * (systemCost - itc)
	local := LocalIncentive(systemCost, in.LocalIncentiveEnabled, in.LocalIncentiveKind, in.LocalIncentiveValue)

	total := itc + depreciation + local
	return Incentives{
		FederalITC:    itc,
		Depreciation:  depreciation,
		Local:         local,
		Total:         total,
		NetSystemCost: systemCost - total,
	}
}

// LocalIncentive returns the local incentive amount. It is zero unless the
// incentive is enabled with a positive value; otherwise it is value percent of
// systemCost (IncentivePercent) or value itself (IncentiveFixedAmount).
func LocalIncentive(systemCost float64, enabled bool, kind IncentiveKind, value float64) float64 {
	if !enabled || !(value > 0) {
		return 0
	}
	switch kind {
	case IncentivePercent:
		return systemCost * value / PercentageMultiplier
	case IncentiveFixedAmount:
		return value
	default:
		return 0
	}
}
