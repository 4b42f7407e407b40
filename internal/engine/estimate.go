// Package engine computes the financial and environmental payoff of heating a
// commercial swimming pool with solar thermal panels.
//
// The engine is a pure function of its inputs: ComputeEstimate performs no I/O,
// holds no state between calls and never fails. Undefined figures (payback
// beyond the horizon, ROI on a zero net cost) are reported as NullInt and
// NullFloat values rather than errors so that presentation code can branch on
// them directly.
package engine

import "github.com/rshade/poolheat/internal/greenops"

// ComputeEstimate computes an estimate with the default model.
func ComputeEstimate(in Inputs) Result {
	return DefaultModel().Compute(in)
}

// Compute runs every step of the estimate in order: sizing and cost,
// incentives, energy and first-year savings, escalation over both horizons,
// payback and ROI over the payback horizon, the cash-flow projection over the
// cash-flow horizon, and the emissions offset.
//
// Degenerate inputs (zero area, zero gas cost) yield zeros and undefined
// sentinels, never a panic or an error.
func (m Model) Compute(in Inputs) Result {
	panels := m.PanelsNeeded(in.PoolAreaSqft)
	systemCost := m.SystemCost(panels)
	inc := m.Incentives(systemCost, in)

	days := m.SeasonDays(in.Season)
	btu := m.AnnualBTU(panels, days)
	therms := m.AnnualTherms(btu)
	firstYear := therms * in.GasCostPerTherm

	series20, total20 := Escalate(firstYear, m.EscalationRate, m.PaybackHorizonYears)
	series25, total25 := Escalate(firstYear, m.EscalationRate, m.CashFlowHorizonYears)

	offset := greenops.Calculate(therms, m.Emissions)

	return Result{
		PanelsNeeded:          panels,
		SystemCost:            systemCost,
		FederalITC:            inc.FederalITC,
		DepreciationBenefit:   inc.Depreciation,
		LocalIncentiveAmount:  inc.Local,
		TotalIncentives:       inc.Total,
		NetSystemCost:         inc.NetSystemCost,
		SeasonDays:            days,
		AnnualBTU:             btu,
		AnnualTherms:          therms,
		FirstYearSavings:      firstYear,
		AnnualSavingsSeries20: series20,
		AnnualSavingsSeries25: series25,
		Total20yrSavings:      total20,
		Total25yrSavings:      total25,
		PaybackYears:          PaybackYear(series20, inc.NetSystemCost),
		ROI20Percent:          ROIPercent(total20, inc.NetSystemCost),
		CumulativeCashFlow:    CashFlow(inc.NetSystemCost, series25),
		AnnualCO2Tons:         offset.CO2Tons,
		AnnualTreesEquivalent: offset.Trees,
	}
}
