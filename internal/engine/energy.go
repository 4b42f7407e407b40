package engine

// SeasonDays returns the operating-day count for a season. Unknown seasons
// fall back to a full year.
func (m Model) SeasonDays(s Season) int {
	if s == SeasonMarchToThanksgiving {
		return m.MarchToThanksgivingDays
	}
	return m.FullYearDays
}

// AnnualBTU returns the heat the array delivers over a season.
func (m Model) AnnualBTU(panels, seasonDays int) float64 {
	return float64(panels) * m.PanelOutputBTUPerDay * float64(seasonDays)
}

// AnnualTherms converts delivered heat into the boiler gas it displaces.
func (m Model) AnnualTherms(annualBTU float64) float64 {
	return annualBTU / (m.BTUPerTherm * m.BoilerEfficiency)
}
