package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rshade/poolheat/internal/greenops"
)

// Model holds every constant of the estimate formulas. DefaultModel returns
// the standard values; configuration may override individual fields.
type Model struct {
	CoverageRatio        float64 `yaml:"coverage_ratio"           json:"coverage_ratio"`
	PanelAreaSqft        float64 `yaml:"panel_area_sqft"          json:"panel_area_sqft"`
	PanelCost            float64 `yaml:"panel_cost"               json:"panel_cost"`
	PanelOutputBTUPerDay float64 `yaml:"panel_output_btu_per_day" json:"panel_output_btu_per_day"`

	FederalITCRate   float64 `yaml:"federal_itc_rate"  json:"federal_itc_rate"`
	DepreciationRate float64 `yaml:"depreciation_rate" json:"depreciation_rate"`

	BTUPerTherm      float64 `yaml:"btu_per_therm"     json:"btu_per_therm"`
	BoilerEfficiency float64 `yaml:"boiler_efficiency" json:"boiler_efficiency"`
	EscalationRate   float64 `yaml:"escalation_rate"   json:"escalation_rate"`

	FullYearDays            int `yaml:"full_year_days"             json:"full_year_days"`
	MarchToThanksgivingDays int `yaml:"march_to_thanksgiving_days" json:"march_to_thanksgiving_days"`

	PaybackHorizonYears  int `yaml:"payback_horizon_years"   json:"payback_horizon_years"`
	CashFlowHorizonYears int `yaml:"cash_flow_horizon_years" json:"cash_flow_horizon_years"`

	Emissions greenops.Factors `yaml:"emissions" json:"emissions"`
}

// DefaultModel returns the model with the standard constants.
func DefaultModel() Model {
	return Model{
		CoverageRatio:           DefaultCoverageRatio,
		PanelAreaSqft:           DefaultPanelAreaSqft,
		PanelCost:               DefaultPanelCost,
		PanelOutputBTUPerDay:    DefaultPanelOutputBTUPerDay,
		FederalITCRate:          DefaultFederalITCRate,
		DepreciationRate:        DefaultDepreciationRate,
		BTUPerTherm:             DefaultBTUPerTherm,
		BoilerEfficiency:        DefaultBoilerEfficiency,
		EscalationRate:          DefaultEscalationRate,
		FullYearDays:            DefaultFullYearDays,
		MarchToThanksgivingDays: DefaultMarchToThanksgivingDays,
		PaybackHorizonYears:     DefaultPaybackHorizonYears,
		CashFlowHorizonYears:    DefaultCashFlowHorizonYears,
		Emissions:               greenops.DefaultFactors(),
	}
}

// Validate reports every field that would make the formulas meaningless:
// non-positive divisors, negative rates or costs, and empty horizons.
func (m Model) Validate() error {
	var errs []error

	positive := map[string]float64{
		"panel_area_sqft":   m.PanelAreaSqft,
		"btu_per_therm":     m.BTUPerTherm,
		"boiler_efficiency": m.BoilerEfficiency,
	}
	for _, name := range sortedKeys(positive) {
		if v := positive[name]; !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be greater than 0, got %v", ErrInvalidModel, name, v))
		}
	}

	nonNegative := map[string]float64{
		"coverage_ratio":           m.CoverageRatio,
		"panel_cost":               m.PanelCost,
		"panel_output_btu_per_day": m.PanelOutputBTUPerDay,
		"federal_itc_rate":         m.FederalITCRate,
		"depreciation_rate":        m.DepreciationRate,
		"escalation_rate":          m.EscalationRate,
	}
	for _, name := range sortedKeys(nonNegative) {
		if v := nonNegative[name]; !(v >= 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be 0 or greater, got %v", ErrInvalidModel, name, v))
		}
	}

	if m.FullYearDays < 1 || m.MarchToThanksgivingDays < 1 {
		errs = append(errs, fmt.Errorf("%w: season day counts must be at least 1", ErrInvalidModel))
	}
	if m.PaybackHorizonYears < 1 || m.CashFlowHorizonYears < 1 {
		errs = append(errs, fmt.Errorf("%w: horizons must be at least 1 year", ErrInvalidModel))
	}
	if err := m.Emissions.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidModel, err))
	}

	return errors.Join(errs...)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
