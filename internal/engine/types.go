package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Season selects the number of operating days per year.
type Season int

const (
	// SeasonFullYear heats the pool year round.
	SeasonFullYear Season = iota
	// SeasonMarchToThanksgiving heats the pool from March to late November.
	SeasonMarchToThanksgiving
)

// String returns the canonical flag/config spelling of the season.
func (s Season) String() string {
	switch s {
	case SeasonFullYear:
		return "full-year"
	case SeasonMarchToThanksgiving:
		return "march-to-thanksgiving"
	default:
		return fmt.Sprintf("Season(%d)", int(s))
	}
}

// Label returns a human-readable season name.
func (s Season) Label() string {
	switch s {
	case SeasonFullYear:
		return "Full year"
	case SeasonMarchToThanksgiving:
		return "March to Thanksgiving"
	default:
		return s.String()
	}
}

// ParseSeason parses a season name. Matching ignores case and accepts a few
// common spellings.
func ParseSeason(s string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full-year", "full_year", "fullyear", "full", "year-round":
		return SeasonFullYear, nil
	case "march-to-thanksgiving", "march_to_thanksgiving", "marchtothanksgiving", "seasonal", "mar-nov":
		return SeasonMarchToThanksgiving, nil
	default:
		return 0, fmt.Errorf("%w: %q (want full-year or march-to-thanksgiving)", ErrUnknownSeason, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Season) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Season) UnmarshalText(text []byte) error {
	v, err := ParseSeason(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// IncentiveKind selects how the local incentive value is interpreted.
type IncentiveKind int

const (
	// IncentivePercent treats the value as a percentage of system cost.
	IncentivePercent IncentiveKind = iota
	// IncentiveFixedAmount treats the value as a flat USD amount.
	IncentiveFixedAmount
)

// String returns the canonical flag/config spelling of the kind.
func (k IncentiveKind) String() string {
	switch k {
	case IncentivePercent:
		return "percent"
	case IncentiveFixedAmount:
		return "fixed"
	default:
		return fmt.Sprintf("IncentiveKind(%d)", int(k))
	}
}

// ParseIncentiveKind parses a local incentive kind.
func ParseIncentiveKind(s string) (IncentiveKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percent", "percentage", "%":
		return IncentivePercent, nil
	case "fixed", "fixed-amount", "fixed_amount", "amount", "$":
		return IncentiveFixedAmount, nil
	default:
		return 0, fmt.Errorf("%w: %q (want percent or fixed)", ErrUnknownIncentiveKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k IncentiveKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *IncentiveKind) UnmarshalText(text []byte) error {
	v, err := ParseIncentiveKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Inputs are the caller-supplied parameters of one estimate.
type Inputs struct {
	// PoolAreaSqft is the pool surface area in square feet.
	PoolAreaSqft float64 `json:"pool_area_sqft" yaml:"pool_area_sqft"`

	// DesiredTempF is informational only; no formula uses it.
	DesiredTempF float64 `json:"desired_temp_f" yaml:"desired_temp_f"`

	// Season selects the operating-day count.
	Season Season `json:"season" yaml:"season"`

	// GasCostPerTherm is the local natural gas price in USD.
	GasCostPerTherm float64 `json:"gas_cost_per_therm" yaml:"gas_cost_per_therm"`

	// LocalIncentiveEnabled gates the local incentive.
	LocalIncentiveEnabled bool `json:"local_incentive_enabled" yaml:"local_incentive_enabled"`

	// LocalIncentiveKind selects how LocalIncentiveValue is read.
	LocalIncentiveKind IncentiveKind `json:"local_incentive_kind" yaml:"local_incentive_kind"`

	// LocalIncentiveValue is a percentage or a USD amount depending on kind.
	LocalIncentiveValue float64 `json:"local_incentive_value" yaml:"local_incentive_value"`
}

// NullInt is an integer that may be undefined. The zero value is undefined.
// It encodes to JSON null when undefined.
type NullInt struct {
	Int   int
	Valid bool
}

// SomeInt returns a defined NullInt.
func SomeInt(v int) NullInt {
	return NullInt{Int: v, Valid: true}
}

// MarshalJSON implements json.Marshaler.
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Int)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = NullInt{}
		return nil
	}
	if err := json.Unmarshal(data, &n.Int); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// NullFloat is a float that may be undefined. The zero value is undefined.
// It encodes to JSON null when undefined.
type NullFloat struct {
	Float float64
	Valid bool
}

// SomeFloat returns a defined NullFloat.
func SomeFloat(v float64) NullFloat {
	return NullFloat{Float: v, Valid: true}
}

// MarshalJSON implements json.Marshaler.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = NullFloat{}
		return nil
	}
	if err := json.Unmarshal(data, &n.Float); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// CashFlowPoint is one point of the cumulative cash-flow series.
type CashFlowPoint struct {
	// Year is 0 for the installation year.
	Year int `json:"year"`

	// Cumulative is the running cash position in whole USD.
	Cumulative float64 `json:"cumulative"`
}

// Result is the full estimate derived from Inputs. It carries no hidden state:
// the same Inputs and Model always produce the same Result.
type Result struct {
	PanelsNeeded int     `json:"panels_needed"`
	SystemCost   float64 `json:"system_cost"`

	FederalITC           float64 `json:"federal_itc"`
	DepreciationBenefit  float64 `json:"depreciation_benefit"`
	LocalIncentiveAmount float64 `json:"local_incentive_amount"`
	TotalIncentives      float64 `json:"total_incentives"`
	NetSystemCost        float64 `json:"net_system_cost"`

	SeasonDays       int     `json:"season_days"`
	AnnualBTU        float64 `json:"annual_btu"`
	AnnualTherms     float64 `json:"annual_therms"`
	FirstYearSavings float64 `json:"first_year_savings"`

	// AnnualSavingsSeries20 and AnnualSavingsSeries25 hold escalated yearly
	// savings for the payback and cash-flow horizons respectively.
	AnnualSavingsSeries20 []float64 `json:"annual_savings_series_20"`
	AnnualSavingsSeries25 []float64 `json:"annual_savings_series_25"`
	Total20yrSavings      float64   `json:"total_20yr_savings"`
	Total25yrSavings      float64   `json:"total_25yr_savings"`

	// PaybackYears is undefined when cumulative savings never reach the net
	// system cost within the payback horizon.
	PaybackYears NullInt `json:"payback_years"`

	// ROI20Percent is undefined when the net system cost is zero.
	ROI20Percent NullFloat `json:"roi_20_percent"`

	CumulativeCashFlow []CashFlowPoint `json:"cumulative_cash_flow"`

	AnnualCO2Tons         float64 `json:"annual_co2_tons"`
	AnnualTreesEquivalent int64   `json:"annual_trees_equivalent"`
}

// PaybackHorizonYears returns the length of the payback savings series, or
// DefaultPaybackHorizonYears for a Result built by hand without one.
func (r Result) PaybackHorizonYears() int {
	if n := len(r.AnnualSavingsSeries20); n > 0 {
		return n
	}
	return DefaultPaybackHorizonYears
}

// CashFlowHorizonYears returns the length of the cash-flow savings series, or
// DefaultCashFlowHorizonYears for a Result built by hand without one.
func (r Result) CashFlowHorizonYears() int {
	if n := len(r.AnnualSavingsSeries25); n > 0 {
		return n
	}
	return DefaultCashFlowHorizonYears
}
