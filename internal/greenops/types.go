// Package greenops converts displaced natural gas into an emissions offset.
//
// It turns the therms a solar pool heater saves each year into metric tons of
// CO2 avoided and a relatable "trees planted" equivalency using EPA-published
// conversion factors.
package greenops

import (
	"fmt"
	"math"
)

// Factors holds the conversion factors for an emissions offset.
type Factors struct {
	// TonsCO2PerTherm is metric tons of CO2 per therm of gas burned.
	TonsCO2PerTherm float64 `yaml:"tons_co2_per_therm" json:"tons_co2_per_therm"`

	// TonsCO2PerTree is metric tons of CO2 absorbed by one tree per year.
	TonsCO2PerTree float64 `yaml:"tons_co2_per_tree" json:"tons_co2_per_tree"`
}

// DefaultFactors returns the EPA factors.
func DefaultFactors() Factors {
	return Factors{
		TonsCO2PerTherm: TonsCO2PerTherm,
		TonsCO2PerTree:  TonsCO2PerTree,
	}
}

// Validate checks that both factors are positive and finite.
func (f Factors) Validate() error {
	if !validFactor(f.TonsCO2PerTherm) {
		return fmt.Errorf("%w: tons_co2_per_therm = %v", ErrInvalidFactor, f.TonsCO2PerTherm)
	}
	if !validFactor(f.TonsCO2PerTree) {
		return fmt.Errorf("%w: tons_co2_per_tree = %v", ErrInvalidFactor, f.TonsCO2PerTree)
	}
	return nil
}

func validFactor(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Offset is the annual emissions offset for a quantity of displaced gas.
type Offset struct {
	// CO2Tons is metric tons of CO2 avoided per year.
	CO2Tons float64 `json:"co2_tons"`

	// Trees is the number of trees absorbing the same CO2 in a year.
	Trees int64 `json:"trees"`
}
