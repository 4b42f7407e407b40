package engine

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks input hygiene for callers that collect inputs from users.
// The engine itself tolerates any Inputs; Validate lets a presentation layer
// reject values that would give a misleading estimate. All problems are
// reported together.
func (in Inputs) Validate() error {
	var errs []error

	finite := []struct {
		name string
		v    float64
	}{
		{"pool area", in.PoolAreaSqft},
		{"desired temperature", in.DesiredTempF},
		{"gas cost", in.GasCostPerTherm},
		{"local incentive value", in.LocalIncentiveValue},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			errs = append(errs, fmt.Errorf("%w: %s = %v", ErrNonFinite, f.name, f.v))
		}
	}

	if in.PoolAreaSqft < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNegativeArea, in.PoolAreaSqft))
	}
	if in.GasCostPerTherm <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNonPositiveGasCost, in.GasCostPerTherm))
	}
	if in.LocalIncentiveValue < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNegativeIncentive, in.LocalIncentiveValue))
	}

	limits := []struct {
		name string
		v    float64
		max  float64
	}{
		{"pool area", in.PoolAreaSqft, MaxPoolAreaSqft},
		{"gas cost", in.GasCostPerTherm, MaxGasCostPerTherm},
		{"local incentive value", in.LocalIncentiveValue, MaxLocalIncentiveValue},
	}
	for _, l := range limits {
		if l.v > l.max && !math.IsInf(l.v, 1) {
			errs = append(errs, fmt.Errorf("%w: %s = %v (max %v)", ErrOutOfRange, l.name, l.v, l.max))
		}
	}

	if in.Season != SeasonFullYear && in.Season != SeasonMarchToThanksgiving {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownSeason, in.Season))
	}
	if in.LocalIncentiveKind != IncentivePercent && in.LocalIncentiveKind != IncentiveFixedAmount {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownIncentiveKind, in.LocalIncentiveKind))
	}

	return errors.Join(errs...)
}
