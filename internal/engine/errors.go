package engine

import "errors"

// Input parsing and hygiene errors. The estimate itself never fails; these are
// returned by the parsing helpers and Inputs.Validate for callers that gather
// inputs from users.
var (
	ErrUnknownSeason        = errors.New("unknown season")
	ErrUnknownIncentiveKind = errors.New("unknown local incentive kind")
	ErrNegativeArea         = errors.New("pool area cannot be negative")
	ErrNonPositiveGasCost   = errors.New("gas cost per therm must be greater than 0")
	ErrNegativeIncentive    = errors.New("local incentive value cannot be negative")
	ErrNonFinite            = errors.New("input must be a finite number")
	ErrOutOfRange           = errors.New("input exceeds the supported range")
	ErrInvalidModel         = errors.New("invalid estimate model")
	ErrNoSites              = errors.New("no sites to estimate")
)
