package engine

// Default model constants for the flat-rate solar pool heating estimate.
// Sizing and output are fixed assumptions, not simulated from weather or
// insolation data.
const (
	// DefaultCoverageRatio is the collector area required per square foot of
	// pool surface.
	DefaultCoverageRatio = 0.75

	// DefaultPanelAreaSqft is the collector area of a single panel.
	DefaultPanelAreaSqft = 40.0

	// DefaultPanelCost is the installed cost of a single panel in USD.
	DefaultPanelCost = 3750.0

	// DefaultPanelOutputBTUPerDay is the heat delivered by one panel per
	// operating day.
	DefaultPanelOutputBTUPerDay = 32000.0
)

// Incentive rates.
const (
	// DefaultFederalITCRate is the federal Investment Tax Credit as a
	// fraction of system cost.
	DefaultFederalITCRate = 0.30

	// DefaultDepreciationRate is the depreciation benefit as a fraction of
	// the cost remaining after the ITC.
	DefaultDepreciationRate = 0.30
)

// Energy conversion constants.
const (
	// DefaultBTUPerTherm is the energy content of one therm of natural gas.
	DefaultBTUPerTherm = 100000.0

	// DefaultBoilerEfficiency is the efficiency of the gas boiler being offset.
	DefaultBoilerEfficiency = 0.75

	// DefaultEscalationRate is the annual increase applied to gas savings.
	DefaultEscalationRate = 0.03
)

// Season day counts. These are fixed approximations, not calendar-derived.
const (
	DefaultFullYearDays            = 365
	DefaultMarchToThanksgivingDays = 275
)

// Projection horizons in years.
const (
	// DefaultPaybackHorizonYears bounds the payback search and the ROI figure.
	DefaultPaybackHorizonYears = 20

	// DefaultCashFlowHorizonYears is the length of the charted cash-flow series.
	DefaultCashFlowHorizonYears = 25
)

// Input bounds checked by Inputs.Validate. They sit far above any real pool
// and keep every derived figure finite.
const (
	// MaxPoolAreaSqft is the largest accepted pool surface.
	MaxPoolAreaSqft = 10_000_000.0

	// MaxGasCostPerTherm is the largest accepted gas price in USD.
	MaxGasCostPerTherm = 1_000.0

	// MaxLocalIncentiveValue is the largest accepted local incentive, either
	// a percentage or USD.
	MaxLocalIncentiveValue = 1_000_000_000.0
)

// PercentageMultiplier converts a ratio to a percentage.
const PercentageMultiplier = 100.0
