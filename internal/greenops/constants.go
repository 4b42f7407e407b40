package greenops

// EPA conversion factors used for the emissions offset of displaced natural gas.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// To calculate the equivalency, multiply therms by the per-therm factor and
// divide the resulting tons by the per-tree factor:
//
//	tons  = therms * TonsCO2PerTherm
//	trees = round(tons / TonsCO2PerTree)
const (
	// TonsCO2PerTherm is metric tons of CO2 emitted per therm of natural gas burned.
	TonsCO2PerTherm = 0.0053

	// TonsCO2PerTree is metric tons of CO2 taken up by one tree in a year.
	TonsCO2PerTree = 0.0227
)

// MinDisplayTrees is the smallest tree count worth describing. Below this,
// Describe returns "".
const MinDisplayTrees = 1
