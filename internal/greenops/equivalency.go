package greenops

import (
	"math"

	"github.com/rshade/poolheat/internal/format"
)

// Calculate computes the emissions offset for therms of displaced gas using
// the given factors.
//
// Calculate is pure and never fails: zero or negative therms produce a zero or
// negative offset, and a zero tree factor yields zero trees rather than an
// infinite count. Callers that accept factors from configuration should run
// Factors.Validate first.
//
// Example:
//
//	off := Calculate(5917.87, DefaultFactors())
//	// off.CO2Tons ≈ 31.36, off.Trees == 1382
func Calculate(therms float64, f Factors) Offset {
	tons := therms * f.TonsCO2PerTherm

	var trees int64
	if f.TonsCO2PerTree != 0 {
		raw := math.Round(tons / f.TonsCO2PerTree)
		if !math.IsInf(raw, 0) && !math.IsNaN(raw) {
			trees = int64(raw)
		}
	}

	return Offset{
		CO2Tons: tons,
		Trees:   trees,
	}
}

// Describe builds the tree equivalency phrase shown beside an offset, or ""
// when the count is too small to matter.
// Example: Describe(1382) returns "Equivalent to the yearly uptake of ~1,382 trees".
func Describe(trees int64) string {
	if trees < MinDisplayTrees {
		return ""
	}
	return "Equivalent to the yearly uptake of " + format.Trees(trees)
}
