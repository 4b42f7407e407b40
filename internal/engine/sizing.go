package engine

import "math"

// PanelsNeeded returns the number of collector panels for a pool surface:
// ceil(coverage × area / panel area). Zero and negative areas need no panels;
// counts beyond math.MaxInt32 saturate there.
func (m Model) PanelsNeeded(poolAreaSqft float64) int {
	if !(poolAreaSqft > 0) {
		return 0
	}
	n := math.Ceil(m.CoverageRatio * poolAreaSqft / m.PanelAreaSqft)
	if n >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// SystemCost returns the installed cost of the given number of panels.
func (m Model) SystemCost(panels int) float64 {
	return float64(panels) * m.PanelCost
}
