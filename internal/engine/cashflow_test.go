package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accumulateThenRound is the alternative policy: keep an unrounded running
// total and round only for display. CashFlow must not behave like this.
func accumulateThenRound(net float64, series []float64) []float64 {
	out := []float64{math.Round(-net)}
	running := -net
	for _, s := range series {
		running += s
		out = append(out, math.Round(running))
	}
	return out
}

func TestCashFlow_Shape(t *testing.T) {
	got := ComputeEstimate(referenceInputs())

	require.Len(t, got.CumulativeCashFlow, 26)
	for i, p := range got.CumulativeCashFlow {
		assert.Equal(t, i, p.Year)
		assert.Equal(t, math.Round(p.Cumulative), p.Cumulative, "year %d is not whole dollars", i)
	}
	assert.InDelta(t, -69825.0, got.CumulativeCashFlow[0].Cumulative, 1e-9)
}

func TestCashFlow_RoundsEachStep(t *testing.T) {
	got := ComputeEstimate(referenceInputs())
	series := got.AnnualSavingsSeries25

	want := math.Round(-got.NetSystemCost)
	for i, s := range series {
		want = math.Round(want + s)
		assert.Equal(t, want, got.CumulativeCashFlow[i+1].Cumulative, "year %d", i+1)
	}

	assert.InDelta(t, 361698.0, got.CumulativeCashFlow[25].Cumulative, 1e-9)

	alt := accumulateThenRound(got.NetSystemCost, series)
	assert.InDelta(t, 361697.0, alt[25], 1e-9)
	assert.NotEqual(t, alt[25], got.CumulativeCashFlow[25].Cumulative,
		"per-step rounding must differ from rounding an unrounded total for this scenario")
}

func TestCashFlow_UsesLongHorizonSeries(t *testing.T) {
	got := ComputeEstimate(referenceInputs())

	last := got.CumulativeCashFlow[len(got.CumulativeCashFlow)-1]
	assert.Equal(t, 25, last.Year)
	assert.InDelta(t, got.Total25yrSavings-got.NetSystemCost, last.Cumulative, 25,
		"per-step rounding drifts at most half a dollar per year")
}

func TestCashFlow_HalfDollarRoundsAwayFromZero(t *testing.T) {
	points := CashFlow(34912.5, []float64{0.5, 0.25})

	require.Len(t, points, 3)
	assert.InDelta(t, -34913.0, points[0].Cumulative, 1e-9)
	assert.InDelta(t, -34913.0, points[1].Cumulative, 1e-9) // -34912.5 rounds away from zero
	assert.InDelta(t, -34913.0, points[2].Cumulative, 1e-9)
}

func TestCashFlow_EmptySeries(t *testing.T) {
	points := CashFlow(1000, nil)

	require.Len(t, points, 1)
	assert.Equal(t, CashFlowPoint{Year: 0, Cumulative: -1000}, points[0])
}
