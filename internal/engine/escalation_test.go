package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscalate(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		rate  float64
		years int
	}{
		{name: "payback horizon", base: 11835.73, rate: DefaultEscalationRate, years: 20},
		{name: "cash flow horizon", base: 11835.73, rate: DefaultEscalationRate, years: 25},
		{name: "single year", base: 500, rate: DefaultEscalationRate, years: 1},
		{name: "no escalation", base: 1000, rate: 0, years: 10},
		{name: "small base", base: 0.01, rate: 0.05, years: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, total := Escalate(tt.base, tt.rate, tt.years)

			require.Len(t, series, tt.years)
			assert.Equal(t, tt.base, series[0], "year 1 is the base value")

			var direct float64
			for i, v := range series {
				want := tt.base * math.Pow(1+tt.rate, float64(i))
				assert.Equal(t, want, v, "element %d", i+1)
				direct += v
			}
			// Exact equality: the total must be the plain running sum, not a
			// geometric-series closed form.
			assert.Equal(t, direct, total)
		})
	}
}

func TestEscalate_MatchesThreePercentLiteral(t *testing.T) {
	series, _ := Escalate(100, DefaultEscalationRate, 25)
	for i, v := range series {
		assert.InDelta(t, 100*math.Pow(1.03, float64(i)), v, 1e-9)
	}
}

func TestEscalate_ClosedFormDiffersOnlyByRounding(t *testing.T) {
	base, rate, n := 11835.733333333334, 0.03, 25
	_, total := Escalate(base, rate, n)

	closed := base * (math.Pow(1+rate, float64(n)) - 1) / rate
	assert.InDelta(t, closed, total, 1e-6)
}

func TestEscalate_EmptyHorizon(t *testing.T) {
	for _, years := range []int{0, -3} {
		series, total := Escalate(100, 0.03, years)
		assert.Empty(t, series)
		assert.NotNil(t, series)
		assert.Zero(t, total)
	}
}

func TestEscalate_HorizonsSharePrefix(t *testing.T) {
	s20, _ := Escalate(11835.73, DefaultEscalationRate, 20)
	s25, _ := Escalate(11835.73, DefaultEscalationRate, 25)

	assert.Equal(t, s20, s25[:20])
}
