package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		therms    float64
		wantTons  float64
		wantTrees int64
	}{
		{
			name:      "reference pool",
			therms:    5917.866666666667,
			wantTons:  31.3647,
			wantTrees: 1382,
		},
		{
			name:      "zero therms",
			therms:    0,
			wantTons:  0,
			wantTrees: 0,
		},
		{
			name:      "just enough for one tree",
			therms:    2.2,
			wantTons:  0.01166,
			wantTrees: 1,
		},
		{
			name:      "rounds below half a tree to zero",
			therms:    2.0,
			wantTons:  0.0106,
			wantTrees: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.therms, DefaultFactors())

			assert.InDelta(t, tt.wantTons, got.CO2Tons, 0.0001)
			assert.Equal(t, tt.wantTrees, got.Trees)
		})
	}
}

func TestCalculate_MatchesFormula(t *testing.T) {
	for therms := 0.0; therms < 20000; therms += 123.4 {
		got := Calculate(therms, DefaultFactors())

		tons := therms * 0.0053
		assert.InDelta(t, tons, got.CO2Tons, 1e-12)
		assert.Equal(t, int64(math.Round(tons/0.0227)), got.Trees)
	}
}

func TestCalculate_ZeroTreeFactor(t *testing.T) {
	got := Calculate(1000, Factors{TonsCO2PerTherm: TonsCO2PerTherm})

	assert.Positive(t, got.CO2Tons)
	assert.Zero(t, got.Trees, "a zero divisor must not produce an infinite tree count")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		trees int64
		want  string
	}{
		{"reference pool", 1382, "Equivalent to the yearly uptake of ~1,382 trees"},
		{"single tree is singular", 1, "Equivalent to the yearly uptake of ~1 tree"},
		{"two trees", 2, "Equivalent to the yearly uptake of ~2 trees"},
		{"nothing to describe", 0, ""},
		{"negative offset", -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.trees))
		})
	}
}

func TestFactors_Validate(t *testing.T) {
	require.NoError(t, DefaultFactors().Validate())

	tests := []struct {
		name    string
		factors Factors
	}{
		{name: "zero per therm", factors: Factors{TonsCO2PerTherm: 0, TonsCO2PerTree: TonsCO2PerTree}},
		{name: "negative per tree", factors: Factors{TonsCO2PerTherm: TonsCO2PerTherm, TonsCO2PerTree: -1}},
		{name: "NaN per therm", factors: Factors{TonsCO2PerTherm: math.NaN(), TonsCO2PerTree: TonsCO2PerTree}},
		{name: "infinite per tree", factors: Factors{TonsCO2PerTherm: TonsCO2PerTherm, TonsCO2PerTree: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.factors.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFactor)
		})
	}
}
