package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseSeason(t *testing.T) {
	tests := []struct {
		input   string
		want    Season
		wantErr bool
	}{
		{input: "full-year", want: SeasonFullYear},
		{input: "FULL", want: SeasonFullYear},
		{input: " year-round ", want: SeasonFullYear},
		{input: "march-to-thanksgiving", want: SeasonMarchToThanksgiving},
		{input: "seasonal", want: SeasonMarchToThanksgiving},
		{input: "summer", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeason(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownSeason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIncentiveKind(t *testing.T) {
	got, err := ParseIncentiveKind("Percent")
	require.NoError(t, err)
	assert.Equal(t, IncentivePercent, got)

	got, err = ParseIncentiveKind("fixed-amount")
	require.NoError(t, err)
	assert.Equal(t, IncentiveFixedAmount, got)

	_, err = ParseIncentiveKind("rebate")
	assert.ErrorIs(t, err, ErrUnknownIncentiveKind)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "full-year", SeasonFullYear.String())
	assert.Equal(t, "March to Thanksgiving", SeasonMarchToThanksgiving.Label())
	assert.Equal(t, "Season(7)", Season(7).String())
	assert.Equal(t, "fixed", IncentiveFixedAmount.String())
	assert.Equal(t, "IncentiveKind(3)", IncentiveKind(3).String())
}

func TestInputs_YAMLRoundTrip(t *testing.T) {
	src := `
pool_area_sqft: 2000
desired_temp_f: 84
season: march-to-thanksgiving
gas_cost_per_therm: 1.75
local_incentive_enabled: true
local_incentive_kind: fixed
local_incentive_value: 5000
`
	var in Inputs
	require.NoError(t, yaml.Unmarshal([]byte(src), &in))

	assert.Equal(t, Inputs{
		PoolAreaSqft:          2000,
		DesiredTempF:          84,
		Season:                SeasonMarchToThanksgiving,
		GasCostPerTherm:       1.75,
		LocalIncentiveEnabled: true,
		LocalIncentiveKind:    IncentiveFixedAmount,
		LocalIncentiveValue:   5000,
	}, in)

	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "season: march-to-thanksgiving")
	assert.Contains(t, string(out), "local_incentive_kind: fixed")
}

func TestInputs_YAMLRejectsUnknownSeason(t *testing.T) {
	var in Inputs
	err := yaml.Unmarshal([]byte("season: winter\n"), &in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSeason)
}

func TestResult_JSONSentinels(t *testing.T) {
	t.Run("undefined values encode as null", func(t *testing.T) {
		got := ComputeEstimate(Inputs{GasCostPerTherm: 2})

		data, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"roi_20_percent":null`)
		assert.Contains(t, string(data), `"payback_years":1`)
	})

	t.Run("defined values encode as numbers", func(t *testing.T) {
		got := ComputeEstimate(referenceInputs())

		data, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"payback_years":6`)
		assert.NotContains(t, string(data), `null`)
	})
}

func TestNullValues_UnmarshalJSON(t *testing.T) {
	var n NullInt
	require.NoError(t, json.Unmarshal([]byte("7"), &n))
	assert.Equal(t, SomeInt(7), n)
	require.NoError(t, json.Unmarshal([]byte("null"), &n))
	assert.False(t, n.Valid)

	var f NullFloat
	require.NoError(t, json.Unmarshal([]byte("12.5"), &f))
	assert.Equal(t, SomeFloat(12.5), f)
	require.NoError(t, json.Unmarshal([]byte(" null "), &f))
	assert.False(t, f.Valid)
}
