package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/poolheat/internal/config"
	"github.com/rshade/poolheat/internal/engine"
)

func TestGet(t *testing.T) {
	isolateHome(t)
	cfg := config.Default()

	v, err := cfg.Get("output.default_format")
	require.NoError(t, err)
	assert.Equal(t, "table", v)

	v, err = cfg.Get("model.panel_cost")
	require.NoError(t, err)
	assert.EqualValues(t, 3750, v)

	v, err = cfg.Get("defaults.season")
	require.NoError(t, err)
	assert.Equal(t, "full-year", v)

	v, err = cfg.Get("model.emissions")
	require.NoError(t, err)
	assert.IsType(t, map[string]any{}, v)
}

func TestGet_UnknownKey(t *testing.T) {
	isolateHome(t)
	cfg := config.Default()

	for _, key := range []string{"nope", "output.nope", "output.default_format.deeper"} {
		_, err := cfg.Get(key)
		require.Error(t, err, key)
		assert.ErrorIs(t, err, config.ErrUnknownKey)
	}
}

func TestSet(t *testing.T) {
	isolateHome(t)
	cfg := config.Default()

	require.NoError(t, cfg.Set("model.escalation_rate", "0.045"))
	require.NoError(t, cfg.Set("defaults.season", "seasonal"))
	require.NoError(t, cfg.Set("report.location", "Austin, TX"))
	require.NoError(t, cfg.Set("model.emissions.tons_co2_per_tree", "0.03"))

	assert.InDelta(t, 0.045, cfg.Model.EscalationRate, 1e-12)
	assert.Equal(t, engine.SeasonMarchToThanksgiving, cfg.Defaults.Season)
	assert.Equal(t, "Austin, TX", cfg.Report.Location)
	assert.InDelta(t, 0.03, cfg.Model.Emissions.TonsCO2PerTree, 1e-12)
	assert.InDelta(t, engine.DefaultPanelCost, cfg.Model.PanelCost, 1e-9, "other keys untouched")
}

func TestSet_Errors(t *testing.T) {
	isolateHome(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown leaf", "model.magic", "1"},
		{"unknown section", "plugins.aws", "1"},
		{"section not value", "model", "1"},
		{"wrong type", "model.panel_cost", "expensive"},
		{"bad season", "defaults.season", "winter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			before := *cfg

			require.Error(t, cfg.Set(tt.key, tt.value))
			assert.Equal(t, before.Model, cfg.Model, "failed Set leaves config unchanged")
			assert.Equal(t, before.Defaults, cfg.Defaults)
		})
	}
}

func TestList(t *testing.T) {
	isolateHome(t)
	cfg := config.Default()

	entries, err := cfg.List()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "model.emissions.tons_co2_per_therm")
	assert.Contains(t, keys, "defaults.gas_cost_per_therm")
	assert.Contains(t, keys, "version")
	assert.NotContains(t, keys, "model", "only leaves are listed")
}
