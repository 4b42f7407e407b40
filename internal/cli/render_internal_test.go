package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/poolheat/internal/engine"
)

func TestDescribeLocalIncentive(t *testing.T) {
	in := engine.Inputs{}
	assert.Equal(t, "none", describeLocalIncentive(in))

	in.LocalIncentiveEnabled = true
	in.LocalIncentiveValue = 12.5
	assert.Equal(t, "12.5% of system cost", describeLocalIncentive(in))

	in.LocalIncentiveKind = engine.IncentiveFixedAmount
	in.LocalIncentiveValue = 2500
	assert.Equal(t, "$2,500 fixed", describeLocalIncentive(in))
}

func TestRenderEstimateResultTable_UndefinedFigures(t *testing.T) {
	opts := tableOptions{PaybackHorizon: 20, Precision: 2}

	// No pool: zero net cost, so ROI is undefined and payback is immediate.
	empty := engine.Inputs{Season: engine.SeasonFullYear, GasCostPerTherm: 2}
	var buf bytes.Buffer
	require.NoError(t, renderEstimateResult(&buf, outputFormatTable,
		estimateView{Inputs: empty, Result: engine.ComputeEstimate(empty)}, opts))

	out := buf.String()
	assert.NotContains(t, out, "Location:")
	assert.Regexp(t, `20-year ROI\s+N/A`, out)
	assert.Regexp(t, `Payback\s+1 year\n`, out)
	assert.Contains(t, out, "~0 trees")

	// Cheap gas never recovers the cost.
	cheap := engine.Inputs{PoolAreaSqft: 2000, Season: engine.SeasonFullYear, GasCostPerTherm: 0.01}
	buf.Reset()
	require.NoError(t, renderEstimateResult(&buf, outputFormatTable,
		estimateView{Inputs: cheap, Result: engine.ComputeEstimate(cheap)}, opts))
	assert.Contains(t, buf.String(), "Not within 20 years")
}

func TestRenderBatchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderBatchResults(&buf, outputFormatTable, nil, tableOptions{}))
	assert.Equal(t, "No estimation results\n", buf.String())

	buf.Reset()
	require.NoError(t, renderBatchResults(&buf, outputFormatNDJSON, nil, tableOptions{}))
	assert.Empty(t, buf.String())
}

func TestSumBatch(t *testing.T) {
	results := []engine.SiteEstimate{
		{Name: "a", Result: engine.Result{PanelsNeeded: 2, NetSystemCost: 100, AnnualTreesEquivalent: 3}},
		{Name: "b", Result: engine.Result{PanelsNeeded: 5, NetSystemCost: 50.5, AnnualTreesEquivalent: 4}},
	}
	got := sumBatch(results)
	assert.Equal(t, 2, got.Sites)
	assert.Equal(t, 7, got.PanelsNeeded)
	assert.InDelta(t, 150.5, got.NetSystemCost, 1e-9)
	assert.Equal(t, int64(7), got.AnnualTreesEquivalent)
}

func TestInvalidInput(t *testing.T) {
	assert.NoError(t, invalidInput(nil))

	base := errors.New("bad value")
	err := invalidInput(base)
	assert.Equal(t, ExitCodeInvalidInput, ExitCode(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "bad value", err.Error())

	custom := &ExitError{Code: 7, Reason: "custom"}
	assert.Same(t, custom, invalidInput(custom), "existing exit codes are kept")

	assert.Equal(t, ExitCodeError, ExitCode(fmt.Errorf("wrap: %w", base)))
	assert.Equal(t, ExitCodeOK, ExitCode(nil))
}
