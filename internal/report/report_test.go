package report_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/poolheat/internal/engine"
	"github.com/rshade/poolheat/internal/format"
	"github.com/rshade/poolheat/internal/report"
)

func referenceInputs() engine.Inputs {
	return engine.Inputs{
		PoolAreaSqft:    2000,
		DesiredTempF:    82,
		Season:          engine.SeasonFullYear,
		GasCostPerTherm: 2.00,
	}
}

func fixedOptions() report.Options {
	return report.Options{
		Location:    "Phoenix, AZ",
		Contact:     "sales@example.com",
		Disclaimer:  "Estimates only.",
		Precision:   format.DefaultPrecision,
		GeneratedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func buildReference(t *testing.T) report.Document {
	t.Helper()
	in := referenceInputs()
	return report.Build(in, engine.ComputeEstimate(in), fixedOptions())
}

func findLine(t *testing.T, doc report.Document, label string) string {
	t.Helper()
	for _, s := range doc.Sections {
		for _, l := range s.Lines {
			if l.Label == label {
				return l.Value
			}
		}
	}
	t.Fatalf("line %q not found", label)
	return ""
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  report.Format
	}{
		{"", report.FormatText},
		{"text", report.FormatText},
		{"MD", report.FormatMarkdown},
		{"markdown", report.FormatMarkdown},
		{"json", report.FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := report.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := report.ParseFormat("pdf")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestFormat_Ext(t *testing.T) {
	assert.Equal(t, ".txt", report.FormatText.Ext())
	assert.Equal(t, ".md", report.FormatMarkdown.Ext())
	assert.Equal(t, ".json", report.FormatJSON.Ext())
}

func TestBuild_ReferenceFigures(t *testing.T) {
	doc := buildReference(t)

	_, err := ulid.Parse(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, report.DefaultTitle, doc.Title)
	assert.Equal(t, "Phoenix, AZ", doc.Location)

	assert.Equal(t, "38", findLine(t, doc, "Panels needed"))
	assert.Equal(t, "$142,500", findLine(t, doc, "System cost"))
	assert.Equal(t, "$42,750", findLine(t, doc, "Federal tax credit (ITC)"))
	assert.Equal(t, "$29,925", findLine(t, doc, "Depreciation benefit"))
	assert.Equal(t, "$69,825", findLine(t, doc, "Net system cost"))
	assert.Equal(t, "5,917.87 therms", findLine(t, doc, "Annual gas displaced"))
	assert.Equal(t, "$11,836", findLine(t, doc, "First-year savings"))
	assert.Equal(t, "6 years", findLine(t, doc, "Payback"))
	assert.Equal(t, "355.5%", findLine(t, doc, "20-year ROI"))
	assert.Equal(t, "~1,382 trees", findLine(t, doc, "Tree equivalent"))
	assert.Equal(t, "Equivalent to the yearly uptake of ~1,382 trees", findLine(t, doc, "In other words"))
	assert.Equal(t, "Full year (365 days)", findLine(t, doc, "Heating season"))

	require.Len(t, doc.CashFlow, 26)
	assert.InDelta(t, -69825.0, doc.CashFlow[0].Cumulative, 0)
}

func TestBuild_UniqueIDs(t *testing.T) {
	a := buildReference(t)
	b := buildReference(t)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestBuild_UndefinedFigures(t *testing.T) {
	in := engine.Inputs{PoolAreaSqft: 0, GasCostPerTherm: 2}
	doc := report.Build(in, engine.ComputeEstimate(in), report.Options{})

	assert.Equal(t, "N/A", findLine(t, doc, "20-year ROI"))
	assert.False(t, doc.GeneratedAt.IsZero())
}

func TestBuild_PaybackNotReached(t *testing.T) {
	in := engine.Inputs{PoolAreaSqft: 2000, Season: engine.SeasonMarchToThanksgiving, GasCostPerTherm: 0.10}
	res := engine.ComputeEstimate(in)
	require.False(t, res.PaybackYears.Valid)

	doc := report.Build(in, res, report.Options{})
	assert.Equal(t, "Not within 20 years", findLine(t, doc, "Payback"))

	doc = report.Build(in, res, report.Options{PaybackHorizonYears: 15})
	assert.Equal(t, "Not within 15 years", findLine(t, doc, "Payback"))
}

func TestBuild_LocalIncentiveLine(t *testing.T) {
	in := referenceInputs()
	in.LocalIncentiveEnabled = true
	in.LocalIncentiveKind = engine.IncentivePercent
	in.LocalIncentiveValue = 10

	doc := report.Build(in, engine.ComputeEstimate(in), report.Options{})
	assert.Equal(t, "$14,250", findLine(t, doc, "Local incentive (10.0%)"))

	in.LocalIncentiveEnabled = false
	doc = report.Build(in, engine.ComputeEstimate(in), report.Options{})
	for _, s := range doc.Sections {
		for _, l := range s.Lines {
			assert.NotContains(t, l.Label, "Local incentive")
		}
	}
}

func TestRender_Text(t *testing.T) {
	doc := buildReference(t)
	var buf bytes.Buffer

	require.NoError(t, report.Render(&buf, doc, report.FormatText))

	out := buf.String()
	assert.Contains(t, out, "SOLAR POOL HEATING ESTIMATE")
	assert.Contains(t, out, "Phoenix, AZ")
	assert.Contains(t, out, doc.ID)
	assert.Contains(t, out, "$69,825")
	assert.Contains(t, out, "-$69,825")
	assert.Contains(t, out, "Contact: sales@example.com")
	assert.Contains(t, out, "Estimates only.")
}

func TestRender_Markdown(t *testing.T) {
	doc := buildReference(t)
	doc.Location = "Pool | Spa"
	var buf bytes.Buffer

	require.NoError(t, report.Render(&buf, doc, report.FormatMarkdown))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Solar Pool Heating Estimate\n"))
	assert.Contains(t, out, "## Incentives")
	assert.Contains(t, out, "| Net system cost | $69,825 |")
	assert.Contains(t, out, `Pool \| Spa`)
	assert.Contains(t, out, "| 0 | -$69,825 |")
	assert.Contains(t, out, "_Estimates only._")
}

func TestRender_JSON(t *testing.T) {
	doc := buildReference(t)
	var buf bytes.Buffer

	require.NoError(t, report.Render(&buf, doc, report.FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, doc.ID, decoded["id"])
	assert.Contains(t, decoded, "sections")
	assert.Contains(t, decoded, "cash_flow")

	result, ok := decoded["result"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 6, result["payback_years"])
}

func TestRender_UnknownFormat(t *testing.T) {
	err := report.Render(&bytes.Buffer{}, buildReference(t), report.Format("pdf"))
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestWriteCashFlowCSV(t *testing.T) {
	points := []engine.CashFlowPoint{
		{Year: 0, Cumulative: -69825},
		{Year: 1, Cumulative: -57989},
		{Year: 2, Cumulative: -45798},
	}
	var buf bytes.Buffer

	require.NoError(t, report.WriteCashFlowCSV(&buf, points))

	assert.Equal(t, "year,cumulative_usd\n0,-69825\n1,-57989\n2,-45798\n", buf.String())
}

func TestWriteCashFlowCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCashFlowCSV(&buf, nil))
	assert.Equal(t, "year,cumulative_usd\n", buf.String())
}

func TestBuild_PrecisionAndHorizonLabels(t *testing.T) {
	in := referenceInputs()
	m := engine.DefaultModel()
	m.PaybackHorizonYears = 15
	m.CashFlowHorizonYears = 30
	res := m.Compute(in)

	doc := report.Build(in, res, report.Options{PaybackHorizonYears: 15, Precision: 0})
	assert.Equal(t, "5,918 therms", findLine(t, doc, "Annual gas displaced"))
	assert.Equal(t, "31 tons", findLine(t, doc, "CO2 avoided per year"))
	assert.Equal(t, format.Currency(res.Total20yrSavings), findLine(t, doc, "15-year savings"))
	assert.Equal(t, format.Currency(res.Total25yrSavings), findLine(t, doc, "30-year savings"))
	assert.Equal(t, format.ROI(res.ROI20Percent.Float, res.ROI20Percent.Valid), findLine(t, doc, "15-year ROI"))
}

func TestBuild_NonFiniteFiguresDoNotPanic(t *testing.T) {
	// The engine accepts any Inputs; a gas price past the validated range
	// overflows the savings to +Inf.
	in := engine.Inputs{PoolAreaSqft: 2000, Season: engine.SeasonFullYear, GasCostPerTherm: 1e308}
	res := engine.ComputeEstimate(in)
	require.True(t, math.IsInf(res.FirstYearSavings, 1))

	var doc report.Document
	require.NotPanics(t, func() { doc = report.Build(in, res, fixedOptions()) })
	assert.Equal(t, format.NotApplicable, findLine(t, doc, "First-year savings"))
}
