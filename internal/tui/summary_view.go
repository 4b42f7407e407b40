package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/poolheat/internal/engine"
	"github.com/rshade/poolheat/internal/format"
	"github.com/rshade/poolheat/internal/greenops"
)

// Layout constants.
const (
	summaryMetricWidth = 24
	summaryValueWidth  = 20
	chartLabelWidth    = 4
	chartValueWidth    = 11
	chartMinBarWidth   = 10
	borderPadding      = 2
	inputLabelWidth    = 22
	inputValueWidth    = 24
)

// SummaryRows returns the metric/value pairs shown in the summary table.
// precision is the number of decimals for therms and CO2 tons.
func SummaryRows(res engine.Result, horizon, precision int) []table.Row {
	return []table.Row{
		{"Panels needed", format.Number(int64(res.PanelsNeeded))},
		{"System cost", format.Currency(res.SystemCost)},
		{"Federal ITC", format.Currency(res.FederalITC)},
		{"Depreciation benefit", format.Currency(res.DepreciationBenefit)},
		{"Local incentive", format.Currency(res.LocalIncentiveAmount)},
		{"Net system cost", format.Currency(res.NetSystemCost)},
		{"Annual therms", format.Therms(res.AnnualTherms, precision)},
		{"First-year savings", format.Currency(res.FirstYearSavings)},
		{format.Horizon(res.PaybackHorizonYears(), "savings"), format.Currency(res.Total20yrSavings)},
		{format.Horizon(res.CashFlowHorizonYears(), "savings"), format.Currency(res.Total25yrSavings)},
		{"Payback", format.Payback(res.PaybackYears.Int, res.PaybackYears.Valid, horizon)},
		{format.Horizon(res.PaybackHorizonYears(), "ROI"), format.ROI(res.ROI20Percent.Float, res.ROI20Percent.Valid)},
		{"CO2 avoided / year", format.Tons(res.AnnualCO2Tons, precision)},
		{"Tree equivalent", format.Trees(res.AnnualTreesEquivalent)},
	}
}

// NewSummaryTable creates a table model listing the estimate figures.
func NewSummaryTable(res engine.Result, horizon, precision, height int) table.Model {
	columns := []table.Column{
		{Title: "Metric", Width: summaryMetricWidth},
		{Title: "Value", Width: summaryValueWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(SummaryRows(res, horizon, precision)),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// RenderEquivalency renders the tree equivalency phrase, or "" when the
// offset is too small to describe.
func RenderEquivalency(trees int64) string {
	text := greenops.Describe(trees)
	if text == "" {
		return ""
	}
	return SubtleStyle.Render(IconArrowRight + " " + text)
}

// RenderCashFlowChart draws the cumulative cash position as horizontal bars,
// one row per year. Bars are scaled to the largest absolute position; years
// below zero render in the warning color.
func RenderCashFlowChart(points []engine.CashFlowPoint, width int) string {
	if len(points) == 0 {
		return SubtleStyle.Render("No cash flow to display.")
	}

	barWidth := width - chartLabelWidth - chartValueWidth - borderPadding*2
	if barWidth < chartMinBarWidth {
		barWidth = chartMinBarWidth
	}

	maxAbs := 0.0
	for _, p := range points {
		maxAbs = math.Max(maxAbs, math.Abs(p.Cumulative))
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Cumulative Cash Flow"))
	sb.WriteString("\n")

	for _, p := range points {
		n := 0
		if maxAbs > 0 {
			n = int(math.Round(math.Abs(p.Cumulative) / maxAbs * float64(barWidth)))
		}
		style := OKStyle
		if p.Cumulative < 0 {
			style = WarningStyle
		}
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%*d ", chartLabelWidth-1, p.Year)))
		sb.WriteString(ValueStyle.Render(fmt.Sprintf("%*s ", chartValueWidth-1, format.Currency(p.Cumulative))))
		sb.WriteString(style.Render(strings.Repeat(IconBar, n)))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// RenderBreakEven summarizes where the cash position turns positive.
func RenderBreakEven(points []engine.CashFlowPoint) string {
	for _, p := range points {
		if p.Cumulative >= 0 {
			return OKStyle.Render(fmt.Sprintf("%s Cash positive in year %d", IconArrowUp, p.Year))
		}
	}
	return WarningStyle.Render(fmt.Sprintf("%s Not cash positive within %d years", IconArrowDown, len(points)-1))
}

// RenderEstimateHeader renders the title bar.
func RenderEstimateHeader(location string) string {
	title := TitleStyle.Render("Solar Pool Heating Estimate")
	if location == "" {
		return title
	}
	return title + "\n" + LabelStyle.Render("Location: ") + ValueStyle.Render(location)
}

// RenderEstimateHelp renders keyboard shortcuts.
func RenderEstimateHelp() string {
	shortcuts := []string{
		"↑/↓: Navigate",
		"Enter: Edit",
		"Space: Toggle",
		"c: Cash flow",
		"q: Quit",
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Join(shortcuts, " | "))
}

// RenderLoadingIndicator renders the recompute indicator.
func RenderLoadingIndicator() string {
	return lipgloss.NewStyle().
		Foreground(ColorSpinner).
		Bold(true).
		Render("Recalculating...")
}
