// Package report turns an estimate into a customer-facing document.
//
// Build assembles a Document from inputs and a result; Render writes it as
// plain text, Markdown or JSON. Every figure is formatted through the format
// package so a report always matches the CLI and the interactive view.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/poolheat/internal/engine"
	"github.com/rshade/poolheat/internal/format"
	"github.com/rshade/poolheat/internal/greenops"
)

// Format is an output format for Render.
type Format string

// Supported report formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Ext returns the file extension, with the dot, for files in format f.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// ErrUnknownFormat is returned for an unsupported report format.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat parses a report format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (must be text, markdown or json)", ErrUnknownFormat, s)
	}
}

// Options customizes a report.
type Options struct {
	Title      string
	Location   string
	Contact    string
	Disclaimer string

	// PaybackHorizonYears is the horizon named when payback is not reached.
	// Zero means engine.DefaultPaybackHorizonYears.
	PaybackHorizonYears int

	// Precision is the number of decimals for therms and CO2 tons. Callers
	// pass the same value the CLI table uses.
	Precision int

	// GeneratedAt defaults to the current UTC time.
	GeneratedAt time.Time
}

// Line is one labelled figure.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section groups related lines under a heading.
type Section struct {
	Title string `json:"title"`
	Lines []Line `json:"lines"`
}

// Document is a rendered-format-independent report.
type Document struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	GeneratedAt time.Time              `json:"generated_at"`
	Location    string                 `json:"location,omitempty"`
	Sections    []Section              `json:"sections"`
	CashFlow    []engine.CashFlowPoint `json:"cash_flow"`
	Contact     string                 `json:"contact,omitempty"`
	Disclaimer  string                 `json:"disclaimer,omitempty"`

	Inputs engine.Inputs `json:"inputs"`
	Result engine.Result `json:"result"`
}

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "Solar Pool Heating Estimate"

// Build assembles a report document. It never fails: undefined payback and
// ROI become placeholder text.
func Build(in engine.Inputs, res engine.Result, opts Options) Document {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	generated := opts.GeneratedAt
	if generated.IsZero() {
		generated = time.Now().UTC()
	}
	horizon := opts.PaybackHorizonYears
	if horizon <= 0 {
		horizon = engine.DefaultPaybackHorizonYears
	}

	cashFlow := res.CumulativeCashFlow
	if cashFlow == nil {
		cashFlow = []engine.CashFlowPoint{}
	}

	return Document{
		ID:          ulid.Make().String(),
		Title:       title,
		GeneratedAt: generated,
		Location:    opts.Location,
		Sections:    sections(in, res, horizon, opts.Precision),
		CashFlow:    cashFlow,
		Contact:     opts.Contact,
		Disclaimer:  opts.Disclaimer,
		Inputs:      in,
		Result:      res,
	}
}

func sections(in engine.Inputs, res engine.Result, horizon, precision int) []Section {
	return []Section{
		{
			Title: "Pool",
			Lines: []Line{
				{"Pool surface area", format.Float(in.PoolAreaSqft, 0) + " sq ft"},
				{"Desired temperature", format.Float(in.DesiredTempF, 0) + " °F"},
				{"Heating season", in.Season.Label() + " (" + format.Number(int64(res.SeasonDays)) + " days)"},
				{"Gas cost", format.CurrencyCents(in.GasCostPerTherm) + " per therm"},
			},
		},
		{
			Title: "System",
			Lines: []Line{
				{"Panels needed", format.Number(int64(res.PanelsNeeded))},
				{"System cost", format.Currency(res.SystemCost)},
			},
		},
		{
			Title: "Incentives",
			Lines: incentiveLines(in, res),
		},
		{
			Title: "Energy & Savings",
			Lines: []Line{
				{"Annual gas displaced", format.Therms(res.AnnualTherms, precision)},
				{"First-year savings", format.Currency(res.FirstYearSavings)},
				{format.Horizon(res.PaybackHorizonYears(), "savings"), format.Currency(res.Total20yrSavings)},
				{format.Horizon(res.CashFlowHorizonYears(), "savings"), format.Currency(res.Total25yrSavings)},
			},
		},
		{
			Title: "Return",
			Lines: []Line{
				{"Payback", format.Payback(res.PaybackYears.Int, res.PaybackYears.Valid, horizon)},
				{format.Horizon(res.PaybackHorizonYears(), "ROI"), format.ROI(res.ROI20Percent.Float, res.ROI20Percent.Valid)},
			},
		},
		{
			Title: "Environmental Impact",
			Lines: environmentLines(res, precision),
		},
	}
}

func environmentLines(res engine.Result, precision int) []Line {
	lines := []Line{
		{"CO2 avoided per year", format.Tons(res.AnnualCO2Tons, precision)},
		{"Tree equivalent", format.Trees(res.AnnualTreesEquivalent)},
	}
	if text := greenops.Describe(res.AnnualTreesEquivalent); text != "" {
		lines = append(lines, Line{"In other words", text})
	}
	return lines
}

func incentiveLines(in engine.Inputs, res engine.Result) []Line {
	lines := []Line{
		{"Federal tax credit (ITC)", format.Currency(res.FederalITC)},
		{"Depreciation benefit", format.Currency(res.DepreciationBenefit)},
	}
	if in.LocalIncentiveEnabled {
		label := "Local incentive"
		if in.LocalIncentiveKind == engine.IncentivePercent {
			label += " (" + format.Float(in.LocalIncentiveValue, 1) + "%)"
		}
		lines = append(lines, Line{label, format.Currency(res.LocalIncentiveAmount)})
	}
	return append(lines,
		Line{"Total incentives", format.Currency(res.TotalIncentives)},
		Line{"Net system cost", format.Currency(res.NetSystemCost)},
	)
}
