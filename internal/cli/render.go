package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/poolheat/internal/config"
	"github.com/rshade/poolheat/internal/engine"
	"github.com/rshade/poolheat/internal/format"
)

// Output format names accepted by --output.
const (
	outputFormatTable  = config.FormatTable
	outputFormatJSON   = config.FormatJSON
	outputFormatNDJSON = config.FormatNDJSON
)

const tabwriterPadding = 2

// estimateView is the JSON shape of a single estimate.
type estimateView struct {
	Location string        `json:"location,omitempty"`
	Inputs   engine.Inputs `json:"inputs"`
	Result   engine.Result `json:"result"`
}

// tableOptions controls human-readable rendering.
type tableOptions struct {
	PaybackHorizon int
	Precision      int
}

// batchTotals sums the additive figures of a batch.
type batchTotals struct {
	Sites                 int     `json:"sites"`
	PanelsNeeded          int     `json:"panels_needed"`
	NetSystemCost         float64 `json:"net_system_cost"`
	FirstYearSavings      float64 `json:"first_year_savings"`
	Total20yrSavings      float64 `json:"total_20yr_savings"`
	AnnualCO2Tons         float64 `json:"annual_co2_tons"`
	AnnualTreesEquivalent int64   `json:"annual_trees_equivalent"`
}

func sumBatch(results []engine.SiteEstimate) batchTotals {
	t := batchTotals{Sites: len(results)}
	for _, r := range results {
		t.PanelsNeeded += r.Result.PanelsNeeded
		t.NetSystemCost += r.Result.NetSystemCost
		t.FirstYearSavings += r.Result.FirstYearSavings
		t.Total20yrSavings += r.Result.Total20yrSavings
		t.AnnualCO2Tons += r.Result.AnnualCO2Tons
		t.AnnualTreesEquivalent += r.Result.AnnualTreesEquivalent
	}
	return t
}

// validOutputFormat reports whether f is a supported --output value.
func validOutputFormat(f string) bool {
	switch f {
	case outputFormatTable, outputFormatJSON, outputFormatNDJSON:
		return true
	default:
		return false
	}
}

// renderEstimateResult renders a single estimate to the output.
func renderEstimateResult(w io.Writer, outputFormat string, view estimateView, opts tableOptions) error {
	switch outputFormat {
	case outputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case outputFormatNDJSON:
		return json.NewEncoder(w).Encode(view)
	default:
		return renderEstimateResultTable(w, view, opts)
	}
}

// renderEstimateResultTable renders a single estimate as aligned label/value rows.
func renderEstimateResultTable(w io.Writer, view estimateView, opts tableOptions) error {
	in, res := view.Inputs, view.Result
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	fmt.Fprintln(tw, "Solar Pool Heating Estimate")
	fmt.Fprintln(tw, "===========================")
	if view.Location != "" {
		fmt.Fprintf(tw, "Location:\t%s\n", view.Location)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Inputs")
	fmt.Fprintln(tw, "------")
	fmt.Fprintf(tw, "  Pool area\t%s sq ft\n", format.Float(in.PoolAreaSqft, 0))
	fmt.Fprintf(tw, "  Desired temperature\t%s °F\n", format.Float(in.DesiredTempF, 0))
	fmt.Fprintf(tw, "  Season\t%s (%d days)\n", in.Season.Label(), res.SeasonDays)
	fmt.Fprintf(tw, "  Gas cost\t%s / therm\n", format.CurrencyCents(in.GasCostPerTherm))
	fmt.Fprintf(tw, "  Local incentive\t%s\n", describeLocalIncentive(in))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Estimate")
	fmt.Fprintln(tw, "--------")
	fmt.Fprintf(tw, "  Panels needed\t%s\n", format.Number(int64(res.PanelsNeeded)))
	fmt.Fprintf(tw, "  System cost\t%s\n", format.Currency(res.SystemCost))
	fmt.Fprintf(tw, "  Federal ITC\t-%s\n", format.Currency(res.FederalITC))
	fmt.Fprintf(tw, "  Depreciation benefit\t-%s\n", format.Currency(res.DepreciationBenefit))
	if in.LocalIncentiveEnabled {
		fmt.Fprintf(tw, "  Local incentive\t-%s\n", format.Currency(res.LocalIncentiveAmount))
	}
	fmt.Fprintf(tw, "  Net system cost\t%s\n", format.Currency(res.NetSystemCost))
	fmt.Fprintf(tw, "  Annual gas displaced\t%s\n", format.Therms(res.AnnualTherms, opts.Precision))
	fmt.Fprintf(tw, "  First-year savings\t%s\n", format.Currency(res.FirstYearSavings))
	fmt.Fprintf(tw, "  %s\t%s\n", format.Horizon(res.PaybackHorizonYears(), "savings"),
		format.Currency(res.Total20yrSavings))
	fmt.Fprintf(tw, "  %s\t%s\n", format.Horizon(res.CashFlowHorizonYears(), "savings"),
		format.Currency(res.Total25yrSavings))
	fmt.Fprintf(tw, "  Payback\t%s\n",
		format.Payback(res.PaybackYears.Int, res.PaybackYears.Valid, opts.PaybackHorizon))
	fmt.Fprintf(tw, "  %s\t%s\n", format.Horizon(res.PaybackHorizonYears(), "ROI"),
		format.ROI(res.ROI20Percent.Float, res.ROI20Percent.Valid))
	fmt.Fprintf(tw, "  CO2 avoided / year\t%s\n", format.Tons(res.AnnualCO2Tons, opts.Precision))
	fmt.Fprintf(tw, "  Tree equivalent\t%s\n", format.Trees(res.AnnualTreesEquivalent))

	return tw.Flush()
}

func describeLocalIncentive(in engine.Inputs) string {
	if !in.LocalIncentiveEnabled {
		return "none"
	}
	if in.LocalIncentiveKind == engine.IncentivePercent {
		return format.Float(in.LocalIncentiveValue, 1) + "% of system cost"
	}
	return format.Currency(in.LocalIncentiveValue) + " fixed"
}

// renderBatchResults renders the estimates of a sites file.
func renderBatchResults(w io.Writer, outputFormat string, results []engine.SiteEstimate, opts tableOptions) error {
	switch outputFormat {
	case outputFormatJSON:
		response := struct {
			Sites  []engine.SiteEstimate `json:"sites"`
			Totals batchTotals           `json:"totals"`
		}{
			Sites:  results,
			Totals: sumBatch(results),
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	case outputFormatNDJSON:
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	default:
		return renderBatchResultsTable(w, results, opts)
	}
}

// renderBatchResultsTable renders one row per site followed by totals.
func renderBatchResultsTable(w io.Writer, results []engine.SiteEstimate, opts tableOptions) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No estimation results")
		return nil
	}

	horizon := results[0].Result.PaybackHorizonYears()
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	fmt.Fprintf(tw, "SITE\tAREA (SQ FT)\tPANELS\tNET COST\tFIRST-YEAR SAVINGS\tPAYBACK\t%d-YR ROI\n", horizon)
	for _, r := range results {
		res := r.Result
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			format.Float(r.Inputs.PoolAreaSqft, 0),
			format.Number(int64(res.PanelsNeeded)),
			format.Currency(res.NetSystemCost),
			format.Currency(res.FirstYearSavings),
			format.Payback(res.PaybackYears.Int, res.PaybackYears.Valid, opts.PaybackHorizon),
			format.ROI(res.ROI20Percent.Float, res.ROI20Percent.Valid),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	t := sumBatch(results)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sites:                  %d\n", t.Sites)
	fmt.Fprintf(w, "Total panels:           %s\n", format.Number(int64(t.PanelsNeeded)))
	fmt.Fprintf(w, "Total net cost:         %s\n", format.Currency(t.NetSystemCost))
	fmt.Fprintf(w, "Total first-year:       %s\n", format.Currency(t.FirstYearSavings))
	fmt.Fprintf(w, "%-24s%s\n", "Total "+format.Horizon(horizon, "savings")+":", format.Currency(t.Total20yrSavings))
	fmt.Fprintf(w, "CO2 avoided / year:     %s (%s)\n",
		format.Tons(t.AnnualCO2Tons, opts.Precision), format.Trees(t.AnnualTreesEquivalent))
	return nil
}
