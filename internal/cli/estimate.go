package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/poolheat/internal/config"
	"github.com/rshade/poolheat/internal/engine"
	"github.com/rshade/poolheat/internal/logging"
	"github.com/rshade/poolheat/internal/tui"
)

// EstimateParams holds the parameters for the estimate command execution.
// Exported for testing.
type EstimateParams struct {
	InputFlags

	// Batch mode
	SitesPath string

	// Common flags
	Interactive bool
	Output      string
	Location    string
}

// NewEstimateCmd creates the "estimate" command.
//
// The command supports three modes:
//
// 1. Single-site mode: --pool-area (required) plus optional input flags.
//
// 2. Batch mode: --sites FILE estimates every pool listed in a YAML file.
//
// 3. Interactive mode: --interactive opens an editor where every committed
// change recomputes the estimate.
//
// Omitted inputs fall back to the defaults section of the configuration.
func NewEstimateCmd() *cobra.Command {
	var params EstimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate cost, incentives, savings and payback for a solar pool heater",
		Long: `Estimate the panels, installed cost, incentives, gas savings, payback and
emissions offset of heating a pool with solar collectors instead of a gas boiler.

Supports three modes:
  - Single site: --pool-area plus optional input flags
  - Batch: --sites FILE estimates several independent pools
  - Interactive: --interactive edits inputs and recomputes on every change

Examples:
  # Year-round heating at $2.00/therm
  poolheat estimate --pool-area 2000 --gas-cost 2.00

  # Seasonal heating with a $5,000 local rebate
  poolheat estimate --pool-area 1200 --season march-to-thanksgiving \
    --local-incentive --local-incentive-kind fixed --local-incentive-value 5000

  # Every pool in a sites file, as NDJSON
  poolheat estimate --sites sites.yaml --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	addInputFlags(cmd, &params.InputFlags)

	cmd.Flags().StringVar(&params.SitesPath, "sites", "", "Path to a YAML file listing several sites to estimate")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "Launch interactive TUI mode")
	cmd.Flags().StringVar(&params.Output, "output", "",
		"Output format (table, json, ndjson) (default from config)")
	cmd.Flags().StringVar(&params.Location, "location", "", "Location label shown with the estimate")

	return cmd
}

// ValidateEstimateFlags validates that the estimate command flags are consistent.
// Exported for testing.
//
// Rules:
//   - --sites cannot be combined with single-site input flags or --interactive
//   - Single-site mode requires --pool-area unless --interactive is set
//   - --local-incentive-kind and --local-incentive-value require --local-incentive
//   - --output must be table, json or ndjson when set
//
// changed reports whether the user set a flag explicitly.
func ValidateEstimateFlags(params *EstimateParams, changed func(string) bool) error {
	if params.SitesPath != "" {
		for _, name := range inputFlagNames {
			if changed(name) {
				return fmt.Errorf("cannot combine --sites with --%s; set per-site inputs in the sites file", name)
			}
		}
		if params.Interactive {
			return errors.New("cannot combine --sites with --interactive")
		}
	} else if !changed(flagPoolArea) && !params.Interactive {
		return errors.New("--pool-area is required (or use --sites or --interactive)")
	}

	if !params.LocalIncentive && (changed(flagLocalIncentiveKind) || changed(flagLocalIncentiveValue)) {
		return fmt.Errorf("--%s and --%s require --%s",
			flagLocalIncentiveKind, flagLocalIncentiveValue, flagLocalIncentive)
	}

	if params.Output != "" && !validOutputFormat(params.Output) {
		return fmt.Errorf("%w: %q (must be table, json or ndjson)", config.ErrInvalidOutputFormat, params.Output)
	}

	return nil
}

// executeEstimate runs the estimate workflow.
//
// It validates flags, applies configuration defaults, executes the selected
// mode and renders results. Input problems are returned as ExitError with
// ExitCodeInvalidInput.
func executeEstimate(cmd *cobra.Command, params EstimateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	changed := cmd.Flags().Changed
	if err := ValidateEstimateFlags(&params, changed); err != nil {
		return invalidInput(err)
	}

	cfg := config.GetGlobalConfig()
	if err := cfg.Model.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if params.Output == "" {
		params.Output = cfg.Output.DefaultFormat
	}
	if !validOutputFormat(params.Output) {
		return invalidInput(fmt.Errorf("%w: %q", config.ErrInvalidOutputFormat, params.Output))
	}
	if params.Location == "" {
		params.Location = cfg.Report.Location
	}
	applyInputDefaults(changed, &params.InputFlags, cfg.Defaults)

	log.Debug().Ctx(ctx).
		Str("operation", "estimate").
		Float64("pool_area_sqft", params.PoolArea).
		Str("season", params.Season).
		Float64("gas_cost_per_therm", params.GasCost).
		Bool("local_incentive", params.LocalIncentive).
		Str("sites_path", params.SitesPath).
		Bool("interactive", params.Interactive).
		Msg("starting estimate")

	var err error
	switch {
	case params.SitesPath != "":
		err = executeBatchEstimate(cmd, params, cfg)
	case params.Interactive:
		err = executeInteractiveEstimate(cmd, params, cfg)
	default:
		err = executeSingleEstimate(cmd, params, cfg)
	}
	if err != nil {
		return err
	}

	log.Info().Ctx(ctx).
		Str("operation", "estimate").
		Dur("duration_ms", time.Since(start)).
		Msg("estimate complete")

	return nil
}

func tableOptionsFor(cfg *config.Config) tableOptions {
	return tableOptions{
		PaybackHorizon: cfg.Model.PaybackHorizonYears,
		Precision:      cfg.Output.Precision,
	}
}

// executeSingleEstimate computes and renders one site.
func executeSingleEstimate(cmd *cobra.Command, params EstimateParams, cfg *config.Config) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	in, err := BuildInputs(params.InputFlags)
	if err != nil {
		return invalidInput(err)
	}

	res := cfg.Model.Compute(in)
	log.Debug().Ctx(ctx).
		Int("panels_needed", res.PanelsNeeded).
		Float64("net_system_cost", res.NetSystemCost).
		Bool("payback_defined", res.PaybackYears.Valid).
		Msg("estimate computed")

	view := estimateView{Location: params.Location, Inputs: in, Result: res}
	return renderEstimateResult(cmd.OutOrStdout(), params.Output, view, tableOptionsFor(cfg))
}

// executeBatchEstimate loads a sites file and estimates every site concurrently.
func executeBatchEstimate(cmd *cobra.Command, params EstimateParams, cfg *config.Config) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	sites, err := LoadSites(params.SitesPath, defaultInputs(cfg.Defaults))
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("sites_path", params.SitesPath).Msg("failed to load sites file")
		if errors.Is(err, os.ErrNotExist) {
			return err
		}
		return invalidInput(err)
	}
	log.Debug().Ctx(ctx).Int("site_count", len(sites)).Msg("sites loaded")

	results, err := engine.ComputeBatch(ctx, cfg.Model, sites)
	if err != nil {
		return fmt.Errorf("estimating sites: %w", err)
	}

	return renderBatchResults(cmd.OutOrStdout(), params.Output, results, tableOptionsFor(cfg))
}

// executeInteractiveEstimate launches the interactive estimator seeded with the
// flag inputs. Each committed edit recomputes through the configured model;
// when the user quits, the final estimate is printed in the selected format.
func executeInteractiveEstimate(cmd *cobra.Command, params EstimateParams, cfg *config.Config) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return invalidInput(errors.New("interactive mode requires a terminal"))
	}

	in, err := BuildInputs(params.InputFlags)
	if err != nil {
		return invalidInput(err)
	}

	log.Debug().Ctx(ctx).Msg("launching interactive TUI")

	model := cfg.Model
	recompute := func(recomputeCtx context.Context, next engine.Inputs) (engine.Result, error) {
		if err := recomputeCtx.Err(); err != nil {
			return engine.Result{}, err
		}
		return model.Compute(next), nil
	}

	m := tui.NewEstimateModel(ctx, in, model.Compute(in), model.PaybackHorizonYears, recompute)
	m.SetLocation(params.Location)
	m.SetPrecision(cfg.Output.Precision)

	final, err := tui.RunEstimate(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if err != nil {
		return err
	}

	view := estimateView{Location: params.Location, Inputs: final.Inputs(), Result: final.Result()}
	return renderEstimateResult(cmd.OutOrStdout(), params.Output, view, tableOptionsFor(cfg))
}
