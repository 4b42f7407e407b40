package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/poolheat/internal/config"
	"github.com/rshade/poolheat/internal/engine"
	"github.com/rshade/poolheat/internal/format"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration (global file, project overlay and
environment overrides) for syntax and semantic correctness.

This includes:
- Config file version compatibility
- Output, report and logging format names
- Model assumptions (positive panel size and cost, divisors, horizons)
- Estimate defaults (positive gas cost)`,
		Example: `  # Validate current configuration
  poolheat config validate

  # Validate and show detailed information
  poolheat config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	if dir := config.GetResolvedProjectDir(); dir != "" {
		cmd.Printf("  Project directory: %s\n", dir)
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Report format: %s\n", cfg.Report.Format)

	printModelDetails(cmd, cfg)
}

// printModelDetails prints the estimate model assumptions.
func printModelDetails(cmd *cobra.Command, cfg *config.Config) {
	m := cfg.Model
	pct := func(ratio float64) string { return format.Percent(ratio * engine.PercentageMultiplier) }

	cmd.Println("  Model:")
	cmd.Printf("    Panel: %s sq ft, %s installed, %s BTU/day\n",
		format.Float(m.PanelAreaSqft, 0), format.Currency(m.PanelCost), format.Float(m.PanelOutputBTUPerDay, 0))
	cmd.Printf("    Coverage ratio: %s\n", format.Float(m.CoverageRatio, 2))
	cmd.Printf("    Federal ITC: %s, depreciation: %s\n", pct(m.FederalITCRate), pct(m.DepreciationRate))
	cmd.Printf("    Boiler efficiency: %s, escalation: %s/yr\n", pct(m.BoilerEfficiency), pct(m.EscalationRate))
	cmd.Printf("    Horizons: payback %d years, cash flow %d years\n",
		m.PaybackHorizonYears, m.CashFlowHorizonYears)
}
