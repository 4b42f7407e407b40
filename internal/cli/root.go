package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/poolheat/internal/config"
	"github.com/rshade/poolheat/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the poolheat CLI.
// It resolves the project directory, loads layered configuration, wires up
// logging and registers the estimate, report and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		projectDir string
	)

	cmd := &cobra.Command{
		Use:          "poolheat",
		Short:        "Solar pool heating payoff estimator",
		Long:         "poolheat: estimate the cost, incentives, gas savings and payback of a solar pool heating system",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			wd, _ := os.Getwd()
			resolved := config.ResolveProjectDir(ctx, projectDir, wd)
			config.SetResolvedProjectDir(resolved)
			config.SetGlobalConfig(config.NewWithProjectDir(ctx, resolved))

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "",
		"project directory holding a .poolheat/config.yaml overlay (default: search upward from the working directory)")
	cmd.AddCommand(NewEstimateCmd(), NewReportCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Estimate a 2,000 sq ft pool heated year-round at $2.00/therm
  poolheat estimate --pool-area 2000 --gas-cost 2.00

  # Seasonal heating with a 10% local rebate, as JSON
  poolheat estimate --pool-area 1500 --season march-to-thanksgiving \
    --local-incentive --local-incentive-value 10 --output json

  # Estimate several pools from a sites file
  poolheat estimate --sites sites.yaml

  # Adjust inputs interactively
  poolheat estimate --pool-area 2000 --interactive

  # Write a markdown proposal and the cash-flow series
  poolheat report --pool-area 2000 --format markdown --out proposal.md --csv cashflow.csv

  # Initialize configuration
  poolheat config init

  # Change a model assumption
  poolheat config set model.escalation_rate 0.04`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
