package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/poolheat/internal/config"
	"github.com/rshade/poolheat/internal/logging"
	"github.com/rshade/poolheat/internal/report"
)

const reportFilePerm = 0o600

// ReportParams holds the parameters for the report command execution.
// Exported for testing.
type ReportParams struct {
	InputFlags

	Format   string
	OutPath  string
	Save     bool
	CSVPath  string
	Title    string
	Location string
}

// NewReportCmd creates the "report" command, which renders a shareable
// proposal for a single site.
func NewReportCmd() *cobra.Command {
	var params ReportParams

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a solar pool heating proposal report",
		Long: `Generate a report for a single site covering inputs, system sizing,
incentives, savings, payback, the cumulative cash flow and the emissions offset.

The report is written as text, markdown or JSON. --csv additionally writes the
cumulative cash-flow series for charting. --save keeps the report in the
project's .poolheat/reports directory, named by its report ID.`,
		Example: `  # Text report on stdout
  poolheat report --pool-area 2000

  # Markdown proposal for a client plus the chart data
  poolheat report --pool-area 2000 --location "Phoenix, AZ" \
    --format markdown --out proposal.md --csv cashflow.csv

  # Keep a copy with the project (run "poolheat config init" first)
  poolheat report --pool-area 2000 --format markdown --save`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReport(cmd, params)
		},
	}

	addInputFlags(cmd, &params.InputFlags)

	cmd.Flags().StringVar(&params.Format, "format", "",
		"Report format (text, markdown, json) (default from config, or inferred from --out)")
	cmd.Flags().StringVarP(&params.OutPath, "out", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&params.Save, "save", false,
		"Save the report under the project's .poolheat/reports directory")
	cmd.Flags().StringVar(&params.CSVPath, "csv", "", "Also write the cumulative cash-flow series as CSV")
	cmd.Flags().StringVar(&params.Title, "title", "", "Report title")
	cmd.Flags().StringVar(&params.Location, "location", "", "Location label (default from config)")

	return cmd
}

// ResolveReportFormat picks the report format: the flag, then the --out
// extension, then the configured default.
// Exported for testing.
func ResolveReportFormat(flagValue, outPath, configured string) (report.Format, error) {
	if flagValue != "" {
		return report.ParseFormat(flagValue)
	}
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".md", ".markdown":
		return report.FormatMarkdown, nil
	case ".json":
		return report.FormatJSON, nil
	case ".txt":
		return report.FormatText, nil
	}
	return report.ParseFormat(configured)
}

// executeReport builds the report document and writes it (and the optional CSV).
func executeReport(cmd *cobra.Command, params ReportParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	changed := cmd.Flags().Changed
	if !changed(flagPoolArea) {
		return invalidInput(errors.New("--pool-area is required"))
	}
	if !params.LocalIncentive && (changed(flagLocalIncentiveKind) || changed(flagLocalIncentiveValue)) {
		return invalidInput(fmt.Errorf("--%s and --%s require --%s",
			flagLocalIncentiveKind, flagLocalIncentiveValue, flagLocalIncentive))
	}

	if params.Save && params.OutPath != "" {
		return invalidInput(errors.New("--save and --out are mutually exclusive"))
	}
	projectDir := config.GetResolvedProjectDir()
	reportsDir := ""
	if params.Save {
		if projectDir == "" {
			return invalidInput(errors.New("--save requires a project directory (run \"poolheat config init\" or pass --project-dir)"))
		}
		reportsDir = config.ReportsDir(projectDir)
	}

	cfg := config.GetGlobalConfig()
	if err := cfg.Model.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	f, err := ResolveReportFormat(params.Format, params.OutPath, cfg.Report.Format)
	if err != nil {
		return invalidInput(err)
	}

	applyInputDefaults(changed, &params.InputFlags, cfg.Defaults)
	in, err := BuildInputs(params.InputFlags)
	if err != nil {
		return invalidInput(err)
	}

	location := params.Location
	if location == "" {
		location = cfg.Report.Location
	}

	res := cfg.Model.Compute(in)
	doc := report.Build(in, res, report.Options{
		Title:               params.Title,
		Location:            location,
		Contact:             cfg.Report.Contact,
		Disclaimer:          cfg.Report.Disclaimer,
		PaybackHorizonYears: cfg.Model.PaybackHorizonYears,
		Precision:           cfg.Output.Precision,
	})

	outPath := params.OutPath
	if reportsDir != "" {
		outPath = filepath.Join(reportsDir, doc.ID+f.Ext())
		// Saved reports must not end up in version control.
		if _, err = config.EnsureGitignore(projectDir); err != nil {
			return fmt.Errorf("preparing %s: %w", reportsDir, err)
		}
	}

	log.Debug().Ctx(ctx).
		Str("operation", "report").
		Str("report_id", doc.ID).
		Str("format", string(f)).
		Str("out", outPath).
		Msg("rendering report")

	if err = writeOutput(cmd, outPath, func(w io.Writer) error {
		return report.Render(w, doc, f)
	}); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if params.CSVPath != "" {
		if err = writeOutput(cmd, params.CSVPath, func(w io.Writer) error {
			return report.WriteCashFlowCSV(w, doc.CashFlow)
		}); err != nil {
			return fmt.Errorf("writing cash-flow CSV: %w", err)
		}
	}

	log.Info().Ctx(ctx).
		Str("operation", "report").
		Str("report_id", doc.ID).
		Dur("duration_ms", time.Since(start)).
		Msg("report complete")

	return nil
}

// writeOutput runs render against path, or against stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, render func(io.Writer) error) error {
	if path == "" {
		return render(cmd.OutOrStdout())
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, reportFilePerm)
	if err != nil {
		return err
	}
	if err = render(file); err != nil {
		_ = file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}

	cmd.PrintErrf("Wrote %s\n", path)
	return nil
}
