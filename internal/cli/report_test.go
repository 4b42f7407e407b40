package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/poolheat/internal/cli"
	"github.com/rshade/poolheat/internal/config"
	"github.com/rshade/poolheat/internal/report"
)

func TestResolveReportFormat(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		outPath    string
		configured string
		want       report.Format
		wantErr    bool
	}{
		{"flag wins", "json", "proposal.md", "text", report.FormatJSON, false},
		{"md extension", "", "out/proposal.md", "text", report.FormatMarkdown, false},
		{"json extension", "", "proposal.JSON", "text", report.FormatJSON, false},
		{"configured default", "", "", "markdown", report.FormatMarkdown, false},
		{"unknown extension uses config", "", "proposal.pdf", "text", report.FormatText, false},
		{"empty everything", "", "", "", report.FormatText, false},
		{"bad flag", "pdf", "", "text", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cli.ResolveReportFormat(tt.flag, tt.outPath, tt.configured)
			if tt.wantErr {
				require.ErrorIs(t, err, report.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportCmd_TextToStdout(t *testing.T) {
	setupCLITest(t)

	out, _, err := executeCmd(t, "report", "--pool-area", "2000", "--location", "Phoenix, AZ")
	require.NoError(t, err)

	assert.Contains(t, out, "SOLAR POOL HEATING ESTIMATE")
	assert.Contains(t, out, "Phoenix, AZ")
	assert.Contains(t, out, "Report ID:")
	assert.Contains(t, out, "$69,825")
	assert.Contains(t, out, "Cumulative Cash Flow")
	assert.Contains(t, out, config.DefaultDisclaimer)
}

func TestReportCmd_FilesWithCSV(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "out", "proposal.md")
	csvPath := filepath.Join(dir, "cashflow.csv")

	out, stderr, err := executeCmd(t, "report", "--pool-area", "2000",
		"--title", "Aquatic Center Proposal", "--out", mdPath, "--csv", csvPath)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Wrote "+mdPath)
	assert.Contains(t, stderr, "Wrote "+csvPath)

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(md), "# Aquatic Center Proposal\n"))
	assert.Contains(t, string(md), "| Payback | 6 years |")

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	require.Len(t, lines, 27)
	assert.Equal(t, "year,cumulative_usd", lines[0])
	assert.Equal(t, "0,-69825", lines[1])
}

func TestReportCmd_JSONUsesConfig(t *testing.T) {
	home := setupCLITest(t)
	writeFile(t, home, config.FileName, `report:
  format: json
  location: Scottsdale, AZ
  contact: sales@example.com
`)

	out, _, err := executeCmd(t, "report", "--pool-area", "1000")
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Scottsdale, AZ", doc.Location)
	assert.Equal(t, "sales@example.com", doc.Contact)
	assert.Equal(t, 19, doc.Result.PanelsNeeded)
}

func TestReportCmd_InvalidInput(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{"missing pool area", []string{"report"}, "--pool-area is required"},
		{"bad format", []string{"report", "--pool-area", "100", "--format", "pdf"}, "unknown report format"},
		{"bad season", []string{"report", "--pool-area", "100", "--season", "spring"}, "unknown season"},
		{
			"incentive kind without incentive",
			[]string{"report", "--pool-area", "100", "--local-incentive-kind", "fixed"},
			"require --local-incentive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCmd(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Equal(t, cli.ExitCodeInvalidInput, cli.ExitCode(err))
		})
	}
}

func TestReportCmd_MatchesEstimateFormatting(t *testing.T) {
	home := setupCLITest(t)
	writeFile(t, home, config.FileName, `output:
  precision: 0
model:
  payback_horizon_years: 15
`)

	estimate, _, err := executeCmd(t, "estimate", "--pool-area", "2000")
	require.NoError(t, err)
	text, _, err := executeCmd(t, "report", "--pool-area", "2000")
	require.NoError(t, err)

	for _, want := range []string{"5,918 therms", "31 tons", "~1,382 trees", "15-year savings", "15-year ROI"} {
		assert.Contains(t, estimate, want)
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "5,917.87")
	assert.NotContains(t, estimate, "20-year")
	assert.NotContains(t, text, "20-year")
}

func TestReportCmd_OverflowingInputRejected(t *testing.T) {
	setupCLITest(t)

	var err error
	require.NotPanics(t, func() {
		_, _, err = executeCmd(t, "report", "--pool-area", "2000", "--gas-cost", "1e308")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the supported range")
	assert.Equal(t, cli.ExitCodeInvalidInput, cli.ExitCode(err))
}

func TestReportCmd_Save(t *testing.T) {
	setupCLITest(t)
	project := t.TempDir()

	_, stderr, err := executeCmd(t, "--project-dir", project, "report", "--pool-area", "2000",
		"--format", "markdown", "--save")
	require.NoError(t, err)

	reportsDir := config.ReportsDir(filepath.Join(project, config.DirName))
	entries, err := os.ReadDir(reportsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	name := entries[0].Name()
	assert.Equal(t, ".md", filepath.Ext(name))
	assert.Contains(t, stderr, "Wrote "+filepath.Join(reportsDir, name))

	gitignore, err := os.ReadFile(filepath.Join(project, config.DirName, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(gitignore), config.ReportsDirName+"/")

	_, _, err = executeCmd(t, "--project-dir", project, "report", "--pool-area", "2000",
		"--save", "--out", "x.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
	assert.Equal(t, cli.ExitCodeInvalidInput, cli.ExitCode(err))
}
