package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rshade/poolheat/internal/engine"
	"github.com/rshade/poolheat/internal/format"
)

// tabwriterPadding is the minimum padding between columns in text output.
const tabwriterPadding = 2

// Render writes doc in the requested format.
func Render(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatText:
		return renderText(w, doc)
	case FormatMarkdown:
		return renderMarkdown(w, doc)
	case FormatJSON:
		return renderJSON(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func renderText(w io.Writer, doc Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	fmt.Fprintln(tw, strings.ToUpper(doc.Title))
	fmt.Fprintln(tw, strings.Repeat("=", len(doc.Title)))
	if doc.Location != "" {
		fmt.Fprintf(tw, "Location:\t%s\n", doc.Location)
	}
	fmt.Fprintf(tw, "Generated:\t%s\n", doc.GeneratedAt.Format(time.RFC1123))
	fmt.Fprintf(tw, "Report ID:\t%s\n", doc.ID)

	for _, s := range doc.Sections {
		fmt.Fprintf(tw, "\n%s\n%s\n", s.Title, strings.Repeat("-", len(s.Title)))
		for _, l := range s.Lines {
			fmt.Fprintf(tw, "  %s\t%s\n", l.Label, l.Value)
		}
	}

	if len(doc.CashFlow) > 0 {
		fmt.Fprintf(tw, "\nCumulative Cash Flow\n--------------------\n")
		fmt.Fprintf(tw, "  YEAR\tPOSITION\n")
		for _, p := range doc.CashFlow {
			fmt.Fprintf(tw, "  %d\t%s\n", p.Year, format.Currency(p.Cumulative))
		}
	}

	writeFooterText(tw, doc)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing text report: %w", err)
	}
	return nil
}

func writeFooterText(w io.Writer, doc Document) {
	if doc.Contact == "" && doc.Disclaimer == "" {
		return
	}
	fmt.Fprintln(w)
	if doc.Contact != "" {
		fmt.Fprintf(w, "Contact: %s\n", doc.Contact)
	}
	if doc.Disclaimer != "" {
		fmt.Fprintln(w, doc.Disclaimer)
	}
}

func renderMarkdown(w io.Writer, doc Document) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	if doc.Location != "" {
		fmt.Fprintf(&b, "**Location:** %s  \n", escapeMarkdown(doc.Location))
	}
	fmt.Fprintf(&b, "**Generated:** %s  \n", doc.GeneratedAt.Format(time.RFC1123))
	fmt.Fprintf(&b, "**Report ID:** `%s`\n", doc.ID)

	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n| Item | Value |\n|---|---:|\n", s.Title)
		for _, l := range s.Lines {
			fmt.Fprintf(&b, "| %s | %s |\n", escapeMarkdown(l.Label), escapeMarkdown(l.Value))
		}
	}

	if len(doc.CashFlow) > 0 {
		b.WriteString("\n## Cumulative Cash Flow\n\n| Year | Position |\n|---:|---:|\n")
		for _, p := range doc.CashFlow {
			fmt.Fprintf(&b, "| %d | %s |\n", p.Year, format.Currency(p.Cumulative))
		}
	}

	if doc.Contact != "" || doc.Disclaimer != "" {
		b.WriteString("\n---\n\n")
		if doc.Contact != "" {
			fmt.Fprintf(&b, "Contact: %s\n\n", escapeMarkdown(doc.Contact))
		}
		if doc.Disclaimer != "" {
			fmt.Fprintf(&b, "_%s_\n", escapeMarkdown(doc.Disclaimer))
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing markdown report: %w", err)
	}
	return nil
}

// escapeMarkdown keeps user text from breaking table cells.
func escapeMarkdown(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}

func renderJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteCashFlowCSV writes the cumulative cash-flow series as "year,cumulative"
// rows with a header, for charting in a spreadsheet.
func WriteCashFlowCSV(w io.Writer, points []engine.CashFlowPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "cumulative_usd"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Year),
			strconv.FormatFloat(p.Cumulative, 'f', 0, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
