// Package format renders estimate figures for display.
//
// Every surface that shows an estimate (CLI table, interactive view, exported
// report) formats through this package so the same value always prints the
// same way.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Number formats an integer with thousand separators.
// Example: Number(18248) returns "18,248".
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Float formats a float with the specified precision and thousand separators.
// Rounding is half away from zero on the shortest decimal representation of f,
// so Float(2.675, 2) returns "2.68".
// NaN and infinities render as NotApplicable.
// Example: Float(1234.567, 2) returns "1,234.57".
func Float(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NotApplicable
	}
	if precision < 0 {
		precision = 0
	}
	fixed := decimal.NewFromFloat(f).StringFixed(int32(precision)) //nolint:gosec // precision is small.
	return group(fixed)
}

// group inserts thousand separators into the integer part of a fixed-point
// string produced by decimal.StringFixed.
func group(fixed string) string {
	intPart, fracPart := splitDecimal(fixed)

	n, err := parseIntPart(intPart)
	if err != nil {
		return fixed
	}

	out := printer.Sprintf("%d", n)
	// "-0.40" parses to 0 and would lose its sign.
	if n == 0 && strings.HasPrefix(intPart, "-") {
		out = "-" + out
	}
	if fracPart != "" {
		out += "." + fracPart
	}
	return out
}

// splitDecimal splits a formatted number string into integer and decimal parts.
func splitDecimal(s string) (string, string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// parseIntPart parses an integer string, handling negative numbers.
// Values that overflow int64 are rejected so the caller can fall back to the
// ungrouped string.
func parseIntPart(s string) (int64, error) {
	const (
		base   = 10
		maxDig = 18
	)
	negative := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || len(digits) > maxDig {
		return 0, fmt.Errorf("invalid integer part: %q", s)
	}

	var n int64
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid character: %c", c)
		}
		n = n*base + int64(c-'0')
	}

	if negative {
		n = -n
	}
	return n, nil
}
