package format

import (
	"fmt"
	"strings"
)

// Placeholders for undefined estimate figures.
const (
	// NotApplicable is shown for an undefined ROI or a figure that is not a
	// finite number.
	NotApplicable = "N/A"

	// DefaultPrecision is the number of decimals for therms and tons.
	DefaultPrecision = 2

	currencySymbol = "$"
)

// Currency formats a USD amount rounded to whole dollars.
// Example: Currency(-69825) returns "-$69,825".
func Currency(v float64) string {
	return withSymbol(Float(v, 0))
}

// CurrencyCents formats a USD amount rounded to cents.
// Example: CurrencyCents(11835.7333) returns "$11,835.73".
func CurrencyCents(v float64) string {
	const cents = 2
	return withSymbol(Float(v, cents))
}

// withSymbol places the currency symbol after any minus sign.
func withSymbol(s string) string {
	if s == NotApplicable {
		return s
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "-" + currencySymbol + rest
	}
	return currencySymbol + s
}

// Percent formats a percentage with one decimal place.
// Example: Percent(68.44) returns "68.4%".
func Percent(v float64) string {
	return withUnit(Float(v, 1), "%")
}

// ROI formats a return-on-investment percentage, or NotApplicable when the
// figure is undefined.
func ROI(pct float64, defined bool) string {
	if !defined {
		return NotApplicable
	}
	return Percent(pct)
}

// Payback formats a payback period in whole years. An undefined payback
// renders as "Not within N years" for the given search horizon.
func Payback(years int, defined bool, horizon int) string {
	if !defined {
		return fmt.Sprintf("Not within %d years", horizon)
	}
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}

// Therms formats an energy quantity in therms with the given number of
// decimals.
// Example: Therms(5917.8667, 2) returns "5,917.87 therms".
func Therms(v float64, precision int) string {
	return withUnit(Float(v, precision), " therms")
}

// Tons formats metric tons with the given number of decimals.
func Tons(v float64, precision int) string {
	return withUnit(Float(v, precision), " tons")
}

// Trees formats a tree equivalency count.
// Example: Trees(1382) returns "~1,382 trees".
func Trees(n int64) string {
	if n == 1 {
		return "~1 tree"
	}
	return "~" + Number(n) + " trees"
}

// Horizon labels a figure taken over a number of years.
// Example: Horizon(20, "ROI") returns "20-year ROI".
func Horizon(years int, noun string) string {
	return fmt.Sprintf("%d-year %s", years, noun)
}

func withUnit(s, unit string) string {
	if s == NotApplicable {
		return s
	}
	return s + unit
}
