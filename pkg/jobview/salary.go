package jobview

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var salaryPrinter = message.NewPrinter(language.English)

// currencySymbols maps the currency codes the backend actually sends to the
// symbols the original views rendered. Unknown codes fall back to the code
// itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"CAD": "CA$",
	"AUD": "A$",
}

// FormatSalary renders a salary range for display. The second return value
// is false when the salary should not be rendered at all: both bounds absent
// or non-positive means "unspecified". A single positive bound renders as an
// open-ended "From X" or "Up to X".
func FormatSalary(min, max int, currency, period string) (string, bool) {
	if min <= 0 && max <= 0 {
		return "", false
	}

	symbol := "$"
	if currency != "" {
		if s, ok := currencySymbols[currency]; ok {
			symbol = s
		} else {
			symbol = currency + " "
		}
	}

	var out string
	switch {
	case min > 0 && max > 0:
		out = fmt.Sprintf("%s%s - %s%s", symbol, groupDigits(min), symbol, groupDigits(max))
	case min > 0:
		out = fmt.Sprintf("From %s%s", symbol, groupDigits(min))
	default:
		out = fmt.Sprintf("Up to %s%s", symbol, groupDigits(max))
	}

	if period != "" {
		out += " per " + periodNoun(period)
	}
	return out, true
}

func groupDigits(n int) string {
	return salaryPrinter.Sprintf("%d", n)
}

func periodNoun(period string) string {
	switch period {
	case "hourly":
		return "hour"
	case "monthly":
		return "month"
	case "yearly":
		return "year"
	}
	return period
}
