// Package money provides parsing of freeform currency input and currency
// formatting for display.
package money

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// leadingNumber matches the numeric prefix of a cleaned input string, the
// same way lenient float parsing treats trailing junk.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Parse converts a freeform currency-like string into a float64. Dollar
// signs and thousands separators are stripped before parsing. Anything that
// does not yield a finite number parses as 0; Parse never fails.
func Parse(value string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(value)
	cleaned = strings.TrimSpace(cleaned)

	match := leadingNumber.FindString(cleaned)
	if match == "" {
		return 0
	}

	n, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Currency returns a whole-dollar currency string with a dollar sign and
// thousands separators (e.g., "-$1,234").
func Currency(amount float64) string {
	formatted := printer.Sprintf("%.0f", math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Cents returns a currency string with cents (e.g., "-$1,234.56").
func Cents(amount float64) string {
	formatted := printer.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}
