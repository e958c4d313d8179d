// Package loans provides amortizing-loan payment math.
package loans

import (
	"math"

	"github.com/joshuaphillips-collab/mortgage-compare/pkg/constants"
)

// MonthlyPayment calculates the monthly principal-and-interest payment for a
// fixed-rate loan using the standard amortization formula.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	termMonths := termYears * constants.MonthsPerYear
	if termMonths <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}
