// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/quote"
)

// BasicQuote builds a valid quote with only the identity and pricing fields
// set. Tests adjust individual fee fields on the result.
func BasicQuote(lender string, loanAmount, rate string) quote.Quote {
	q := quote.Empty()
	q.LenderName = lender
	q.LoanAmount = loanAmount
	q.Rate = rate
	return q
}

// FeeQuote builds a valid quote carrying the fee fields that drive the
// lender-controlled cost buckets.
func FeeQuote(lender string, loanAmount, rate, origination, points, underwriting, lenderCredit string) quote.Quote {
	q := BasicQuote(lender, loanAmount, rate)
	q.LoanOriginationFee = origination
	q.DiscountPoints = points
	q.UnderwritingFee = underwriting
	q.LenderCredit = lenderCredit
	return q
}
