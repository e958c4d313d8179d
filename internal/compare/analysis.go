// Package compare implements the comparison engine: it normalizes a set of
// lender quotes into per-quote analysis records and derives alerts, weighted
// scores, breakeven math, and horizon projections from them. Every function
// is pure; the full quote set is passed in and results are recomputed from
// scratch on each call.
package compare

import (
	"fmt"

	"github.com/joshuaphillips-collab/mortgage-compare/pkg/buckets"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/constants"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/loans"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/mathutil"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/money"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/quote"
)

// Record is the derived comparison view of one valid quote.
type Record struct {
	// Index is the quote's position in the original session, preserved
	// across filtering so callers can key identity (e.g. display colors)
	// by original position.
	Index       int           `json:"index"`
	LenderName  string        `json:"lenderName"`
	LoanOfficer string        `json:"loanOfficer"`
	Program     quote.Program `json:"program"`

	Rate              float64 `json:"rate"`
	LoanAmount        float64 `json:"loanAmount"`
	MonthlyPI         float64 `json:"monthlyPI"`
	LenderFees        float64 `json:"lenderFees"`        // bucket 1
	PointsOrigination float64 `json:"pointsOrigination"` // bucket 4, net of lender credit
	LenderControlled  float64 `json:"lenderControlled"`
	TotalCost         float64 `json:"totalCost"` // lenderControlled + monthlyPI over the horizon
	CashToClose       float64 `json:"cashToClose"`

	// Breakdowns carries the non-zero line items of each bucket for
	// drill-down rendering.
	Breakdowns map[buckets.ID][]buckets.LineItem `json:"breakdowns,omitempty"`
}

// DisplayName returns the lender name, or a positional placeholder when the
// quote was entered without one.
func (r Record) DisplayName() string {
	if r.LenderName != "" {
		return r.LenderName
	}
	return fmt.Sprintf("Quote %d", r.Index+1)
}

// ReputationKey returns the key under which this record's reputation data is
// stored.
func (r Record) ReputationKey() string {
	return r.LoanOfficer + "|" + r.LenderName
}

// Analyze filters the session's quotes to valid ones (positive loan amount
// and rate) and computes the comparison record for each. Invalid quotes are
// dropped silently. There is no minimum count; views that need at least two
// records check for themselves.
func Analyze(quotes []quote.Quote, horizonYears int) []Record {
	if horizonYears <= 0 {
		horizonYears = constants.DefaultHorizonYears
	}
	horizonMonths := float64(horizonYears * constants.MonthsPerYear)

	var records []Record
	for i, q := range quotes {
		if !q.Valid() {
			continue
		}

		amount := money.Parse(q.LoanAmount)
		rate := money.Parse(q.Rate)
		pi := mathutil.Round(loans.MonthlyPayment(amount, rate, q.TermYears()))
		lenderFees := buckets.Total(q, buckets.LenderFees)
		points := buckets.Total(q, buckets.PointsOrigination)
		lenderControlled := lenderFees + points

		records = append(records, Record{
			Index:             i,
			LenderName:        q.LenderName,
			LoanOfficer:       q.LoanOfficer,
			Program:           q.ProgramOrDefault(),
			Rate:              rate,
			LoanAmount:        amount,
			MonthlyPI:         pi,
			LenderFees:        lenderFees,
			PointsOrigination: points,
			LenderControlled:  lenderControlled,
			TotalCost:         mathutil.Round(lenderControlled + pi*horizonMonths),
			CashToClose:       money.Parse(q.CashToClose),
			Breakdowns: map[buckets.ID][]buckets.LineItem{
				buckets.LenderFees:        buckets.Breakdown(q, buckets.LenderFees),
				buckets.ThirdParty:        buckets.Breakdown(q, buckets.ThirdParty),
				buckets.EscrowsPrepaids:   buckets.Breakdown(q, buckets.EscrowsPrepaids),
				buckets.PointsOrigination: buckets.Breakdown(q, buckets.PointsOrigination),
			},
		})
	}
	return records
}

// BestByTotalCost returns the record with the lowest total cost. Exact ties
// go to the first record encountered; the tie-break is arbitrary but
// deterministic. ok is false when records is empty.
func BestByTotalCost(records []Record) (best Record, ok bool) {
	for i, r := range records {
		if i == 0 || r.TotalCost < best.TotalCost {
			best = r
		}
	}
	return best, len(records) > 0
}
