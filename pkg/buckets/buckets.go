// Package buckets classifies a quote's fee fields into the four fixed cost
// buckets and produces per-bucket totals and line-item breakdowns.
//
// Buckets 1 (lender fees) and 4 (points and origination) are set by the
// lender and drive lender-vs-lender ranking; buckets 2 (third-party) and 3
// (escrows and prepaids) are market-driven and excluded from ranking.
package buckets

import (
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/mathutil"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/money"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/quote"
)

// ID identifies one of the four fee buckets.
type ID int

// The four buckets. Numbering follows the worksheet the comparison framework
// was built around, so bucket 4 sorts with bucket 1 (lender-set) rather than
// after bucket 3.
const (
	LenderFees        ID = 1
	ThirdParty        ID = 2
	EscrowsPrepaids   ID = 3
	PointsOrigination ID = 4
)

// Label returns the display name of the bucket.
func (id ID) Label() string {
	switch id {
	case LenderFees:
		return "Lender Fees"
	case ThirdParty:
		return "Third-Party Fees"
	case EscrowsPrepaids:
		return "Escrows & Prepaids"
	case PointsOrigination:
		return "Points & Origination"
	}
	return "Unknown"
}

// LenderSet reports whether the lender controls the fees in this bucket.
func (id ID) LenderSet() bool {
	return id == LenderFees || id == PointsOrigination
}

// LineItem is one non-zero constituent of a bucket.
type LineItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// field pairs a display label with an accessor for one fee field.
type field struct {
	label string
	value func(quote.Quote) string
}

// Field enumeration order is fixed; Breakdown emits items in this order.
var bucketFields = map[ID][]field{
	LenderFees: {
		{"Processing Fee", func(q quote.Quote) string { return q.ProcessingFee }},
		{"Underwriting Fee", func(q quote.Quote) string { return q.UnderwritingFee }},
		{"Admin Fee", func(q quote.Quote) string { return q.AdminFee }},
		{"Doc Prep Fee", func(q quote.Quote) string { return q.DocPrepFee }},
	},
	PointsOrigination: {
		{"Discount Points", func(q quote.Quote) string { return q.DiscountPoints }},
		{"Origination Fee Points", func(q quote.Quote) string { return q.OriginationFeePoints }},
		{"Loan Origination Fee", func(q quote.Quote) string { return q.LoanOriginationFee }},
	},
	ThirdParty: {
		{"Appraisal Fee", func(q quote.Quote) string { return q.AppraisalFee }},
		{"Credit Report", func(q quote.Quote) string { return q.CreditReport }},
		{"Title Fees", func(q quote.Quote) string { return q.TitleFees }},
		{"Closing Fee", func(q quote.Quote) string { return q.ClosingFee }},
		{"Closing Coord Fee", func(q quote.Quote) string { return q.ClosingCoordFee }},
		{"Owner's Title Ins", func(q quote.Quote) string { return q.OwnersTitleIns }},
		{"Lender's Title Ins", func(q quote.Quote) string { return q.LendersTitleIns }},
		{"Title Services", func(q quote.Quote) string { return q.TitleServices }},
		{"Other Third Party", func(q quote.Quote) string { return q.OtherThirdParty }},
		{"Tech Bundle Fee", func(q quote.Quote) string { return q.TechBundleFee }},
		{"Other (VOE, recording, etc.)", func(q quote.Quote) string { return q.OtherLenderFees }},
	},
	EscrowsPrepaids: {
		{"Homeowner's Ins (annual)", func(q quote.Quote) string { return q.HomeownersInsAnnual }},
		{"Homeowner's Ins Escrow", func(q quote.Quote) string { return q.HomeownersInsEscrow }},
		{"Property Tax Escrow", func(q quote.Quote) string { return q.PropertyTaxEscrow }},
		{"Prepaid Interest", func(q quote.Quote) string { return q.PrepaidInterest }},
		{"Mortgage Insurance", func(q quote.Quote) string { return q.MortgageInsurance }},
		{"Other Escrows", func(q quote.Quote) string { return q.OtherEscrows }},
		{"MIP Upfront", func(q quote.Quote) string { return q.MIPUpfront }},
		{"Funding Fee", func(q quote.Quote) string { return q.FundingFee }},
	},
}

// Total sums the fee fields of one bucket. In bucket 4 the lender credit is
// subtracted: the credit is a genuine reduction in lender-controlled cost.
// The result is deliberately not clamped at zero, so a credit larger than
// points plus origination yields a negative bucket total.
func Total(q quote.Quote, id ID) float64 {
	sum := 0.0
	for _, f := range bucketFields[id] {
		sum += money.Parse(f.value(q))
	}
	if id == PointsOrigination {
		sum -= money.Parse(q.LenderCredit)
	}
	return sum
}

// GrossTotal sums the fee fields of one bucket without the lender-credit
// adjustment, so the four gross buckets partition the full fee schedule.
func GrossTotal(q quote.Quote, id ID) float64 {
	sum := 0.0
	for _, f := range bucketFields[id] {
		sum += money.Parse(f.value(q))
	}
	return sum
}

// Breakdown returns the non-zero line items of a bucket in fixed field
// order. Sub-cent residues count as zero. In bucket 4 an applied lender
// credit appears as a trailing negative line item; it is the only place a
// negative value is expected.
func Breakdown(q quote.Quote, id ID) []LineItem {
	var items []LineItem
	for _, f := range bucketFields[id] {
		if v := money.Parse(f.value(q)); !mathutil.IsZero(v) {
			items = append(items, LineItem{Label: f.label, Value: v})
		}
	}
	if id == PointsOrigination {
		if credit := money.Parse(q.LenderCredit); credit > 0 {
			items = append(items, LineItem{Label: "Lender Credit", Value: -credit})
		}
	}
	return items
}

// LenderControlled returns the portion of cost the lender sets: bucket 1
// plus bucket 4.
func LenderControlled(q quote.Quote) float64 {
	return Total(q, LenderFees) + Total(q, PointsOrigination)
}
