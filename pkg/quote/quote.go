// Package quote defines the lender quote record and its lifecycle helpers.
// All monetary fields are held as free-text strings so partial or malformed
// input survives round trips; values are coerced to numbers on demand and
// never stored as numbers.
package quote

import (
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/constants"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/money"
)

// Program identifies the loan program of a quote.
type Program string

// Supported loan programs.
const (
	ProgramConventional Program = "Conventional"
	ProgramFHA          Program = "FHA"
	ProgramVA           Program = "VA"
	ProgramUSDA         Program = "USDA"
)

// Quote represents one lender's offer. JSON field names match the document
// extraction schema so an extracted partial record unmarshals directly;
// mapstructure tags let viper read the same names from YAML sessions, and
// yaml tags keep exported sessions on the same schema.
type Quote struct {
	// Identity
	LenderName  string  `json:"lenderName" yaml:"lenderName,omitempty" mapstructure:"lenderName"`
	LoanOfficer string  `json:"loanOfficer" yaml:"loanOfficer,omitempty" mapstructure:"loanOfficer"`
	LoanProgram Program `json:"loanProgram" yaml:"loanProgram,omitempty" mapstructure:"loanProgram"`

	// Loan terms
	LoanAmount    string `json:"loanAmount" yaml:"loanAmount,omitempty" mapstructure:"loanAmount"`
	Rate          string `json:"rate" yaml:"rate,omitempty" mapstructure:"rate"`
	Term          int    `json:"term" yaml:"term,omitempty" mapstructure:"term"` // years
	PurchasePrice string `json:"purchasePrice" yaml:"purchasePrice,omitempty" mapstructure:"purchasePrice"`
	CashToClose   string `json:"cashToClose" yaml:"cashToClose,omitempty" mapstructure:"cashToClose"`

	// Credits
	SellerCredit  string `json:"sellerCredit" yaml:"sellerCredit,omitempty" mapstructure:"sellerCredit"`
	LenderCredit  string `json:"lenderCredit" yaml:"lenderCredit,omitempty" mapstructure:"lenderCredit"`
	UnknownCredit string `json:"unknownCredit" yaml:"unknownCredit,omitempty" mapstructure:"unknownCredit"`
	EarnestMoney  string `json:"earnestMoney" yaml:"earnestMoney,omitempty" mapstructure:"earnestMoney"`

	// Bucket 1: lender fees
	ProcessingFee   string `json:"processingFee" yaml:"processingFee,omitempty" mapstructure:"processingFee"`
	UnderwritingFee string `json:"underwritingFee" yaml:"underwritingFee,omitempty" mapstructure:"underwritingFee"`
	AdminFee        string `json:"adminFee" yaml:"adminFee,omitempty" mapstructure:"adminFee"`
	DocPrepFee      string `json:"docPrepFee" yaml:"docPrepFee,omitempty" mapstructure:"docPrepFee"`

	// Bucket 4: points and origination
	DiscountPoints       string `json:"discountPoints" yaml:"discountPoints,omitempty" mapstructure:"discountPoints"`
	OriginationFeePoints string `json:"originationFeePoints" yaml:"originationFeePoints,omitempty" mapstructure:"originationFeePoints"`
	LoanOriginationFee   string `json:"loanOriginationFee" yaml:"loanOriginationFee,omitempty" mapstructure:"loanOriginationFee"`

	// Bucket 2: third-party fees
	AppraisalFee    string `json:"appraisalFee" yaml:"appraisalFee,omitempty" mapstructure:"appraisalFee"`
	CreditReport    string `json:"creditReport" yaml:"creditReport,omitempty" mapstructure:"creditReport"`
	TitleFees       string `json:"titleFees" yaml:"titleFees,omitempty" mapstructure:"titleFees"`
	ClosingFee      string `json:"closingFee" yaml:"closingFee,omitempty" mapstructure:"closingFee"`
	ClosingCoordFee string `json:"closingCoordFee" yaml:"closingCoordFee,omitempty" mapstructure:"closingCoordFee"`
	OwnersTitleIns  string `json:"ownersTitleIns" yaml:"ownersTitleIns,omitempty" mapstructure:"ownersTitleIns"`
	LendersTitleIns string `json:"lendersTitleIns" yaml:"lendersTitleIns,omitempty" mapstructure:"lendersTitleIns"`
	TitleServices   string `json:"titleServices" yaml:"titleServices,omitempty" mapstructure:"titleServices"`
	OtherThirdParty string `json:"otherThirdParty" yaml:"otherThirdParty,omitempty" mapstructure:"otherThirdParty"`
	TechBundleFee   string `json:"techBundleFee" yaml:"techBundleFee,omitempty" mapstructure:"techBundleFee"`
	OtherLenderFees string `json:"otherLenderFees" yaml:"otherLenderFees,omitempty" mapstructure:"otherLenderFees"`

	// Bucket 3: escrows and prepaids
	HomeownersInsAnnual string `json:"homeownersInsAnnual" yaml:"homeownersInsAnnual,omitempty" mapstructure:"homeownersInsAnnual"`
	HomeownersInsEscrow string `json:"homeownersInsEscrow" yaml:"homeownersInsEscrow,omitempty" mapstructure:"homeownersInsEscrow"`
	PropertyTaxEscrow   string `json:"propertyTaxEscrow" yaml:"propertyTaxEscrow,omitempty" mapstructure:"propertyTaxEscrow"`
	PrepaidInterest     string `json:"prepaidInterest" yaml:"prepaidInterest,omitempty" mapstructure:"prepaidInterest"`
	MortgageInsurance   string `json:"mortgageInsurance" yaml:"mortgageInsurance,omitempty" mapstructure:"mortgageInsurance"`
	OtherEscrows        string `json:"otherEscrows" yaml:"otherEscrows,omitempty" mapstructure:"otherEscrows"`
	MIPUpfront          string `json:"mipUpfront" yaml:"mipUpfront,omitempty" mapstructure:"mipUpfront"`
	FundingFee          string `json:"fundingFee" yaml:"fundingFee,omitempty" mapstructure:"fundingFee"`
}

// Empty returns an all-blank quote with the session defaults applied.
func Empty() Quote {
	return Quote{
		LoanProgram: ProgramConventional,
		Term:        constants.DefaultTermYears,
	}
}

// Valid reports whether the quote carries enough data to participate in a
// comparison: a positive loan amount and a positive rate.
func (q Quote) Valid() bool {
	return money.Parse(q.LoanAmount) > 0 && money.Parse(q.Rate) > 0
}

// TermYears returns the loan term, falling back to the default when the
// field is unset or nonsensical.
func (q Quote) TermYears() int {
	if q.Term <= 0 {
		return constants.DefaultTermYears
	}
	return q.Term
}

// ProgramOrDefault returns the loan program, treating a blank value as
// Conventional.
func (q Quote) ProgramOrDefault() Program {
	if q.LoanProgram == "" {
		return ProgramConventional
	}
	return q.LoanProgram
}

// ReputationKey returns the key under which reputation data for this
// quote's loan officer is stored.
func (q Quote) ReputationKey() string {
	return q.LoanOfficer + "|" + q.LenderName
}

// Merge overlays a partial record onto a complete base record field by
// field. Blank overlay fields leave the base value untouched, so the result
// of merging an extraction result over Empty() is always a complete quote.
func Merge(base, overlay Quote) Quote {
	merged := base

	for _, f := range stringFields {
		if v := *f(&overlay); v != "" {
			*f(&merged) = v
		}
	}
	if overlay.LoanProgram != "" {
		merged.LoanProgram = overlay.LoanProgram
	}
	if overlay.Term > 0 {
		merged.Term = overlay.Term
	}

	return merged
}

// stringFields enumerates accessors for every string-typed field, used by
// Merge so a new field cannot be silently skipped.
var stringFields = []func(*Quote) *string{
	func(q *Quote) *string { return &q.LenderName },
	func(q *Quote) *string { return &q.LoanOfficer },
	func(q *Quote) *string { return &q.LoanAmount },
	func(q *Quote) *string { return &q.Rate },
	func(q *Quote) *string { return &q.PurchasePrice },
	func(q *Quote) *string { return &q.CashToClose },
	func(q *Quote) *string { return &q.SellerCredit },
	func(q *Quote) *string { return &q.LenderCredit },
	func(q *Quote) *string { return &q.UnknownCredit },
	func(q *Quote) *string { return &q.EarnestMoney },
	func(q *Quote) *string { return &q.ProcessingFee },
	func(q *Quote) *string { return &q.UnderwritingFee },
	func(q *Quote) *string { return &q.AdminFee },
	func(q *Quote) *string { return &q.DocPrepFee },
	func(q *Quote) *string { return &q.DiscountPoints },
	func(q *Quote) *string { return &q.OriginationFeePoints },
	func(q *Quote) *string { return &q.LoanOriginationFee },
	func(q *Quote) *string { return &q.AppraisalFee },
	func(q *Quote) *string { return &q.CreditReport },
	func(q *Quote) *string { return &q.TitleFees },
	func(q *Quote) *string { return &q.ClosingFee },
	func(q *Quote) *string { return &q.ClosingCoordFee },
	func(q *Quote) *string { return &q.OwnersTitleIns },
	func(q *Quote) *string { return &q.LendersTitleIns },
	func(q *Quote) *string { return &q.TitleServices },
	func(q *Quote) *string { return &q.OtherThirdParty },
	func(q *Quote) *string { return &q.TechBundleFee },
	func(q *Quote) *string { return &q.OtherLenderFees },
	func(q *Quote) *string { return &q.HomeownersInsAnnual },
	func(q *Quote) *string { return &q.HomeownersInsEscrow },
	func(q *Quote) *string { return &q.PropertyTaxEscrow },
	func(q *Quote) *string { return &q.PrepaidInterest },
	func(q *Quote) *string { return &q.MortgageInsurance },
	func(q *Quote) *string { return &q.OtherEscrows },
	func(q *Quote) *string { return &q.MIPUpfront },
	func(q *Quote) *string { return &q.FundingFee },
}
