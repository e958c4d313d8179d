package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joshuaphillips-collab/mortgage-compare/pkg/constants"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/money"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/quote"
)

// Severity classifies an alert.
type Severity string

// Alert severities.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Alert flags a mismatch or anomaly found across the quote set.
type Alert struct {
	Type   Severity `json:"type"`
	Title  string   `json:"title"`
	Detail string   `json:"detail"`
}

// DetectAlerts scans the quote set for mismatches and anomalies. It needs at
// least two quotes with a positive loan amount; with fewer it returns
// nothing. Rules are evaluated independently and emitted in a fixed order:
// the loan-amount check, the hazard-insurance spread check, then the
// per-quote checks in quote order.
func DetectAlerts(quotes []quote.Quote) []Alert {
	var scannable []quote.Quote
	for _, q := range quotes {
		if money.Parse(q.LoanAmount) > 0 {
			scannable = append(scannable, q)
		}
	}
	if len(scannable) < constants.MinQuotesForComparison {
		return nil
	}

	var alerts []Alert
	alerts = append(alerts, loanAmountAlerts(scannable)...)
	alerts = append(alerts, hazardInsuranceAlerts(scannable)...)
	for _, q := range scannable {
		alerts = append(alerts, quoteAlerts(q)...)
	}
	return alerts
}

// loanAmountAlerts fires when the quotes are not all for the same loan
// amount, which makes any direct comparison misleading.
func loanAmountAlerts(quotes []quote.Quote) []Alert {
	seen := make(map[float64]bool)
	var distinct []float64
	for _, q := range quotes {
		amt := money.Parse(q.LoanAmount)
		if !seen[amt] {
			seen[amt] = true
			distinct = append(distinct, amt)
		}
	}
	if len(distinct) <= 1 {
		return nil
	}

	formatted := make([]string, len(distinct))
	for i, amt := range distinct {
		formatted[i] = money.Currency(amt)
	}
	return []Alert{{
		Type:  SeverityCritical,
		Title: "Loan Amounts Don't Match",
		Detail: fmt.Sprintf("Quotes show different loan amounts (%s). This makes direct comparison misleading.",
			strings.Join(formatted, " vs ")),
	}}
}

// hazardInsuranceAlerts fires when annual homeowner's insurance estimates
// spread by more than the divergence threshold. The policy cost depends on
// the homeowner's choice, not the lender, so a low estimate makes a total
// payment look cheaper without being a real savings.
func hazardInsuranceAlerts(quotes []quote.Quote) []Alert {
	type estimate struct {
		name string
		val  float64
	}
	var estimates []estimate
	for _, q := range quotes {
		if v := money.Parse(q.HomeownersInsAnnual); v > 0 {
			estimates = append(estimates, estimate{name: displayLender(q), val: v})
		}
	}
	if len(estimates) < constants.MinQuotesForComparison {
		return nil
	}

	sort.SliceStable(estimates, func(i, j int) bool { return estimates[i].val < estimates[j].val })
	lowest, highest := estimates[0], estimates[len(estimates)-1]
	if (highest.val-lowest.val)/highest.val <= constants.HazardDivergenceThreshold {
		return nil
	}

	return []Alert{{
		Type:  SeverityWarning,
		Title: "Hazard Insurance Estimates Differ",
		Detail: fmt.Sprintf("%s estimates %s/yr vs %s at %s/yr. The actual cost depends on the policy you choose, not the lender. This makes one total payment look cheaper but it's not a real savings.",
			lowest.name, money.Currency(lowest.val), highest.name, money.Currency(highest.val)),
	}}
}

// quoteAlerts runs the per-quote rules in their fixed order.
func quoteAlerts(q quote.Quote) []Alert {
	var alerts []Alert
	name := displayLender(q)

	if credit := money.Parse(q.LenderCredit); credit > 0 {
		alerts = append(alerts, Alert{
			Type:  SeverityInfo,
			Title: fmt.Sprintf("%s applies a lender credit", name),
			Detail: fmt.Sprintf("A %s lender credit is subtracted from their points and origination charges. This is a genuine reduction in lender-controlled cost.",
				money.Currency(credit)),
		})
	}

	if credit := money.Parse(q.SellerCredit); credit > 0 {
		alerts = append(alerts, Alert{
			Type:  SeverityInfo,
			Title: fmt.Sprintf("%s quote includes a seller credit", name),
			Detail: fmt.Sprintf("The %s seller credit reduces cash to close but comes from the seller, so it is excluded from the lender-vs-lender comparison.",
				money.Currency(credit)),
		})
	}

	if credit := money.Parse(q.UnknownCredit); credit > 0 {
		alerts = append(alerts, Alert{
			Type:  SeverityWarning,
			Title: fmt.Sprintf("%s quote has an unidentified credit", name),
			Detail: fmt.Sprintf("A %s credit could not be classified and is being treated as a seller credit. If it is actually a lender credit, reclassify it; that changes the ranking.",
				money.Currency(credit)),
		})
	}

	if earnest := money.Parse(q.EarnestMoney); earnest > 0 {
		alerts = append(alerts, Alert{
			Type:  SeverityInfo,
			Title: fmt.Sprintf("%s quote includes earnest money", name),
			Detail: fmt.Sprintf("The %s earnest money deposit is part of the purchase, not a lender charge, so it is excluded from the lender comparison.",
				money.Currency(earnest)),
		})
	}

	origination := money.Parse(q.LoanOriginationFee)
	points := money.Parse(q.DiscountPoints)
	if origination > 0 && points > 0 {
		alerts = append(alerts, Alert{
			Type:  SeverityInfo,
			Title: fmt.Sprintf("%s charges an origination fee plus points", name),
			Detail: fmt.Sprintf("The origination fee and discount points are grouped together (%s total): both are upfront costs paid to buy down the rate.",
				money.Currency(origination+points)),
		})
	}

	if origination > 0 && money.Parse(q.UnderwritingFee) == 0 {
		alerts = append(alerts, Alert{
			Type:  SeverityInfo,
			Title: fmt.Sprintf("%s bundles fees into origination", name),
			Detail: fmt.Sprintf("Their origination fee (%s) covers what others itemize separately. Compare lender fee totals, not individual line items.",
				money.Currency(origination)),
		})
	}

	return alerts
}

func displayLender(q quote.Quote) string {
	if q.LenderName != "" {
		return q.LenderName
	}
	return "A lender"
}
