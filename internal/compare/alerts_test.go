package compare

import (
	"strings"
	"testing"

	"github.com/joshuaphillips-collab/mortgage-compare/pkg/quote"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/testutil"
)

func alertTitles(alerts []Alert) []string {
	titles := make([]string, len(alerts))
	for i, a := range alerts {
		titles[i] = a.Title
	}
	return titles
}

func TestDetectAlertsNeedsTwoQuotes(t *testing.T) {
	q := testutil.BasicQuote("Lender A", "300000", "6.5")
	q.LenderCredit = "2000"

	if alerts := DetectAlerts([]quote.Quote{q}); alerts != nil {
		t.Errorf("single quote should produce no alerts, got %v", alertTitles(alerts))
	}
	if alerts := DetectAlerts(nil); alerts != nil {
		t.Errorf("empty input should produce no alerts, got %v", alertTitles(alerts))
	}

	// A second quote without a loan amount does not count.
	partial := testutil.BasicQuote("Lender B", "", "6.0")
	if alerts := DetectAlerts([]quote.Quote{q, partial}); alerts != nil {
		t.Errorf("one scannable quote should produce no alerts, got %v", alertTitles(alerts))
	}
}

func TestLoanAmountMismatch(t *testing.T) {
	quotes := []quote.Quote{
		testutil.BasicQuote("Lender A", "300000", "6.5"),
		testutil.BasicQuote("Lender B", "310,000", "6.25"),
	}

	alerts := DetectAlerts(quotes)
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, expected 1: %v", len(alerts), alertTitles(alerts))
	}
	if alerts[0].Type != SeverityCritical {
		t.Errorf("loan amount mismatch severity = %q, expected critical", alerts[0].Type)
	}
	if !strings.Contains(alerts[0].Detail, "$300,000 vs $310,000") {
		t.Errorf("detail should list the amounts, got %q", alerts[0].Detail)
	}
}

func TestLoanAmountMatchIsSilent(t *testing.T) {
	quotes := []quote.Quote{
		testutil.BasicQuote("Lender A", "300000", "6.5"),
		testutil.BasicQuote("Lender B", "$300,000", "6.25"),
	}

	if alerts := DetectAlerts(quotes); len(alerts) != 0 {
		t.Errorf("identical amounts should produce no alerts, got %v", alertTitles(alerts))
	}
}

func TestHazardInsuranceDivergence(t *testing.T) {
	quoteA := testutil.BasicQuote("Lender A", "300000", "6.5")
	quoteA.HomeownersInsAnnual = "1200"
	quoteB := testutil.BasicQuote("Lender B", "300000", "6.25")
	quoteB.HomeownersInsAnnual = "2000"

	alerts := DetectAlerts([]quote.Quote{quoteA, quoteB})
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, expected 1: %v", len(alerts), alertTitles(alerts))
	}
	if alerts[0].Type != SeverityWarning {
		t.Errorf("hazard divergence severity = %q, expected warning", alerts[0].Type)
	}
	if !strings.Contains(alerts[0].Detail, "$1,200") || !strings.Contains(alerts[0].Detail, "$2,000") {
		t.Errorf("detail should name both estimates, got %q", alerts[0].Detail)
	}

	// A spread at or under 20% of the highest estimate stays quiet.
	quoteB.HomeownersInsAnnual = "1400"
	if alerts := DetectAlerts([]quote.Quote{quoteA, quoteB}); len(alerts) != 0 {
		t.Errorf("15%% spread should produce no alerts, got %v", alertTitles(alerts))
	}
}

func TestLenderCreditAlert(t *testing.T) {
	quoteA := testutil.BasicQuote("Lender A", "300000", "6.5")
	quoteA.LenderCredit = "2000"
	quoteB := testutil.BasicQuote("Lender B", "300000", "6.25")

	alerts := DetectAlerts([]quote.Quote{quoteA, quoteB})
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, expected 1: %v", len(alerts), alertTitles(alerts))
	}
	if alerts[0].Type != SeverityInfo {
		t.Errorf("lender credit severity = %q, expected info", alerts[0].Type)
	}
	if !strings.Contains(alerts[0].Title, "Lender A") || !strings.Contains(alerts[0].Detail, "$2,000") {
		t.Errorf("alert should name the lender and amount, got %q / %q", alerts[0].Title, alerts[0].Detail)
	}
}

func TestCreditAndEarnestAlerts(t *testing.T) {
	quoteA := testutil.BasicQuote("Lender A", "300000", "6.5")
	quoteA.SellerCredit = "5000"
	quoteA.UnknownCredit = "1500"
	quoteA.EarnestMoney = "3000"
	quoteB := testutil.BasicQuote("Lender B", "300000", "6.25")

	alerts := DetectAlerts([]quote.Quote{quoteA, quoteB})
	if len(alerts) != 3 {
		t.Fatalf("got %d alerts, expected 3: %v", len(alerts), alertTitles(alerts))
	}

	// Per-quote rules emit in fixed order: seller, unknown, earnest.
	if !strings.Contains(alerts[0].Title, "seller credit") || alerts[0].Type != SeverityInfo {
		t.Errorf("alerts[0] = %q (%s), expected seller credit info", alerts[0].Title, alerts[0].Type)
	}
	if !strings.Contains(alerts[1].Title, "unidentified credit") || alerts[1].Type != SeverityWarning {
		t.Errorf("alerts[1] = %q (%s), expected unidentified credit warning", alerts[1].Title, alerts[1].Type)
	}
	if !strings.Contains(alerts[2].Title, "earnest money") || alerts[2].Type != SeverityInfo {
		t.Errorf("alerts[2] = %q (%s), expected earnest money info", alerts[2].Title, alerts[2].Type)
	}
}

func TestOriginationAlerts(t *testing.T) {
	quoteA := testutil.BasicQuote("Lender A", "300000", "6.5")
	quoteA.LoanOriginationFee = "1200"
	quoteA.DiscountPoints = "1500"
	quoteA.UnderwritingFee = "995"
	quoteB := testutil.BasicQuote("Lender B", "300000", "6.25")

	alerts := DetectAlerts([]quote.Quote{quoteA, quoteB})
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, expected 1: %v", len(alerts), alertTitles(alerts))
	}
	if !strings.Contains(alerts[0].Detail, "$2,700") {
		t.Errorf("combined alert should report the summed amount, got %q", alerts[0].Detail)
	}

	// Origination with no underwriting fee suggests bundled pricing.
	quoteA.DiscountPoints = ""
	quoteA.UnderwritingFee = ""
	alerts = DetectAlerts([]quote.Quote{quoteA, quoteB})
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, expected 1: %v", len(alerts), alertTitles(alerts))
	}
	if !strings.Contains(alerts[0].Title, "bundles fees into origination") {
		t.Errorf("alerts[0] = %q, expected bundling notice", alerts[0].Title)
	}
}

func TestAlertOrdering(t *testing.T) {
	quoteA := testutil.BasicQuote("Lender A", "300000", "6.5")
	quoteA.HomeownersInsAnnual = "2000"
	quoteA.LenderCredit = "2000"
	quoteB := testutil.BasicQuote("Lender B", "310000", "6.25")
	quoteB.HomeownersInsAnnual = "1200"
	quoteB.SellerCredit = "5000"

	alerts := DetectAlerts([]quote.Quote{quoteA, quoteB})
	if len(alerts) != 4 {
		t.Fatalf("got %d alerts, expected 4: %v", len(alerts), alertTitles(alerts))
	}
	if alerts[0].Title != "Loan Amounts Don't Match" {
		t.Errorf("alerts[0] = %q, expected the loan amount check first", alerts[0].Title)
	}
	if alerts[1].Title != "Hazard Insurance Estimates Differ" {
		t.Errorf("alerts[1] = %q, expected the hazard check second", alerts[1].Title)
	}
	if !strings.Contains(alerts[2].Title, "Lender A") {
		t.Errorf("alerts[2] = %q, expected Lender A's per-quote alert", alerts[2].Title)
	}
	if !strings.Contains(alerts[3].Title, "Lender B") {
		t.Errorf("alerts[3] = %q, expected Lender B's per-quote alert", alerts[3].Title)
	}
}
