package compare

import (
	"math"
	"testing"

	"github.com/joshuaphillips-collab/mortgage-compare/pkg/buckets"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/quote"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/testutil"
)

func TestAnalyzeFiltersInvalidQuotes(t *testing.T) {
	quotes := []quote.Quote{
		testutil.BasicQuote("Valid One", "300000", "6.5"),
		testutil.BasicQuote("No Rate", "300000", ""),
		testutil.BasicQuote("No Amount", "", "6.5"),
		testutil.BasicQuote("Valid Two", "300000", "6.25"),
	}

	records := Analyze(quotes, 7)
	if len(records) != 2 {
		t.Fatalf("Analyze returned %d records, expected 2", len(records))
	}

	// The original session index survives filtering.
	if records[0].Index != 0 || records[0].LenderName != "Valid One" {
		t.Errorf("records[0] = index %d lender %q, expected index 0 Valid One", records[0].Index, records[0].LenderName)
	}
	if records[1].Index != 3 || records[1].LenderName != "Valid Two" {
		t.Errorf("records[1] = index %d lender %q, expected index 3 Valid Two", records[1].Index, records[1].LenderName)
	}
}

func TestAnalyzeComputesCosts(t *testing.T) {
	// Same loan, different rate/fee tradeoffs: A buys the rate down for
	// 3500 in lender-controlled cost, B charges 800 at a higher rate.
	quoteA := testutil.BasicQuote("Lender A", "300000", "6.0")
	quoteA.DiscountPoints = "3000"
	quoteA.UnderwritingFee = "500"
	quoteB := testutil.BasicQuote("Lender B", "300000", "6.5")
	quoteB.UnderwritingFee = "800"

	records := Analyze([]quote.Quote{quoteA, quoteB}, 7)
	if len(records) != 2 {
		t.Fatalf("Analyze returned %d records, expected 2", len(records))
	}

	a, b := records[0], records[1]

	if math.Abs(a.MonthlyPI-1798.65) > 0.01 {
		t.Errorf("A monthlyPI = %v, expected 1798.65", a.MonthlyPI)
	}
	if math.Abs(b.MonthlyPI-1896.20) > 0.01 {
		t.Errorf("B monthlyPI = %v, expected 1896.20", b.MonthlyPI)
	}
	if math.Abs(a.LenderControlled-3500) > 0.01 {
		t.Errorf("A lenderControlled = %v, expected 3500", a.LenderControlled)
	}
	if math.Abs(b.LenderControlled-800) > 0.01 {
		t.Errorf("B lenderControlled = %v, expected 800", b.LenderControlled)
	}

	// totalCost = lenderControlled + monthlyPI over the 84-month horizon.
	if math.Abs(a.TotalCost-(3500+a.MonthlyPI*84)) > 0.01 {
		t.Errorf("A totalCost = %v, expected %v", a.TotalCost, 3500+a.MonthlyPI*84)
	}
	if math.Abs(b.TotalCost-(800+b.MonthlyPI*84)) > 0.01 {
		t.Errorf("B totalCost = %v, expected %v", b.TotalCost, 800+b.MonthlyPI*84)
	}
	if a.TotalCost >= b.TotalCost {
		t.Errorf("buying down the rate should win over 7 years: A %v vs B %v", a.TotalCost, b.TotalCost)
	}
}

func TestAnalyzeDefaultsHorizon(t *testing.T) {
	quotes := []quote.Quote{
		testutil.BasicQuote("Lender A", "300000", "6.0"),
		testutil.BasicQuote("Lender B", "300000", "6.5"),
	}

	defaulted := Analyze(quotes, 0)
	explicit := Analyze(quotes, 7)
	for i := range defaulted {
		if math.Abs(defaulted[i].TotalCost-explicit[i].TotalCost) > 0.01 {
			t.Errorf("horizon 0 should default to 7 years: %v vs %v", defaulted[i].TotalCost, explicit[i].TotalCost)
		}
	}
}

func TestAnalyzeBreakdowns(t *testing.T) {
	q := testutil.FeeQuote("Lender A", "300000", "6.0", "1200", "1500", "995", "500")
	q.AppraisalFee = "550"

	records := Analyze([]quote.Quote{q}, 7)
	if len(records) != 1 {
		t.Fatalf("Analyze returned %d records, expected 1", len(records))
	}

	breakdowns := records[0].Breakdowns
	if len(breakdowns[buckets.LenderFees]) != 1 {
		t.Errorf("lender fees breakdown has %d items, expected 1", len(breakdowns[buckets.LenderFees]))
	}
	// Points, origination, and the credit line.
	if len(breakdowns[buckets.PointsOrigination]) != 3 {
		t.Errorf("points breakdown has %d items, expected 3", len(breakdowns[buckets.PointsOrigination]))
	}
	if len(breakdowns[buckets.ThirdParty]) != 1 {
		t.Errorf("third-party breakdown has %d items, expected 1", len(breakdowns[buckets.ThirdParty]))
	}
}

func TestDisplayName(t *testing.T) {
	r := Record{Index: 2}
	if got := r.DisplayName(); got != "Quote 3" {
		t.Errorf("DisplayName() = %q, expected \"Quote 3\"", got)
	}
	r.LenderName = "First Federal"
	if got := r.DisplayName(); got != "First Federal" {
		t.Errorf("DisplayName() = %q, expected \"First Federal\"", got)
	}
}

func TestBestByTotalCost(t *testing.T) {
	records := []Record{
		{LenderName: "A", TotalCost: 150000},
		{LenderName: "B", TotalCost: 140000},
		{LenderName: "C", TotalCost: 140000},
	}

	best, ok := BestByTotalCost(records)
	if !ok {
		t.Fatal("expected a best record")
	}
	if best.LenderName != "B" {
		t.Errorf("best = %q, expected B (first on tie)", best.LenderName)
	}

	if _, ok := BestByTotalCost(nil); ok {
		t.Error("empty input should report no best record")
	}
}
