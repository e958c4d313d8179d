package compare

import "math"

// Baseline returns the record used as the reference point for breakeven
// analysis. The convention is the highest-rate quote, which ordinarily
// carries the lowest upfront cost; every other quote is then a buy-down
// relative to it. Ties keep the first record encountered. ok is false when
// records is empty.
func Baseline(records []Record) (baseline Record, ok bool) {
	for i, r := range records {
		if i == 0 || r.Rate > baseline.Rate {
			baseline = r
		}
	}
	return baseline, len(records) > 0
}

// BreakevenResult describes whether paying more upfront for a lower rate
// ever pays for itself against the baseline quote.
type BreakevenResult struct {
	MonthlySavings float64 `json:"monthlySavings"`
	ExtraUpfront   float64 `json:"extraUpfront"`
	Months         int     `json:"months"`
	HasBreakeven   bool    `json:"hasBreakeven"`
}

// BreakevenAgainst computes the number of months before r's monthly payment
// savings recover its extra lender-controlled cost over the baseline. A
// breakeven only exists when r both saves money each month and costs more
// upfront; in every other case (r is cheaper upfront, or saves nothing)
// there is nothing to recover and HasBreakeven is false.
func BreakevenAgainst(r, baseline Record) BreakevenResult {
	result := BreakevenResult{
		MonthlySavings: baseline.MonthlyPI - r.MonthlyPI,
		ExtraUpfront:   r.LenderControlled - baseline.LenderControlled,
	}
	if result.MonthlySavings > 0 && result.ExtraUpfront > 0 {
		result.Months = int(math.Ceil(result.ExtraUpfront / result.MonthlySavings))
		result.HasBreakeven = true
	}
	return result
}
