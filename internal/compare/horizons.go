package compare

import (
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/constants"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/quote"
)

// HorizonYears are the ownership horizons the comparison table is evaluated
// at. Shorter horizons favor low upfront cost; longer horizons favor low
// payments.
var HorizonYears = []int{3, 5, 7, 10, 15}

// HorizonCost is one quote's projected cost at one horizon.
type HorizonCost struct {
	Index      int     `json:"index"`
	LenderName string  `json:"lenderName"`
	Cost       float64 `json:"cost"`
	IsLowest   bool    `json:"isLowest"`
}

// HorizonRow holds every quote's projected cost at a single horizon.
type HorizonRow struct {
	Years int           `json:"years"`
	Costs []HorizonCost `json:"costs"`
}

// CostAtHorizon projects what the quote will have cost after living with it
// for the given number of years: the lender-controlled closing cost plus all
// principal and interest paid over that span.
func CostAtHorizon(r Record, years int) float64 {
	return r.LenderControlled + r.MonthlyPI*float64(years*constants.MonthsPerYear)
}

// HorizonTable projects every record's cost at each standard horizon and
// marks the lowest-cost quote per row. Ties mark the first record
// encountered.
func HorizonTable(records []Record) []HorizonRow {
	if len(records) == 0 {
		return nil
	}

	rows := make([]HorizonRow, 0, len(HorizonYears))
	for _, years := range HorizonYears {
		row := HorizonRow{Years: years, Costs: make([]HorizonCost, len(records))}
		lowest := 0
		for i, r := range records {
			cost := CostAtHorizon(r, years)
			row.Costs[i] = HorizonCost{
				Index:      r.Index,
				LenderName: r.DisplayName(),
				Cost:       cost,
			}
			if cost < row.Costs[lowest].Cost {
				lowest = i
			}
		}
		row.Costs[lowest].IsLowest = true
		rows = append(rows, row)
	}
	return rows
}

// GroupByProgram partitions the records by loan program, preserving input
// order within each group.
func GroupByProgram(records []Record) map[quote.Program][]Record {
	groups := make(map[quote.Program][]Record)
	for _, r := range records {
		groups[r.Program] = append(groups[r.Program], r)
	}
	return groups
}

// BestPerProgram returns the lowest-total-cost record for each loan
// program. Ties keep the first record encountered.
func BestPerProgram(records []Record) map[quote.Program]Record {
	best := make(map[quote.Program]Record)
	for _, r := range records {
		current, seen := best[r.Program]
		if !seen || r.TotalCost < current.TotalCost {
			best[r.Program] = r
		}
	}
	return best
}
