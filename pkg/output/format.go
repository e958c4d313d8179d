// Package output provides utilities for formatting and displaying
// comparison results.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuaphillips-collab/mortgage-compare/internal/compare"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/money"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(scored []compare.Scored, alerts []compare.Alert, horizons []compare.HorizonRow, horizonYears int) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Quote comparison (%d-year horizon) ---\n", horizonYears)
	fmt.Printf("Lender               | Rate   | Monthly P&I | Lender Cost | Total Cost  | Score\n")
	fmt.Printf("______               | ____   | ___________ | ___________ | __________  | _____\n")
	for _, s := range scored {
		_, _ = p.Printf("%-20s | %.3f%% | $%.2f | $%.2f | $%.2f | %d\n",
			s.DisplayName(), s.Rate, s.MonthlyPI, s.LenderControlled, s.TotalCost, s.Score)
	}

	if len(alerts) > 0 {
		fmt.Printf("\n--- Alerts ---\n")
		for _, alert := range alerts {
			fmt.Printf("[%s] %s: %s\n", strings.ToUpper(string(alert.Type)), alert.Title, alert.Detail)
		}
	}

	if len(horizons) > 0 {
		fmt.Printf("\n--- Cost by ownership horizon ---\n")
		for _, row := range horizons {
			fmt.Printf("%2d years:", row.Years)
			for _, cost := range row.Costs {
				marker := " "
				if cost.IsLowest {
					marker = "*"
				}
				_, _ = p.Printf(" %s %s $%.0f |", marker, cost.LenderName, cost.Cost)
			}
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(scored []compare.Scored) {
	fmt.Print(CsvString(scored))
}

// CsvString renders the scored quotes in comma-separated value format. The
// HTTP API returns the same string the CLI prints.
func CsvString(scored []compare.Scored) string {
	var b strings.Builder
	b.WriteString(`"lender","officer","program","rate","monthlyPI","lenderFees","pointsOrigination","lenderControlled","totalCost","cashToClose","score"`)
	b.WriteString("\n")
	for _, s := range scored {
		fmt.Fprintf(&b, `"%s","%s","%s","%.3f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%d"`,
			s.LenderName, s.LoanOfficer, s.Program, s.Rate, s.MonthlyPI,
			s.LenderFees, s.PointsOrigination, s.LenderControlled, s.TotalCost, s.CashToClose, s.Score)
		b.WriteString("\n")
	}
	return b.String()
}

// PlainSummary turns the comparison into short sentences a borrower can act
// on without reading the tables.
func PlainSummary(scored []compare.Scored) []string {
	var lines []string

	// Same-rate quotes differ only in cost, which makes the comparison
	// simple enough to state outright.
	for i := 0; i < len(scored); i++ {
		for j := i + 1; j < len(scored); j++ {
			a, b := scored[i], scored[j]
			if a.Rate != b.Rate {
				continue
			}
			cheaper, pricier := a, b
			if b.LenderControlled < a.LenderControlled {
				cheaper, pricier = b, a
			}
			delta := pricier.LenderControlled - cheaper.LenderControlled
			switch {
			case delta < 500:
				lines = append(lines, fmt.Sprintf("%s and %s quote the same rate (%.3f%%) and their lender costs are essentially a wash.",
					a.DisplayName(), b.DisplayName(), a.Rate))
			case delta < 2000:
				lines = append(lines, fmt.Sprintf("%s and %s quote the same rate (%.3f%%); %s charges %s less, a modest difference.",
					a.DisplayName(), b.DisplayName(), a.Rate, cheaper.DisplayName(), money.Currency(delta)))
			default:
				lines = append(lines, fmt.Sprintf("%s and %s quote the same rate (%.3f%%); %s charges %s less, a meaningful difference.",
					a.DisplayName(), b.DisplayName(), a.Rate, cheaper.DisplayName(), money.Currency(delta)))
			}
		}
	}

	records := make([]compare.Record, len(scored))
	for i, s := range scored {
		records[i] = s.Record
	}
	if baseline, ok := compare.Baseline(records); ok {
		for _, s := range scored {
			if s.Index == baseline.Index || s.Rate >= baseline.Rate {
				continue
			}
			be := compare.BreakevenAgainst(s.Record, baseline)
			if be.HasBreakeven {
				lines = append(lines, fmt.Sprintf("Paying %s more upfront with %s buys the rate down from %.3f%% to %.3f%% and pays for itself after %d months.",
					money.Currency(be.ExtraUpfront), s.DisplayName(), baseline.Rate, s.Rate, be.Months))
			} else if be.MonthlySavings > 0 && be.ExtraUpfront <= 0 {
				lines = append(lines, fmt.Sprintf("%s beats %s on both monthly payment and upfront cost.",
					s.DisplayName(), baseline.DisplayName()))
			}
		}
	}

	if best, ok := compare.Best(scored); ok {
		lines = append(lines, fmt.Sprintf("Best fit for your priorities: %s (score %d).", best.DisplayName(), best.Score))
	}

	return lines
}
