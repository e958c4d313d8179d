// Package reputation holds externally-resolved loan-officer reputation
// records and the stores that cache them between comparisons. The lookup
// itself happens outside this application; a record that was never resolved
// is simply absent, and scoring treats absence as neutral.
package reputation

// Reputation summarizes review data for one loan officer at one lender.
type Reputation struct {
	Rating      float64  `json:"rating"` // 0-5 stars
	ReviewCount int      `json:"reviewCount"`
	Summary     string   `json:"summary"`
	Highlights  []string `json:"highlights,omitempty"`
	Concerns    []string `json:"concerns,omitempty"`
	Sources     []string `json:"sources,omitempty"`
}

// Key builds the store key for an officer/lender pair.
func Key(officer, lenderName string) string {
	return officer + "|" + lenderName
}
