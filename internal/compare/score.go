package compare

import (
	"math"

	"github.com/joshuaphillips-collab/mortgage-compare/internal/reputation"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/constants"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/mathutil"
)

// Weights holds the relative importance of the four comparison dimensions.
// All values must be non-negative; a zero sum is allowed and yields neutral
// scores.
type Weights struct {
	Cost       float64 `json:"cost" mapstructure:"cost"`
	Payment    float64 `json:"payment" mapstructure:"payment"`
	Cash       float64 `json:"cash" mapstructure:"cash"`
	Reputation float64 `json:"reputation" mapstructure:"reputation"`
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	return w.Cost + w.Payment + w.Cash + w.Reputation
}

// DefaultWeights is the balanced preset applied when a session does not
// choose its own priorities.
func DefaultWeights() Weights {
	return Weights{Cost: 5, Payment: 3, Cash: 3, Reputation: 4}
}

// DimensionScores holds the per-dimension normalized scores behind a
// composite score, each 0-100.
type DimensionScores struct {
	Cost       int `json:"cost"`
	Payment    int `json:"payment"`
	Cash       int `json:"cash"`
	Reputation int `json:"reputation"`
}

// Scored is a comparison record with its composite 0-100 score.
type Scored struct {
	Record
	Score      int             `json:"score"`
	Dimensions DimensionScores `json:"dimensionScores"`
}

// Score ranks the records by combining four normalized dimensions (total
// cost, monthly P&I, cash requirement, reputation) under the supplied
// weights. Lower raw cost values normalize to higher scores; within each
// numeric dimension the best record in the set scores 100 and the worst 0,
// with everything tied scoring 100. A record whose officer has no stored
// reputation gets the neutral reputation score, so absent data neither
// penalizes nor rewards. A zero total weight yields the neutral score for
// every record.
func Score(records []Record, weights Weights, reputations map[string]reputation.Reputation) []Scored {
	if len(records) == 0 {
		return nil
	}

	scored := make([]Scored, len(records))
	if weights.Total() == 0 {
		for i, r := range records {
			scored[i] = Scored{
				Record: r,
				Score:  constants.NeutralScore,
				Dimensions: DimensionScores{
					Cost:       constants.NeutralScore,
					Payment:    constants.NeutralScore,
					Cash:       constants.NeutralScore,
					Reputation: constants.NeutralScore,
				},
			}
		}
		return scored
	}

	costScores := normalize(records, func(r Record) float64 { return r.TotalCost })
	paymentScores := normalize(records, func(r Record) float64 { return r.MonthlyPI })
	cashScores := normalize(records, func(r Record) float64 {
		// Fall back to lender-controlled cost when the quote did not
		// state cash to close.
		if r.CashToClose > 0 {
			return r.CashToClose
		}
		return r.LenderControlled
	})

	for i, r := range records {
		repScore := float64(constants.NeutralScore)
		if rep, ok := reputations[r.ReputationKey()]; ok {
			repScore = rep.Rating / constants.MaxRating * 100
		}

		composite := (costScores[i]*weights.Cost +
			paymentScores[i]*weights.Payment +
			cashScores[i]*weights.Cash +
			repScore*weights.Reputation) / weights.Total()

		scored[i] = Scored{
			Record: r,
			Score:  int(math.Round(composite)),
			Dimensions: DimensionScores{
				Cost:       int(math.Round(costScores[i])),
				Payment:    int(math.Round(paymentScores[i])),
				Cash:       int(math.Round(cashScores[i])),
				Reputation: int(math.Round(repScore)),
			},
		}
	}
	return scored
}

// normalize maps each record's raw value into 0-100 with lower raw values
// scoring higher. When every value is identical the whole set scores 100.
func normalize(records []Record, value func(Record) float64) []float64 {
	min, max := value(records[0]), value(records[0])
	for _, r := range records[1:] {
		min = mathutil.Min(min, value(r))
		max = mathutil.Max(max, value(r))
	}

	out := make([]float64, len(records))
	for i, r := range records {
		if max == min {
			out[i] = 100
			continue
		}
		out[i] = 100 - (value(r)-min)/(max-min)*100
	}
	return out
}

// Best returns the record with the strictly highest score. Exact ties go to
// the first record encountered; the tie-break is arbitrary but
// deterministic. ok is false when scored is empty.
func Best(scored []Scored) (best Scored, ok bool) {
	for i, s := range scored {
		if i == 0 || s.Score > best.Score {
			best = s
		}
	}
	return best, len(scored) > 0
}
