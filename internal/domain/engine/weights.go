package engine

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/crewsync/backend/internal/domain/model"
)

// weightEpsilon bounds the rounding error tolerated when checking that the
// weight table sums to 1.0.
const weightEpsilon = 1e-9

// weights is the fixed attribute weight table, in model.AttributeNames order.
// The 17 entries must sum to exactly 1.0; New refuses to build otherwise.
var weights = [17]float64{
	0.15, // fatigueScore
	0.10, // restPeriodScore
	0.08, // consecutiveDutyScore
	0.07, // medicalStatusScore
	0.10, // performanceScore
	0.08, // onTimeRecordScore
	0.07, // skillProficiencyScore
	0.08, // reliabilityScore
	0.07, // backoutHistoryScore
	0.05, // seniorityScore
	0.05, // flightHoursScore
	0.03, // locationScore
	0.02, // availabilityScore
	0.02, // dutyComplianceScore
	0.01, // certificationValidityScore
	0.01, // languageProficiencyScore
	0.01, // routeFamiliarityScore
}

// WeightTable returns the weight table keyed by canonical attribute name.
func WeightTable() map[string]float64 {
	table := make(map[string]float64, len(model.AttributeNames))
	for i, name := range model.AttributeNames {
		table[name] = weights[i]
	}
	return table
}

// validateWeights checks the sum-to-one invariant of the weight table.
func validateWeights() error {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > weightEpsilon {
		return fmt.Errorf("%w: weights sum to %v, want 1.0", ErrInvalidWeights, sum)
	}
	return nil
}

// compositeScore computes the weighted sum over all 17 attributes, rounded
// to 2 decimal places. Missing record fields decode to 0 and contribute 0.
func compositeScore(attrs model.Attributes) float64 {
	vals := attrs.Values()
	var score float64
	for i, w := range weights {
		score += vals[i] * w
	}
	return round2(score)
}

// round2 rounds to 2 decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// humanizeAttribute converts a camelCase record key to a display name:
// the "Score" suffix is dropped and a space is inserted before each internal
// capital, e.g. "onTimeRecordScore" becomes "On Time Record".
func humanizeAttribute(name string) string {
	name = strings.TrimSuffix(name, "Score")
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// keyStrengths lists the display names of attributes whose raw value exceeds
// the threshold, in weight-table order.
func keyStrengths(attrs model.Attributes, threshold float64) []string {
	vals := attrs.Values()
	strengths := make([]string, 0, len(vals))
	for i, v := range vals {
		if v > threshold {
			strengths = append(strengths, humanizeAttribute(model.AttributeNames[i]))
		}
	}
	return strengths
}
