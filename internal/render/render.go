// Package render formats simulation results for terminal display.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/yourusername/star-totals/internal/models"
)

var explanations = map[int]string{
	5: "extremely strong signal",
	4: "strong recommendation",
	3: "neutral, needs judgment",
	2: "caution, lean under",
	1: "strong avoid, lean under",
}

// FormatResult renders a simulation result as a multi-line report: expected
// scores, the per-model and fused percentages, the recommendation, and the
// star line with its explanation.
func FormatResult(res *models.SimulationResult, target float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Expected home score: %.2f, away score: %.2f\n", res.HomeScore, res.AwayScore)
	fmt.Fprintf(&b, "Expected combined:   %.2f | line: %g\n", res.CombinedAverage, target)
	fmt.Fprintf(&b, "Monte Carlo:         %.1f%%\n", res.MonteCarloProb)
	fmt.Fprintf(&b, "Negative binomial:   %.1f%%\n", res.NegBinomProb)
	fmt.Fprintf(&b, "Poisson:             %.1f%%\n", res.PoissonProb)
	fmt.Fprintf(&b, "Fused probability:   %.1f%%\n", res.FusedProbability)
	fmt.Fprintf(&b, "Recommendation:      %s\n", res.Recommendation)
	fmt.Fprintf(&b, "%s (%.1f/5.0)\n", StarLine(res.StarRating), res.StarRating)
	fmt.Fprintf(&b, "%s\n", Explanation(res.StarRating))

	return b.String()
}

// StarLine renders the rating as filled and empty glyphs. The glyph count is
// the rating rounded to the nearest whole star; the numeric rating keeps its
// decimal place and is shown alongside.
func StarLine(rating float64) string {
	filled := wholeStars(rating)
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// Explanation returns the fixed advisory text for the rating's whole-star value
func Explanation(rating float64) string {
	return explanations[wholeStars(rating)]
}

func wholeStars(rating float64) int {
	n := int(math.Round(rating))
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return n
}
