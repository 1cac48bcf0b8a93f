// Package staking converts a fused over-probability and the offered odds
// into a suggested stake using fractional Kelly sizing.
package staking

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/star-totals/internal/models"
)

// Sizer calculates position sizes from model probabilities
type Sizer struct {
	// KellyFraction scales the full Kelly stake down for safety
	// (quarter-Kelly by default).
	KellyFraction float64
	// MaxStakeFraction caps the stake as a fraction of bankroll.
	MaxStakeFraction float64
}

// NewSizer creates a sizer with the given fractions
func NewSizer(kellyFraction, maxStakeFraction float64) *Sizer {
	return &Sizer{
		KellyFraction:    kellyFraction,
		MaxStakeFraction: maxStakeFraction,
	}
}

// SuggestStake calculates a stake for backing the recommendation at the given
// decimal odds. A non-positive edge suggests no bet and returns zero.
//
// Kelly Criterion: f = (bp - q) / b
// where b = decimal odds - 1, p = win probability, q = 1 - p.
func (s *Sizer) SuggestStake(fusedProbPct float64, odds, bankroll decimal.Decimal) (decimal.Decimal, error) {
	if fusedProbPct < 0 || fusedProbPct > 100 {
		return decimal.Zero, models.NewInvalidInput("fused_probability", "must be a percentage between 0 and 100")
	}
	oddsF, _ := odds.Float64()
	if oddsF <= 1 {
		return decimal.Zero, models.NewInvalidInput("odds", "decimal odds must be greater than 1")
	}
	if bankroll.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, models.NewInvalidInput("bankroll", "must be greater than zero")
	}

	p := fusedProbPct / 100
	q := 1 - p
	b := oddsF - 1

	kelly := (b*p - q) / b
	if kelly <= 0 {
		return decimal.Zero, nil
	}

	fraction := kelly * s.KellyFraction
	if fraction > s.MaxStakeFraction {
		fraction = s.MaxStakeFraction
	}

	stake := bankroll.Mul(decimal.NewFromFloat(fraction)).Round(2)
	return stake, nil
}
