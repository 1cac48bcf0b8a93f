package simulation

import (
	"math"

	"github.com/yourusername/star-totals/internal/models"
)

// Star rating blend weights over the four signals
const (
	meanDiffWeight        = 0.8
	overConsistencyWeight = 0.6
	volatilityWeight      = 0.4
	trendStrengthWeight   = 0.3
)

// CalculateStars converts the fused probability and the four derived signals
// into a confidence rating. The probability term gives a floor that grows
// superlinearly past the coin-flip baseline; the signals shift it up or down.
// The result is rounded to one decimal place and then clamped to [1.0,5.0];
// the round-before-clamp order is deliberate.
func CalculateStars(prob, meanDiff, overConsistency, volatility, trendStrength float64) (float64, error) {
	if err := validateSignal("prob", prob); err != nil {
		return 0, err
	}
	if prob < 0 {
		return 0, models.NewInvalidInput("prob", "must be non-negative")
	}
	if err := validateSignal("mean_diff", meanDiff); err != nil {
		return 0, err
	}
	if err := validateSignal("over_consistency", overConsistency); err != nil {
		return 0, err
	}
	if err := validateSignal("volatility", volatility); err != nil {
		return 0, err
	}
	if volatility < 0 {
		return 0, models.NewInvalidInput("volatility", "must be non-negative")
	}
	if err := validateSignal("trend_strength", trendStrength); err != nil {
		return 0, err
	}

	base := math.Min(5, 0.5+math.Pow(prob/20, 1.5))
	adjustment := meanDiffWeight*meanDiff +
		overConsistencyWeight*overConsistency +
		volatilityWeight*math.Log1p(volatility) -
		trendStrengthWeight*trendStrength

	rating := math.Round((base+adjustment)*10) / 10
	return clamp(rating, 1, 5), nil
}

func validateSignal(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return models.NewInvalidInput(name, "must be a finite number")
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
