package models

// Recommendation represents the over/under call for a posted total
type Recommendation string

const (
	RecommendationOver  Recommendation = "over"
	RecommendationUnder Recommendation = "under"
)

// SimulationResult is the full output of one simulation run. It is produced
// once per request and never mutated; the caller formats it for display.
type SimulationResult struct {
	// Expected scores from the weighted model, before any random variation.
	HomeScore       float64 `json:"home_score"`
	AwayScore       float64 `json:"away_score"`
	CombinedAverage float64 `json:"combined_average"`

	// Per-model probabilities that the combined score beats the target,
	// each a percentage in [0,100].
	MonteCarloProb float64 `json:"monte_carlo_prob"`
	NegBinomProb   float64 `json:"neg_binom_prob"`
	PoissonProb    float64 `json:"poisson_prob"`

	// FusedProbability is the weighted blend of the three models, in [0,100].
	FusedProbability float64 `json:"fused_probability"`

	Recommendation Recommendation `json:"recommendation"`

	// StarRating is the confidence score in [1.0,5.0], one decimal place.
	StarRating float64 `json:"star_rating"`

	// Derived signals that fed the star rating.
	MeanDiff        float64 `json:"mean_diff"`
	OverConsistency float64 `json:"over_consistency"`
	Volatility      float64 `json:"volatility"`
	TrendStrength   float64 `json:"trend_strength"`
}

// IsOver reports whether the recommendation favors the over
func (r *SimulationResult) IsOver() bool {
	return r.Recommendation == RecommendationOver
}
