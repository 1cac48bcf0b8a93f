// Package simulation implements the over/under scoring engine: a weighted
// expected-score model, three independent estimators of the probability that
// the combined score beats the posted total, and their fusion into a single
// probability and star rating.
package simulation

import (
	"math"
	"math/rand"
	"time"

	"github.com/yourusername/star-totals/internal/models"
)

// Expected-score blend: 70% own scoring average, 30% opponent leakiness,
// then a small tilt from the team's historical over tendency.
const (
	ownAvgWeight   = 0.7
	oppAllowWeight = 0.3
	overRateTilt   = 0.05
)

// Simulator runs the scoring models. Each instance owns its random source,
// so concurrent callers should construct one simulator each.
type Simulator struct {
	cfg Config
	rng *rand.Rand
}

// NewSimulator creates a simulator with the given model parameters.
// A zero seed is replaced with the current clock.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Simulate estimates the probability that home and away combine to beat the
// target total, and derives the recommendation and star rating from it.
// Inputs are validated before any sampling; a violation returns an
// InvalidInputError naming the field.
func (s *Simulator) Simulate(home, away models.TeamStats, target float64) (*models.SimulationResult, error) {
	if err := validateInputs(home, away, target); err != nil {
		return nil, err
	}

	homeScore := weightedScore(home, away.Allow)
	awayScore := weightedScore(away, home.Allow)
	combined := homeScore + awayScore

	mcProb := s.monteCarloProb(homeScore, awayScore, target)
	nbProb := s.negBinomProb(homeScore, awayScore, target)
	poisProb := s.poissonProb(homeScore, awayScore, target)
	fused := monteCarloWeight*mcProb + negBinomWeight*nbProb + poissonWeight*poisProb

	meanDiff := (combined - target) / 5
	overConsistency := home.OverRate + away.OverRate - 1
	volatility := populationStdDev(home.Avg, home.Allow)
	trendStrength := home.OverRate - away.OverRate

	stars, err := CalculateStars(fused, meanDiff, overConsistency, volatility, trendStrength)
	if err != nil {
		return nil, err
	}

	return &models.SimulationResult{
		HomeScore:        homeScore,
		AwayScore:        awayScore,
		CombinedAverage:  combined,
		MonteCarloProb:   mcProb,
		NegBinomProb:     nbProb,
		PoissonProb:      poisProb,
		FusedProbability: fused,
		Recommendation:   recommendationFor(fused),
		StarRating:       stars,
		MeanDiff:         meanDiff,
		OverConsistency:  overConsistency,
		Volatility:       volatility,
		TrendStrength:    trendStrength,
	}, nil
}

func validateInputs(home, away models.TeamStats, target float64) error {
	if err := home.Validate("home"); err != nil {
		return err
	}
	if err := away.Validate("away"); err != nil {
		return err
	}
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return models.NewInvalidInput("target", "must be a finite number greater than zero")
	}
	return nil
}

// weightedScore blends a team's scoring average with the opponent's points
// allowed, then tilts for the team's tendency toward high-scoring games.
func weightedScore(t models.TeamStats, oppAllow float64) float64 {
	return (t.Avg*ownAvgWeight + oppAllow*oppAllowWeight) * (1 + t.OverRate*overRateTilt)
}

// monteCarloProb draws each team's final score from a normal distribution
// centered on its expected score and reports the percentage of paired sums
// beating the target.
func (s *Simulator) monteCarloProb(homeMean, awayMean, target float64) float64 {
	over := 0
	for i := 0; i < s.cfg.SampleCount; i++ {
		total := sampleNormal(s.rng, homeMean, s.cfg.ScoreStdDev) +
			sampleNormal(s.rng, awayMean, s.cfg.ScoreStdDev)
		if total > target {
			over++
		}
	}
	return percent(over, s.cfg.SampleCount)
}

// negBinomProb models each team's score as an over-dispersed count process.
// p = r/(r+mean) keeps the distribution mean matched to the expected score.
func (s *Simulator) negBinomProb(homeMean, awayMean, target float64) float64 {
	r := s.cfg.NegBinomDispersion
	homeP := r / (r + homeMean)
	awayP := r / (r + awayMean)
	over := 0
	for i := 0; i < s.cfg.SampleCount; i++ {
		total := sampleNegBinom(s.rng, r, homeP) + sampleNegBinom(s.rng, r, awayP)
		if total > target {
			over++
		}
	}
	return percent(over, s.cfg.SampleCount)
}

// poissonProb models scoring as an idealized low-variance count process, a
// contrasting baseline to the negative-binomial model.
func (s *Simulator) poissonProb(homeMean, awayMean, target float64) float64 {
	over := 0
	for i := 0; i < s.cfg.SampleCount; i++ {
		total := samplePoisson(s.rng, homeMean) + samplePoisson(s.rng, awayMean)
		if total > target {
			over++
		}
	}
	return percent(over, s.cfg.SampleCount)
}

// recommendationFor resolves a fused probability to a label. Exactly 50
// resolves to over; the tie rule is fixed, not incidental.
func recommendationFor(fusedProb float64) models.Recommendation {
	if fusedProb >= 50 {
		return models.RecommendationOver
	}
	return models.RecommendationUnder
}

// populationStdDev is the two-value population standard deviation (divisor 2)
// of the home team's points scored and points allowed, used as a crude
// per-game variability proxy. Only the home side feeds it.
func populationStdDev(a, b float64) float64 {
	mean := (a + b) / 2
	da := a - mean
	db := b - mean
	return math.Sqrt((da*da + db*db) / 2)
}

func percent(count, total int) float64 {
	return float64(count) / float64(total) * 100
}
