package simulation

import (
	"fmt"

	"github.com/yourusername/star-totals/internal/config"
)

// Model fusion weights. The Poisson model is down-weighted because it
// understates scoring variance relative to real game outcomes.
const (
	monteCarloWeight = 0.4
	negBinomWeight   = 0.4
	poissonWeight    = 0.2
)

// Config holds the tunable model parameters. They are process-wide constants
// in production; tests override them (smaller SampleCount, fixed Seed).
type Config struct {
	// ScoreStdDev is the standard deviation of a single team's game score
	// under the normal model.
	ScoreStdDev float64
	// NegBinomDispersion is the negative-binomial shape parameter r.
	NegBinomDispersion float64
	// SampleCount is the number of draws per model.
	SampleCount int
	// Seed for the random source. Zero means seed from the clock.
	Seed int64
}

// DefaultConfig returns the production model parameters
func DefaultConfig() Config {
	return Config{
		ScoreStdDev:        12.5,
		NegBinomDispersion: 6.8,
		SampleCount:        50000,
	}
}

// FromConfig builds model parameters from the application configuration
func FromConfig(cfg *config.SimulationConfig) (Config, error) {
	c := Config{
		ScoreStdDev:        cfg.ScoreStdDev,
		NegBinomDispersion: cfg.NegBinomDispersion,
		SampleCount:        cfg.SampleCount,
		Seed:               cfg.Seed,
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid simulation config: %w", err)
	}
	return c, nil
}

// Validate checks that the model parameters are usable
func (c Config) Validate() error {
	if c.ScoreStdDev <= 0 {
		return fmt.Errorf("score std dev must be positive, got %v", c.ScoreStdDev)
	}
	if c.NegBinomDispersion <= 0 {
		return fmt.Errorf("negative binomial dispersion must be positive, got %v", c.NegBinomDispersion)
	}
	if c.SampleCount <= 0 {
		return fmt.Errorf("sample count must be positive, got %d", c.SampleCount)
	}
	return nil
}
