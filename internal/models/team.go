package models

import "math"

// TeamStats holds a team's per-game scoring profile. It is a pure value type:
// two instances with equal fields are interchangeable.
type TeamStats struct {
	// Avg is the mean points scored per game.
	Avg float64 `json:"avg"`
	// Allow is the mean points allowed per game.
	Allow float64 `json:"allow"`
	// OverRate is the fraction of past games in [0,1] whose combined score
	// exceeded the posted total.
	OverRate float64 `json:"over_rate"`
}

// Validate checks the stats against the engine preconditions. The prefix
// ("home"/"away") qualifies the field name in the returned error.
func (t TeamStats) Validate(prefix string) error {
	if !isFinite(t.Avg) || t.Avg <= 0 {
		return NewInvalidInput(prefix+".avg", "must be a finite number greater than zero")
	}
	if !isFinite(t.Allow) || t.Allow <= 0 {
		return NewInvalidInput(prefix+".allow", "must be a finite number greater than zero")
	}
	if !isFinite(t.OverRate) || t.OverRate < 0 || t.OverRate > 1 {
		return NewInvalidInput(prefix+".over_rate", "must be a fraction between 0 and 1")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
