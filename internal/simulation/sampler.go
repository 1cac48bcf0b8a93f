package simulation

import (
	"math"
	"math/rand"
)

// Distribution samplers for the three scoring models. No external stats
// dependency: everything is built from math/rand primitives.

// sampleNormal draws from Normal(mean, stdDev)
func sampleNormal(rng *rand.Rand, mean, stdDev float64) float64 {
	return mean + rng.NormFloat64()*stdDev
}

// Knuth's method needs exp(-mean) to stay well above the float64 underflow
// threshold (underflow hits near mean 745). Larger means are split first.
const knuthMeanLimit = 500

// samplePoisson draws from Poisson(mean) using Knuth's product method.
// Means beyond the underflow-safe range are split into independent halves,
// which is exact: Poisson(a+b) is the sum of Poisson(a) and Poisson(b).
func samplePoisson(rng *rand.Rand, mean float64) float64 {
	if mean > knuthMeanLimit {
		half := mean / 2
		return samplePoisson(rng, half) + samplePoisson(rng, half)
	}
	limit := math.Exp(-mean)
	product := rng.Float64()
	count := 0
	for product > limit {
		product *= rng.Float64()
		count++
	}
	return float64(count)
}

// sampleGamma draws from Gamma(shape, scale) using the Marsaglia-Tsang
// squeeze method.
func sampleGamma(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1 {
		// Boost: Gamma(a) = Gamma(a+1) * U^(1/a)
		u := rng.Float64()
		return sampleGamma(rng, shape+1, scale) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		x := rng.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1.0-0.0331*x*x*x*x {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// sampleNegBinom draws from NegBinom(r, p) with p = r/(r+mean) via the
// gamma-Poisson mixture: lambda ~ Gamma(r, (1-p)/p), count ~ Poisson(lambda).
// This keeps the distribution mean at exactly mean = r*(1-p)/p.
func sampleNegBinom(rng *rand.Rand, r, p float64) float64 {
	lambda := sampleGamma(rng, r, (1-p)/p)
	if lambda <= 0 {
		return 0
	}
	return samplePoisson(rng, lambda)
}
