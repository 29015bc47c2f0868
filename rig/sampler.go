package rig

import (
	"math"
	"math/rand/v2"
)

const (
	ExpressionMin = 0.0
	ExpressionMax = 0.3 // exclusive
)

// Sampler draws the next float in [lo, hi).
type Sampler interface {
	Uniform(lo, hi float64) float64
}

// RandSampler is a Sampler backed by math/rand/v2. A nil Rand uses the
// package-level generator.
type RandSampler struct {
	Rand *rand.Rand
}

// NewSeededSampler returns a deterministic sampler, handy for tests and replays.
func NewSeededSampler(seed uint64) RandSampler {
	return RandSampler{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s RandSampler) Uniform(lo, hi float64) float64 {
	var f float64
	if s.Rand != nil {
		f = s.Rand.Float64()
	} else {
		f = rand.Float64()
	}
	v := lo + f*(hi-lo)
	// lo + f*(hi-lo) can round up to hi for some ranges.
	if v >= hi {
		return math.Nextafter(hi, lo)
	}
	return v
}

// Weights draws one independent value per channel in [ExpressionMin, ExpressionMax).
// No smoothing between calls.
func Weights(s Sampler) []float64 {
	out := make([]float64, len(Channels))
	for i := range out {
		out[i] = s.Uniform(ExpressionMin, ExpressionMax)
	}
	return out
}
