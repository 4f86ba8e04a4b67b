package conversation

import (
	"math/rand/v2"
	"time"
)

// PauseSampler draws the silence inserted between lines from a normal
// distribution, at millisecond resolution and never below zero.
type PauseSampler struct {
	Mean  time.Duration
	Stdev time.Duration
	rng   *rand.Rand
}

// NewPauseSampler builds a sampler from millisecond settings. A nil rng gets
// a randomly seeded source.
func NewPauseSampler(meanMS, stdevMS int, rng *rand.Rand) *PauseSampler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &PauseSampler{
		Mean:  time.Duration(meanMS) * time.Millisecond,
		Stdev: time.Duration(stdevMS) * time.Millisecond,
		rng:   rng,
	}
}

// NewSeededRand returns a deterministic random source for seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Sample returns the next pause length.
func (p *PauseSampler) Sample() time.Duration {
	mean := float64(p.Mean.Milliseconds())
	stdev := float64(p.Stdev.Milliseconds())

	ms := int64(p.rng.NormFloat64()*stdev + mean)
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}
