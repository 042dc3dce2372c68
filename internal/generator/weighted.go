package generator

import (
	"fmt"
	"sort"
)

// Rand is the random source a Generator draws from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// WeightedChooser draws indexes with probability proportional to their weight.
// Weights need not be normalized; zero weights are never drawn while a
// positive weight exists.
type WeightedChooser struct {
	cumulative []float64
	total      float64
}

// NewWeightedChooser precomputes the cumulative weights
func NewWeightedChooser(weights []float64) (*WeightedChooser, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyTable
	}

	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("weight[%d]=%v: %w", i, w, ErrInvalidWeight)
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("total weight %v: %w", total, ErrInvalidWeight)
	}

	return &WeightedChooser{cumulative: cumulative, total: total}, nil
}

// Len returns the number of choices
func (c *WeightedChooser) Len() int {
	return len(c.cumulative)
}

// Pick returns an index in [0, Len())
func (c *WeightedChooser) Pick(rng Rand) int {
	return c.index(rng.Float64() * c.total)
}

// index maps u in [0, total) to the first slot whose cumulative weight exceeds u
func (c *WeightedChooser) index(u float64) int {
	i := sort.Search(len(c.cumulative), func(i int) bool {
		return c.cumulative[i] > u
	})
	if i == len(c.cumulative) {
		// u rounded up to total; fall back to the last positive slot
		i = len(c.cumulative) - 1
		for i > 0 && c.cumulative[i] == c.cumulative[i-1] {
			i--
		}
	}
	return i
}
