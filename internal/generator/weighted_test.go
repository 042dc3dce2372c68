package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand replays floats and ints in order, wrapping around
type fixedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *fixedRand) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *fixedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func TestWeightedChooserBoundaries(t *testing.T) {
	c, err := NewWeightedChooser([]float64{1, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	// total 4: [0,1) -> 0, [1,3) -> 1, [3,4) -> 2
	cases := []struct {
		u    float64
		want int
	}{
		{0.0, 0},
		{0.2499, 0},
		{0.25, 1},
		{0.7499, 1},
		{0.75, 2},
		{0.9999, 2},
	}
	for _, tc := range cases {
		got := c.Pick(&fixedRand{floats: []float64{tc.u}})
		assert.Equal(t, tc.want, got, "u=%v", tc.u)
	}
}

func TestWeightedChooserSkipsZeroWeights(t *testing.T) {
	c, err := NewWeightedChooser([]float64{0, 3, 0, 1, 0})
	require.NoError(t, err)

	for _, u := range []float64{0, 0.1, 0.5, 0.74, 0.75, 0.99} {
		got := c.Pick(&fixedRand{floats: []float64{u}})
		assert.Contains(t, []int{1, 3}, got, "u=%v", u)
	}

	// u == total can only arise from rounding; it must still land on a positive slot
	assert.Equal(t, 3, c.index(4))
}

func TestWeightedChooserTies(t *testing.T) {
	c, err := NewWeightedChooser([]float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Pick(&fixedRand{floats: []float64{0.49}}))
	assert.Equal(t, 1, c.Pick(&fixedRand{floats: []float64{0.5}}))
}

func TestWeightedChooserRejectsBadWeights(t *testing.T) {
	_, err := NewWeightedChooser(nil)
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = NewWeightedChooser([]float64{0, 0})
	assert.ErrorIs(t, err, ErrInvalidWeight)

	_, err = NewWeightedChooser([]float64{1, -0.5})
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestWeightedChooserConvergence(t *testing.T) {
	tables := DefaultTables()
	weights := make([]float64, len(tables.Regions))
	total := 0.0
	for i, r := range tables.Regions {
		weights[i] = r.Weight
		total += r.Weight
	}

	c, err := NewWeightedChooser(weights)
	require.NoError(t, err)

	const draws = 100000
	rng := NewRand(42)
	counts := make([]int, len(weights))
	for i := 0; i < draws; i++ {
		counts[c.Pick(rng)]++
	}

	for i, w := range weights {
		want := w / total
		got := float64(counts[i]) / draws
		assert.InDelta(t, want, got, 0.02, tables.Regions[i].Name)
	}
}
