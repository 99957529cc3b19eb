package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_IsPermutationAndDoesNotMutate(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7}
	orig := slices.Clone(in)

	out := Shuffle(in, NewSeededSource(3))

	assert.Equal(t, orig, in)
	require.Len(t, out, len(in))
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	assert.Equal(t, orig, sorted)
}

func TestShuffle_Uniform(t *testing.T) {
	const (
		n      = 4
		trials = 48000
	)
	in := []int{0, 1, 2, 3}
	rng := NewSeededSource(2024)

	// counts[value][position]
	var counts [n][n]int
	for i := 0; i < trials; i++ {
		for pos, v := range Shuffle(in, rng) {
			counts[v][pos]++
		}
	}

	expected := float64(trials) / n
	for v := 0; v < n; v++ {
		for pos := 0; pos < n; pos++ {
			got := float64(counts[v][pos])
			assert.InDelta(t, expected, got, expected*0.05, "value %d at position %d", v, pos)
		}
	}
}

func TestShuffle_UsesBackwardFisherYates(t *testing.T) {
	// draws of 0 swap every element with the head, walking from the tail
	src := &sequenceSource{values: []int{0}}
	out := Shuffle([]string{"a", "b", "c"}, src)
	// i=2: swap(2,0) -> c b a ; i=1: swap(1,0) -> b c a
	assert.Equal(t, []string{"b", "c", "a"}, out)
}

func TestShuffle_Empty(t *testing.T) {
	assert.Empty(t, Shuffle([]int{}, NewSeededSource(1)))
	assert.Nil(t, Shuffle[int](nil, NewSeededSource(1)))
}
