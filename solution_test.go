package metamodes_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metamodes"
)

// TestNewSolution_IdentityBaseline verifies that every channel's baseline
// row is exactly 0..nModes-1 and that the working view starts unset.
func TestNewSolution_IdentityBaseline(t *testing.T) {
	s, err := metamodes.NewSolution(5, 3, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, s.NModes())
	assert.Equal(t, 3, s.NChannels())
	assert.Nil(t, s.PermutedModes(), "working permutation must start unset")

	for c, row := range s.UnpermutedModes() {
		assert.Equal(t, []int{0, 1, 2, 3, 4}, row, "channel %d baseline", c)
	}
}

// TestNewSolution_BadShape rejects non-positive dimensions.
func TestNewSolution_BadShape(t *testing.T) {
	_, err := metamodes.NewSolution(0, 3, nil)
	assert.ErrorIs(t, err, metamodes.ErrBadShape)

	_, err = metamodes.NewSolution(3, 0, nil)
	assert.ErrorIs(t, err, metamodes.ErrBadShape)
}

// TestNewSolutionFrom covers the caller-supplied baseline path: verbatim
// deep copy, ragged rejection, and range validation.
func TestNewSolutionFrom(t *testing.T) {
	table := [][]int{{1, 0, 2}, {2, 1, 0}}
	s, err := metamodes.NewSolutionFrom(table, nil)
	require.NoError(t, err)
	assert.Equal(t, table, s.UnpermutedModes())

	// The baseline is a deep copy: mutating the input must not leak in.
	table[0][0] = 99
	assert.Equal(t, [][]int{{1, 0, 2}, {2, 1, 0}}, s.UnpermutedModes())

	// Ragged table.
	_, err = metamodes.NewSolutionFrom([][]int{{0, 1}, {0}}, nil)
	assert.ErrorIs(t, err, metamodes.ErrBadPermutation)

	// Empty table.
	_, err = metamodes.NewSolutionFrom(nil, nil)
	assert.ErrorIs(t, err, metamodes.ErrBadPermutation)

	// Mode index out of range.
	_, err = metamodes.NewSolutionFrom([][]int{{0, 3}, {1, 0}}, nil)
	assert.ErrorIs(t, err, metamodes.ErrBadPermutation)
}

// TestRandomPermutation_RowsArePermutations runs many trials and checks the
// core invariant: every working row is a permutation of 0..nModes-1.
func TestRandomPermutation_RowsArePermutations(t *testing.T) {
	const (
		nModes    = 7
		nChannels = 4
		trials    = 50
	)
	s, err := metamodes.NewSolution(nModes, nChannels, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	for trial := 0; trial < trials; trial++ {
		got := s.RandomPermutation().PermutedModes()
		require.Len(t, got, nChannels)
		for c, row := range got {
			assert.True(t, isPermutation(row, nModes),
				"trial %d channel %d: %v is not a permutation", trial, c, row)
		}
	}
}

// TestPermuteOneChannel verifies the single-channel mutation: the chosen row
// is a fresh permutation, all other rows equal the baseline, and
// out-of-range channels are rejected.
func TestPermuteOneChannel(t *testing.T) {
	const (
		nModes    = 6
		nChannels = 3
	)
	s, err := metamodes.NewSolution(nModes, nChannels, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	require.ErrorIs(t, s.PermuteOneChannel(-1), metamodes.ErrChannelOutOfRange)
	require.ErrorIs(t, s.PermuteOneChannel(nChannels), metamodes.ErrChannelOutOfRange)

	baseline := s.UnpermutedModes()
	require.NoError(t, s.PermuteOneChannel(1))

	got := s.PermutedModes()
	require.Len(t, got, nChannels)
	assert.Equal(t, baseline[0], got[0], "untouched channel 0 must equal baseline")
	assert.Equal(t, baseline[2], got[2], "untouched channel 2 must equal baseline")
	assert.True(t, isPermutation(got[1], nModes), "mutated row must stay a permutation")
}

// TestStep_RowsStayValid applies the search's proposal operator many times
// and checks the permutation invariant after each application.
func TestStep_RowsStayValid(t *testing.T) {
	const (
		nModes    = 5
		nChannels = 4
		steps     = 100
	)
	s, err := metamodes.NewSolution(nModes, nChannels, rand.New(rand.NewSource(21)))
	require.NoError(t, err)
	s.RandomPermutation()

	for i := 0; i < steps; i++ {
		for c, row := range s.Step().PermutedModes() {
			require.True(t, isPermutation(row, nModes),
				"step %d channel %d: %v is not a permutation", i, c, row)
		}
	}
}

// TestClone_Independence verifies the copy-on-accept semantics: the clone's
// baseline is seeded from the parent's working view, and mutating the clone
// never alters the parent.
func TestClone_Independence(t *testing.T) {
	s, err := metamodes.NewSolution(4, 3, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	s.RandomPermutation()

	parentWorking := s.PermutedModes()

	c := s.Clone()
	assert.Equal(t, parentWorking, c.UnpermutedModes(),
		"clone baseline must be seeded from the parent's working view")
	assert.Equal(t, parentWorking, c.PermutedModes(),
		"clone working view must mirror the parent's")

	// Mutate the clone heavily; the parent must stay untouched.
	c.RandomPermutation()
	require.NoError(t, c.PermuteOneChannel(0))
	assert.Equal(t, parentWorking, s.PermutedModes(), "parent mutated via clone")
}

// TestClone_BeforePermutation covers the degenerate pre-mutation clone: the
// baseline is reproduced and the working view stays unset.
func TestClone_BeforePermutation(t *testing.T) {
	s, err := metamodes.NewSolution(3, 2, nil)
	require.NoError(t, err)

	c := s.Clone()
	assert.Equal(t, s.UnpermutedModes(), c.UnpermutedModes())
	assert.Nil(t, c.PermutedModes())
}

// TestSolution_DeterministicWithSeed verifies reproducibility: two solutions
// driven by identically seeded generators trace identical permutations.
func TestSolution_DeterministicWithSeed(t *testing.T) {
	a, err := metamodes.NewSolution(6, 4, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := metamodes.NewSolution(6, 4, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	a.RandomPermutation()
	b.RandomPermutation()
	assert.Equal(t, a.PermutedModes(), b.PermutedModes())

	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
		assert.Equal(t, a.PermutedModes(), b.PermutedModes(), "diverged at step %d", i)
	}
}

// TestSolution_AccessorCopies verifies that the exported tables are deep
// copies: callers cannot corrupt internal state through them.
func TestSolution_AccessorCopies(t *testing.T) {
	s, err := metamodes.NewSolution(4, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	s.RandomPermutation()

	w := s.PermutedModes()
	w[0][0] = 77
	assert.NotEqual(t, 77, s.PermutedModes()[0][0], "accessor must return a copy")

	u := s.UnpermutedModes()
	u[1][1] = 77
	assert.NotEqual(t, 77, s.UnpermutedModes()[1][1], "accessor must return a copy")
}
