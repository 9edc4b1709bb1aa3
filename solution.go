// Package metamodes - per-channel permutation state and mutation operators.
//
// A Solution owns two views of the mode ordering:
//
//   - baseline (unpermuted modes): fixed at construction, the reference the
//     mutation operators start from;
//   - working (permuted modes): the current candidate permutation, nil until
//     first generated by RandomPermutation / PermuteOneChannel / Step.
//
// Invariant: every working row, whenever set, is a permutation of
// 0..nModes-1. Mutation always rebuilds the working view from the baseline,
// so accepted and in-flight candidates never alias each other; Clone turns
// the parent's working view into the child's baseline, which is how each
// accepted state becomes the next mutation baseline.
package metamodes

import "math/rand"

// Solution is one per-channel permutation of mode indices.
// It is not safe for concurrent use; it shares its random source with the
// Solver that owns it.
type Solution struct {
	nModes    int
	nChannels int

	baseline [][]int // unpermuted modes; row c is channel c's reference order
	working  [][]int // permuted modes; nil until first generated

	rng *rand.Rand
}

// NewSolution builds a Solution whose baseline is the identity ordering
// 0..nModes-1 for every channel. The working permutation starts unset.
// rng==nil selects the fixed default stream (seed-0 policy in rng.go).
//
// Returns ErrBadShape when nModes or nChannels is below 1.
//
// Complexity: O(nChannels · nModes).
func NewSolution(nModes, nChannels int, rng *rand.Rand) (*Solution, error) {
	if nModes < 1 || nChannels < 1 {
		return nil, ErrBadShape
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	baseline := make([][]int, nChannels)

	var c, m int
	for c = 0; c < nChannels; c++ {
		row := make([]int, nModes)
		for m = 0; m < nModes; m++ {
			row[m] = m
		}
		baseline[c] = row
	}

	return &Solution{
		nModes:    nModes,
		nChannels: nChannels,
		baseline:  baseline,
		rng:       rng,
	}, nil
}

// NewSolutionFrom builds a Solution whose baseline is a deep copy of the
// supplied table (rows = channels, columns = permuted positions). The table
// is taken verbatim apart from shape and range validation; the working
// permutation starts unset. rng==nil selects the fixed default stream.
//
// Returns ErrBadPermutation when the table is empty, ragged, or holds mode
// indices outside [0, nModes) where nModes is the common row length.
//
// Complexity: O(nChannels · nModes).
func NewSolutionFrom(permutation [][]int, rng *rand.Rand) (*Solution, error) {
	if len(permutation) == 0 || len(permutation[0]) == 0 {
		return nil, ErrBadPermutation
	}
	var (
		nChannels = len(permutation)
		nModes    = len(permutation[0])
	)
	if rng == nil {
		rng = rngFromSeed(0)
	}

	baseline := make([][]int, nChannels)

	var c, m int
	for c = 0; c < nChannels; c++ {
		if len(permutation[c]) != nModes {
			return nil, ErrBadPermutation
		}
		row := make([]int, nModes)
		for m = 0; m < nModes; m++ {
			if permutation[c][m] < 0 || permutation[c][m] >= nModes {
				return nil, ErrBadPermutation
			}
			row[m] = permutation[c][m]
		}
		baseline[c] = row
	}

	return &Solution{
		nModes:    nModes,
		nChannels: nChannels,
		baseline:  baseline,
		rng:       rng,
	}, nil
}

// RandomPermutation sets the working view by independently shuffling every
// baseline row uniformly at random. Returns the receiver for chaining.
// Used once per search, to obtain the initial non-trivial candidate.
//
// Complexity: O(nChannels · nModes).
func (s *Solution) RandomPermutation() *Solution {
	working := make([][]int, s.nChannels)

	var c int
	for c = 0; c < s.nChannels; c++ {
		row := make([]int, s.nModes)
		copy(row, s.baseline[c])
		shuffleIntsInPlace(row, s.rng)
		working[c] = row
	}
	s.working = working

	return s
}

// PermuteOneChannel rebuilds the working view as a copy of the baseline and
// replaces row channel with a fresh uniform permutation of 0..nModes-1.
//
// Returns ErrChannelOutOfRange when channel is outside [0, nChannels).
//
// Complexity: O(nChannels · nModes).
func (s *Solution) PermuteOneChannel(channel int) error {
	if channel < 0 || channel >= s.nChannels {
		return ErrChannelOutOfRange
	}

	working := make([][]int, s.nChannels)

	var c int
	for c = 0; c < s.nChannels; c++ {
		row := make([]int, s.nModes)
		copy(row, s.baseline[c])
		working[c] = row
	}
	working[channel] = freshPerm(s.nModes, s.rng)
	s.working = working

	return nil
}

// Step applies the search's sole proposal operator: it re-permutes one
// channel chosen uniformly at random. Returns the receiver for chaining.
//
// Complexity: O(nChannels · nModes).
func (s *Solution) Step() *Solution {
	// The drawn channel is in range by construction; the error path of
	// PermuteOneChannel is unreachable here.
	_ = s.PermuteOneChannel(s.rng.Intn(s.nChannels))

	return s
}

// Clone returns a new Solution whose baseline is seeded from the receiver's
// working view and whose working view is an independent deep copy of it.
// The clone therefore mutates from the receiver's current state, and
// mutating either solution never alters the other. The random source handle
// is shared (single-threaded by contract).
//
// If the working view is still unset, the clone reproduces the receiver
// as-is: baseline copied from baseline, working left unset.
//
// Complexity: O(nChannels · nModes).
func (s *Solution) Clone() *Solution {
	src := s.working
	if src == nil {
		src = s.baseline
	}

	var (
		baseline = make([][]int, s.nChannels)
		working  [][]int
		c        int
	)
	for c = 0; c < s.nChannels; c++ {
		row := make([]int, s.nModes)
		copy(row, src[c])
		baseline[c] = row
	}
	if s.working != nil {
		working = make([][]int, s.nChannels)
		for c = 0; c < s.nChannels; c++ {
			row := make([]int, s.nModes)
			copy(row, s.working[c])
			working[c] = row
		}
	}

	return &Solution{
		nModes:    s.nModes,
		nChannels: s.nChannels,
		baseline:  baseline,
		working:   working,
		rng:       s.rng,
	}
}

// NModes returns the number of modes per channel.
func (s *Solution) NModes() int { return s.nModes }

// NChannels returns the number of channels.
func (s *Solution) NChannels() int { return s.nChannels }

// UnpermutedModes returns a deep copy of the baseline table.
// Callers cannot alias the Solution's internal state through it.
func (s *Solution) UnpermutedModes() [][]int {
	return copyTable(s.baseline)
}

// PermutedModes returns a deep copy of the working table, or nil when no
// permutation has been generated yet.
func (s *Solution) PermutedModes() [][]int {
	if s.working == nil {
		return nil
	}

	return copyTable(s.working)
}

// copyTable deep-copies a rectangular int table.
//
// Complexity: O(rows · cols).
func copyTable(t [][]int) [][]int {
	out := make([][]int, len(t))

	var i int
	for i = 0; i < len(t); i++ {
		row := make([]int, len(t[i]))
		copy(row, t[i])
		out[i] = row
	}

	return out
}
