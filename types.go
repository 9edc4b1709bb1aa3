// Package metamodes - shared types, sentinel errors and configuration.
//
// This file follows the package's strict-sentinel policy: every failure
// surfaced by the public API is one of the errors declared below, so callers
// can branch with errors.Is without string matching.
package metamodes

import "errors"

// Sentinel errors returned by construction, evaluation and search.
var (
	// ErrUnknownObjective indicates an objective selector outside the
	// supported set. Valid objectives: sum, abs_sum.
	ErrUnknownObjective = errors.New("metamodes: unknown objective; valid objectives: sum, abs_sum")

	// ErrNilMatrix indicates that a nil correlation matrix was supplied.
	ErrNilMatrix = errors.New("metamodes: correlation matrix is nil")

	// ErrNonSquare indicates a correlation matrix whose row and column
	// counts differ.
	ErrNonSquare = errors.New("metamodes: correlation matrix must be square")

	// ErrDimensionMismatch indicates that the correlation matrix order does
	// not equal nModes*nChannels, or that a solution's shape does not match
	// the problem it is evaluated against.
	ErrDimensionMismatch = errors.New("metamodes: dimension mismatch")

	// ErrAsymmetry indicates that the correlation matrix is not symmetric
	// within the structural tolerance.
	ErrAsymmetry = errors.New("metamodes: correlation matrix must be symmetric")

	// ErrNonFinite indicates a NaN or infinite entry in the correlation
	// matrix.
	ErrNonFinite = errors.New("metamodes: correlation matrix entries must be finite")

	// ErrBadShape indicates nModes or nChannels below 1.
	ErrBadShape = errors.New("metamodes: nModes and nChannels must be >= 1")

	// ErrBadPermutation indicates a caller-supplied permutation table that
	// is empty, ragged, or holds mode indices outside [0, nModes).
	ErrBadPermutation = errors.New("metamodes: invalid permutation table")

	// ErrNoPermutation indicates an attempt to evaluate or materialize a
	// Solution whose working permutation has not been generated yet.
	ErrNoPermutation = errors.New("metamodes: solution has no working permutation")

	// ErrChannelOutOfRange indicates a channel index outside [0, nChannels).
	ErrChannelOutOfRange = errors.New("metamodes: channel index out of range")

	// ErrBadStepCount indicates a negative step count passed to Solve.
	ErrBadStepCount = errors.New("metamodes: step count must be non-negative")
)

// ProgressFunc observes the search once per iteration during Solve.
//
// It is purely observational: it runs after the accept/reject decision and
// cannot influence the search outcome. iteration is the zero-based global
// iteration counter, bestValue the running best objective, accepted whether
// this iteration improved it.
type ProgressFunc func(iteration int, bestValue float64, accepted bool)

// Record is one acceptance event: the iteration at which a new best value
// was found, and that value.
type Record struct {
	Iteration int
	Value     float64
}

// Options configures a Solver.
//
//   - Seed   - seed for the solver's private random stream. Seed 0 selects
//     the fixed default stream (rng.go seed policy), so two solvers with the
//     same seed and inputs produce identical runs.
//   - OnStep - optional per-iteration observer (nil ⇒ no reporting).
type Options struct {
	Seed   int64
	OnStep ProgressFunc
}

// DefaultOptions returns the canonical defaults:
//   - Seed:   0 (fixed deterministic stream)
//   - OnStep: nil (no progress reporting)
func DefaultOptions() Options {
	return Options{
		Seed:   0,
		OnStep: nil,
	}
}
