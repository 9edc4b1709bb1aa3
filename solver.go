// Package metamodes - greedy local-search driver.
//
// The Solver owns the current best Solution and drives the search:
//
//	clone best → mutate one channel → evaluate → accept iff strictly better.
//
// Acceptance is strictly greedy. There is no temperature schedule and no
// probabilistic acceptance of worse candidates; ties are rejected, so the
// best value is non-decreasing and the solver cannot escape a local optimum
// other than by the one-channel re-permutation neighborhood itself.
//
// State machine: uninitialized → (NewSolver) searching → (Solve returns) idle.
// Solve may be called again on an idle solver; the iteration counter,
// record and snapshots accumulate across calls.
//
// Concurrency: a Solver is single-threaded. All mutable state (best
// solution, best value, history) is owned by the instance and mutated only
// by its own Step/Solve calls.
package metamodes

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Solver is a greedy hill-climbing search over per-channel permutations.
type Solver struct {
	problem *Problem
	rng     *rand.Rand

	best      *Solution
	bestValue float64

	iteration int
	record    []Record
	steps     [][]*mat.Dense

	onStep ProgressFunc
}

// NewSolver builds a Problem from the given inputs, draws an initial
// candidate (identity baseline, every row shuffled uniformly), and evaluates
// it as the starting best. opts==nil selects DefaultOptions().
//
// Errors: every construction error of NewProblem; no partial state is
// created on failure.
//
// Complexity: O(order²) construction (matrix prefetch) plus one Evaluate.
func NewSolver(corr mat.Matrix, nModes, nChannels int, objective Objective, opts *Options) (*Solver, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	problem, err := NewProblem(corr, nModes, nChannels, objective)
	if err != nil {
		return nil, err
	}

	rng := rngFromSeed(o.Seed)

	solution, err := NewSolution(nModes, nChannels, rng)
	if err != nil {
		return nil, err
	}
	solution.RandomPermutation()

	value, err := problem.Evaluate(solution)
	if err != nil {
		return nil, err
	}

	return &Solver{
		problem:   problem,
		rng:       rng,
		best:      solution,
		bestValue: value,
		record:    []Record{},
		steps:     [][]*mat.Dense{},
		onStep:    o.OnStep,
	}, nil
}

// Step proposes one candidate (clone of the current best with a single
// channel re-permuted), evaluates it, and accepts it iff its value is
// strictly greater than the current best. Rejected candidates are discarded;
// the best state is untouched on rejection and on error.
//
// Returns whether the candidate was accepted.
//
// Complexity: O(nModes · nChannels²) per call.
func (sv *Solver) Step() (bool, error) {
	candidate := sv.best.Clone().Step()

	value, err := sv.problem.Evaluate(candidate)
	if err != nil {
		return false, err
	}

	// Strict improvement only; ties keep the incumbent.
	if value > sv.bestValue {
		sv.best = candidate
		sv.bestValue = value

		return true, nil
	}

	return false, nil
}

// Solve runs Step exactly nSteps times, strictly sequentially. On every
// accepted step it appends (iteration, bestValue) to the record and the
// materialized aligned blocks of the new best to the step snapshots. The
// iteration counter increments on every step regardless of acceptance, and
// the OnStep observer (if configured) fires once per iteration after the
// accept/reject decision.
//
// Returns ErrBadStepCount for negative nSteps; nSteps==0 is a no-op.
//
// Complexity: O(nSteps · nModes · nChannels²) plus O(nModes · nChannels²)
// snapshot work per acceptance.
func (sv *Solver) Solve(nSteps int) error {
	if nSteps < 0 {
		return ErrBadStepCount
	}

	var (
		accepted bool
		snapshot []*mat.Dense
		err      error
		i        int
	)
	for i = 0; i < nSteps; i++ {
		accepted, err = sv.Step()
		if err != nil {
			return err
		}

		if accepted {
			sv.record = append(sv.record, Record{Iteration: sv.iteration, Value: sv.bestValue})
			snapshot, err = sv.problem.Generate(sv.best)
			if err != nil {
				return err
			}
			sv.steps = append(sv.steps, snapshot)
		}

		if sv.onStep != nil {
			sv.onStep(sv.iteration, sv.bestValue, accepted)
		}
		sv.iteration++
	}

	return nil
}

// Solution returns the best solution found so far. The solver retains
// ownership: treat it as read-only and use Clone for independent mutation.
func (sv *Solver) Solution() *Solution { return sv.best }

// Value returns the objective value of the best solution found so far.
func (sv *Solver) Value() float64 { return sv.bestValue }

// Iterations returns the total number of steps taken across all Solve calls.
func (sv *Solver) Iterations() int { return sv.iteration }

// Record returns a copy of the acceptance history: one entry per improving
// step, in strictly increasing iteration order.
func (sv *Solver) Record() []Record {
	out := make([]Record, len(sv.record))
	copy(out, sv.record)

	return out
}

// Steps returns the aligned-block snapshots taken at each acceptance, in the
// same order as Record. The outer slice is copied; the snapshot matrices are
// shared (they are never mutated after creation).
func (sv *Solver) Steps() [][]*mat.Dense {
	out := make([][]*mat.Dense, len(sv.steps))
	copy(out, sv.steps)

	return out
}

// Generate materializes the aligned correlation blocks of the current best
// solution. Equivalent to Problem.Generate on Solution().
func (sv *Solver) Generate() ([]*mat.Dense, error) {
	return sv.problem.Generate(sv.best)
}
