// Package metamodes - RNG utilities for the permutation search.
//
// All randomness in this package flows through an explicit *rand.Rand handle
// created here; there is no package-global source. This keeps runs
// reproducible (same seed ⇒ identical search trajectory) and lets callers
// run independent solvers without shared hidden state.
//
// Concurrency: math/rand.Rand is not goroutine-safe. A Solution and the
// Solver that owns it share one handle and are single-threaded by contract.
package metamodes

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Contract: rng != nil (all callers thread the solver's handle).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// freshPerm returns a uniformly random permutation of 0..n-1 drawn from rng.
// The returned slice is newly allocated and owned by the caller.
//
// Contract: n >= 1 and rng != nil (validated upstream at construction).
//
// Complexity: O(n) time, O(n) space.
func freshPerm(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}
