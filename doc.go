// Package metamodes aligns per-channel mode decompositions into shared
// cross-channel groupings (meta-modes) by greedy local search over
// per-channel permutations of a correlation matrix.
//
// 🚀 What problem does it solve?
//
//	Independent decompositions (spectral or spatial components computed
//	per measurement channel) order their modes arbitrarily. Given the full
//	(nChannels·nModes)×(nChannels·nModes) cross-correlation matrix, this
//	package searches for one permutation of mode indices per channel such
//	that, at every permuted position, the selected modes correlate strongly
//	across channels. Each such position is a meta-mode.
//
// ✨ Key features:
//   - Sum / AbsSum objectives over the permuted correlation blocks
//   - Hill-climbing driver with a one-channel re-permutation neighborhood
//     (strictly greedy: ties and regressions are always rejected)
//   - Deterministic, seedable runs — no hidden global randomness
//   - Acceptance history (iteration, best value) plus materialized
//     per-meta-mode correlation snapshots at every improvement
//   - Optional per-iteration observer hook, outside the search core
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/metamodes"
//
//	opts := metamodes.DefaultOptions()
//	opts.Seed = 42
//
//	sv, err := metamodes.NewSolver(corr, nModes, nChannels, metamodes.Sum, &opts)
//	if err != nil {
//	  // handle ErrUnknownObjective, ErrNonSquare, ErrDimensionMismatch, …
//	}
//	if err = sv.Solve(10_000); err != nil {
//	  // handle ErrBadStepCount
//	}
//	best := sv.Solution()      // per-channel permutations
//	value := sv.Value()        // objective of the best alignment
//	stack, _ := sv.Generate()  // nModes aligned nChannels×nChannels blocks
//
// Performance:
//
//   - Evaluate: O(nModes · nChannels²) time on a flat prefetched buffer
//   - Step:     one Evaluate plus O(nChannels · nModes) copying
//   - Memory:   O(order²) for the prefetch, order = nChannels·nModes
//
// The package owns no I/O, logging, or CLI surface; the correlation matrix
// is supplied by the caller (any gonum mat.Matrix) and never mutated.
package metamodes
