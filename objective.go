// Package metamodes - objective functions over the permuted correlation blocks.
//
// An Objective is a closed set of scoring strategies. Each strategy reduces
// the nModes slot sub-matrices selected by a global index table to a single
// scalar. Resolution from selector to function happens once, at Problem
// construction, and is fallible: unknown selectors surface
// ErrUnknownObjective instead of silently defaulting.
//
// Scoring contract, shared by all strategies:
//   - corr is the flat row-major prefetch of the order×order correlation
//     matrix (order = nModes*nChannels);
//   - global[c][i] is the matrix row/column of channel c's mode at permuted
//     position i, already offset by the channel's reindexer;
//   - for each slot i the nChannels×nChannels sub-matrix
//     corr[global[·][i], global[·][i]] is summed;
//   - the fixed offset nModes*nChannels is subtracted once at the end. It
//     cancels the diagonal self-correlation entries (value 1.0) that every
//     slot sub-matrix contributes: nChannels of them per slot, nModes slots.
//
// The inner double loop over each slot sub-matrix is branch-free and reads
// the flat buffer directly; no allocation, no matrix mutation.
package metamodes

import "math"

// Objective selects the scoring strategy of a Problem.
type Objective int

const (
	// Sum accumulates the raw sum of every slot sub-matrix.
	Sum Objective = iota

	// AbsSum accumulates the absolute value of every slot sub-matrix sum,
	// rewarding strongly anti-correlated groupings as much as correlated ones.
	AbsSum
)

// objectiveNames maps each Objective to its canonical selector string.
// The strings match the names accepted by ParseObjective.
var objectiveNames = map[Objective]string{
	Sum:    "sum",
	AbsSum: "abs_sum",
}

// String returns the canonical selector name, or "unknown" for values
// outside the supported set.
func (o Objective) String() string {
	if name, ok := objectiveNames[o]; ok {
		return name
	}

	return "unknown"
}

// ParseObjective resolves a selector string ("sum", "abs_sum") to its
// Objective. Unknown names return ErrUnknownObjective, whose message
// enumerates the valid choices.
//
// Complexity: O(1).
func ParseObjective(name string) (Objective, error) {
	switch name {
	case "sum":
		return Sum, nil
	case "abs_sum":
		return AbsSum, nil
	default:
		return 0, ErrUnknownObjective
	}
}

// scoreFunc is the resolved form of an Objective: a pure function from the
// flat correlation buffer and a global index table to a scalar score.
type scoreFunc func(corr []float64, order int, global [][]int, nModes, nChannels int) float64

// scorer resolves the Objective to its scoring function. This is the single
// fallible dispatch point; Problem construction calls it before building any
// other state.
//
// Complexity: O(1).
func (o Objective) scorer() (scoreFunc, error) {
	switch o {
	case Sum:
		return sumScore, nil
	case AbsSum:
		return absSumScore, nil
	default:
		return nil, ErrUnknownObjective
	}
}

// sumScore sums every slot sub-matrix and subtracts the diagonal offset.
//
// Complexity: O(nModes · nChannels²) time, O(1) space.
func sumScore(corr []float64, order int, global [][]int, nModes, nChannels int) float64 {
	var (
		ret  float64 // accumulated score across slots
		slot float64 // current slot sub-matrix sum
		i    int     // slot (meta-mode) index
		a, b int     // channel indices on the two sub-matrix axes
		row  int     // linearized row base corr[global[a][i]*order + ·]
	)

	for i = 0; i < nModes; i++ {
		slot = 0
		for a = 0; a < nChannels; a++ {
			row = global[a][i] * order
			for b = 0; b < nChannels; b++ {
				slot += corr[row+global[b][i]]
			}
		}
		ret += slot
	}

	return ret - float64(nModes*nChannels)
}

// absSumScore sums the magnitude of every slot sub-matrix sum and subtracts
// the same diagonal offset as sumScore. Pre-offset, every slot contribution
// is non-negative; the two strategies coincide whenever all slot sums are
// non-negative.
//
// Complexity: O(nModes · nChannels²) time, O(1) space.
func absSumScore(corr []float64, order int, global [][]int, nModes, nChannels int) float64 {
	var (
		ret  float64
		slot float64
		i    int
		a, b int
		row  int
	)

	for i = 0; i < nModes; i++ {
		slot = 0
		for a = 0; a < nChannels; a++ {
			row = global[a][i] * order
			for b = 0; b < nChannels; b++ {
				slot += corr[row+global[b][i]]
			}
		}
		ret += math.Abs(slot)
	}

	return ret - float64(nModes*nChannels)
}
