// Package metamodes - problem binding: correlation matrix + objective.
//
// A Problem is immutable after construction. It validates and prefetches the
// caller's correlation matrix into a flat row-major buffer once, so the
// evaluation hot path reads plain float64 slices with no interface
// indirection, and precomputes the per-channel reindexer that maps local
// mode indices to global matrix rows/columns.
//
// Design:
//   - Strict sentinels only (see types.go); no partial state on failure:
//     the objective is resolved before any buffer is built.
//   - Evaluate and Generate are side-effect free; the same Problem can serve
//     any number of sequential searches.
package metamodes

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// symTol is the structural tolerance for the symmetry check at construction.
// It guards against transposition bugs in the caller's matrix assembly, not
// against numerical noise in the correlations themselves.
const symTol = 1e-12

// Problem binds a fixed correlation matrix and an objective to the
// per-channel permutation semantics.
type Problem struct {
	corr  []float64 // flat row-major prefetch of the order×order matrix
	order int       // nModes * nChannels

	nModes    int
	nChannels int

	objective Objective
	score     scoreFunc

	// reindexer[c] = c * nModes maps channel c's local mode index to the
	// global row/column base in the correlation matrix.
	reindexer []int
}

// NewProblem validates the inputs and builds an immutable Problem.
//
// Contracts:
//   - corr must be non-nil, square, symmetric (within symTol), finite, and
//     of order nModes*nChannels;
//   - nModes >= 1, nChannels >= 1;
//   - objective must be a supported selector (Sum, AbsSum); resolve string
//     selectors with ParseObjective first.
//
// Errors: ErrBadShape, ErrUnknownObjective, ErrNilMatrix, ErrNonSquare,
// ErrDimensionMismatch, ErrNonFinite, ErrAsymmetry.
//
// Complexity: O(order²) time and space (prefetch + symmetry check).
func NewProblem(corr mat.Matrix, nModes, nChannels int, objective Objective) (*Problem, error) {
	// Stage 1: shape of the permutation space.
	if nModes < 1 || nChannels < 1 {
		return nil, ErrBadShape
	}

	// Stage 2: objective resolution. Fails before any buffer is allocated so
	// a configuration error leaves no partial state behind.
	score, err := objective.scorer()
	if err != nil {
		return nil, err
	}

	// Stage 3: matrix shape.
	if corr == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := corr.Dims()
	if rows != cols {
		return nil, ErrNonSquare
	}
	order := nModes * nChannels
	if rows != order {
		return nil, ErrDimensionMismatch
	}

	// Stage 4: prefetch with value validation. The upper triangle doubles as
	// the symmetry check against the already-copied lower triangle.
	buf := make([]float64, order*order)
	{
		var (
			i, j int
			x    float64
		)
		for i = 0; i < order; i++ {
			for j = 0; j < order; j++ {
				x = corr.At(i, j)
				if math.IsNaN(x) || math.IsInf(x, 0) {
					return nil, ErrNonFinite
				}
				if j < i && math.Abs(x-buf[j*order+i]) > symTol {
					return nil, ErrAsymmetry
				}
				buf[i*order+j] = x
			}
		}
	}

	// Stage 5: reindexer.
	reindexer := make([]int, nChannels)
	var c int
	for c = 0; c < nChannels; c++ {
		reindexer[c] = c * nModes
	}

	return &Problem{
		corr:      buf,
		order:     order,
		nModes:    nModes,
		nChannels: nChannels,
		objective: objective,
		score:     score,
		reindexer: reindexer,
	}, nil
}

// NModes returns the number of modes per channel.
func (p *Problem) NModes() int { return p.nModes }

// NChannels returns the number of channels.
func (p *Problem) NChannels() int { return p.nChannels }

// Objective returns the selector this Problem scores with.
func (p *Problem) Objective() Objective { return p.objective }

// Evaluate scores the solution's working permutation with the resolved
// objective. Deterministic for a fixed (matrix, permutation) pair; no side
// effects on either the Problem or the Solution.
//
// Errors: ErrNoPermutation when the working view is unset,
// ErrDimensionMismatch when the solution's shape does not match the problem,
// ErrBadPermutation when a working row holds an index outside [0, nModes).
//
// Complexity: O(nModes · nChannels²).
func (p *Problem) Evaluate(s *Solution) (float64, error) {
	global, err := p.globalIndices(s)
	if err != nil {
		return 0, err
	}

	return p.score(p.corr, p.order, global, p.nModes, p.nChannels), nil
}

// Generate materializes the aligned correlation blocks of the solution's
// working permutation: for every meta-mode slot i, the nChannels×nChannels
// sub-matrix whose (a,b) entry is the correlation between channel a's and
// channel b's modes at slot i — the same quantity the objective reduces,
// returned as data instead of a scalar. The stack has nModes entries.
//
// Errors: as Evaluate.
//
// Complexity: O(nModes · nChannels²) time and space.
func (p *Problem) Generate(s *Solution) ([]*mat.Dense, error) {
	global, err := p.globalIndices(s)
	if err != nil {
		return nil, err
	}

	var (
		out  = make([]*mat.Dense, p.nModes)
		i    int
		a, b int
		row  int
	)
	for i = 0; i < p.nModes; i++ {
		data := make([]float64, p.nChannels*p.nChannels)
		for a = 0; a < p.nChannels; a++ {
			row = global[a][i] * p.order
			for b = 0; b < p.nChannels; b++ {
				data[a*p.nChannels+b] = p.corr[row+global[b][i]]
			}
		}
		out[i] = mat.NewDense(p.nChannels, p.nChannels, data)
	}

	return out, nil
}

// globalIndices validates the solution against the problem and builds the
// global index table: global[c][i] = working[c][i] + reindexer[c].
//
// Complexity: O(nChannels · nModes) time and space.
func (p *Problem) globalIndices(s *Solution) ([][]int, error) {
	if s == nil || s.working == nil {
		return nil, ErrNoPermutation
	}
	if s.nModes != p.nModes || s.nChannels != p.nChannels {
		return nil, ErrDimensionMismatch
	}

	var (
		global = make([][]int, p.nChannels)
		c, i   int
		v      int
	)
	for c = 0; c < p.nChannels; c++ {
		row := make([]int, p.nModes)
		for i = 0; i < p.nModes; i++ {
			v = s.working[c][i]
			if v < 0 || v >= p.nModes {
				return nil, ErrBadPermutation
			}
			row[i] = v + p.reindexer[c]
		}
		global[c] = row
	}

	return global, nil
}
