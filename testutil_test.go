package metamodes_test

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// blockTensor builds a synthetic correlation tensor of order
// nModes*nChannels: unit diagonal, cross-channel correlation k wherever the
// local mode indices match, zero everywhere else. Under the sum objective
// its best alignment scores k * nModes * nChannels * (nChannels - 1).
func blockTensor(nModes, nChannels int, k float64) *mat.Dense {
	order := nModes * nChannels
	d := mat.NewDense(order, order, nil)

	for i := 0; i < order; i++ {
		d.Set(i, i, 1.0)
	}
	for ca := 0; ca < nChannels; ca++ {
		for cb := 0; cb < nChannels; cb++ {
			if ca == cb {
				continue
			}
			for m := 0; m < nModes; m++ {
				d.Set(ca*nModes+m, cb*nModes+m, k)
			}
		}
	}

	return d
}

// randomCorr builds a deterministic symmetric pseudo-correlation matrix with
// unit diagonal and off-diagonal entries in (-1, 1).
func randomCorr(order int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	d := mat.NewDense(order, order, nil)

	for i := 0; i < order; i++ {
		d.Set(i, i, 1.0)
		for j := i + 1; j < order; j++ {
			v := 2*rng.Float64() - 1
			d.Set(i, j, v)
			d.Set(j, i, v)
		}
	}

	return d
}

// isPermutation reports whether row contains every value 0..n-1 exactly once.
func isPermutation(row []int, n int) bool {
	if len(row) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range row {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
