// SPDX-License-Identifier: MIT
// Package matrix: dominant eigenpair approximation by power iteration.

package matrix

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/numeric"
)

// Eigen approximates the dominant eigenpair of a square matrix.
//
// Algorithm:
//  1. v ← random Column vertex (WithSource), L2-normalized.
//  2. Repeat up to WithEigenMaxIter times:
//     w = A·v; λ' = (vᵀ·A·v)/(vᵀ·v); v ← w/‖w‖.
//     Stop once |λ' − λ| < WithEigenTolerance.
//  3. If A·v vanishes, v is returned with λ = 0.
//
// The result is best-effort: no error reports non-convergence, and
// matrices whose two largest eigenvalues share a magnitude need not
// converge at all.
//
// Errors: ErrNilOperand, ErrNotSquare, ErrEmpty.
// Complexity: O(maxIter·n²).
func Eigen[T numeric.Element](m *Matrix[T], opts ...Option) (*Vertex[float64], float64, error) {
	if err := validateSquareNonEmpty(m); err != nil {
		return nil, 0, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(opts...)
	a := promote(m)
	n := a.height

	v := seedVertex(n, samplerFor[float64](o))
	w := newVertexLen[float64](n, Column)

	var (
		lambda    float64
		delta     = math.Inf(1)
		iter      int
		converged bool
	)
	for iter = 1; iter <= o.maxIter; iter++ {
		for j := 0; j < n; j++ {
			w.data[j] = dotKernel(a.row(j), v.data)
		}
		norm := w.Magnitude()
		if norm == 0 {
			lambda = 0
			break
		}

		next := dotKernel(v.data, w.data) / dotKernel(v.data, v.data)
		for j := range v.data {
			v.data[j] = w.data[j] / norm
		}
		delta = math.Abs(next - lambda)
		lambda = next
		if delta < o.tol {
			converged = true
			break
		}
	}

	o.log.Debug("eigen: power iteration finished",
		zap.Int("iterations", min(iter, o.maxIter)),
		zap.Float64("delta", delta),
		zap.Bool("converged", converged),
	)

	return v, lambda, nil
}

// seedVertex draws a random unit Column vertex of length n.
func seedVertex(n int, s numeric.Sampler[float64]) *Vertex[float64] {
	v := newVertexLen[float64](n, Column)
	for {
		for j := range v.data {
			v.data[j] = s.Sample()
		}
		if norm := v.Magnitude(); norm > 0 {
			for j := range v.data {
				v.data[j] /= norm
			}

			return v
		}
	}
}
