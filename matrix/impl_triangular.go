// SPDX-License-Identifier: MIT
// Package matrix: Doolittle triangularization engine.
//
// Purpose:
//   - Factor a square A into a unit-lower L and an upper U with A = L·U.
//   - Expose U (UpperTriangular), the Crout lower factor (LowerTriangular)
//     and both Doolittle factors (LU).
//
// Contract:
//   - Input is promoted to float64 first; the result is always float64.
//   - Row-by-row traversal. For row j, columns i<j yield
//     L[j][i] = (A[j][i] − Σ_{k<i} L[j][k]·U[k][i]) / U[i][i], then
//     columns i≥j yield U[j][i] = A[j][i] − Σ_{k<j} L[j][k]·U[k][i].
//   - Every computed value with |x| <= TriangularDelta is stored as 0.
//   - A pivot with |U[j][j]| <= TriangularDelta fails with
//     ErrNoTriangularForm. No row exchanges are attempted.
//
// Complexity: O(n³) time, O(n²) space. Strictly sequential.

package matrix

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/numeric"
)

// UpperTriangular returns the upper factor U of the Doolittle split A = L·U.
//
// Errors:
//   - ErrNilOperand, ErrNotSquare.
//   - ErrNoTriangularForm if a pivot vanishes.
func UpperTriangular[T numeric.Element](m *Matrix[T], opts ...Option) (*Matrix[float64], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opUpperTriangular, err)
	}
	_, u, err := doolittle(promote(m), gatherOptions(opts...).log)
	if err != nil {
		return nil, matrixErrorf(opUpperTriangular, err)
	}

	return u, nil
}

// LowerTriangular returns UpperTriangular(mᵀ)ᵀ: the lower factor of the
// Crout split A = L·U₁ with unit-diagonal U₁. Its diagonal carries the
// pivots, so its diagonal product equals Det(m).
//
// Errors: as UpperTriangular (evaluated on the transpose).
func LowerTriangular[T numeric.Element](m *Matrix[T], opts ...Option) (*Matrix[float64], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opLowerTriangular, err)
	}
	_, u, err := doolittle(promote(m).T(), gatherOptions(opts...).log)
	if err != nil {
		return nil, matrixErrorf(opLowerTriangular, err)
	}

	return u.T(), nil
}

// LU returns both Doolittle factors: unit-lower L and upper U, A = L·U.
//
// Errors: ErrNilOperand, ErrNotSquare, ErrNoTriangularForm.
func LU[T numeric.Element](m *Matrix[T], opts ...Option) (*Matrix[float64], *Matrix[float64], error) {
	if err := validateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	l, u, err := doolittle(promote(m), gatherOptions(opts...).log)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// doolittle is the shared kernel. a must be square; it is only read.
func doolittle(a *Matrix[float64], log *zap.Logger) (*Matrix[float64], *Matrix[float64], error) {
	n := a.height
	l := newMatrix[float64](n, n)
	u := newMatrix[float64](n, n)

	var sum float64
	for j := 0; j < n; j++ {
		lj, uj := l.row(j), u.row(j)

		// Strictly lower part of row j.
		for i := 0; i < j; i++ {
			sum = 0
			for k := 0; k < i; k++ {
				sum += lj[k] * u.at(k, i)
			}
			lj[i] = snap((a.at(j, i) - sum) / u.at(i, i))
		}
		lj[j] = 1

		// Upper part of row j, diagonal included.
		for i := j; i < n; i++ {
			sum = 0
			for k := 0; k < j; k++ {
				sum += lj[k] * u.at(k, i)
			}
			uj[i] = snap(a.at(j, i) - sum)
		}

		if uj[j] == 0 { // already snapped, so |pivot| <= TriangularDelta
			log.Debug("triangularization: vanishing pivot",
				zap.Int("row", j),
				zap.Int("size", n),
			)

			return nil, nil, ErrNoTriangularForm
		}
	}

	return l, u, nil
}

// snap collapses |x| <= TriangularDelta to exact zero.
func snap(x float64) float64 {
	if math.Abs(x) <= TriangularDelta {
		return 0
	}

	return x
}

// IsUpperTriangular reports whether every value below the main diagonal is
// zero. Non-square matrices are never triangular.
func (m *Matrix[T]) IsUpperTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	for j := 1; j < m.height; j++ {
		for i := 0; i < j; i++ {
			if m.at(j, i) != 0 {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports whether every value above the main diagonal is
// zero. Non-square matrices are never triangular.
func (m *Matrix[T]) IsLowerTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	for j := 0; j < m.height; j++ {
		for i := j + 1; i < m.width; i++ {
			if m.at(j, i) != 0 {
				return false
			}
		}
	}

	return true
}
