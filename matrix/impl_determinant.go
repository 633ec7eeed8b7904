// SPDX-License-Identifier: MIT
// Package matrix: determinant, minors, cofactor, adjugate and inverse.
//
// Strategy by size n (input promoted to float64 first):
//   - triangular input: product of the diagonal (any n).
//   - n ≤ 3: closed forms.
//   - n ≥ 4: Det multiplies the pivots of UpperTriangular; Cofactor evaluates
//     every (-1)^(j+i)·Det(Minor(j,i)) concurrently, first failure aborts.
//
// Inverse is (1/det)·Adjugate and requires det != 0 exactly; no tolerance
// is applied.

package matrix

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/internal/parallel"
	"github.com/katalvlaran/linalg/numeric"
)

// Det returns the determinant of a square, non-empty matrix.
//
// Errors:
//   - ErrNilOperand, ErrNotSquare, ErrEmpty.
//   - ErrNoTriangularForm when n ≥ 4 and a Doolittle pivot vanishes.
func Det[T numeric.Element](m *Matrix[T], opts ...Option) (float64, error) {
	if err := validateSquareNonEmpty(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := detFloat(promote(m), gatherOptions(opts...).log)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return d, nil
}

// detFloat assumes a square, non-empty a.
func detFloat(a *Matrix[float64], log *zap.Logger) (float64, error) {
	if a.IsUpperTriangular() || a.IsLowerTriangular() {
		return diagProduct(a), nil
	}

	switch a.height {
	case 1:
		return a.data[0], nil
	case 2:
		return a.at(0, 0)*a.at(1, 1) - a.at(0, 1)*a.at(1, 0), nil
	case 3:
		// expansion along the first column
		return a.at(0, 0)*(a.at(1, 1)*a.at(2, 2)-a.at(2, 1)*a.at(1, 2)) -
			a.at(1, 0)*(a.at(0, 1)*a.at(2, 2)-a.at(2, 1)*a.at(0, 2)) +
			a.at(2, 0)*(a.at(0, 1)*a.at(1, 2)-a.at(1, 1)*a.at(0, 2)), nil
	}

	_, u, err := doolittle(a, log)
	if err != nil {
		return 0, err
	}

	return diagProduct(u), nil
}

func diagProduct(a *Matrix[float64]) float64 {
	p := 1.0
	for k := 0; k < a.height; k++ {
		p *= a.at(k, k)
	}

	return p
}

// Minor returns m without row j and column i.
// Errors: ErrNilOperand, ErrOutOfRange.
func Minor[T numeric.Element](m *Matrix[T], j, i int) (*Matrix[T], error) {
	if err := validateMatrix(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if j < 0 || j >= m.height || i < 0 || i >= m.width {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", j, i, ErrOutOfRange))
	}

	return minorOf(m, j, i), nil
}

// minorOf assumes valid indices.
func minorOf[T numeric.Element](m *Matrix[T], j, i int) *Matrix[T] {
	out := newMatrix[T](m.width-1, m.height-1)
	data := out.data[:0]
	for r := 0; r < m.height; r++ {
		if r == j {
			continue
		}
		row := m.row(r)
		data = append(data, row[:i]...)
		data = append(data, row[i+1:]...)
	}

	return out
}

// Cofactor returns the cofactor matrix C with C[j][i] = (-1)^(j+i)·Det(Minor(j,i)).
// By convention the 1×1 cofactor is [[1]].
//
// Errors:
//   - ErrNilOperand, ErrNotSquare, ErrEmpty.
//   - ErrNoTriangularForm propagated from any minor determinant (n ≥ 5).
func Cofactor[T numeric.Element](m *Matrix[T], opts ...Option) (*Matrix[float64], error) {
	if err := validateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	c, err := cofactorFloat(promote(m), gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return c, nil
}

// cofactorFloat assumes a square, non-empty a.
func cofactorFloat(a *Matrix[float64], o Options) (*Matrix[float64], error) {
	n := a.height
	switch n {
	case 1:
		return &Matrix[float64]{data: []float64{1}, width: 1, height: 1}, nil
	case 2:
		return &Matrix[float64]{
			data:  []float64{a.at(1, 1), -a.at(1, 0), -a.at(0, 1), a.at(0, 0)},
			width: 2, height: 2,
		}, nil
	case 3:
		a00, a01, a02 := a.at(0, 0), a.at(0, 1), a.at(0, 2)
		a10, a11, a12 := a.at(1, 0), a.at(1, 1), a.at(1, 2)
		a20, a21, a22 := a.at(2, 0), a.at(2, 1), a.at(2, 2)

		return &Matrix[float64]{
			data: []float64{
				a11*a22 - a12*a21, -(a10*a22 - a12*a20), a10*a21 - a11*a20,
				-(a01*a22 - a02*a21), a00*a22 - a02*a20, -(a00*a21 - a01*a20),
				a01*a12 - a02*a11, -(a00*a12 - a02*a10), a00*a11 - a01*a10,
			},
			width: 3, height: 3,
		}, nil
	}

	out := newMatrix[float64](n, n)
	workers := clampWorkers(o.workers, n*n)
	o.log.Debug("cofactor: fan-out",
		zap.Int("size", n),
		zap.Int("workers", workers),
	)
	err := parallel.ForErr(n*n, workers, func(idx int) error {
		j, i := idx/n, idx%n
		d, err := detFloat(minorOf(a, j, i), o.log)
		if err != nil {
			return fmt.Errorf("minor (%d,%d): %w", j, i, err)
		}
		if (j+i)%2 == 1 {
			d = -d
		}
		out.data[idx] = d

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// clampWorkers keeps a fan-out at or below the number of work items.
func clampWorkers(workers, items int) int {
	return max(1, min(workers, items))
}

// Adjugate returns the transposed cofactor matrix.
// Errors: as Cofactor.
func Adjugate[T numeric.Element](m *Matrix[T], opts ...Option) (*Matrix[float64], error) {
	if err := validateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	c, err := cofactorFloat(promote(m), gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return c.T(), nil
}

// Inverse returns m⁻¹ = (1/Det(m))·Adjugate(m).
//
// Errors:
//   - ErrNilOperand, ErrNotSquare, ErrEmpty.
//   - ErrDeterminantZero if Det(m) == 0 exactly.
//   - ErrNoTriangularForm propagated from Det or Cofactor.
//
// Complexity: O(n⁵) for n ≥ 4 (n² minors of O(n³) each).
func Inverse[T numeric.Element](m *Matrix[T], opts ...Option) (*Matrix[float64], error) {
	if err := validateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	a := promote(m)

	det, err := detFloat(a, o.log)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		o.log.Debug("inverse: singular input", zap.Int("size", a.height))

		return nil, matrixErrorf(opInverse, ErrDeterminantZero)
	}

	c, err := cofactorFloat(a, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv := c.T()
	f := 1 / det
	for k := range inv.data {
		inv.data[k] *= f
	}

	return inv, nil
}
