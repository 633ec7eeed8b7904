// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// Row and column indices follow gonum's (row, column) order, which matches
// At(j, i) here. Shapes differ in convention only: gonum's Dims returns
// (rows, cols) = (Height, Width).

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/numeric"
)

// gonumView is a read-only float64 view of a Matrix satisfying mat.Matrix.
type gonumView[T numeric.Element] struct {
	m *Matrix[T]
}

var _ mat.Matrix = gonumView[float64]{}

// AsGonum exposes m as a gonum mat.Matrix without copying.
// The view reflects later writes to m. At panics with gonum's
// mat.ErrRowAccess / mat.ErrColAccess on bad indices, as gonum types do.
func AsGonum[T numeric.Element](m *Matrix[T]) mat.Matrix {
	return gonumView[T]{m: m}
}

// Dims returns (rows, cols).
func (g gonumView[T]) Dims() (int, int) { return g.m.height, g.m.width }

// At returns element (r, c) widened to float64.
func (g gonumView[T]) At(r, c int) float64 {
	if r < 0 || r >= g.m.height {
		panic(mat.ErrRowAccess)
	}
	if c < 0 || c >= g.m.width {
		panic(mat.ErrColAccess)
	}

	return float64(g.m.at(r, c))
}

// T returns gonum's implicit transpose of the view.
func (g gonumView[T]) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// FromGonum copies any gonum matrix into a new Matrix[float64].
// A nil a yields ErrNilOperand.
func FromGonum(a mat.Matrix) (*Matrix[float64], error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilOperand)
	}
	rows, cols := a.Dims()
	out := newMatrix[float64](cols, rows)
	for j := 0; j < rows; j++ {
		row := out.row(j)
		for i := range row {
			row[i] = a.At(j, i)
		}
	}

	return out, nil
}
