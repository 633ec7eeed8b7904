// SPDX-License-Identifier: MIT
// Package matrix: structural constructors and predicates.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// Diagonal returns the n×n matrix with values on its main diagonal and
// zeros elsewhere (n = len(values)).
func Diagonal[T numeric.Element](values ...T) *Matrix[T] {
	n := len(values)
	m := newMatrix[T](n, n)
	for k, x := range values {
		m.data[k*n+k] = x
	}

	return m
}

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape if n < 0.
func Identity[T numeric.Element](n int) (*Matrix[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadShape)
	}
	m := newMatrix[T](n, n)
	for k := 0; k < n; k++ {
		m.data[k*n+k] = 1
	}

	return m, nil
}

// IsDiagonal reports whether m is square and every off-diagonal value is
// zero. The 0×0 matrix is diagonal.
func (m *Matrix[T]) IsDiagonal() bool {
	if !m.IsSquare() {
		return false
	}
	for j := 0; j < m.height; j++ {
		for i, x := range m.row(j) {
			if i != j && x != 0 {
				return false
			}
		}
	}

	return true
}

// Diag returns a copy of the main diagonal as a Row vertex.
// Errors: ErrNilOperand, ErrNotSquare.
func Diag[T numeric.Element](m *Matrix[T]) (*Vertex[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	v := newVertexLen[T](m.height, Row)
	for k := range v.data {
		v.data[k] = m.at(k, k)
	}

	return v, nil
}
