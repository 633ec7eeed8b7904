// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (optionally wrapped via
// matrixErrorf) and tests MUST check them via errors.Is. No algorithm panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Public entry points wrap as "<Op>: <cause>";
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape (square/empty) -> length -> orientation -> numeric
// (no triangular form, zero determinant).

var (
	// ErrNilOperand indicates that a nil *Vertex or *Matrix was passed in.
	ErrNilOperand = errors.New("matrix: nil operand")

	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows is returned by New when rows have unequal lengths.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNotSquare signals that a square matrix was required.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrEmpty signals an operation that is undefined on a 0×0 matrix.
	ErrEmpty = errors.New("matrix: matrix is empty")

	// ErrLengthMismatch signals incompatible operand lengths: two vertices of
	// different length, two matrices of different shape for elementwise ops,
	// or left.width != right.height for Mul.
	ErrLengthMismatch = errors.New("matrix: unmatching operand length")

	// ErrOrientation signals that a vertex has the wrong row/column state for
	// the requested operation.
	ErrOrientation = errors.New("matrix: invalid vertex orientation")

	// ErrShapeMismatch signals a vertex length that does not match the
	// matrix height (VecMat) or width (MatVec).
	ErrShapeMismatch = errors.New("matrix: vertex length does not match matrix shape")

	// ErrNoTriangularForm is returned when Doolittle decomposition meets a
	// pivot with magnitude at or below TriangularDelta. No row exchange is
	// attempted.
	ErrNoTriangularForm = errors.New("matrix: triangular form does not exist")

	// ErrDeterminantZero is returned by Inverse on a singular matrix.
	ErrDeterminantZero = errors.New("matrix: determinant is zero")
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// orientationErrorf details an ErrOrientation with the offending states.
func orientationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrOrientation}, args...)...)
}
