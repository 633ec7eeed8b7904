// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape/orientation checks here.
//  - Return sentinel errors wrapped with a validator tag; entry points wrap
//    once more with their op name.
//
// Note:
//  - Composite validators follow a fixed sequence matching the documented
//    error priority: nil → shape → length → orientation.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// validatorErrorf wraps err with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateMatrix rejects a nil matrix.
func validateMatrix[T numeric.Element](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("validateMatrix", ErrNilOperand)
	}

	return nil
}

// validateVertex rejects a nil vertex.
func validateVertex[T numeric.Element](v *Vertex[T]) error {
	if v == nil {
		return validatorErrorf("validateVertex", ErrNilOperand)
	}

	return nil
}

// validateSquare: NotNil → Square.
func validateSquare[T numeric.Element](m *Matrix[T]) error {
	if err := validateMatrix(m); err != nil {
		return err
	}
	if !m.IsSquare() {
		return validatorErrorf("validateSquare",
			fmt.Errorf("%w: shape [%d, %d]", ErrNotSquare, m.width, m.height))
	}

	return nil
}

// validateSquareNonEmpty: NotNil → Square → NonEmpty.
func validateSquareNonEmpty[T numeric.Element](m *Matrix[T]) error {
	if err := validateSquare(m); err != nil {
		return err
	}
	if m.IsEmpty() {
		return validatorErrorf("validateSquareNonEmpty", ErrEmpty)
	}

	return nil
}

// validateSameShape: NotNil(a) → NotNil(b) → equal shapes.
func validateSameShape[T numeric.Element](a, b *Matrix[T]) error {
	if err := validateMatrix(a); err != nil {
		return err
	}
	if err := validateMatrix(b); err != nil {
		return err
	}
	if a.width != b.width || a.height != b.height {
		return validatorErrorf("validateSameShape",
			fmt.Errorf("%w: [%d, %d] vs [%d, %d]", ErrLengthMismatch, a.width, a.height, b.width, b.height))
	}

	return nil
}

// validateVertexPair: NotNil(v) → NotNil(w) → equal length.
// Orientation rules are operation-specific and checked by the caller's
// orientationPair switch.
func validateVertexPair[T numeric.Element](v, w *Vertex[T]) error {
	if err := validateVertex(v); err != nil {
		return err
	}
	if err := validateVertex(w); err != nil {
		return err
	}
	if len(v.data) != len(w.data) {
		return validatorErrorf("validateVertexPair",
			fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(v.data), len(w.data)))
	}

	return nil
}

// sameOrientationError builds the "both row" / "both column" failure.
func sameOrientationError(o Orientation) error {
	return orientationErrorf("both operands are %s vertices", o)
}
