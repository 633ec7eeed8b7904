// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise addition and subtraction for matrices and vertices.
//   - One private kernel (ewApply) shared by all four entry points so the
//     tight loop exists once.
//
// Determinism & Performance:
//   - Flat 0..n-1 loop over row-major storage; each output slot has exactly
//     one writer, so the fan-out is race-free.
//   - Integer kinds wrap on overflow (Go arithmetic); nothing is checked.

package matrix

import (
	"github.com/katalvlaran/linalg/internal/parallel"
	"github.com/katalvlaran/linalg/numeric"
)

// ewApply writes out[k] = f(a[k], b[k]) for every k.
func ewApply[T numeric.Element](out, a, b []T, workers int, f func(x, y T) T) {
	parallel.For(len(out), workers, func(k int) {
		out[k] = f(a[k], b[k])
	})
}

func addOp[T numeric.Element](x, y T) T { return x + y }
func subOp[T numeric.Element](x, y T) T { return x - y }

// Add returns a + b.
// Errors: ErrNilOperand, ErrLengthMismatch (shapes differ).
func Add[T numeric.Element](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := newMatrix[T](a.width, a.height)
	o := gatherOptions(opts...)
	ewApply(out.data, a.data, b.data, o.workersFor(len(out.data)), addOp[T])

	return out, nil
}

// Sub returns a − b.
// Errors: ErrNilOperand, ErrLengthMismatch (shapes differ).
func Sub[T numeric.Element](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := newMatrix[T](a.width, a.height)
	o := gatherOptions(opts...)
	ewApply(out.data, a.data, b.data, o.workersFor(len(out.data)), subOp[T])

	return out, nil
}

// AddVertices returns v + w. Both vertices must share length and
// orientation; the result keeps that orientation.
// Errors: ErrNilOperand, ErrLengthMismatch, ErrOrientation.
func AddVertices[T numeric.Element](v, w *Vertex[T]) (*Vertex[T], error) {
	return vertexElementwise(opAddVertices, v, w, addOp[T])
}

// SubVertices returns v − w under the same rules as AddVertices.
func SubVertices[T numeric.Element](v, w *Vertex[T]) (*Vertex[T], error) {
	return vertexElementwise(opSubVertices, v, w, subOp[T])
}

func vertexElementwise[T numeric.Element](op string, v, w *Vertex[T], f func(x, y T) T) (*Vertex[T], error) {
	if err := validateVertexPair(v, w); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if v.orient != w.orient {
		return nil, matrixErrorf(op, orientationErrorf("%s and %s vertices cannot be combined element-wise", v.orient, w.orient))
	}
	out := newVertexLen[T](len(v.data), v.orient)
	ewApply(out.data, v.data, w.data, 1, f)

	return out, nil
}

// Scale returns k·m. Always defined for a non-nil m.
// Errors: ErrNilOperand.
func Scale[T numeric.Element](m *Matrix[T], k T, opts ...Option) (*Matrix[T], error) {
	if err := validateMatrix(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := newMatrix[T](m.width, m.height)
	o := gatherOptions(opts...)
	parallel.For(len(out.data), o.workersFor(len(out.data)), func(idx int) {
		out.data[idx] = m.data[idx] * k
	})

	return out, nil
}
