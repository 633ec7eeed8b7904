// SPDX-License-Identifier: MIT
// Package matrix: product/orientation protocol.
//
// Purpose:
//   - Decide, from operand orientation and shape, whether a product is
//     defined and what shape/orientation the result takes.
//   - Evaluate defined products with one writer per output slot, fanned out
//     through internal/parallel for large results.
//
// Rules:
//   - Vertex·Vertex   lengths equal; Row·Column → scalar, Column·Row → outer.
//   - Vertex·Matrix   vertex Row,    len == height → Row of len width.
//   - Matrix·Vertex   vertex Column, len == width  → Column of len height.
//   - Matrix·Matrix   left.width == right.height → [right.width, left.height].
//   - Scalar·Matrix   always defined.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/internal/parallel"
	"github.com/katalvlaran/linalg/numeric"
)

// Operation name constants for unified error wrapping.
const (
	opAdd             = "Add"
	opSub             = "Sub"
	opAddVertices     = "AddVertices"
	opSubVertices     = "SubVertices"
	opScale           = "Scale"
	opDot             = "Dot"
	opMulVertices     = "MulVertices"
	opCross           = "Cross"
	opVecMat          = "VecMat"
	opMatVec          = "MatVec"
	opMul             = "Mul"
	opGram            = "Gram"
	opUpperTriangular = "UpperTriangular"
	opLowerTriangular = "LowerTriangular"
	opLU              = "LU"
	opDet             = "Det"
	opMinor           = "Minor"
	opCofactor        = "Cofactor"
	opAdjugate        = "Adjugate"
	opInverse         = "Inverse"
	opEigen           = "Eigen"
	opNormalize       = "Normalize"
	opRand            = "Rand"
	opDiag            = "Diag"
	opFromGonum       = "FromGonum"
)

// Dot returns the scalar product of a Row vertex v and a Column vertex w.
//
// Errors:
//   - ErrNilOperand, ErrLengthMismatch (len(v) != len(w)).
//   - ErrOrientation when both operands share an orientation ("both row" /
//     "both column") or when v is a column and w a row (use MulVertices for
//     the outer product).
//
// Complexity: O(n), sequential summation in index order.
func Dot[T numeric.Element](v, w *Vertex[T]) (T, error) {
	var zero T
	if err := validateVertexPair(v, w); err != nil {
		return zero, matrixErrorf(opDot, err)
	}

	switch pairOf(v.orient, w.orient) {
	case rowColumn:
		return dotKernel(v.data, w.data), nil
	case rowRow:
		return zero, matrixErrorf(opDot, sameOrientationError(Row))
	case columnColumn:
		return zero, matrixErrorf(opDot, sameOrientationError(Column))
	default:
		return zero, matrixErrorf(opDot,
			orientationErrorf("dot needs a row vertex on the left and a column vertex on the right"))
	}
}

// dotKernel is Σ a[k]*b[k]; callers guarantee equal lengths.
func dotKernel[T numeric.Element](a, b []T) T {
	var sum T
	for k := range a {
		sum += a[k] * b[k]
	}

	return sum
}

// MulVertices is the general vertex product.
// Row·Column yields the 1×1 matrix [[v·w]]; Column·Row yields the outer
// product with shape [len, len] whose entry (j,i) is v[j]*w[i].
//
// Errors: ErrNilOperand, ErrLengthMismatch, ErrOrientation (same orientation).
func MulVertices[T numeric.Element](v, w *Vertex[T], opts ...Option) (*Matrix[T], error) {
	if err := validateVertexPair(v, w); err != nil {
		return nil, matrixErrorf(opMulVertices, err)
	}

	switch pairOf(v.orient, w.orient) {
	case rowColumn:
		out := newMatrix[T](1, 1)
		out.data[0] = dotKernel(v.data, w.data)

		return out, nil
	case columnRow:
		n := len(v.data)
		out := newMatrix[T](n, n)
		o := gatherOptions(opts...)
		parallel.For(n, o.workersFor(n*n), func(j int) {
			row, vj := out.row(j), v.data[j]
			for i := range row {
				row[i] = vj * w.data[i]
			}
		})

		return out, nil
	case rowRow:
		return nil, matrixErrorf(opMulVertices, sameOrientationError(Row))
	default:
		return nil, matrixErrorf(opMulVertices, sameOrientationError(Column))
	}
}

// Cross computes the cyclic n-ary cross product of a Row vertex v and a
// Column vertex w: out[i] = v[i+1]*w[i+2] − v[i+2]*w[i+1] (indices mod n).
// This is the usual cross product at length 3 and carries no geometric
// meaning at other lengths. The result is a Row vertex.
//
// Errors: ErrNilOperand, ErrLengthMismatch, ErrOrientation.
func Cross[T numeric.Element](v, w *Vertex[T]) (*Vertex[T], error) {
	if err := validateVertexPair(v, w); err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	switch pairOf(v.orient, w.orient) {
	case rowColumn:
	case rowRow:
		return nil, matrixErrorf(opCross, sameOrientationError(Row))
	case columnColumn:
		return nil, matrixErrorf(opCross, sameOrientationError(Column))
	default:
		return nil, matrixErrorf(opCross,
			orientationErrorf("cross needs a row vertex on the left and a column vertex on the right"))
	}

	n := len(v.data)
	out := newVertexLen[T](n, Row)
	for i := 0; i < n; i++ {
		a, b := (i+1)%n, (i+2)%n
		out.data[i] = v.data[a]*w.data[b] - v.data[b]*w.data[a]
	}

	return out, nil
}

// VecMat computes the Row vertex v·m, a linear combination of m's rows
// weighted by v: out[i] = Σk v[k]*m[k][i].
//
// Errors:
//   - ErrNilOperand.
//   - ErrShapeMismatch if len(v) != m.Height().
//   - ErrOrientation if v is a column.
func VecMat[T numeric.Element](v *Vertex[T], m *Matrix[T], opts ...Option) (*Vertex[T], error) {
	if err := validateVertex(v); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := validateMatrix(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if len(v.data) != m.height {
		return nil, matrixErrorf(opVecMat, fmt.Errorf("%w: length %d, height %d", ErrShapeMismatch, len(v.data), m.height))
	}
	if v.orient != Row {
		return nil, matrixErrorf(opVecMat, orientationErrorf("vertex must be a row when multiplied by a matrix on the right"))
	}

	out := newVertexLen[T](m.width, Row)
	o := gatherOptions(opts...)
	parallel.For(m.width, o.workersFor(m.width*m.height), func(i int) {
		var sum T
		for k, vk := range v.data {
			sum += vk * m.at(k, i)
		}
		out.data[i] = sum
	})

	return out, nil
}

// MatVec computes the Column vertex m·v: out[j] = Σi m[j][i]*v[i].
//
// Errors:
//   - ErrNilOperand.
//   - ErrShapeMismatch if len(v) != m.Width().
//   - ErrOrientation if v is a row.
func MatVec[T numeric.Element](m *Matrix[T], v *Vertex[T], opts ...Option) (*Vertex[T], error) {
	if err := validateMatrix(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := validateVertex(v); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(v.data) != m.width {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("%w: length %d, width %d", ErrShapeMismatch, len(v.data), m.width))
	}
	if v.orient != Column {
		return nil, matrixErrorf(opMatVec, orientationErrorf("vertex must be a column when multiplied by a matrix on the left"))
	}

	out := newVertexLen[T](m.height, Column)
	o := gatherOptions(opts...)
	parallel.For(m.height, o.workersFor(m.width*m.height), func(j int) {
		out.data[j] = dotKernel(m.row(j), v.data)
	})

	return out, nil
}

// Mul performs C = A × B.
// Result shape is [b.Width(), a.Height()]; entry (j,i) = Σk a[j][k]*b[k][i].
// Rows of C are independent and fanned out; within a row the loop order is
// k→i with zero-skip on a[j][k].
//
// Errors: ErrNilOperand, ErrLengthMismatch (a.Width() != b.Height()).
// Complexity: O(a.height * a.width * b.width).
func Mul[T numeric.Element](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := validateMatrix(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateMatrix(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.width != b.height {
		return nil, matrixErrorf(opMul, validatorErrorf("inner dimensions", ErrLengthMismatch))
	}

	return mulKernel(a, b, gatherOptions(opts...)), nil
}

// mulKernel assumes a.width == b.height.
func mulKernel[T numeric.Element](a, b *Matrix[T], o Options) *Matrix[T] {
	res := newMatrix[T](b.width, a.height)
	parallel.For(a.height, o.workersFor(res.Len()), func(j int) {
		out := res.row(j)
		for k, av := range a.row(j) {
			if av == 0 {
				continue // skip zero for performance
			}
			for i, bv := range b.row(k) {
				out[i] += av * bv
			}
		}
	})

	return res
}

// Gram returns mᵀ·m, the matrix of column inner products.
// Errors: ErrNilOperand.
func Gram[T numeric.Element](m *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := validateMatrix(m); err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	return mulKernel(m.Transposed(), m, gatherOptions(opts...)), nil
}
