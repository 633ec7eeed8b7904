// SPDX-License-Identifier: MIT

// Package matrix implements generic dense vertices and matrices over the
// numeric.Element kinds, with orientation-aware products and the classic
// small-matrix toolkit: Doolittle triangularization, determinant, cofactor,
// adjugate, inverse, column normalization and a power-iteration eigen
// approximation.
//
// Vertices
//
// A Vertex is a fixed-length sequence with an Orientation (Row or Column).
// Orientation never changes storage; it only decides which products are
// defined:
//
//	Dot(row, column)          → scalar
//	MulVertices(row, column)  → 1×1 matrix
//	MulVertices(column, row)  → outer product, [n, n]
//	VecMat(row, m)            → row of length m.Width()
//	MatVec(m, column)         → column of length m.Height()
//
// Two vertices with the same orientation never multiply (ErrOrientation).
//
// Matrices
//
// A Matrix is stored row-major; its shape is [width, height] and At(j, i)
// addresses row j, column i. Mul(a, b) needs a.Width() == b.Height() and
// yields shape [b.Width(), a.Height()].
//
// Decompositions
//
// UpperTriangular, LowerTriangular, LU, Det, Cofactor, Adjugate, Inverse and
// Eigen promote their input to float64 first (see Convert). The Doolittle
// engine does not pivot: inputs that need a row exchange fail with
// ErrNoTriangularForm rather than being silently permuted.
//
// Errors
//
// Every fallible call returns an error wrapping one of the package
// sentinels as "<Op>: <cause>"; match them with errors.Is. Nothing panics on
// user input. Option constructors panic on nonsensical arguments.
//
// Concurrency
//
// Calls are synchronous. Large kernels fan out over disjoint output slots
// (WithWorkers caps the goroutines); triangularization and random filling
// are always sequential. Values are not safe for concurrent mutation.
//
// Interop
//
// AsGonum and FromGonum bridge to gonum.org/v1/gonum/mat for anything
// beyond this package's scope.
package matrix
