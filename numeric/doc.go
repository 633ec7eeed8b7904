// SPDX-License-Identifier: MIT

// Package numeric defines the element kinds accepted by the linalg engine
// and the random-sampling capability consumed by matrix/vertex generators.
//
// What & Why:
//
//	Every Vertex and Matrix is parameterized over Element, the set of Go
//	integer and floating-point kinds. Arithmetic (+, −, ×), the zero value
//	and the unit T(1) come straight from the constraint, so a single generic
//	implementation serves every kind with identical semantics.
//
//	Decomposition-based algorithms (determinant, cofactor, inverse, eigen)
//	never run on T directly: they promote to float64 through ToFloat64.
//	The promotion is explicit and lossy for 64-bit integers whose magnitude
//	exceeds 2^53.
//
// Random sampling:
//
//	Sampler[T] is the seam the matrix generators draw through: "produce a
//	uniformly distributed element of kind T, excluding magnitudes at or
//	below a threshold". Uniform[T] is the implementation they use, built on
//	top of a math/rand/v2 source and gonum's distuv.Uniform. Callers tune
//	it with matrix.WithSource and matrix.WithRandEpsilon.
//
// Limitations:
//   - Go has no native 128-bit integers; such kinds are not supported.
package numeric
