// SPDX-License-Identifier: MIT

// Package matrix: explicit element-kind conversions.
// Every decomposition-based kernel promotes its input with Convert[float64]
// at its boundary; nothing converts implicitly.
package matrix

import "github.com/katalvlaran/linalg/numeric"

// Convert returns a copy of m with every element converted to U.
// Widening to float64 is lossy for 64-bit integers beyond 2^53; narrowing
// truncates per Go conversion rules.
// Complexity: O(width*height).
func Convert[U, T numeric.Element](m *Matrix[T]) *Matrix[U] {
	out := &Matrix[U]{data: make([]U, len(m.data)), width: m.width, height: m.height}
	for k, x := range m.data {
		out.data[k] = U(x)
	}

	return out
}

// ConvertVertex returns a copy of v with every element converted to U,
// keeping its orientation.
func ConvertVertex[U, T numeric.Element](v *Vertex[T]) *Vertex[U] {
	out := &Vertex[U]{data: make([]U, len(v.data)), orient: v.orient}
	for k, x := range v.data {
		out.data[k] = U(x)
	}

	return out
}

// promote is the float64 boundary used by Det, Cofactor, Inverse,
// the triangular engine and Eigen. It always copies.
func promote[T numeric.Element](m *Matrix[T]) *Matrix[float64] {
	return Convert[float64](m)
}
