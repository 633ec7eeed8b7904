// Package linalg is a small, generic linear-algebra engine: numeric
// vertices and matrices over every Go integer and floating-point kind,
// with orientation-aware products and the classic small-matrix toolkit.
//
// 🚀 What is inside?
//
//	• Vertex[T] / Matrix[T]: dense, row-major, generic over numeric.Element
//	• Products: Dot, Cross, outer product, VecMat, MatVec, Mul, Gram
//	• Triangularization: Doolittle LU, upper/lower triangular forms
//	• Determinant, cofactor, adjugate and inverse
//	• Column normalization and power-iteration eigen approximation
//	• Seedable random generation (math/rand/v2 + gonum distuv)
//	• Zero-copy interop with gonum.org/v1/gonum/mat
//
// Under the hood, everything is organized under two subpackages:
//
//	numeric/ : element-kind constraints, promotion helpers, uniform sampler
//	matrix/  : Vertex, Matrix and every algorithm above
//
// Quick example:
//
//	a, _ := matrix.New([][]int{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(a) // -2
//
// Logging is silent by default; route debug events to your own zap logger
// with SetLogger.
//
//	go get github.com/katalvlaran/linalg
package linalg
