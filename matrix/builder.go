// SPDX-License-Identifier: MIT
// Package matrix: random constructors.
//
// Every constructor draws from one numeric.Uniform built over the source
// given by WithSource (a runtime-seeded PCG by default). Values are filled
// sequentially in row-major order: a shared math/rand/v2 Source is not safe
// for concurrent use, and a fixed order keeps seeded output reproducible.
//
//   - floats: uniform on [-1, 1), never within WithRandEpsilon of zero;
//   - signed integers: full range, never zero;
//   - unsigned integers: full range, strictly positive.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// Rand returns a random matrix of shape [width, height].
// Errors: ErrBadShape on a negative dimension.
func Rand[T numeric.Element](shape [2]int, opts ...Option) (*Matrix[T], error) {
	width, height := shape[0], shape[1]
	if width < 0 || height < 0 {
		return nil, matrixErrorf(opRand, fmt.Errorf("shape [%d, %d]: %w", width, height, ErrBadShape))
	}
	m := newMatrix[T](width, height)
	fill(m.data, samplerFor[T](gatherOptions(opts...)))

	return m, nil
}

// RandTransposed is Rand followed by an in-place transpose: the result has
// shape [height, width].
func RandTransposed[T numeric.Element](shape [2]int, opts ...Option) (*Matrix[T], error) {
	m, err := Rand[T](shape, opts...)
	if err != nil {
		return nil, err
	}

	return m.T(), nil
}

// RandVertex returns a random Row vertex of length n.
// Errors: ErrBadShape if n < 0.
func RandVertex[T numeric.Element](n int, opts ...Option) (*Vertex[T], error) {
	if n < 0 {
		return nil, matrixErrorf(opRand, fmt.Errorf("length %d: %w", n, ErrBadShape))
	}
	v := newVertexLen[T](n, Row)
	fill(v.data, samplerFor[T](gatherOptions(opts...)))

	return v, nil
}

// RandColumn returns a random Column vertex of length n.
func RandColumn[T numeric.Element](n int, opts ...Option) (*Vertex[T], error) {
	v, err := RandVertex[T](n, opts...)
	if err != nil {
		return nil, err
	}

	return v.T(), nil
}

// samplerFor builds the sampler configured by WithSource and WithRandEpsilon.
func samplerFor[T numeric.Element](o Options) numeric.Sampler[T] {
	return numeric.NewUniform[T](o.src, o.randEps)
}

func fill[T numeric.Element](dst []T, s numeric.Sampler[T]) {
	for k := range dst {
		dst[k] = s.Sample()
	}
}
