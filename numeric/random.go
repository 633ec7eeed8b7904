// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultEpsilon is the magnitude at or below which sampled floats are rejected.
const DefaultEpsilon = 1e-6

// Float range drawn by Uniform before the epsilon rejection.
const (
	floatMin = -1.0
	floatMax = 1.0
)

// Sampler produces uniformly distributed elements of kind T.
// Implementations must never return a value whose magnitude is at or below
// the rejection threshold they were configured with.
type Sampler[T Element] interface {
	Sample() T
}

// Uniform samples T uniformly from a math/rand/v2 Source.
//
//   - floats: uniform on [-1, 1), resampled while |x| <= eps;
//   - signed integers: full-width random bits, resampled while zero;
//   - unsigned integers: full-width random bits, resampled until x > 0.
//
// Uniform is NOT safe for concurrent use; it shares the state of src.
type Uniform[T Element] struct {
	src  rand.Source
	eps  float64
	dist distuv.Uniform
}

// NewUniform builds a Uniform over src with rejection threshold eps.
// A nil src selects a PCG seeded from the runtime generator.
// Panics unless 0 <= eps < 1: floats are drawn from [-1, 1), so a larger
// eps would reject every draw.
func NewUniform[T Element](src rand.Source, eps float64) *Uniform[T] {
	if eps < 0 || eps >= floatMax || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &Uniform[T]{
		src:  src,
		eps:  eps,
		dist: distuv.Uniform{Min: floatMin, Max: floatMax, Src: src},
	}
}

const panicEpsilonInvalid = "numeric: NewUniform: eps must be in [0, 1)"

// Sample returns the next accepted value.
func (u *Uniform[T]) Sample() T {
	switch {
	case IsFloat[T]():
		for {
			x := T(u.dist.Rand())
			if Abs(x) > u.eps {
				return x
			}
		}
	case IsUnsigned[T]():
		for {
			x := T(u.src.Uint64())
			if x > 0 {
				return x
			}
		}
	default:
		for {
			x := T(u.src.Uint64()) // truncation keeps the low bits: full signed range
			if x != 0 {
				return x
			}
		}
	}
}
