// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for kernels that fan out work,
// sample random values, iterate, or log. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults then setters.
//
// Design goals:
//   - No global mutable state besides the process logger (linalg.SetLogger).
//   - Every option changes observable behavior and is covered by tests.
//   - Panic only on invalid parameters (programmer error).
package matrix

import (
	"math"
	"math/rand/v2"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/internal/logger"
	"github.com/katalvlaran/linalg/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEigenMaxIter bounds the power-iteration loop of Eigen.
	DefaultEigenMaxIter = 100

	// DefaultEigenTolerance stops Eigen once successive eigenvalue
	// estimates differ by less than this amount.
	DefaultEigenTolerance = 1e-10

	// DefaultRandEpsilon is the magnitude at or below which random floats
	// are resampled.
	DefaultRandEpsilon = numeric.DefaultEpsilon

	// TriangularDelta is the fixed absolute threshold of the Doolittle
	// engine: computed values with |x| <= TriangularDelta become exact zero,
	// and a pivot within it means no triangular form exists.
	TriangularDelta = 1e-10
)

// parallelThreshold is the number of output slots below which kernels run
// inline instead of fanning out. Overridable in tests.
var parallelThreshold = 4096

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "matrix: WithWorkers: n must be >= 1"
	panicMaxIterInvalid   = "matrix: WithEigenMaxIter: n must be >= 1"
	panicToleranceInvalid = "matrix: WithEigenTolerance: tol must be finite, non-negative"
	panicRandEpsInvalid   = "matrix: WithRandEpsilon: eps must be in [0, 1)"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers int         // >= 1; GOMAXPROCS by default
	log     *zap.Logger // never nil after gatherOptions

	src     rand.Source // nil ⇒ runtime-seeded PCG
	randEps float64     // DefaultRandEpsilon

	maxIter int     // DefaultEigenMaxIter
	tol     float64 // DefaultEigenTolerance
}

// WithWorkers caps the number of goroutines used by data-parallel kernels.
// n = 1 forces fully sequential, deterministic evaluation.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes this call's debug events to l. A nil l keeps the
// process logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSource injects the random source used by Rand*, and by Eigen for its
// seed vector. Pass a seeded source (e.g. rand.NewPCG(1, 2)) for
// reproducible output.
func WithSource(src rand.Source) Option {
	return func(o *Options) { o.src = src }
}

// WithRandEpsilon sets the rejection threshold for random floats.
// Random floats lie in [-1, 1), so eps must be in [0, 1); panics otherwise.
func WithRandEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 || eps >= 1 {
		panic(panicRandEpsInvalid)
	}

	return func(o *Options) { o.randEps = eps }
}

// WithEigenMaxIter sets the iteration cap of Eigen. Panics if n < 1.
func WithEigenMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithEigenTolerance sets the convergence tolerance of Eigen.
// Panics on negative or non-finite tol.
func WithEigenTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies defaults, then user setters in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: runtime.GOMAXPROCS(0),
		log:     logger.L(),
		randEps: DefaultRandEpsilon,
		maxIter: DefaultEigenMaxIter,
		tol:     DefaultEigenTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// workersFor returns the worker count for a kernel writing `slots` outputs:
// 1 below parallelThreshold, o.workers otherwise.
func (o Options) workersFor(slots int) int {
	if slots < parallelThreshold {
		return 1
	}

	return o.workers
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
