// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private knobs and panic messages.
//
// Purpose:
//   - Expose UNEXPORTED tuning state and panic constants to matrix_test ONLY.
//   - Compiled only with the package tests (the _test.go suffix), so the
//     production API never widens.

// SetParallelThresholdForTest overrides parallelThreshold and returns a
// restore func for t.Cleanup. Not safe for parallel tests.
func SetParallelThresholdForTest(n int) (restore func()) {
	prev := parallelThreshold
	parallelThreshold = n

	return func() { parallelThreshold = prev }
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWorkersInvalid_TestOnly   = panicWorkersInvalid
	PanicMaxIterInvalid_TestOnly   = panicMaxIterInvalid
	PanicToleranceInvalid_TestOnly = panicToleranceInvalid
	PanicRandEpsInvalid_TestOnly   = panicRandEpsInvalid
)

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Workers    int
	HasLogger  bool
	HasSource  bool
	RandEps    float64
	MaxIter    int
	Tolerance  float64
	WorkersFor func(slots int) int
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after defaults and setters.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Workers:    o.workers,
		HasLogger:  o.log != nil,
		HasSource:  o.src != nil,
		RandEps:    o.randEps,
		MaxIter:    o.maxIter,
		Tolerance:  o.tol,
		WorkersFor: o.workersFor,
	}
}
