// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the kernel tests.
//   • Keep every random draw seeded so failures reproduce.

package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/numeric"
)

// approxTol is the absolute tolerance used by float comparisons.
const approxTol = 1e-6

// MustNew builds a matrix from rows or fails the test.
func MustNew[T numeric.Element](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New(rows)
	require.NoError(tb, err)

	return m
}

// RequireApprox asserts got has want's shape and matches it within tol.
func RequireApprox(tb testing.TB, want [][]float64, got *matrix.Matrix[float64], tol float64) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Equal(tb, len(want), got.Height(), "height")
	rows := got.Rows()
	for j := range want {
		require.Len(tb, rows[j], len(want[j]), "row %d width", j)
		for i := range want[j] {
			require.InDelta(tb, want[j][i], rows[j][i], tol, "entry (%d,%d)", j, i)
		}
	}
}

// RequireIdentity asserts m ≈ I within tol.
func RequireIdentity(tb testing.TB, m *matrix.Matrix[float64], tol float64) {
	tb.Helper()
	require.True(tb, m.IsSquare())
	n := m.Height()
	want := make([][]float64, n)
	for j := range want {
		want[j] = make([]float64, n)
		want[j][j] = 1
	}
	RequireApprox(tb, want, m, tol)
}

// Seeded returns a reproducible source option.
func Seeded(seed uint64) matrix.Option {
	return matrix.WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WellConditioned returns a random n×n float64 matrix made diagonally
// dominant, so Doolittle never meets a vanishing pivot.
func WellConditioned(tb testing.TB, n int, seed uint64) *matrix.Matrix[float64] {
	tb.Helper()
	m, err := matrix.Rand[float64]([2]int{n, n}, Seeded(seed))
	require.NoError(tb, err)
	for k := 0; k < n; k++ {
		x, err := m.At(k, k)
		require.NoError(tb, err)
		require.NoError(tb, m.Set(k, k, x+math.Copysign(float64(n), x)))
	}

	return m
}

// ForceParallel drops the inline threshold to 1 for the test's duration.
func ForceParallel(t *testing.T) {
	t.Helper()
	t.Cleanup(matrix.SetParallelThresholdForTest(1))
}
