// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/linalg/matrix"
)

func TestEigen_Diagonal(t *testing.T) {
	t.Parallel()

	v, lambda, err := matrix.Eigen(MustNew(t, [][]float64{{2, 0}, {0, 1}}), Seeded(1))
	require.NoError(t, err)
	require.InDelta(t, 2.0, lambda, approxTol)
	require.True(t, v.IsColumn())
	require.InDelta(t, 1.0, v.Magnitude(), 1e-12)

	x, err := v.At(0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, math.Abs(x), approxTol)
}

func TestEigen_SymmetricTridiagonal(t *testing.T) {
	t.Parallel()

	a := MustNew(t, [][]int{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}})
	v, lambda, err := matrix.Eigen(a, Seeded(9))
	require.NoError(t, err)
	require.InDelta(t, 3+math.Sqrt(3), lambda, approxTol)

	// A·v ≈ λ·v
	av, err := matrix.MatVec(matrix.Convert[float64](a), v)
	require.NoError(t, err)
	for j, x := range av.Values() {
		vj, _ := v.At(j)
		require.InDelta(t, lambda*vj, x, 1e-3)
	}
}

func TestEigen_Deterministic(t *testing.T) {
	t.Parallel()

	a := WellConditioned(t, 5, 3)
	v1, l1, err := matrix.Eigen(a, Seeded(42))
	require.NoError(t, err)
	v2, l2, err := matrix.Eigen(a, Seeded(42))
	require.NoError(t, err)
	require.Equal(t, l1, l2)
	require.True(t, v1.Equal(v2))
}

func TestEigen_ZeroMatrix(t *testing.T) {
	t.Parallel()

	z, err := matrix.Zeros[float64](3, 3)
	require.NoError(t, err)
	v, lambda, err := matrix.Eigen(z, Seeded(2))
	require.NoError(t, err)
	require.Equal(t, 0.0, lambda)
	require.InDelta(t, 1.0, v.Magnitude(), 1e-12, "seed vector is returned")
}

func TestEigen_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Eigen(MustNew(t, [][]int{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	_, _, err = matrix.Eigen(MustNew[int](t, nil))
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestEigen_LogsTermination(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	_, _, err := matrix.Eigen(MustNew(t, [][]float64{{2, 0}, {0, 1}}), Seeded(5), matrix.WithLogger(l))
	require.NoError(t, err)
	_, _, err = matrix.Eigen(MustNew(t, [][]float64{{2, 0}, {0, 1}}), Seeded(5), matrix.WithLogger(l),
		matrix.WithEigenMaxIter(1), matrix.WithEigenTolerance(0))
	require.NoError(t, err)

	entries := logs.FilterMessage("eigen: power iteration finished").All()
	require.Len(t, entries, 2)
	require.Equal(t, true, entries[0].ContextMap()["converged"])
	require.Equal(t, false, entries[1].ContextMap()["converged"])
	require.EqualValues(t, 1, entries[1].ContextMap()["iterations"])
}
