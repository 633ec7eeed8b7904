// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNormalize_Columns(t *testing.T) {
	t.Parallel()

	got, err := matrix.Normalize(MustNew(t, [][]int{{3, 0, 1}, {4, 0, -1}}))
	require.NoError(t, err)
	RequireApprox(t, [][]float64{
		{0.6, 0, 0.7071067811865475},
		{0.8, 0, -0.7071067811865475},
	}, got, 1e-12)
}

func TestNormalize_UnitColumnsOnRandom(t *testing.T) {
	t.Parallel()

	m, err := matrix.Rand[float64]([2]int{4, 6}, Seeded(8))
	require.NoError(t, err)
	n, err := matrix.Normalize(m)
	require.NoError(t, err)

	for i := 0; i < n.Width(); i++ {
		col, err := n.Column(i)
		require.NoError(t, err)
		require.InDelta(t, 1.0, matrix.NewVertex(col...).Magnitude(), 1e-12)
	}
}

func TestNormalize_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.Normalize[float32](nil)
	require.ErrorIs(t, err, matrix.ErrNilOperand)
}
