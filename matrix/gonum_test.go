// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestAsGonum_View(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	g := matrix.AsGonum(m)

	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	require.NoError(t, m.Set(1, 2, 60))
	require.Equal(t, 60.0, g.At(1, 2), "view tracks writes")

	tr := g.T()
	r, c = tr.Dims()
	require.Equal(t, [2]int{3, 2}, [2]int{r, c})
	require.Equal(t, 4.0, tr.At(0, 1))

	require.PanicsWithValue(t, mat.ErrRowAccess, func() { g.At(2, 0) })
	require.PanicsWithValue(t, mat.ErrColAccess, func() { g.At(0, -1) })
}

func TestFromGonum_RoundTrip(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m, err := matrix.FromGonum(d)
	require.NoError(t, err)
	require.Equal(t, [2]int{3, 2}, m.Shape())
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.Rows())

	require.True(t, mat.Equal(d, matrix.AsGonum(m)))

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilOperand)
}
