// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNew_ShapeAndLayout(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 3, m.Width())
	require.Equal(t, 2, m.Height())
	require.Equal(t, [2]int{3, 2}, m.Shape())
	require.Equal(t, 6, m.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Values(), "row-major storage")

	x, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, x)
}

func TestNew_Ragged(t *testing.T) {
	t.Parallel()

	_, err := matrix.New([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestNew_EmptyAndZeros(t *testing.T) {
	t.Parallel()

	e, err := matrix.New[float64](nil)
	require.NoError(t, err)
	require.True(t, e.IsEmpty())
	require.True(t, e.IsSquare())

	z, err := matrix.Zeros[int8](2, 3)
	require.NoError(t, err)
	require.Equal(t, [2]int{2, 3}, z.Shape())
	require.Equal(t, make([]int8, 6), z.Values())

	_, err = matrix.Zeros[int](-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestMatrix_RowIsViewColumnIsCopy(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]int{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, row)
	row[0] = 30
	x, _ := m.At(1, 0)
	require.Equal(t, 30, x, "Row aliases storage")
	require.Equal(t, 2, cap(row), "capacity clipped to the row")

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, col)
	col[0] = 20
	x, _ = m.At(0, 1)
	require.Equal(t, 2, x, "Column copies")

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 5, 1), matrix.ErrOutOfRange)
}

func TestMatrix_TransposeInPlace(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		rows [][]int
		want [][]int
	}{
		{"2x3", [][]int{{1, 2, 3}, {4, 5, 6}}, [][]int{{1, 4}, {2, 5}, {3, 6}}},
		{"row", [][]int{{1, 2, 3}}, [][]int{{1}, {2}, {3}}},
		{"square", [][]int{{1, 2}, {3, 4}}, [][]int{{1, 3}, {2, 4}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MustNew(t, tc.rows)
			orig := m.Clone()

			m.T()
			require.Equal(t, tc.want, m.Rows())
			require.Equal(t, [2]int{orig.Height(), orig.Width()}, m.Shape())

			m.T()
			require.True(t, m.Equal(orig), "transpose is self-inverse")
		})
	}
}

func TestMatrix_TransposedLeavesReceiver(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]int{{1, 2, 3}})
	tr := m.Transposed()
	require.Equal(t, [2]int{1, 3}, tr.Shape())
	require.Equal(t, [2]int{3, 1}, m.Shape())
}

func TestMatrix_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	x, _ := m.At(0, 0)
	require.Equal(t, 1.0, x)
	require.False(t, m.Equal(c))
}

func TestMatrix_String(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
