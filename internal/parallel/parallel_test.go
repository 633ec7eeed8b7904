// SPDX-License-Identifier: MIT

package parallel_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/linalg/internal/parallel"
	"github.com/stretchr/testify/require"
)

func TestFor_VisitsEveryIndexOnce(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{-1, 0, 1, 2, 3, 8, 1000} {
		const n = 257
		hits := make([]int32, n)
		parallel.For(n, workers, func(i int) {
			atomic.AddInt32(&hits[i], 1)
		})
		for i, h := range hits {
			require.Equalf(t, int32(1), h, "workers=%d index=%d", workers, i)
		}
	}
}

func TestFor_ZeroLength(t *testing.T) {
	t.Parallel()

	called := false
	parallel.For(0, 4, func(int) { called = true })
	require.False(t, called)
}

func TestForErr_PropagatesFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	for _, workers := range []int{1, 4} {
		err := parallel.ForErr(100, workers, func(i int) error {
			if i == 42 {
				return boom
			}

			return nil
		})
		require.ErrorIs(t, err, boom)
	}
}

func TestForErr_NoError(t *testing.T) {
	t.Parallel()

	var sum atomic.Int64
	err := parallel.ForErr(10, 3, func(i int) error {
		sum.Add(int64(i))

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(45), sum.Load())
}
