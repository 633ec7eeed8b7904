// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/matrix"
)

func TestSetLogger_RoutesMatrixEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	linalg.SetLogger(zap.New(core))
	t.Cleanup(func() { linalg.SetLogger(nil) })

	singular, err := matrix.New([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)
	_, err = matrix.Inverse(singular)
	require.ErrorIs(t, err, matrix.ErrDeterminantZero)

	require.Equal(t, 1, logs.FilterMessage("inverse: singular input").Len())
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	linalg.SetLogger(nil)
	require.NotNil(t, linalg.Logger())
	require.False(t, linalg.Logger().Core().Enabled(zapcore.ErrorLevel))
}
