// SPDX-License-Identifier: MIT

package linalg

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/internal/logger"
)

// SetLogger installs l as the process-wide logger for all linalg packages.
// A nil l restores the default no-op logger. Individual calls may still
// override it with matrix.WithLogger.
func SetLogger(l *zap.Logger) {
	logger.Set(l)
}

// Logger returns the current process-wide logger. Never nil.
func Logger() *zap.Logger {
	return logger.L()
}
