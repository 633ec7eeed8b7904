// SPDX-License-Identifier: MIT

// Package logger holds the process-wide zap logger used by linalg packages.
// The default is a no-op logger; applications opt in via linalg.SetLogger.
package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// L returns the current logger. Never nil.
func L() *zap.Logger {
	return global.Load()
}

// Set replaces the logger; nil restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}
