// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger
// in a thread safe way, using the options given.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}
