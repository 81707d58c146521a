// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"errors"
)

var (
	// ErrMissingNode is returned when the backing database does not have
	// a trie node the traversal expected. It is fatal to the surrounding
	// execution context: a trie descent cannot proceed with a gap, so it
	// indicates either storage corruption or an inconsistent trie root.
	// It is never retried at this layer.
	ErrMissingNode = errors.New("trie node not found in backing database")

	// ErrMissingValue is returned when the backing database cannot answer
	// a value lookup. Like ErrMissingNode, it is fatal to the current
	// execution context. Transient I/O failures of the backing database
	// surface as this error too; distinguishing them is the database's
	// concern, not this layer's.
	ErrMissingValue = errors.New("storage value not found in backing database")

	// ErrRecorderFinalized is the panic value when recording is attempted
	// on a recorder that was already finalized. This is a programming
	// contract violation, not a runtime condition.
	ErrRecorderFinalized = errors.New("access recorder is already finalized")

	// ErrAlreadyCommitted is the panic value when Commit is called twice
	// on the same local cache. Commit must run exactly once, at the
	// successful end of an execution context.
	ErrAlreadyCommitted = errors.New("local trie cache is already committed")
)
