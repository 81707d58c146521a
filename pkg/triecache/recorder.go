// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"github.com/ChainSafe/triecache/lib/common"
	"github.com/tidwall/btree"
)

// RecordedNode is one trie node touched by an execution context.
type RecordedNode struct {
	Hash common.Hash
	Data []byte
}

// RecordedValue is one storage value touched by an execution context,
// under the trie root it was resolved against.
type RecordedValue struct {
	Root    common.Hash
	FullKey []byte
	Value   CachedValue
}

// RecordedAccess is the full access set of one execution context:
// nodes ordered by hash and values ordered by (root, full key).
// Together with the hashing scheme it is sufficient to reconstruct and
// verify the root hash for every key the execution queried.
type RecordedAccess struct {
	Nodes  []RecordedNode
	Values []RecordedValue
}

// Recorder accumulates every node and value access of one execution
// context, whichever cache layer served it. It is append only for the
// lifetime of the context and nothing is ever evicted from it.
// Like the local caches it is single owner and not safe for
// concurrent use.
type Recorder struct {
	nodes                btree.Map[string, []byte]
	values               btree.Map[string, RecordedValue]
	estimatedEncodedSize int
	finalized            bool
}

// NewRecorder creates an access recorder for one execution context.
func NewRecorder() *Recorder {
	return &Recorder{
		nodes:  *btree.NewMap[string, []byte](0),
		values: *btree.NewMap[string, RecordedValue](0),
	}
}

// RecordNode records one node access. Recording the same hash again is
// a no-op: the access set stores each node once. Calling it on a
// finalized recorder panics.
func (r *Recorder) RecordNode(hash common.Hash, encoded []byte) {
	if r.finalized {
		panic(ErrRecorderFinalized)
	}

	key := string(hash.ToBytes())
	if _, ok := r.nodes.Get(key); ok {
		return
	}
	r.nodes.Set(key, encoded)
	r.estimatedEncodedSize += common.HashLength + len(encoded)
}

// RecordValue records one value access, including proven absence.
// Duplicate recordings for the same (root, key) are no-ops. Calling it
// on a finalized recorder panics.
func (r *Recorder) RecordValue(root common.Hash, fullKey []byte, value CachedValue) {
	if r.finalized {
		panic(ErrRecorderFinalized)
	}

	key := string(root.ToBytes()) + string(fullKey)
	if _, ok := r.values.Get(key); ok {
		return
	}
	r.values.Set(key, RecordedValue{
		Root:    root,
		FullKey: copyBytes(fullKey),
		Value:   value,
	})
	r.estimatedEncodedSize += len(fullKey) + int(value.SizeInBytes())
}

// EstimatedEncodedSize is a running estimate of the encoded size of the
// storage proof this recorder will produce, usable for weight
// accounting while the context is still executing.
func (r *Recorder) EstimatedEncodedSize() int {
	return r.estimatedEncodedSize
}

// Finalize consumes the recorder and returns the full access set.
// The recorder is spent afterwards: any further Record call and any
// second Finalize call panics.
func (r *Recorder) Finalize() RecordedAccess {
	if r.finalized {
		panic(ErrRecorderFinalized)
	}
	r.finalized = true

	access := RecordedAccess{
		Nodes:  make([]RecordedNode, 0, r.nodes.Len()),
		Values: make([]RecordedValue, 0, r.values.Len()),
	}
	r.nodes.Scan(func(key string, encoded []byte) bool {
		access.Nodes = append(access.Nodes, RecordedNode{
			Hash: common.NewHash([]byte(key)),
			Data: encoded,
		})
		return true
	})
	r.values.Scan(func(_ string, value RecordedValue) bool {
		access.Values = append(access.Values, value)
		return true
	})

	r.nodes.Clear()
	r.values.Clear()
	return access
}
