// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"github.com/ChainSafe/triecache/lib/common"
)

// NodeDatabase is the content addressed store beneath the caches.
// It is supplied at construction so the caching layer has no dependency
// on any storage engine internals, and so tests can substitute a double.
//
// GetNode must be deterministic: the bytes returned for a hash are the
// preimage of that hash, so concurrent readers fetching the same hash
// always observe identical bytes.
type NodeDatabase interface {
	// GetNode returns the encoded trie node for the given node hash,
	// or ErrMissingNode if the database does not have it.
	GetNode(hash common.Hash) (encoded []byte, err error)
	// GetValue returns the storage value under the given trie root and
	// key. found is false when the key is proven absent under root.
	// An error (wrapping ErrMissingValue) means the database could not
	// answer the lookup at all.
	GetValue(root common.Hash, key []byte) (value []byte, found bool, err error)
}

// NodeDecoder exposes the single slice of the node encoding scheme this
// layer needs: listing the child node hashes referenced by an encoded
// node. It is used by trusted mode preloading to walk the node graph.
// The encoding itself is owned by the trie codec, not by this package.
type NodeDecoder interface {
	ChildHashes(encoded []byte) ([]common.Hash, error)
}

// FetchNodeFn loads one encoded node from the backing store.
// It must return an error wrapping ErrMissingNode when the node is absent.
type FetchNodeFn func(hash common.Hash) (encoded []byte, err error)

// FetchValueFn loads one storage value from the backing store.
// found reports proven absence, as for NodeDatabase.GetValue.
type FetchValueFn func(root common.Hash, key []byte) (value []byte, found bool, err error)
