// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"fmt"
	"testing"

	"github.com/ChainSafe/triecache/lib/common"
	"github.com/stretchr/testify/require"
)

// The tests use a toy node encoding so traversal and proof
// reconstruction can be exercised without a real trie codec:
// one child count byte, the child hashes, then an opaque payload.

func makeTestNode(payload []byte, children ...common.Hash) (encoded []byte) {
	encoded = []byte{byte(len(children))}
	for _, child := range children {
		encoded = append(encoded, child.ToBytes()...)
	}
	return append(encoded, payload...)
}

type testDecoder struct{}

func (testDecoder) ChildHashes(encoded []byte) ([]common.Hash, error) {
	if len(encoded) == 0 {
		return nil, fmt.Errorf("encoded node is empty")
	}

	n := int(encoded[0])
	if len(encoded) < 1+n*common.HashLength {
		return nil, fmt.Errorf("encoded node is truncated: %d bytes for %d children",
			len(encoded), n)
	}

	children := make([]common.Hash, n)
	for i := 0; i < n; i++ {
		children[i] = common.NewHash(encoded[1+i*common.HashLength : 1+(i+1)*common.HashLength])
	}
	return children, nil
}

// buildNodeChain stores a three node chain root -> mid -> leaf in the
// database and returns the hashes from root to leaf.
func buildNodeChain(t *testing.T, db *MemoryDB) (root, mid, leaf common.Hash) {
	t.Helper()

	leaf = db.PutNode(makeTestNode([]byte("leaf payload")))
	mid = db.PutNode(makeTestNode([]byte("mid payload"), leaf))
	root = db.PutNode(makeTestNode([]byte("root payload"), mid))
	return root, mid, leaf
}

// verifyReachable walks the node graph from the root using the given
// database, checking every fetched node re-hashes to the hash it was
// fetched by. With content addressed nodes this reproduces the claimed
// root from the node set alone.
func verifyReachable(t *testing.T, db *MemoryDB, root common.Hash) (visited int) {
	t.Helper()

	queue := []common.Hash{root}
	seen := make(map[common.Hash]bool)
	for len(queue) > 0 {
		hash := queue[0]
		queue = queue[1:]
		if seen[hash] {
			continue
		}
		seen[hash] = true

		encoded, err := db.GetNode(hash)
		require.NoError(t, err)
		require.Equal(t, hash, common.MustBlake2bHash(encoded))

		children, err := testDecoder{}.ChildHashes(encoded)
		require.NoError(t, err)
		queue = append(queue, children...)
		visited++
	}
	return visited
}

func newTestSharedCache(t *testing.T, nodeBudget, valueBudget uint) *SharedTrieCache {
	t.Helper()

	shared, err := NewSharedTrieCache(Config{
		NodeCacheSize:  nodeBudget,
		ValueCacheSize: valueBudget,
	})
	require.NoError(t, err)
	return shared
}
