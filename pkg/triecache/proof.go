// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"bytes"
	"sort"

	"github.com/ChainSafe/triecache/lib/common"
)

// StorageProof is a set of encoded trie nodes sufficient to prove the
// values of specific keys against a known root hash, without the full
// trie. Nodes are deduplicated and held in node hash order.
type StorageProof struct {
	trieNodes [][]byte
}

// NewStorageProof builds a storage proof from encoded nodes,
// deduplicating them by their blake2b hash.
func NewStorageProof(trieNodes [][]byte) StorageProof {
	seen := make(map[common.Hash][]byte, len(trieNodes))
	for _, encoded := range trieNodes {
		seen[common.MustBlake2bHash(encoded)] = encoded
	}

	hashes := make([]common.Hash, 0, len(seen))
	for hash := range seen {
		hashes = append(hashes, hash)
	}
	sort.Slice(hashes, func(i, j int) bool {
		return bytes.Compare(hashes[i].ToBytes(), hashes[j].ToBytes()) < 0
	})

	deduplicated := make([][]byte, 0, len(hashes))
	for _, hash := range hashes {
		deduplicated = append(deduplicated, seen[hash])
	}
	return StorageProof{trieNodes: deduplicated}
}

// StorageProof extracts the storage proof from the access set.
// The recorded node set is already deduplicated and hash ordered.
func (ra RecordedAccess) StorageProof() StorageProof {
	trieNodes := make([][]byte, 0, len(ra.Nodes))
	for _, node := range ra.Nodes {
		trieNodes = append(trieNodes, node.Data)
	}
	return StorageProof{trieNodes: trieNodes}
}

// Nodes returns the encoded trie nodes of the proof.
func (sp StorageProof) Nodes() [][]byte {
	return sp.trieNodes
}

// IsEmpty returns true when the proof carries no nodes.
func (sp StorageProof) IsEmpty() bool {
	return len(sp.trieNodes) == 0
}

// ToMemoryDB loads the proof nodes into an in-memory node database so
// a verifier can replay trie lookups against the proof alone.
func (sp StorageProof) ToMemoryDB() *MemoryDB {
	db := NewMemoryDB()
	for _, encoded := range sp.trieNodes {
		db.PutNode(encoded)
	}
	return db
}
