// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/triecache/lib/common"
)

// MemoryDB is an in-memory NodeDatabase keyed by the blake2b hash of
// the node encoding. Verifiers replay storage proofs against it and
// the test suite uses it as a backing database double.
type MemoryDB struct {
	mutex  sync.RWMutex
	nodes  map[common.Hash][]byte
	values map[valueCacheKey][]byte
}

// NewMemoryDB creates an empty in-memory node database.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		nodes:  make(map[common.Hash][]byte),
		values: make(map[valueCacheKey][]byte),
	}
}

// PutNode inserts the encoded node under its blake2b hash
// and returns that hash.
func (db *MemoryDB) PutNode(encoded []byte) common.Hash {
	hash := common.MustBlake2bHash(encoded)

	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.nodes[hash] = copyBytes(encoded)
	return hash
}

// GetNode returns the encoded node for the hash, or an error wrapping
// ErrMissingNode if the database does not have it.
func (db *MemoryDB) GetNode(hash common.Hash) ([]byte, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	encoded, ok := db.nodes[hash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingNode, hash.Short())
	}
	return copyBytes(encoded), nil
}

// PutValue inserts a storage value under the trie root and key.
func (db *MemoryDB) PutValue(root common.Hash, key, value []byte) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.values[valueCacheKey{root: root, key: string(key)}] = copyBytes(value)
}

// GetValue returns the storage value under the trie root and key.
// A key never inserted is reported as proven absent.
func (db *MemoryDB) GetValue(root common.Hash, key []byte) (
	value []byte, found bool, err error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	value, found = db.values[valueCacheKey{root: root, key: string(key)}]
	if !found {
		return nil, false, nil
	}
	return copyBytes(value), true, nil
}

// NodeCount returns the number of nodes stored.
func (db *MemoryDB) NodeCount() int {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return len(db.nodes)
}
