// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"fmt"

	"github.com/ChainSafe/triecache/lib/common"
)

// TrustedLocalTrieCache is the trusted mode variant of LocalTrieCache.
// The caller asserts the whole working set fits in memory: Preload
// seeds the local buffer with every node reachable from the root, the
// local buffer has no size bound, and steady state lookups never take
// the shared lock. The shared caches' own budgets still apply at
// commit, so the merge may immediately evict entries it just inserted.
type TrustedLocalTrieCache struct {
	LocalTrieCache
	decoder NodeDecoder
}

// NewTrustedLocalTrieCache creates a trusted mode local cache for one
// execution context. Call Preload before starting execution.
func (stc *SharedTrieCache) NewTrustedLocalTrieCache(db NodeDatabase,
	decoder NodeDecoder, recorder *Recorder) *TrustedLocalTrieCache {
	return &TrustedLocalTrieCache{
		LocalTrieCache: LocalTrieCache{
			shared:   stc,
			db:       db,
			recorder: recorder,
			nodes:    make(map[common.Hash][]byte),
			values:   make(map[valueCacheKey]CachedValue),
		},
		decoder: decoder,
	}
}

// Preload walks the node graph from the root, through the shared cache
// where possible and the backing database otherwise, into the local
// buffer. After it returns, lookups within the preloaded set reach
// neither the shared lock nor the database.
//
// Preloading is not an access: nothing is recorded here, otherwise
// every proof extracted from this context would contain the whole
// preloaded state.
func (t *TrustedLocalTrieCache) Preload(root common.Hash) error {
	if root.IsEmpty() {
		return nil
	}

	queue := []common.Hash{root}
	for len(queue) > 0 {
		hash := queue[0]
		queue = queue[1:]

		if _, ok := t.nodes[hash]; ok {
			continue
		}

		encoded, ok := t.shared.LookupNode(hash)
		if !ok {
			var err error
			encoded, err = t.db.GetNode(hash)
			if err != nil {
				return fmt.Errorf("preloading node %s: %w", hash.Short(), err)
			}
		}
		t.nodes[hash] = encoded

		children, err := t.decoder.ChildHashes(encoded)
		if err != nil {
			return fmt.Errorf("decoding child hashes of %s: %w", hash.Short(), err)
		}
		queue = append(queue, children...)
	}

	logger.Debugf("preloaded %d nodes for root %s", len(t.nodes), root.Short())
	return nil
}

// GetOrFetchNode returns the encoded node for the hash from the local
// buffer, falling back to fetch against the backing database for
// anything outside the preloaded set. The shared cache is not
// consulted: Preload already transferred everything it had.
func (t *TrustedLocalTrieCache) GetOrFetchNode(hash common.Hash, fetch FetchNodeFn) (
	encoded []byte, err error) {
	if encoded, ok := t.nodes[hash]; ok {
		t.recordNode(hash, encoded)
		return encoded, nil
	}

	if fetch == nil {
		fetch = t.db.GetNode
	}
	encoded, err = fetch(hash)
	if err != nil {
		return nil, err
	}

	t.nodes[hash] = encoded
	t.recordNode(hash, encoded)
	return encoded, nil
}

// GetOrFetchValue is the value counterpart of GetOrFetchNode. Values
// are resolved from the local buffer or the backing database only;
// negative lookups are cached as in bounded mode.
func (t *TrustedLocalTrieCache) GetOrFetchValue(root common.Hash, key []byte,
	fetch FetchValueFn) (CachedValue, error) {
	cacheKey := valueCacheKey{root: root, key: string(key)}

	if value, ok := t.values[cacheKey]; ok {
		t.recordValue(root, key, value)
		return value, nil
	}

	if fetch == nil {
		fetch = t.db.GetValue
	}
	data, found, err := fetch(root, key)
	if err != nil {
		return nil, err
	}

	var value CachedValue = NonExistingValue{}
	if found {
		value = ExistingValue{Data: data}
	}

	t.values[cacheKey] = value
	t.recordValue(root, key, value)
	return value, nil
}
