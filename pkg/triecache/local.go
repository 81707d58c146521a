// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"github.com/ChainSafe/triecache/lib/common"
)

// LocalCache is the capability set shared by the bounded and trusted
// local cache variants. The variant is selected once, at construction,
// rather than branching at every call site.
type LocalCache interface {
	GetOrFetchNode(hash common.Hash, fetch FetchNodeFn) (encoded []byte, err error)
	GetOrFetchValue(root common.Hash, key []byte, fetch FetchValueFn) (CachedValue, error)
	Commit()
}

// LocalTrieCache buffers node and value reads for one execution context
// (one block import, one authoring attempt, one candidate validation)
// without holding any shared lock for the duration of execution.
//
// It is strictly single owner and not safe for concurrent use. Its
// buffered content is transferred into the shared caches by Commit at
// successful completion; an abandoned context simply drops the cache,
// so speculative reads from a failed execution never pollute the
// shared caches.
type LocalTrieCache struct {
	shared    *SharedTrieCache
	db        NodeDatabase
	recorder  *Recorder
	nodes     map[common.Hash][]byte
	values    map[valueCacheKey]CachedValue
	committed bool
}

// NewLocalTrieCache creates a bounded mode local cache for one
// execution context. The recorder may be nil when no proof will be
// extracted from this context.
func (stc *SharedTrieCache) NewLocalTrieCache(db NodeDatabase, recorder *Recorder) *LocalTrieCache {
	return &LocalTrieCache{
		shared:   stc,
		db:       db,
		recorder: recorder,
		nodes:    make(map[common.Hash][]byte),
		values:   make(map[valueCacheKey]CachedValue),
	}
}

// NewLocal returns the local cache variant selected by the
// configuration's Trusted flag. The decoder is only used by the
// trusted variant's Preload.
func (stc *SharedTrieCache) NewLocal(db NodeDatabase, decoder NodeDecoder,
	recorder *Recorder) LocalCache {
	if stc.config.Trusted {
		return stc.NewTrustedLocalTrieCache(db, decoder, recorder)
	}
	return stc.NewLocalTrieCache(db, recorder)
}

// GetOrFetchNode returns the encoded node for the hash, trying the
// local buffer, then the shared cache, then fetch against the backing
// database. fetch may be nil, in which case the database handle given
// at construction is queried directly.
//
// The access is recorded whichever layer serves it: proof verification
// needs the full traversal path regardless of where each node was
// physically served from.
func (l *LocalTrieCache) GetOrFetchNode(hash common.Hash, fetch FetchNodeFn) (
	encoded []byte, err error) {
	if encoded, ok := l.nodes[hash]; ok {
		l.recordNode(hash, encoded)
		return encoded, nil
	}

	if encoded, ok := l.shared.LookupNode(hash); ok {
		// Keep a local copy so repeated hits avoid the shared lock.
		l.nodes[hash] = encoded
		l.recordNode(hash, encoded)
		return encoded, nil
	}

	if fetch == nil {
		fetch = l.db.GetNode
	}
	encoded, err = fetch(hash)
	if err != nil {
		// Fatal to the surrounding execution; propagated unchanged.
		return nil, err
	}

	l.nodes[hash] = encoded
	l.recordNode(hash, encoded)
	return encoded, nil
}

// GetOrFetchValue is the value counterpart of GetOrFetchNode, keyed by
// trie root and storage key. Proven absence is cached and recorded like
// any other result.
func (l *LocalTrieCache) GetOrFetchValue(root common.Hash, key []byte,
	fetch FetchValueFn) (CachedValue, error) {
	cacheKey := valueCacheKey{root: root, key: string(key)}

	if value, ok := l.values[cacheKey]; ok {
		l.recordValue(root, key, value)
		return value, nil
	}

	if value, ok := l.shared.LookupValue(root, key); ok {
		l.values[cacheKey] = value
		l.recordValue(root, key, value)
		return value, nil
	}

	if fetch == nil {
		fetch = l.db.GetValue
	}
	data, found, err := fetch(root, key)
	if err != nil {
		return nil, err
	}

	var value CachedValue = NonExistingValue{}
	if found {
		value = ExistingValue{Data: data}
	}

	l.values[cacheKey] = value
	l.recordValue(root, key, value)
	return value, nil
}

// Commit transfers the buffered entries into the shared caches, one
// bulk merge per cache, then discards the local buffers. It must be
// called exactly once, at the successful end of the execution context;
// calling it twice panics. For an abandoned context, do not call
// Commit and simply drop the cache.
func (l *LocalTrieCache) Commit() {
	if l.committed {
		panic(ErrAlreadyCommitted)
	}
	l.committed = true

	logger.Debugf("committing %d nodes and %d values to the shared caches",
		len(l.nodes), len(l.values))

	if len(l.nodes) > 0 {
		l.shared.nodes.bulkMerge(l.nodes)
	}
	if len(l.values) > 0 {
		l.shared.values.bulkMerge(l.values)
	}
	commitsCounter.Inc()

	l.nodes = make(map[common.Hash][]byte)
	l.values = make(map[valueCacheKey]CachedValue)
}

func (l *LocalTrieCache) recordNode(hash common.Hash, encoded []byte) {
	if l.recorder != nil {
		l.recorder.RecordNode(hash, encoded)
	}
}

func (l *LocalTrieCache) recordValue(root common.Hash, key []byte, value CachedValue) {
	if l.recorder != nil {
		l.recorder.RecordValue(root, key, value)
	}
}
