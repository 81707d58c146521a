// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package triecache memoizes trie node and storage value lookups across
// block executions while bounding memory, and records every access so a
// storage proof can be reconstructed afterwards.
package triecache

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/triecache/internal/log"
	"github.com/ChainSafe/triecache/lib/common"
	"github.com/go-playground/validator/v10"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "triecache"))

const (
	// DefaultNodeCacheSize is the default byte budget
	// of the shared node cache.
	DefaultNodeCacheSize = 8 * 1024 * 1024 // 8MB
	// DefaultValueCacheSize is the default byte budget
	// of the shared value cache.
	DefaultValueCacheSize = 2 * 1024 * 1024 // 2MB
)

// Config configures a SharedTrieCache and the local caches
// derived from it.
type Config struct {
	// NodeCacheSize is the byte budget of the shared node cache.
	NodeCacheSize uint `validate:"required,gt=0"`
	// ValueCacheSize is the byte budget of the shared value cache.
	ValueCacheSize uint `validate:"required,gt=0"`
	// Trusted selects trusted mode local caches from NewLocal:
	// preloaded up front, locally unbounded until commit. It is meant
	// for import and authoring paths where the node previously
	// validated the same state, so the working set is known to fit.
	Trusted bool
}

// DefaultConfig returns the default bounded-mode configuration.
func DefaultConfig() Config {
	return Config{
		NodeCacheSize:  DefaultNodeCacheSize,
		ValueCacheSize: DefaultValueCacheSize,
	}
}

// valueCacheKey identifies a storage value under a specific trie root.
// The root pins the trie version, so distinct roots never collide.
type valueCacheKey struct {
	root common.Hash
	key  string
}

func (k valueCacheKey) sizeInBytes() uint {
	return common.HashLength + uint(len(k.key))
}

type sharedNodeCache struct {
	mutex sync.Mutex
	lru   *sizedLRU[common.Hash, []byte]
}

func (c *sharedNodeCache) lookup(hash common.Hash) ([]byte, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	encoded, ok := c.lru.get(hash)
	if !ok {
		nodeMissesCounter.Inc()
		return nil, false
	}
	nodeHitsCounter.Inc()
	// Copies are independent values on each side of the shared/local
	// boundary, never aliases.
	return copyBytes(encoded), true
}

func (c *sharedNodeCache) bulkMerge(entries map[common.Hash][]byte) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	evicted := 0
	for hash, encoded := range entries {
		evicted += c.lru.put(hash, encoded, uint(len(encoded)))
	}

	nodeEvictionsCounter.Add(float64(evicted))
	nodeSizeGauge.Set(float64(c.lru.size()))
	if evicted > 0 {
		logger.Tracef("node merge evicted %d entries", evicted)
	}
}

type sharedValueCache struct {
	mutex sync.Mutex
	lru   *sizedLRU[valueCacheKey, CachedValue]
}

func (c *sharedValueCache) lookup(key valueCacheKey) (CachedValue, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	value, ok := c.lru.get(key)
	if !ok {
		valueMissesCounter.Inc()
		return nil, false
	}
	valueHitsCounter.Inc()
	return copyCachedValue(value), true
}

func (c *sharedValueCache) bulkMerge(entries map[valueCacheKey]CachedValue) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	evicted := 0
	for key, value := range entries {
		evicted += c.lru.put(key, value, key.sizeInBytes()+value.SizeInBytes())
	}

	valueEvictionsCounter.Add(float64(evicted))
	valueSizeGauge.Set(float64(c.lru.size()))
	if evicted > 0 {
		logger.Tracef("value merge evicted %d entries", evicted)
	}
}

// SharedTrieCache is the process wide trie cache shared by every
// execution context. It is created once at process start and passed by
// reference to each context; there is no hidden global. Each lookup and
// each bulk merge is a single short critical section, and nothing
// blocks on the backing database while a lock is held.
type SharedTrieCache struct {
	config Config
	nodes  sharedNodeCache
	values sharedValueCache
}

// NewSharedTrieCache creates a shared trie cache with the
// given configuration.
func NewSharedTrieCache(config Config) (*SharedTrieCache, error) {
	err := validator.New().Struct(config)
	if err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	logger.Debugf("creating shared trie cache: node budget %dB, value budget %dB, trusted %t",
		config.NodeCacheSize, config.ValueCacheSize, config.Trusted)

	cache := &SharedTrieCache{config: config}
	cache.nodes.lru = newSizedLRU[common.Hash, []byte](config.NodeCacheSize)
	cache.values.lru = newSizedLRU[valueCacheKey, CachedValue](config.ValueCacheSize)
	return cache, nil
}

// LookupNode returns a copy of the cached encoded node for the hash,
// or false if it is not cached.
func (stc *SharedTrieCache) LookupNode(hash common.Hash) (encoded []byte, ok bool) {
	return stc.nodes.lookup(hash)
}

// LookupValue returns a copy of the cached value for the key under the
// given trie root, or false if it is not cached. The returned value can
// be a NonExistingValue: proven absence is cached too.
func (stc *SharedTrieCache) LookupValue(root common.Hash, key []byte) (value CachedValue, ok bool) {
	return stc.values.lookup(valueCacheKey{root: root, key: string(key)})
}

// UsedNodeCacheBytes returns the tracked size of the shared node cache.
func (stc *SharedTrieCache) UsedNodeCacheBytes() uint {
	stc.nodes.mutex.Lock()
	defer stc.nodes.mutex.Unlock()
	return stc.nodes.lru.size()
}

// UsedValueCacheBytes returns the tracked size of the shared value cache.
func (stc *SharedTrieCache) UsedValueCacheBytes() uint {
	stc.values.mutex.Lock()
	defer stc.values.mutex.Unlock()
	return stc.values.lru.size()
}

// Reset drops every entry from both shared caches.
func (stc *SharedTrieCache) Reset() {
	stc.nodes.mutex.Lock()
	stc.nodes.lru.reset()
	stc.nodes.mutex.Unlock()
	nodeSizeGauge.Set(0)

	stc.values.mutex.Lock()
	stc.values.lru.reset()
	stc.values.mutex.Unlock()
	valueSizeGauge.Set(0)
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

func copyCachedValue(value CachedValue) CachedValue {
	switch v := value.(type) {
	case ExistingValue:
		return ExistingValue{Data: copyBytes(v.Data)}
	default:
		return value
	}
}
