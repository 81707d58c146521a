// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"container/list"
)

type sizedLRUEntry[K comparable, V any] struct {
	key   K
	value V
	size  uint
}

// sizedLRU is a byte budgeted key value store with least recently used
// eviction. Recency is updated on get as well as put, and entries
// inserted earlier sit further back in the list, so recency ties are
// broken by insertion order.
//
// It is not safe for concurrent use; the shared caches wrap it behind
// their own mutex.
type sizedLRU[K comparable, V any] struct {
	budget      uint
	currentSize uint
	entries     map[K]*list.Element
	lruList     *list.List // front is the most recently used
}

func newSizedLRU[K comparable, V any](budget uint) *sizedLRU[K, V] {
	return &sizedLRU[K, V]{
		budget:  budget,
		entries: make(map[K]*list.Element),
		lruList: list.New(),
	}
}

// get returns the value for the key and marks the entry
// as the most recently used.
func (l *sizedLRU[K, V]) get(key K) (value V, ok bool) {
	elem, ok := l.entries[key]
	if !ok {
		return value, false
	}
	l.lruList.MoveToFront(elem)
	return elem.Value.(*sizedLRUEntry[K, V]).value, true
}

// peek returns the value for the key without touching recency.
func (l *sizedLRU[K, V]) peek(key K) (value V, ok bool) {
	elem, ok := l.entries[key]
	if !ok {
		return value, false
	}
	return elem.Value.(*sizedLRUEntry[K, V]).value, true
}

// put inserts or overwrites the entry for the key and marks it as the
// most recently used. Older entries are evicted until the store fits
// within its budget again. A single entry larger than the whole budget
// is still stored, transiently exceeding the budget, since a trie node
// can legitimately be bigger than a pathological tiny budget.
// It returns the number of entries evicted.
func (l *sizedLRU[K, V]) put(key K, value V, size uint) (evicted int) {
	if elem, exists := l.entries[key]; exists {
		entry := elem.Value.(*sizedLRUEntry[K, V])
		l.currentSize = l.currentSize - entry.size + size
		entry.value = value
		entry.size = size
		l.lruList.MoveToFront(elem)

		// The overwritten entry is at the front, so it is the last
		// candidate and survives as the single oversized entry.
		for l.currentSize > l.budget && l.lruList.Len() > 1 {
			l.removeOldest()
			evicted++
		}
		return evicted
	}

	evicted = l.evictToFit(size)

	elem := l.lruList.PushFront(&sizedLRUEntry[K, V]{key: key, value: value, size: size})
	l.entries[key] = elem
	l.currentSize += size
	return evicted
}

// evictToFit removes least recently used entries until
// currentSize + extra fits within the budget, or the store is empty.
func (l *sizedLRU[K, V]) evictToFit(extra uint) (evicted int) {
	for l.currentSize+extra > l.budget && l.lruList.Len() > 0 {
		l.removeOldest()
		evicted++
	}
	return evicted
}

func (l *sizedLRU[K, V]) removeOldest() {
	back := l.lruList.Back()
	if back == nil {
		return
	}
	entry := back.Value.(*sizedLRUEntry[K, V])
	l.lruList.Remove(back)
	delete(l.entries, entry.key)
	l.currentSize -= entry.size
}

func (l *sizedLRU[K, V]) len() int {
	return len(l.entries)
}

func (l *sizedLRU[K, V]) size() uint {
	return l.currentSize
}

// reset drops every entry and zeroes the size accounting.
func (l *sizedLRU[K, V]) reset() {
	l.entries = make(map[K]*list.Element)
	l.lruList.Init()
	l.currentSize = 0
}
