// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

// valueEntryOverhead is the fixed bookkeeping cost charged per cached
// value entry, on top of its key and data lengths. It makes the size
// cost of absent markers explicit: a NonExistingValue entry costs
// len(fullKey) + valueEntryOverhead, never zero.
const valueEntryOverhead = 16

// CachedValue is a storage value as cached by the value cache,
// keyed under a specific trie root.
type CachedValue interface {
	isCachedValue()
	// SizeInBytes is the data size this entry is accounted with,
	// excluding its key.
	SizeInBytes() uint
}

type (
	// ExistingValue means the value exists in the trie.
	ExistingValue struct {
		Data []byte
	}
	// NonExistingValue means the key was proven absent in the trie.
	// Negative lookups are cached so that repeated queries for a
	// missing key skip the trie descent entirely.
	NonExistingValue struct{}
)

func (ExistingValue) isCachedValue()    {}
func (NonExistingValue) isCachedValue() {}

func (v ExistingValue) SizeInBytes() uint {
	return uint(len(v.Data)) + valueEntryOverhead
}

func (NonExistingValue) SizeInBytes() uint {
	return valueEntryOverhead
}
