// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_sizedLRU_budget_invariant(t *testing.T) {
	t.Parallel()

	const budget = 64
	lru := newSizedLRU[string, []byte](budget)

	// Entry sizes sum far beyond the budget; after every put the
	// tracked size must stay within the budget since no single entry
	// exceeds it.
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%d", i)
		size := uint(1 + i%30)
		lru.put(key, make([]byte, size), size)
		require.LessOrEqual(t, lru.size(), uint(budget), "after put %d", i)
	}
}

func Test_sizedLRU_least_recently_used_eviction(t *testing.T) {
	t.Parallel()

	t.Run("untouched_entry_evicted_first", func(t *testing.T) {
		t.Parallel()

		lru := newSizedLRU[string, []byte](100)
		lru.put("a", []byte("a"), 40)
		lru.put("b", []byte("b"), 40)

		// b is more recent than a, so a goes first.
		evicted := lru.put("c", []byte("c"), 40)
		assert.Equal(t, 1, evicted)

		_, ok := lru.get("a")
		assert.False(t, ok)
		_, ok = lru.get("b")
		assert.True(t, ok)
	})

	t.Run("get_refreshes_recency", func(t *testing.T) {
		t.Parallel()

		lru := newSizedLRU[string, []byte](100)
		lru.put("a", []byte("a"), 40)
		lru.put("b", []byte("b"), 40)

		_, ok := lru.get("a")
		require.True(t, ok)

		// a was accessed after b, so b is now the least recently used.
		lru.put("c", []byte("c"), 40)

		_, ok = lru.get("a")
		assert.True(t, ok)
		_, ok = lru.get("b")
		assert.False(t, ok)
	})

	t.Run("ties_broken_by_insertion_order", func(t *testing.T) {
		t.Parallel()

		lru := newSizedLRU[string, []byte](90)
		lru.put("first", []byte("1"), 30)
		lru.put("second", []byte("2"), 30)
		lru.put("third", []byte("3"), 30)

		// None was read; the earliest insertion is evicted first.
		lru.put("fourth", []byte("4"), 30)

		_, ok := lru.get("first")
		assert.False(t, ok)
		for _, key := range []string{"second", "third", "fourth"} {
			_, ok := lru.get(key)
			assert.True(t, ok, key)
		}
	})
}

// The concrete scenario: C alone forces both A and B out since no
// single eviction suffices, then D fits exactly in the remaining
// 20 bytes without evicting anything.
func Test_sizedLRU_concrete_eviction_scenario(t *testing.T) {
	t.Parallel()

	lru := newSizedLRU[string, []byte](100)
	lru.put("A", []byte("A"), 10)
	lru.put("B", []byte("B"), 20)

	evicted := lru.put("C", []byte("C"), 80)
	assert.Equal(t, 2, evicted)
	assert.Equal(t, uint(80), lru.size())

	evicted = lru.put("D", []byte("D"), 20)
	assert.Equal(t, 0, evicted)
	assert.Equal(t, uint(100), lru.size())

	_, ok := lru.get("A")
	assert.False(t, ok)
	_, ok = lru.get("B")
	assert.False(t, ok)
	_, ok = lru.get("C")
	assert.True(t, ok)
	_, ok = lru.get("D")
	assert.True(t, ok)
}

func Test_sizedLRU_single_oversized_entry(t *testing.T) {
	t.Parallel()

	lru := newSizedLRU[string, []byte](50)
	lru.put("small", []byte("s"), 30)

	// A single entry bigger than the whole budget is still stored,
	// transiently exceeding the budget for that one entry only.
	lru.put("huge", []byte("h"), 80)
	assert.Equal(t, uint(80), lru.size())
	assert.Equal(t, 1, lru.len())

	_, ok := lru.get("huge")
	assert.True(t, ok)

	// The next insertion evicts the oversized entry to fit again.
	lru.put("tiny", []byte("t"), 10)
	assert.Equal(t, uint(10), lru.size())
	_, ok = lru.get("huge")
	assert.False(t, ok)
}

func Test_sizedLRU_overwrite(t *testing.T) {
	t.Parallel()

	t.Run("updates_size_accounting", func(t *testing.T) {
		t.Parallel()

		lru := newSizedLRU[string, []byte](100)
		lru.put("a", []byte("old"), 30)
		lru.put("a", []byte("new"), 50)

		assert.Equal(t, uint(50), lru.size())
		assert.Equal(t, 1, lru.len())

		value, ok := lru.get("a")
		require.True(t, ok)
		assert.Equal(t, []byte("new"), value)
	})

	t.Run("growth_evicts_older_entries", func(t *testing.T) {
		t.Parallel()

		lru := newSizedLRU[string, []byte](100)
		lru.put("a", []byte("a"), 40)
		lru.put("b", []byte("b"), 40)

		lru.put("a", []byte("bigger"), 70)

		assert.Equal(t, uint(70), lru.size())
		_, ok := lru.get("b")
		assert.False(t, ok)
		_, ok = lru.get("a")
		assert.True(t, ok)
	})

	t.Run("oversized_overwrite_survives_alone", func(t *testing.T) {
		t.Parallel()

		lru := newSizedLRU[string, []byte](100)
		lru.put("a", []byte("a"), 40)
		lru.put("b", []byte("b"), 40)

		lru.put("a", []byte("huge"), 150)

		assert.Equal(t, 1, lru.len())
		assert.Equal(t, uint(150), lru.size())
		_, ok := lru.peek("a")
		assert.True(t, ok)
	})
}

func Test_sizedLRU_reset(t *testing.T) {
	t.Parallel()

	lru := newSizedLRU[string, []byte](100)
	lru.put("a", []byte("a"), 40)
	lru.put("b", []byte("b"), 40)

	lru.reset()

	assert.Equal(t, 0, lru.len())
	assert.Equal(t, uint(0), lru.size())
	_, ok := lru.get("a")
	assert.False(t, ok)

	lru.put("c", []byte("c"), 10)
	assert.Equal(t, uint(10), lru.size())
}
