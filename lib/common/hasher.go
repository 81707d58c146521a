// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Blake2bHash returns the 256-bit blake2b digest of the input data.
func Blake2bHash(in []byte) (Hash, error) {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		return Hash{}, fmt.Errorf("creating blake2b hasher: %w", err)
	}

	_, err = hasher.Write(in)
	if err != nil {
		return Hash{}, fmt.Errorf("writing to blake2b hasher: %w", err)
	}

	return NewHash(hasher.Sum(nil)), nil
}

// MustBlake2bHash returns the 256-bit blake2b digest of the input data.
// It panics if it fails to hash, which only happens on a bad digest size
// and is therefore unreachable with a fixed 256-bit size.
func MustBlake2bHash(in []byte) Hash {
	h, err := Blake2bHash(in)
	if err != nil {
		panic(err)
	}
	return h
}
