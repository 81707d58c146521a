// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// HashLength is the expected length of the common.Hash type.
const HashLength = 32

var (
	// ErrNoPrefix is returned when a hex string is missing its 0x prefix.
	ErrNoPrefix = errors.New("hex string has no 0x prefix")
	// ErrHashLength is returned when a byte slice is not 32 bytes long.
	ErrHashLength = errors.New("unexpected hash length")
)

// EmptyHash is the all-zero hash.
var EmptyHash = Hash{}

// Hash is a blake2b-256 digest. Trie nodes are content addressed:
// a node's hash never changes once its encoding is computed.
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewHash(in []byte) (h Hash) {
	copy(h[:], in)
	return h
}

// HashFromHex parses a 0x-prefixed hex string into a Hash.
func HashFromHex(in string) (h Hash, err error) {
	if len(in) < 2 || in[:2] != "0x" {
		return h, fmt.Errorf("%w: %s", ErrNoPrefix, in)
	}

	b, err := hex.DecodeString(in[2:])
	if err != nil {
		return h, fmt.Errorf("decoding hex string: %w", err)
	} else if len(b) != HashLength {
		return h, fmt.Errorf("%w: %d bytes", ErrHashLength, len(b))
	}

	copy(h[:], b)
	return h, nil
}

// ToBytes turns the hash into a byte slice.
func (h Hash) ToBytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is the all-zero hash.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hex string for the hash.
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string.
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[HashLength-nBytes:])
}
