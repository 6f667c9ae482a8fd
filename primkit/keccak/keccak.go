// Package keccak computes Keccak-256 digests.
//
// This is the original Keccak submission with its 0x01 domain padding, as used
// by Ethereum. It is not NIST SHA3-256 (padding 0x06): the two produce
// different digests for every input.
package keccak

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Size is the digest length in bytes.
const Size = 32

// New returns a streaming Keccak-256 hash.
func New() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

// Sum256 returns the Keccak-256 digest of the concatenation of data.
func Sum256(data ...[]byte) [Size]byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	var out [Size]byte
	h.Sum(out[:0])
	return out
}
