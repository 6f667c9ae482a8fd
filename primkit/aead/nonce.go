package aead

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync/atomic"
)

// NonceSequence hands out unique nonces for one key: a fixed 32-bit prefix
// followed by a 64-bit big-endian counter. That allows 2^64 messages per key
// with no nonce reuse, provided each key has exactly one sequence.
type NonceSequence struct {
	prefix [4]byte
	seq    atomic.Uint64
}

// NewNonceSequence returns a sequence with a random prefix.
func NewNonceSequence() (*NonceSequence, error) {
	var n NonceSequence
	if _, err := io.ReadFull(rand.Reader, n.prefix[:]); err != nil {
		return nil, err
	}
	return &n, nil
}

// NewNonceSequenceWithPrefix returns a sequence with a caller chosen prefix,
// for example a per-direction label.
func NewNonceSequenceWithPrefix(prefix [4]byte) *NonceSequence {
	return &NonceSequence{prefix: prefix}
}

// Next returns the next nonce. The first nonce has counter 1.
func (n *NonceSequence) Next() []byte {
	seq := n.seq.Add(1)
	nonce := make([]byte, NonceSize)
	copy(nonce[:4], n.prefix[:])
	binary.BigEndian.PutUint64(nonce[4:], seq)
	return nonce
}

// Count returns how many nonces have been issued.
func (n *NonceSequence) Count() uint64 { return n.seq.Load() }
