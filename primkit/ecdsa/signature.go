package ecdsa

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/hexcodec"
)

const (
	// DigestSize is the required message digest length.
	DigestSize = 32
	// SignatureSize is the length of an r || s signature.
	SignatureSize = 64
	// RecoverableSignatureSize is the length of an r || s || v signature.
	RecoverableSignatureSize = 65

	scalarSize = 32
)

// Signature is an ECDSA signature encoded as r || s.
type Signature [SignatureSize]byte

// ParseSignature validates b as r || s with 0 < r < n and 0 < s < n.
func ParseSignature(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, primkit.MakeError(primkit.ErrInvalidSignature,
			fmt.Sprintf("signature must be %d bytes, got %d", SignatureSize, len(b)))
	}
	if _, _, ok := scalars(b); !ok {
		return Signature{}, primkit.MakeError(primkit.ErrInvalidSignature,
			"signature r or s is out of range")
	}
	return Signature(b), nil
}

// ParseSignatureHex decodes and validates a hex encoded r || s signature.
func ParseSignatureHex(s string) (Signature, error) {
	b, err := hexcodec.DecodeNonEmpty(s)
	if err != nil {
		return Signature{}, err
	}
	return ParseSignature(b)
}

// R returns the big-endian r value.
func (sig Signature) R() [scalarSize]byte {
	return [scalarSize]byte(sig[:scalarSize])
}

// S returns the big-endian s value.
func (sig Signature) S() [scalarSize]byte {
	return [scalarSize]byte(sig[scalarSize:])
}

// IsLowS reports whether s <= n/2.
func (sig Signature) IsLowS() bool {
	var s secp256k1.ModNScalar
	s.SetByteSlice(sig[scalarSize:])
	return !s.IsOverHalfOrder()
}

// Normalize returns the low-s form of sig, replacing s with n - s when s is
// above half the group order. Both forms verify against the same key.
func (sig Signature) Normalize() Signature {
	var s secp256k1.ModNScalar
	s.SetByteSlice(sig[scalarSize:])
	if !s.IsOverHalfOrder() {
		return sig
	}
	s.Negate()
	out := sig
	b := s.Bytes()
	copy(out[scalarSize:], b[:])
	return out
}

// String returns the hex encoding of r || s.
func (sig Signature) String() string {
	return hexcodec.Encode(sig[:])
}

// RecoverableSignature is r || s || v where v is the public key recovery id.
type RecoverableSignature [RecoverableSignatureSize]byte

// Signature returns the r || s part.
func (sig RecoverableSignature) Signature() Signature {
	return Signature(sig[:SignatureSize])
}

// RecoveryID returns v.
func (sig RecoverableSignature) RecoveryID() byte {
	return sig[SignatureSize]
}

// String returns the hex encoding of r || s || v.
func (sig RecoverableSignature) String() string {
	return hexcodec.Encode(sig[:])
}

// scalars loads r and s from an r || s encoding and reports whether both are
// in [1, n-1].
func scalars(b []byte) (r, s secp256k1.ModNScalar, ok bool) {
	rOverflow := r.SetByteSlice(b[:scalarSize])
	sOverflow := s.SetByteSlice(b[scalarSize:SignatureSize])
	ok = !rOverflow && !sOverflow && !r.IsZero() && !s.IsZero()
	return r, s, ok
}

func checkDigest(digest []byte) error {
	if len(digest) != DigestSize {
		return primkit.MakeError(primkit.ErrInvalidEncoding,
			fmt.Sprintf("message digest must be %d bytes, got %d", DigestSize, len(digest)))
	}
	return nil
}
