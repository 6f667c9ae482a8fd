// Package ecdsa produces and verifies ECDSA signatures over secp256k1.
//
// Signatures are encoded as raw r || s (64 bytes, big-endian, no DER). The
// signer never hashes: it takes a 32-byte digest computed by the caller.
// Nonces are derived deterministically from the private scalar and the digest
// as described in RFC 6979, so signing needs no randomness and identical
// inputs always give identical signatures.
//
// Signatures are always produced in low-s form (s <= n/2). Verify accepts
// either form unless WithStrictLowS is given.
//
// Recoverable signatures (r || s || v) and public key recovery are provided
// for account based chains, and SignMessage/VerifyMessage hash a message
// before signing it.
package ecdsa
