// Package ecdh implements elliptic curve Diffie-Hellman over secp256k1.
//
// Both parties compute sk*PK. SharedPoint returns the compressed encoding of
// the resulting point, SharedX only its x coordinate. Neither output should be
// used as a key directly; feed it through kdf.DeriveKey first.
package ecdh

import (
	"github.com/TheusHen/primkit/primkit/keys"
)

// SharedPoint returns the compressed encoding of sk*pub. pub must be on the
// curve; otherwise ErrInvalidPublicKey is returned and sk is never used.
func SharedPoint(sk keys.PrivateScalar, pub keys.PublicPoint) ([keys.CompressedSize]byte, error) {
	shared, err := keys.Mult(sk, pub)
	if err != nil {
		return [keys.CompressedSize]byte{}, err
	}
	return shared.Compressed(), nil
}

// SharedX returns the x coordinate of sk*pub.
func SharedX(sk keys.PrivateScalar, pub keys.PublicPoint) ([32]byte, error) {
	shared, err := keys.Mult(sk, pub)
	if err != nil {
		return [32]byte{}, err
	}
	return shared.X(), nil
}
