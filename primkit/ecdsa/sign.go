package ecdsa

import (
	"github.com/TheusHen/primkit/primkit/internal/curve"
	"github.com/TheusHen/primkit/primkit/keys"
)

// Sign signs a 32-byte digest with sk using an RFC 6979 nonce. The result is
// in low-s form.
func Sign(sk keys.PrivateScalar, digest []byte) (Signature, error) {
	sig, err := SignRecoverable(sk, digest)
	if err != nil {
		return Signature{}, err
	}
	return sig.Signature(), nil
}

// SignRecoverable is Sign plus the recovery id v in {0, 1, 2, 3}, which lets
// RecoverPublicKey find the signer's key from the digest and signature.
func SignRecoverable(sk keys.PrivateScalar, digest []byte) (RecoverableSignature, error) {
	if err := checkDigest(digest); err != nil {
		return RecoverableSignature{}, err
	}
	defer clear(sk[:])
	sig, err := curve.SignRecoverable((*[keys.PrivateScalarSize]byte)(&sk), digest)
	if err != nil {
		return RecoverableSignature{}, err
	}
	return RecoverableSignature(sig), nil
}
