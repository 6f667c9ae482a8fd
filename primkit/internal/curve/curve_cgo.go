//go:build cgo

package curve

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto/secp256k1"
	"github.com/pkg/errors"

	"github.com/TheusHen/primkit/primkit"
)

// Backend names the implementation compiled in.
const Backend = "libsecp256k1"

// ConstantTime reports whether secret scalar operations run in constant time.
const ConstantTime = true

// BaseMult returns k*G.
func BaseMult(k *[ScalarSize]byte) ([PointSize]byte, error) {
	x, y := secp256k1.S256().ScalarBaseMult(k[:])
	if x == nil {
		return [PointSize]byte{}, errScalar
	}
	return encode(x, y)
}

// Mult returns k*P for an uncompressed point P already known to be on the
// curve.
func Mult(k *[ScalarSize]byte, p *[PointSize]byte) ([PointSize]byte, error) {
	px := new(big.Int).SetBytes(p[1:33])
	py := new(big.Int).SetBytes(p[33:])
	x, y := secp256k1.S256().ScalarMult(px, py, k[:])
	if x == nil {
		return [PointSize]byte{}, errScalar
	}
	return encode(x, y)
}

// SignRecoverable signs a 32-byte digest with an RFC 6979 nonce and returns
// r || s || v with s in low form.
func SignRecoverable(k *[ScalarSize]byte, digest []byte) ([SignatureSize]byte, error) {
	sig, err := secp256k1.Sign(digest, k[:])
	switch {
	case errors.Is(err, secp256k1.ErrInvalidKey):
		return [SignatureSize]byte{}, errScalar
	case err != nil:
		return [SignatureSize]byte{}, primkit.Error{
			Err:         primkit.ErrInvalidEncoding,
			Description: errors.Wrap(err, "libsecp256k1 sign").Error(),
		}
	}
	defer clear(sig)
	return [SignatureSize]byte(sig), nil
}
