//go:build !cgo

package curve

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Backend names the implementation compiled in.
const Backend = "decred"

// ConstantTime reports whether secret scalar operations run in constant time.
const ConstantTime = false

// compactMagic is the offset decred adds to the recovery id.
const compactMagic = 27

func privateKey(k *[ScalarSize]byte) (*secp256k1.PrivateKey, error) {
	var s secp256k1.ModNScalar
	overflow := s.SetBytes(k)
	if overflow != 0 || s.IsZero() {
		s.Zero()
		return nil, errScalar
	}
	return secp256k1.NewPrivateKey(&s), nil
}

// BaseMult returns k*G.
func BaseMult(k *[ScalarSize]byte) ([PointSize]byte, error) {
	priv, err := privateKey(k)
	if err != nil {
		return [PointSize]byte{}, err
	}
	defer priv.Zero()
	return [PointSize]byte(priv.PubKey().SerializeUncompressed()), nil
}

// Mult returns k*P for an uncompressed point P already known to be on the
// curve.
func Mult(k *[ScalarSize]byte, p *[PointSize]byte) ([PointSize]byte, error) {
	priv, err := privateKey(k)
	if err != nil {
		return [PointSize]byte{}, err
	}
	defer priv.Zero()

	var x, y secp256k1.FieldVal
	x.SetByteSlice(p[1:33])
	y.SetByteSlice(p[33:])

	var point, result secp256k1.JacobianPoint
	secp256k1.NewPublicKey(&x, &y).AsJacobian(&point)
	secp256k1.ScalarMultNonConst(&priv.Key, &point, &result)
	if result.Z.IsZero() {
		return [PointSize]byte{}, errPoint
	}
	result.ToAffine()
	return [PointSize]byte(secp256k1.NewPublicKey(&result.X, &result.Y).SerializeUncompressed()), nil
}

// SignRecoverable signs a 32-byte digest with an RFC 6979 nonce and returns
// r || s || v with s in low form.
func SignRecoverable(k *[ScalarSize]byte, digest []byte) ([SignatureSize]byte, error) {
	priv, err := privateKey(k)
	if err != nil {
		return [SignatureSize]byte{}, err
	}
	defer priv.Zero()

	// [27 + v] || r || s
	compact := ecdsa.SignCompact(priv, digest, false)

	var sig [SignatureSize]byte
	copy(sig[:64], compact[1:])
	sig[64] = compact[0] - compactMagic
	return sig, nil
}
