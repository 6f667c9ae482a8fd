package keys

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/hexcodec"
	"github.com/TheusHen/primkit/primkit/internal/curve"
)

// PrivateScalarSize is the length of a serialized private scalar.
const PrivateScalarSize = 32

// PrivateScalar is a secp256k1 private key.
type PrivateScalar [PrivateScalarSize]byte

// ParsePrivateScalar validates b as a 32-byte big-endian scalar in [1, n-1].
func ParsePrivateScalar(b []byte) (PrivateScalar, error) {
	if len(b) != PrivateScalarSize {
		return PrivateScalar{}, primkit.MakeError(primkit.ErrInvalidKey,
			fmt.Sprintf("private scalar must be %d bytes, got %d", PrivateScalarSize, len(b)))
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	zero := s.IsZero()
	s.Zero()
	if overflow {
		return PrivateScalar{}, primkit.MakeError(primkit.ErrInvalidKey,
			"private scalar is not less than the group order")
	}
	if zero {
		return PrivateScalar{}, primkit.MakeError(primkit.ErrInvalidKey, "private scalar is zero")
	}
	var k PrivateScalar
	copy(k[:], b)
	return k, nil
}

// ParsePrivateScalarHex decodes and validates a hex encoded private scalar.
func ParsePrivateScalarHex(s string) (PrivateScalar, error) {
	b, err := hexcodec.DecodeNonEmpty(s)
	if err != nil {
		return PrivateScalar{}, err
	}
	defer clear(b)
	return ParsePrivateScalar(b)
}

// PublicPoint returns the public key for k.
func (k *PrivateScalar) PublicPoint() PublicPoint {
	return Derive(*k)
}

// Zero overwrites the scalar.
func (k *PrivateScalar) Zero() {
	clear(k[:])
}

// Derive computes the public point sk*G. The result only depends on sk. The
// zero PrivateScalar has no public point and yields the zero PublicPoint.
func Derive(sk PrivateScalar) PublicPoint {
	defer clear(sk[:])
	b, err := curve.BaseMult((*[PrivateScalarSize]byte)(&sk))
	if err != nil {
		return PublicPoint{}
	}
	return PublicPoint{b: b}
}

// Mult returns sk*p. p must pass Check.
func Mult(sk PrivateScalar, p PublicPoint) (PublicPoint, error) {
	defer clear(sk[:])
	if err := p.Check(); err != nil {
		return PublicPoint{}, err
	}
	b, err := curve.Mult((*[PrivateScalarSize]byte)(&sk), &p.b)
	if err != nil {
		return PublicPoint{}, err
	}
	return PublicPoint{b: b}, nil
}
