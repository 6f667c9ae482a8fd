package keys

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/hexcodec"
)

const (
	// CompressedSize is the length of a compressed public key.
	CompressedSize = 33
	// UncompressedSize is the length of an uncompressed public key.
	UncompressedSize = 65

	compressedEvenTag    = 0x02
	compressedOddTag     = 0x03
	uncompressedPointTag = 0x04
)

// PublicPoint is a point on secp256k1, stored as 0x04 || x || y. Only the
// Parse functions, Derive and recovery produce one; the zero value is not a
// valid point.
type PublicPoint struct {
	b [UncompressedSize]byte
}

func pointFromKey(pub *secp256k1.PublicKey) PublicPoint {
	var p PublicPoint
	copy(p.b[:], pub.SerializeUncompressed())
	return p
}

// ParsePublicPoint parses a compressed or uncompressed SEC 1 public key.
// Compressed keys are decompressed by solving y^2 = x^3 + 7 (mod p) and
// picking the root with the encoded parity.
func ParsePublicPoint(b []byte) (PublicPoint, error) {
	switch len(b) {
	case CompressedSize:
		if b[0] != compressedEvenTag && b[0] != compressedOddTag {
			return PublicPoint{}, primkit.MakeError(primkit.ErrInvalidPublicKey,
				fmt.Sprintf("invalid compressed public key prefix 0x%02x", b[0]))
		}
	case UncompressedSize:
		if b[0] != uncompressedPointTag {
			return PublicPoint{}, primkit.MakeError(primkit.ErrInvalidPublicKey,
				fmt.Sprintf("invalid uncompressed public key prefix 0x%02x", b[0]))
		}
	default:
		return PublicPoint{}, primkit.MakeError(primkit.ErrInvalidPublicKey,
			fmt.Sprintf("public key must be %d or %d bytes, got %d",
				CompressedSize, UncompressedSize, len(b)))
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return PublicPoint{}, primkit.Error{Err: primkit.ErrInvalidPublicKey, Description: err.Error()}
	}
	return pointFromKey(pub), nil
}

// ParsePublicPointHex decodes and parses a hex encoded public key.
func ParsePublicPointHex(s string) (PublicPoint, error) {
	b, err := hexcodec.DecodeNonEmpty(s)
	if err != nil {
		return PublicPoint{}, err
	}
	return ParsePublicPoint(b)
}

// Compressed returns the 33-byte encoding: 0x02 for even y, 0x03 for odd y,
// followed by x.
func (p PublicPoint) Compressed() [CompressedSize]byte {
	var out [CompressedSize]byte
	out[0] = compressedEvenTag | p.b[UncompressedSize-1]&1
	copy(out[1:], p.b[1:33])
	return out
}

// Uncompressed returns the 65-byte encoding 0x04 || x || y.
func (p PublicPoint) Uncompressed() [UncompressedSize]byte {
	return p.b
}

// X returns the big-endian x coordinate.
func (p PublicPoint) X() [32]byte {
	return [32]byte(p.b[1:33])
}

// Y returns the big-endian y coordinate.
func (p PublicPoint) Y() [32]byte {
	return [32]byte(p.b[33:])
}

// IsZero reports whether p is the zero value, which is not a valid point.
func (p PublicPoint) IsZero() bool {
	return p == PublicPoint{}
}

// Check returns ErrInvalidPublicKey unless p is a point on the curve.
// Operations that multiply a secret scalar by p call it first.
func (p PublicPoint) Check() error {
	if p.IsZero() {
		return primkit.MakeError(primkit.ErrInvalidPublicKey, "public key is not set")
	}
	if p.b[0] != uncompressedPointTag || !p.ECPublicKey().IsOnCurve() {
		return primkit.MakeError(primkit.ErrInvalidPublicKey, "public key is not on the curve")
	}
	return nil
}

// ECPublicKey converts p into the curve library's public key type.
func (p PublicPoint) ECPublicKey() *secp256k1.PublicKey {
	var x, y secp256k1.FieldVal
	x.SetByteSlice(p.b[1:33])
	y.SetByteSlice(p.b[33:])
	return secp256k1.NewPublicKey(&x, &y)
}

// String returns the compressed encoding in hex.
func (p PublicPoint) String() string {
	c := p.Compressed()
	return hexcodec.Encode(c[:])
}
