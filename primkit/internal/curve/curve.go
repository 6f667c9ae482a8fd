// Package curve holds the secp256k1 operations that take a secret scalar:
// base point multiplication, variable point multiplication and recoverable
// signing.
//
// With cgo the operations run in libsecp256k1 through go-ethereum's binding,
// whose ecmult_gen, ecmult_const and signing paths do not branch on or index
// memory by secret bits. Without cgo they fall back to the pure Go decred
// implementation, which is variable time; Backend reports which one is built.
//
// Callers validate their inputs. The functions here only reject the zero
// scalar and points that fail to multiply.
package curve

import (
	"math/big"

	"github.com/TheusHen/primkit/primkit"
)

const (
	// ScalarSize is the length of a big-endian scalar.
	ScalarSize = 32
	// PointSize is the length of an uncompressed point 0x04 || x || y.
	PointSize = 65
	// SignatureSize is the length of r || s || v.
	SignatureSize = 65
)

var (
	errScalar = primkit.MakeError(primkit.ErrInvalidKey, "private scalar is zero or not below the group order")
	errPoint  = primkit.MakeError(primkit.ErrInvalidPublicKey, "point multiplication failed")
)

// encode writes x and y as 0x04 || x || y. A nil coordinate is the point at
// infinity, which has no encoding.
func encode(x, y *big.Int) ([PointSize]byte, error) {
	var out [PointSize]byte
	if x == nil || y == nil || (x.Sign() == 0 && y.Sign() == 0) {
		return out, errPoint
	}
	out[0] = 0x04
	x.FillBytes(out[1:33])
	y.FillBytes(out[33:])
	return out, nil
}
