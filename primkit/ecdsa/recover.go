package ecdsa

import (
	"fmt"

	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/keys"
)

// compactMagic is the offset added to the recovery id in the compact
// encoding used by the curve library.
const compactMagic = 27

// RecoverPublicKey returns the public key that produced sig (r || s || v)
// over digest. v may be given raw (0-3) or with the legacy 27 offset (27-30).
func RecoverPublicKey(digest, sig []byte) (keys.PublicPoint, error) {
	if err := checkDigest(digest); err != nil {
		return keys.PublicPoint{}, err
	}
	if len(sig) != RecoverableSignatureSize {
		return keys.PublicPoint{}, primkit.MakeError(primkit.ErrInvalidSignature,
			fmt.Sprintf("recoverable signature must be %d bytes, got %d",
				RecoverableSignatureSize, len(sig)))
	}
	v := sig[SignatureSize]
	if v >= compactMagic {
		v -= compactMagic
	}
	if v > 3 {
		return keys.PublicPoint{}, primkit.MakeError(primkit.ErrInvalidSignature,
			fmt.Sprintf("invalid recovery id %d", sig[SignatureSize]))
	}

	compact := make([]byte, RecoverableSignatureSize)
	compact[0] = compactMagic + v
	copy(compact[1:], sig[:SignatureSize])

	pub, _, err := dcrecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return keys.PublicPoint{}, primkit.Error{Err: primkit.ErrInvalidSignature, Description: err.Error()}
	}
	return keys.ParsePublicPoint(pub.SerializeUncompressed())
}
