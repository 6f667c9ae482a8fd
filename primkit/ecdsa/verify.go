package ecdsa

import (
	"fmt"

	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/keys"
)

type verifyConfig struct {
	strictLowS bool
}

// VerifyOption adjusts signature verification.
type VerifyOption func(*verifyConfig)

// WithStrictLowS makes Verify return false for signatures whose s is above
// half the group order.
func WithStrictLowS() VerifyOption {
	return func(c *verifyConfig) { c.strictLowS = true }
}

// Verify checks sig (r || s) over digest against pub.
//
// A digest that is not 32 bytes or a signature that is not 64 bytes is
// malformed input and returns an error. A well-formed signature whose r or s
// is zero or not below the group order simply does not verify.
func Verify(pub keys.PublicPoint, digest, sig []byte, opts ...VerifyOption) (bool, error) {
	var cfg verifyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkDigest(digest); err != nil {
		return false, err
	}
	if len(sig) != SignatureSize {
		return false, primkit.MakeError(primkit.ErrInvalidSignature,
			fmt.Sprintf("signature must be %d bytes, got %d", SignatureSize, len(sig)))
	}
	if err := pub.Check(); err != nil {
		return false, err
	}
	r, s, ok := scalars(sig)
	if !ok {
		return false, nil
	}
	if cfg.strictLowS && s.IsOverHalfOrder() {
		return false, nil
	}
	return dcrecdsa.NewSignature(&r, &s).Verify(digest, pub.ECPublicKey()), nil
}
