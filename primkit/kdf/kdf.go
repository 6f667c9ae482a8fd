// Package kdf derives symmetric keys from shared secrets with HKDF-SHA256
// (RFC 5869).
package kdf

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/aead"
	"github.com/TheusHen/primkit/primkit/keys"
)

// MaxLength is the most output HKDF-SHA256 can produce.
const MaxLength = 255 * sha256.Size

const sessionLabel = "primkit-session-keys"

// DeriveKey derives a key of the specified length using HKDF-SHA256.
// salt can be nil (uses zero salt), info provides context binding.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if length < 1 || length > MaxLength {
		return nil, primkit.MakeError(primkit.ErrInvalidEncoding,
			fmt.Sprintf("HKDF output length must be in [1, %d], got %d", MaxLength, length))
	}
	hk := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(hk, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveAEADKey derives a key sized for aead.Seal.
func DeriveAEADKey(secret, salt, info []byte) ([]byte, error) {
	return DeriveKey(secret, salt, info, aead.KeySize)
}

// DeriveSessionKeys derives one AEAD key per direction from an ECDH shared
// secret. Both public keys are bound into the info string so the keys belong
// to this pair of peers only.
// Returns: (initiatorKey, responderKey)
func DeriveSessionKeys(shared []byte, initiator, responder keys.PublicPoint) ([]byte, []byte, error) {
	ic, rc := initiator.Compressed(), responder.Compressed()
	info := make([]byte, 0, len(sessionLabel)+2*keys.CompressedSize)
	info = append(info, sessionLabel...)
	info = append(info, ic[:]...)
	info = append(info, rc[:]...)

	keyMaterial, err := DeriveKey(shared, nil, info, 2*aead.KeySize)
	if err != nil {
		return nil, nil, err
	}
	return keyMaterial[:aead.KeySize], keyMaterial[aead.KeySize:], nil
}
