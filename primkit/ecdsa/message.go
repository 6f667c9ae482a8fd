package ecdsa

import (
	"crypto/sha256"
	"fmt"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/keccak"
	"github.com/TheusHen/primkit/primkit/keys"
)

// HashFunc names the digest applied by SignMessage and VerifyMessage.
type HashFunc string

const (
	HashSHA256    HashFunc = "sha256"
	HashKeccak256 HashFunc = "keccak256"
)

// ParseHashFunc validates a hash function name.
func ParseHashFunc(name string) (HashFunc, error) {
	switch h := HashFunc(name); h {
	case HashSHA256, HashKeccak256:
		return h, nil
	}
	return "", primkit.MakeError(primkit.ErrInvalidEncoding,
		fmt.Sprintf("unknown hash function %q", name))
}

// Digest hashes msg.
func (h HashFunc) Digest(msg []byte) ([]byte, error) {
	switch h {
	case HashSHA256:
		sum := sha256.Sum256(msg)
		return sum[:], nil
	case HashKeccak256:
		sum := keccak.Sum256(msg)
		return sum[:], nil
	}
	return nil, primkit.MakeError(primkit.ErrInvalidEncoding,
		fmt.Sprintf("unknown hash function %q", string(h)))
}

// SignMessage hashes msg with h and signs the digest.
func SignMessage(sk keys.PrivateScalar, msg []byte, h HashFunc) (Signature, error) {
	digest, err := h.Digest(msg)
	if err != nil {
		return Signature{}, err
	}
	return Sign(sk, digest)
}

// VerifyMessage hashes msg with h and verifies sig over the digest.
func VerifyMessage(pub keys.PublicPoint, msg, sig []byte, h HashFunc, opts ...VerifyOption) (bool, error) {
	digest, err := h.Digest(msg)
	if err != nil {
		return false, err
	}
	return Verify(pub, digest, sig, opts...)
}
