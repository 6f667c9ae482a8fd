// Package aead implements authenticated encryption with associated data over
// caller supplied 12-byte nonces. AES-256-GCM is the default suite and
// ChaCha20-Poly1305 is available as an alternative with identical sizes.
//
// Open recomputes the tag and compares it in constant time before releasing
// any plaintext. A failed check returns ErrAuthenticationFailure and a nil
// plaintext. Reusing a nonce under the same key is a protocol error on the
// caller's side and is not detected here.
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/TheusHen/primkit/primkit"
)

const (
	// KeySize is the symmetric key length for every suite.
	KeySize = 32
	// NonceSize is the nonce length for every suite.
	NonceSize = 12
	// TagSize is the authentication tag appended to each ciphertext.
	TagSize = 16
)

// Suite selects the AEAD construction.
type Suite string

const (
	AES256GCM        Suite = "aes-256-gcm"
	ChaCha20Poly1305 Suite = "chacha20-poly1305"
)

// DefaultSuite is used by the package level Seal and Open.
const DefaultSuite = AES256GCM

// Suites lists the supported suites.
var Suites = []Suite{AES256GCM, ChaCha20Poly1305}

// ParseSuite validates a suite name.
func ParseSuite(name string) (Suite, error) {
	for _, s := range Suites {
		if string(s) == name {
			return s, nil
		}
	}
	return "", primkit.MakeError(primkit.ErrInvalidEncoding,
		fmt.Sprintf("unknown AEAD cipher %q", name))
}

// AEAD is a keyed cipher for one suite. It is safe for concurrent use.
type AEAD struct {
	suite Suite
	aead  cipher.AEAD
}

// New keys suite with a 32-byte key.
func New(suite Suite, key []byte) (*AEAD, error) {
	if len(key) != KeySize {
		return nil, primkit.MakeError(primkit.ErrInvalidKey,
			fmt.Sprintf("AEAD key must be %d bytes, got %d", KeySize, len(key)))
	}
	var (
		c   cipher.AEAD
		err error
	)
	switch suite {
	case AES256GCM:
		var block cipher.Block
		block, err = aes.NewCipher(key)
		if err == nil {
			c, err = cipher.NewGCM(block)
		}
	case ChaCha20Poly1305:
		c, err = chacha20poly1305.New(key)
	default:
		return nil, primkit.MakeError(primkit.ErrInvalidEncoding,
			fmt.Sprintf("unknown AEAD cipher %q", string(suite)))
	}
	if err != nil {
		return nil, primkit.Error{Err: primkit.ErrInvalidKey, Description: err.Error()}
	}
	return &AEAD{suite: suite, aead: c}, nil
}

// Suite returns the construction a was created with.
func (a *AEAD) Suite() Suite { return a.suite }

// Overhead returns the authentication tag overhead.
func (a *AEAD) Overhead() int { return TagSize }

// Seal encrypts and authenticates plaintext and binds ad.
// Returns: ciphertext || tag (16 bytes)
func (a *AEAD) Seal(nonce, plaintext, ad []byte) ([]byte, error) {
	if err := checkNonce(nonce); err != nil {
		return nil, err
	}
	return a.aead.Seal(nil, nonce, plaintext, ad), nil
}

// Open verifies and decrypts ciphertext || tag.
func (a *AEAD) Open(nonce, ciphertext, ad []byte) ([]byte, error) {
	if err := checkNonce(nonce); err != nil {
		return nil, err
	}
	if len(ciphertext) < TagSize {
		return nil, primkit.MakeError(primkit.ErrAuthenticationFailure,
			fmt.Sprintf("ciphertext shorter than the %d-byte tag", TagSize))
	}
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		return nil, primkit.MakeError(primkit.ErrAuthenticationFailure, "message authentication failed")
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// Seal encrypts plaintext with AES-256-GCM.
func Seal(key, nonce, plaintext, ad []byte) ([]byte, error) {
	a, err := New(DefaultSuite, key)
	if err != nil {
		return nil, err
	}
	return a.Seal(nonce, plaintext, ad)
}

// Open decrypts ciphertext || tag produced by Seal.
func Open(key, nonce, ciphertext, ad []byte) ([]byte, error) {
	a, err := New(DefaultSuite, key)
	if err != nil {
		return nil, err
	}
	return a.Open(nonce, ciphertext, ad)
}

func checkNonce(nonce []byte) error {
	if len(nonce) != NonceSize {
		return primkit.MakeError(primkit.ErrInvalidEncoding,
			fmt.Sprintf("nonce must be %d bytes, got %d", NonceSize, len(nonce)))
	}
	return nil
}
