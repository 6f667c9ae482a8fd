// Package selftest runs known-answer checks against every primitive.
package selftest

import (
	"bytes"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/aead"
	"github.com/TheusHen/primkit/primkit/ecdh"
	"github.com/TheusHen/primkit/primkit/ecdsa"
	"github.com/TheusHen/primkit/primkit/hexcodec"
	"github.com/TheusHen/primkit/primkit/keccak"
	"github.com/TheusHen/primkit/primkit/keys"
)

// Check is a single named known-answer test.
type Check struct {
	Name string
	Run  func() error
}

// Checks returns the built-in checks in execution order.
func Checks() []Check {
	return []Check{
		{"hex-codec", checkHexCodec},
		{"keccak256-empty", checkKeccakEmpty},
		{"keccak256-abc", checkKeccakABC},
		{"derive-generator", checkGenerator},
		{"address-scalar-1", checkAddress},
		{"reject-scalar-bounds", checkScalarBounds},
		{"ecdsa-known-answer", checkSignKnownAnswer},
		{"ecdsa-round-trip", checkRoundTrip},
		{"ecdsa-tamper", checkTamper},
		{"ecdsa-recover", checkRecover},
		{"ecdh-agreement", checkECDH},
		{"aes-256-gcm-nist", checkGCM},
		{"aead-tamper", checkAEADTamper},
	}
}

// Run executes checks and returns every failure. report, if not nil, is
// called after each check with its error or nil.
func Run(checks []Check, report func(name string, err error)) error {
	var result *multierror.Error
	for _, c := range checks {
		err := c.Run()
		if report != nil {
			report(c.Name, err)
		}
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", c.Name, err))
		}
	}
	return result.ErrorOrNil()
}

const (
	knownKey    = "4646464646464646464646464646464646464646464646464646464646464646"
	knownDigest = "daf5a779ae972f972197303d7b574746c7ef83eadac0f2791ad23db92e4c8e53"
	knownSig    = "28ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276" +
		"67cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d83"
)

func mustHex(s string) []byte {
	b, err := hexcodec.Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

func expectHex(what string, got []byte, want string) error {
	if g := hexcodec.Encode(got); g != want {
		return fmt.Errorf("%s: got %s, want %s", what, g, want)
	}
	return nil
}

func knownScalar() keys.PrivateScalar {
	sk, err := keys.ParsePrivateScalarHex(knownKey)
	if err != nil {
		panic(err)
	}
	return sk
}

func checkHexCodec() error {
	b, err := hexcodec.Decode("00ff7F80")
	if err != nil {
		return err
	}
	if !bytes.Equal(b, []byte{0x00, 0xff, 0x7f, 0x80}) {
		return fmt.Errorf("decode: got %x", b)
	}
	if err := expectHex("encode", b, "00ff7f80"); err != nil {
		return err
	}
	for _, bad := range []string{"abc", "0g", "0x00"} {
		if _, err := hexcodec.Decode(bad); !isKind(err, primkit.ErrInvalidEncoding) {
			return fmt.Errorf("decode %q: got %v, want %v", bad, err, primkit.ErrInvalidEncoding)
		}
	}
	return nil
}

func checkKeccakEmpty() error {
	sum := keccak.Sum256(nil)
	return expectHex("keccak256(\"\")", sum[:],
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
}

func checkKeccakABC() error {
	sum := keccak.Sum256([]byte("abc"))
	return expectHex("keccak256(\"abc\")", sum[:],
		"4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
}

func checkGenerator() error {
	sk, err := keys.ParsePrivateScalar(mustHex(
		"0000000000000000000000000000000000000000000000000000000000000001"))
	if err != nil {
		return err
	}
	c := keys.Derive(sk).Compressed()
	return expectHex("1*G", c[:],
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
}

func checkAddress() error {
	g, err := keys.ParsePublicPointHex(
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if err != nil {
		return err
	}
	const want = "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"
	if got := keys.AddressOf(g).Hex(); got != want {
		return fmt.Errorf("address: got %s, want %s", got, want)
	}
	return nil
}

func checkScalarBounds() error {
	for _, s := range []string{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
	} {
		if _, err := keys.ParsePrivateScalarHex(s); !isKind(err, primkit.ErrInvalidKey) {
			return fmt.Errorf("scalar %s: expected ErrInvalidKey, got %v", s, err)
		}
	}
	return nil
}

func checkSignKnownAnswer() error {
	sig, err := ecdsa.Sign(knownScalar(), mustHex(knownDigest))
	if err != nil {
		return err
	}
	return expectHex("signature", sig[:], knownSig)
}

func checkRoundTrip() error {
	sk := knownScalar()
	pub := keys.Derive(sk)
	digest := keccak.Sum256([]byte("primkit self test"))
	a, err := ecdsa.Sign(sk, digest[:])
	if err != nil {
		return err
	}
	b, err := ecdsa.Sign(sk, digest[:])
	if err != nil {
		return err
	}
	if a != b {
		return fmt.Errorf("signing is not deterministic")
	}
	if !a.IsLowS() {
		return fmt.Errorf("signature is not low-s")
	}
	ok, err := ecdsa.Verify(pub, digest[:], a[:])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("signature does not verify")
	}
	return nil
}

func checkTamper() error {
	pub := keys.Derive(knownScalar())
	digest, sig := mustHex(knownDigest), mustHex(knownSig)
	digest[31] ^= 1
	ok, err := ecdsa.Verify(pub, digest, sig)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("signature verifies over a modified digest")
	}
	digest[31] ^= 1
	sig[0] ^= 1
	if ok, err = ecdsa.Verify(pub, digest, sig); err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("modified signature verifies")
	}
	return nil
}

func checkRecover() error {
	sk := knownScalar()
	sig, err := ecdsa.SignRecoverable(sk, mustHex(knownDigest))
	if err != nil {
		return err
	}
	pub, err := ecdsa.RecoverPublicKey(mustHex(knownDigest), sig[:])
	if err != nil {
		return err
	}
	if pub != keys.Derive(sk) {
		return fmt.Errorf("recovered %s, want %s", pub, keys.Derive(sk))
	}
	return nil
}

func checkECDH() error {
	a := knownScalar()
	b, err := keys.ParsePrivateScalarHex(
		"0000000000000000000000000000000000000000000000000000000000000002")
	if err != nil {
		return err
	}
	ab, err := ecdh.SharedPoint(a, b.PublicPoint())
	if err != nil {
		return err
	}
	ba, err := ecdh.SharedPoint(b, a.PublicPoint())
	if err != nil {
		return err
	}
	if ab != ba {
		return fmt.Errorf("shared points differ")
	}
	return expectHex("shared point", ab[:],
		"03a88e33b95606c74dbe777cee32688d21f915dc7a4b2bef1440d3ecb575561623")
}

func checkGCM() error {
	key, nonce := make([]byte, aead.KeySize), make([]byte, aead.NonceSize)
	ct, err := aead.Seal(key, nonce, nil, nil)
	if err != nil {
		return err
	}
	if err := expectHex("test case 13", ct, "530f8afbc74536b9a963b4f1c4cb738b"); err != nil {
		return err
	}
	ct, err = aead.Seal(key, nonce, make([]byte, 16), nil)
	if err != nil {
		return err
	}
	return expectHex("test case 14", ct,
		"cea7403d4d606b6e074ec5d3baf39d18d0d1c8a799996bf0265b98b5d48ab919")
}

func checkAEADTamper() error {
	key := keccak.Sum256([]byte("key"))
	nonce := make([]byte, aead.NonceSize)
	msg := []byte("primkit")
	for _, suite := range aead.Suites {
		a, err := aead.New(suite, key[:])
		if err != nil {
			return err
		}
		ct, err := a.Seal(nonce, msg, []byte("ad"))
		if err != nil {
			return err
		}
		pt, err := a.Open(nonce, ct, []byte("ad"))
		if err != nil {
			return fmt.Errorf("%s: %w", suite, err)
		}
		if !bytes.Equal(pt, msg) {
			return fmt.Errorf("%s: round trip mismatch", suite)
		}
		ct[0] ^= 1
		if pt, err = a.Open(nonce, ct, []byte("ad")); !isKind(err, primkit.ErrAuthenticationFailure) || pt != nil {
			return fmt.Errorf("%s: modified ciphertext was accepted", suite)
		}
	}
	return nil
}

func isKind(err error, kind primkit.ErrorKind) bool {
	k, ok := primkit.KindOf(err)
	return ok && k == kind
}
