package ops

import (
	"github.com/TheusHen/primkit/primkit/aead"
	"github.com/TheusHen/primkit/primkit/ecdsa"
	"github.com/TheusHen/primkit/primkit/hexcodec"
	"github.com/TheusHen/primkit/primkit/keccak"
	"github.com/TheusHen/primkit/primkit/keys"
)

func init() {
	register(Op{
		Name:    "derive-public-key",
		Args:    []string{"private_key"},
		Summary: "Derive the compressed and uncompressed public key of a private scalar",
		Run:     derivePublicKey,
	})
	register(Op{
		Name:    "ecdsa-sign",
		Args:    []string{"message_digest", "private_key"},
		Summary: "Sign a 32-byte digest, printing r||s",
		Run:     ecdsaSign,
	})
	register(Op{
		Name:    "ecdsa-verify",
		Args:    []string{"message_digest", "signature", "public_key"},
		Summary: "Verify an r||s signature over a 32-byte digest",
		Run:     ecdsaVerify,
	})
	register(Op{
		Name:    "keccak256",
		Args:    []string{"data"},
		Summary: "Keccak-256 digest of hex encoded data",
		Run:     keccak256,
	})
	register(Op{
		Name:    "aead-encrypt",
		Args:    []string{"key", "nonce", "plaintext", "associated_data"},
		Summary: "Encrypt and authenticate, printing ciphertext||tag",
		Run:     aeadEncrypt,
	})
	register(Op{
		Name:    "aead-decrypt",
		Args:    []string{"key", "nonce", "ciphertext_with_tag", "associated_data"},
		Summary: "Authenticate and decrypt ciphertext||tag",
		Run:     aeadDecrypt,
	})
}

func publicKeyResult(p keys.PublicPoint) Result {
	c, u := p.Compressed(), p.Uncompressed()
	return Result{Fields: []Field{
		{Key: "uncompressed", Label: "Uncompressed Public Key", Value: hexcodec.Encode(u[:])},
		{Key: "compressed", Label: "Compressed Public Key", Value: hexcodec.Encode(c[:])},
	}}
}

func derivePublicKey(_ Options, args []string) (Result, error) {
	sk, err := keys.ParsePrivateScalarHex(args[0])
	if err != nil {
		return Result{}, argError(err, "private_key")
	}
	defer sk.Zero()
	return publicKeyResult(keys.Derive(sk)), nil
}

func ecdsaSign(_ Options, args []string) (Result, error) {
	digest, err := hexcodec.Decode(args[0])
	if err != nil {
		return Result{}, argError(err, "message_digest")
	}
	sk, err := keys.ParsePrivateScalarHex(args[1])
	if err != nil {
		return Result{}, argError(err, "private_key")
	}
	defer sk.Zero()
	sig, err := ecdsa.Sign(sk, digest)
	if err != nil {
		return Result{}, argError(err, "message_digest")
	}
	return single("signature", sig.String()), nil
}

func ecdsaVerify(opts Options, args []string) (Result, error) {
	digest, err := hexcodec.Decode(args[0])
	if err != nil {
		return Result{}, argError(err, "message_digest")
	}
	sig, err := hexcodec.Decode(args[1])
	if err != nil {
		return Result{}, argError(err, "signature")
	}
	pub, err := keys.ParsePublicPointHex(args[2])
	if err != nil {
		return Result{}, argError(err, "public_key")
	}
	ok, err := ecdsa.Verify(pub, digest, sig, verifyOptions(opts)...)
	if err != nil {
		return Result{}, err
	}
	return single("valid", boolString(ok)), nil
}

func verifyOptions(opts Options) []ecdsa.VerifyOption {
	if opts.strictLowS() {
		return []ecdsa.VerifyOption{ecdsa.WithStrictLowS()}
	}
	return nil
}

func keccak256(_ Options, args []string) (Result, error) {
	data, err := hexcodec.Decode(args[0])
	if err != nil {
		return Result{}, argError(err, "data")
	}
	sum := keccak.Sum256(data)
	return single("digest", hexcodec.Encode(sum[:])), nil
}

type aeadArgs struct {
	cipher     *aead.AEAD
	nonce      []byte
	text       []byte
	associated []byte
}

func parseAEADArgs(opts Options, args []string, textName string) (aeadArgs, error) {
	suite, err := aead.ParseSuite(string(opts.Cipher))
	if err != nil {
		return aeadArgs{}, argError(err, "cipher")
	}
	key, err := hexcodec.Decode(args[0])
	if err != nil {
		return aeadArgs{}, argError(err, "key")
	}
	defer clear(key)
	var a aeadArgs
	if a.nonce, err = hexcodec.Decode(args[1]); err != nil {
		return aeadArgs{}, argError(err, "nonce")
	}
	if a.text, err = hexcodec.Decode(args[2]); err != nil {
		return aeadArgs{}, argError(err, textName)
	}
	if a.associated, err = hexcodec.Decode(args[3]); err != nil {
		return aeadArgs{}, argError(err, "associated_data")
	}
	if a.cipher, err = aead.New(suite, key); err != nil {
		return aeadArgs{}, argError(err, "key")
	}
	return a, nil
}

func aeadEncrypt(opts Options, args []string) (Result, error) {
	a, err := parseAEADArgs(opts, args, "plaintext")
	if err != nil {
		return Result{}, err
	}
	ct, err := a.cipher.Seal(a.nonce, a.text, a.associated)
	if err != nil {
		return Result{}, argError(err, "nonce")
	}
	return single("ciphertext", hexcodec.Encode(ct)), nil
}

func aeadDecrypt(opts Options, args []string) (Result, error) {
	a, err := parseAEADArgs(opts, args, "ciphertext_with_tag")
	if err != nil {
		return Result{}, err
	}
	pt, err := a.cipher.Open(a.nonce, a.text, a.associated)
	if err != nil {
		return Result{}, err
	}
	return single("plaintext", hexcodec.Encode(pt)), nil
}
