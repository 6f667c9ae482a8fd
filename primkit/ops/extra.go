package ops

import (
	"fmt"
	"strconv"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/ecdh"
	"github.com/TheusHen/primkit/primkit/ecdsa"
	"github.com/TheusHen/primkit/primkit/hexcodec"
	"github.com/TheusHen/primkit/primkit/kdf"
	"github.com/TheusHen/primkit/primkit/keys"
)

func init() {
	register(Op{
		Name:    "ecdsa-sign-recoverable",
		Args:    []string{"message_digest", "private_key"},
		Summary: "Sign a 32-byte digest, printing r||s||v",
		Run:     ecdsaSignRecoverable,
	})
	register(Op{
		Name:    "ecdsa-recover",
		Args:    []string{"message_digest", "signature"},
		Summary: "Recover the signer's public key from an r||s||v signature",
		Run:     ecdsaRecover,
	})
	register(Op{
		Name:    "ecdsa-sign-message",
		Args:    []string{"message", "private_key"},
		Summary: "Hash a hex encoded message and sign the digest",
		Run:     ecdsaSignMessage,
	})
	register(Op{
		Name:    "ecdsa-verify-message",
		Args:    []string{"message", "signature", "public_key"},
		Summary: "Hash a hex encoded message and verify the signature over the digest",
		Run:     ecdsaVerifyMessage,
	})
	register(Op{
		Name:    "public-key-to-address",
		Args:    []string{"public_key"},
		Summary: "EIP-55 checksummed address of a public key",
		Run:     publicKeyToAddress,
	})
	register(Op{
		Name:    "ecdh",
		Args:    []string{"private_key", "public_key"},
		Summary: "Compressed ECDH shared point",
		Run:     sharedPoint,
	})
	register(Op{
		Name:    "hkdf-sha256",
		Args:    []string{"secret", "salt", "info", "length"},
		Summary: "HKDF-SHA256 output keying material",
		Run:     hkdfSHA256,
	})
}

func ecdsaSignRecoverable(_ Options, args []string) (Result, error) {
	digest, err := hexcodec.Decode(args[0])
	if err != nil {
		return Result{}, argError(err, "message_digest")
	}
	sk, err := keys.ParsePrivateScalarHex(args[1])
	if err != nil {
		return Result{}, argError(err, "private_key")
	}
	defer sk.Zero()
	sig, err := ecdsa.SignRecoverable(sk, digest)
	if err != nil {
		return Result{}, argError(err, "message_digest")
	}
	return single("signature", sig.String()), nil
}

func ecdsaRecover(_ Options, args []string) (Result, error) {
	digest, err := hexcodec.Decode(args[0])
	if err != nil {
		return Result{}, argError(err, "message_digest")
	}
	sig, err := hexcodec.Decode(args[1])
	if err != nil {
		return Result{}, argError(err, "signature")
	}
	pub, err := ecdsa.RecoverPublicKey(digest, sig)
	if err != nil {
		return Result{}, err
	}
	return publicKeyResult(pub), nil
}

func messageHash(opts Options) (ecdsa.HashFunc, error) {
	h, err := ecdsa.ParseHashFunc(string(opts.Hash))
	if err != nil {
		return "", argError(err, "hash")
	}
	return h, nil
}

func ecdsaSignMessage(opts Options, args []string) (Result, error) {
	h, err := messageHash(opts)
	if err != nil {
		return Result{}, err
	}
	msg, err := hexcodec.Decode(args[0])
	if err != nil {
		return Result{}, argError(err, "message")
	}
	sk, err := keys.ParsePrivateScalarHex(args[1])
	if err != nil {
		return Result{}, argError(err, "private_key")
	}
	defer sk.Zero()
	sig, err := ecdsa.SignMessage(sk, msg, h)
	if err != nil {
		return Result{}, err
	}
	return single("signature", sig.String()), nil
}

func ecdsaVerifyMessage(opts Options, args []string) (Result, error) {
	h, err := messageHash(opts)
	if err != nil {
		return Result{}, err
	}
	msg, err := hexcodec.Decode(args[0])
	if err != nil {
		return Result{}, argError(err, "message")
	}
	sig, err := hexcodec.Decode(args[1])
	if err != nil {
		return Result{}, argError(err, "signature")
	}
	pub, err := keys.ParsePublicPointHex(args[2])
	if err != nil {
		return Result{}, argError(err, "public_key")
	}
	ok, err := ecdsa.VerifyMessage(pub, msg, sig, h, verifyOptions(opts)...)
	if err != nil {
		return Result{}, err
	}
	return single("valid", boolString(ok)), nil
}

func publicKeyToAddress(_ Options, args []string) (Result, error) {
	pub, err := keys.ParsePublicPointHex(args[0])
	if err != nil {
		return Result{}, argError(err, "public_key")
	}
	return single("address", keys.AddressOf(pub).Hex()), nil
}

func sharedPoint(_ Options, args []string) (Result, error) {
	sk, err := keys.ParsePrivateScalarHex(args[0])
	if err != nil {
		return Result{}, argError(err, "private_key")
	}
	defer sk.Zero()
	pub, err := keys.ParsePublicPointHex(args[1])
	if err != nil {
		return Result{}, argError(err, "public_key")
	}
	shared, err := ecdh.SharedPoint(sk, pub)
	if err != nil {
		return Result{}, argError(err, "public_key")
	}
	return single("shared", hexcodec.Encode(shared[:])), nil
}

func hkdfSHA256(_ Options, args []string) (Result, error) {
	secret, err := hexcodec.Decode(args[0])
	if err != nil {
		return Result{}, argError(err, "secret")
	}
	salt, err := hexcodec.Decode(args[1])
	if err != nil {
		return Result{}, argError(err, "salt")
	}
	info, err := hexcodec.Decode(args[2])
	if err != nil {
		return Result{}, argError(err, "info")
	}
	length, err := strconv.Atoi(args[3])
	if err != nil {
		return Result{}, argError(primkit.MakeError(primkit.ErrInvalidEncoding,
			fmt.Sprintf("%q is not a decimal integer", args[3])), "length")
	}
	okm, err := kdf.DeriveKey(secret, salt, info, length)
	if err != nil {
		return Result{}, argError(err, "length")
	}
	return single("okm", hexcodec.Encode(okm)), nil
}
