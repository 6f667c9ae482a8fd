// Package primkit provides the cryptographic primitives used by blockchain
// style signing workflows.
//
// Design goals:
//   - Bit-exact interoperability: canonical secp256k1 key, point and r||s
//     signature encodings, Keccak-256 with its original 0x01 padding
//   - Deterministic signing via RFC 6979, low-s output
//   - Authenticated encryption that fails closed (AES-256-GCM by default)
//   - Stateless value types that are safe for concurrent use
//   - A closed error taxonomy shared by every sub package
//
// The primitives live in sub packages (hexcodec, keys, ecdsa, keccak, aead,
// ecdh, kdf). ops names each of them for the command line in cli and the
// JSON lines runner in batch; selftest replays known answers against them.
// This package only holds the error kinds they return.
package primkit
