// Package keys holds the secp256k1 key value types.
//
// A PrivateScalar is a 32-byte big-endian integer in [1, n-1]. A PublicPoint
// is a validated curve point kept in its 65-byte uncompressed form; it can be
// parsed from and serialized to both the compressed (0x02/0x03 || x) and the
// uncompressed (0x04 || x || y) SEC 1 encodings. Use the Parse functions to
// build either type from untrusted bytes; the zero value of neither is a
// valid key.
package keys
