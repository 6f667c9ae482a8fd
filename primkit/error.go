package primkit

import "errors"

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error. The set is closed:
// every primitive either succeeds or returns exactly one of these kinds.
const (
	// ErrInvalidEncoding is returned when an input is malformed: bad hex,
	// a digest or nonce of the wrong length, or an empty value where a
	// non-empty one is required.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrInvalidKey is returned when a private scalar is not 32 bytes or is
	// outside [1, n-1], or when a symmetric key has the wrong length.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrInvalidPublicKey is returned when a serialized public key has a bad
	// length or prefix, or does not describe a point on the curve.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrInvalidSignature is returned when a signature has the wrong length
	// or, when constructing a Signature value, r or s is out of range.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrAuthenticationFailure is returned when an AEAD tag does not match.
	ErrAuthenticationFailure = ErrorKind("ErrAuthenticationFailure")
)

// Kinds lists every error kind in a stable order.
var Kinds = []ErrorKind{
	ErrInvalidEncoding,
	ErrInvalidKey,
	ErrInvalidPublicKey,
	ErrInvalidSignature,
	ErrAuthenticationFailure,
}

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to a primitive. It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// KindOf returns the ErrorKind carried by err, looking through any wrapping.
func KindOf(err error) (ErrorKind, bool) {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return "", false
}
