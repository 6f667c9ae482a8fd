// Package hexcodec converts between hex strings and byte slices with strict
// validation. Encoding is always lower case with no separators or prefix.
package hexcodec

import (
	"fmt"

	"github.com/templexxx/xhex"

	"github.com/TheusHen/primkit/primkit"
)

// Encode returns the lower case hex encoding of b.
func Encode(b []byte) string {
	return string(EncodeAppend(nil, b))
}

// EncodeAppend appends the hex encoding of src to dst.
func EncodeAppend(dst, src []byte) []byte {
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// Decode decodes a hex string. Upper and lower case digits are accepted. The
// empty string decodes to an empty, non-nil slice.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, primkit.MakeError(primkit.ErrInvalidEncoding,
			fmt.Sprintf("odd length hex string (%d characters)", len(s)))
	}
	src := []byte(s)
	for i, c := range src {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
			src[i] = c + ('a' - 'A')
		default:
			return nil, primkit.MakeError(primkit.ErrInvalidEncoding,
				fmt.Sprintf("invalid hex character %q at offset %d", c, i))
		}
	}
	dst := make([]byte, len(src)/2)
	if len(src) == 0 {
		return dst, nil
	}
	if err := xhex.Decode(dst, src); err != nil {
		return nil, primkit.Error{Err: primkit.ErrInvalidEncoding, Description: err.Error()}
	}
	return dst, nil
}

// DecodeNonEmpty is Decode for values that must carry at least one byte.
func DecodeNonEmpty(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, primkit.MakeError(primkit.ErrInvalidEncoding, "empty hex string")
	}
	return Decode(s)
}
