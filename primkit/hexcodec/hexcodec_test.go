package hexcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheusHen/primkit/primkit"
)

func TestEncodeLowerCaseNoSeparators(t *testing.T) {
	assert.Equal(t, "00ab10ff", Encode([]byte{0x00, 0xab, 0x10, 0xff}))
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "prefix:0102", string(EncodeAppend([]byte("prefix:"), []byte{1, 2})))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"lower", "deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"upper", "DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"mixed", "DeAdBeEf", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"digits", "0123456789", []byte{0x01, 0x23, 0x45, 0x67, 0x89}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Decode(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"a", "abc", "zz", "0x00", "00 11", "g0", "0-"} {
		_, err := Decode(in)
		require.ErrorIs(t, err, primkit.ErrInvalidEncoding, "input %q", in)
	}
}

func TestDecodeNonEmpty(t *testing.T) {
	_, err := DecodeNonEmpty("")
	require.ErrorIs(t, err, primkit.ErrInvalidEncoding)

	got, err := DecodeNonEmpty("01")
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)
}

func TestRoundTrip(t *testing.T) {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	got, err := Decode(Encode(b))
	require.NoError(t, err)
	if !bytes.Equal(got, b) {
		t.Fatalf("round trip mismatch")
	}
}
