package keys

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheusHen/primkit/primkit"
)

const (
	orderHex       = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	orderMinus1Hex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"
	oneHex         = "0000000000000000000000000000000000000000000000000000000000000001"

	generatorCompressed   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	generatorUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

func mustScalar(t *testing.T, s string) PrivateScalar {
	t.Helper()
	k, err := ParsePrivateScalarHex(s)
	require.NoError(t, err)
	return k
}

func TestDeriveGenerator(t *testing.T) {
	p := Derive(mustScalar(t, oneHex))
	c := p.Compressed()
	u := p.Uncompressed()
	assert.Equal(t, generatorCompressed, hex.EncodeToString(c[:]))
	assert.Equal(t, generatorUncompressed, hex.EncodeToString(u[:]))
	assert.Equal(t, generatorCompressed, p.String())
}

func TestDeriveNegatedGenerator(t *testing.T) {
	// (n-1)*G = -G shares x with G and has the opposite (odd) parity.
	p := Derive(mustScalar(t, orderMinus1Hex))
	c := p.Compressed()
	assert.Equal(t, "03"+generatorCompressed[2:], hex.EncodeToString(c[:]))
}

func TestDeriveDeterministic(t *testing.T) {
	sk := mustScalar(t, "4646464646464646464646464646464646464646464646464646464646464646")
	assert.Equal(t, Derive(sk), Derive(sk))
	assert.Equal(t, Derive(sk), sk.PublicPoint())
}

func TestParsePrivateScalarBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"zero", "0000000000000000000000000000000000000000000000000000000000000000", false},
		{"one", oneHex, true},
		{"n-1", orderMinus1Hex, true},
		{"n", orderHex, false},
		{"n+1", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364142", false},
		{"max", "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", false},
		{"short", "01", false},
		{"long", "00" + oneHex, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParsePrivateScalarHex(test.in)
			if test.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, primkit.ErrInvalidKey)
		})
	}
}

func TestParsePrivateScalarBadHex(t *testing.T) {
	_, err := ParsePrivateScalarHex("zz")
	require.ErrorIs(t, err, primkit.ErrInvalidEncoding)
	_, err = ParsePrivateScalarHex("")
	require.ErrorIs(t, err, primkit.ErrInvalidEncoding)
}

func TestParsePublicPointRoundTrip(t *testing.T) {
	sk := mustScalar(t, "4646464646464646464646464646464646464646464646464646464646464646")
	p := Derive(sk)

	c := p.Compressed()
	fromCompressed, err := ParsePublicPoint(c[:])
	require.NoError(t, err)
	assert.Equal(t, p, fromCompressed)

	u := p.Uncompressed()
	fromUncompressed, err := ParsePublicPoint(u[:])
	require.NoError(t, err)
	assert.Equal(t, p, fromUncompressed)

	assert.Equal(t, p, Derive(sk))
	assert.Equal(t, p.ECPublicKey().SerializeUncompressed(), u[:])
	assert.False(t, p.IsZero())
	assert.True(t, PublicPoint{}.IsZero())
}

func TestParsePublicPointRejects(t *testing.T) {
	g, _ := hex.DecodeString(generatorUncompressed)

	offCurve := append([]byte(nil), g...)
	offCurve[64] ^= 0x01

	hybrid := append([]byte(nil), g...)
	hybrid[0] = 0x06

	badPrefix, _ := hex.DecodeString("05" + generatorCompressed[2:])

	// x = 5 has no square root for x^3 + 7 (mod p).
	nonResidue, _ := hex.DecodeString("020000000000000000000000000000000000000000000000000000000000000005")

	// x = p is not a field element.
	xTooBig, _ := hex.DecodeString("02fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"x only", g[1:33]},
		{"short", g[:64]},
		{"off curve", offCurve},
		{"hybrid", hybrid},
		{"bad compressed prefix", badPrefix},
		{"non residue", nonResidue},
		{"x too big", xTooBig},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParsePublicPoint(test.in)
			require.ErrorIs(t, err, primkit.ErrInvalidPublicKey)
		})
	}
}

func TestPublicPointCheck(t *testing.T) {
	require.NoError(t, Derive(mustScalar(t, oneHex)).Check())

	var offCurve PublicPoint
	offCurve.b[0] = uncompressedPointTag
	offCurve.b[32] = 1
	offCurve.b[64] = 1
	require.False(t, offCurve.ECPublicKey().IsOnCurve())
	require.ErrorIs(t, offCurve.Check(), primkit.ErrInvalidPublicKey)

	_, err := ParsePublicPoint(offCurve.b[:])
	require.ErrorIs(t, err, primkit.ErrInvalidPublicKey)

	require.ErrorIs(t, PublicPoint{}.Check(), primkit.ErrInvalidPublicKey)
}

func TestMult(t *testing.T) {
	two := mustScalar(t, "0000000000000000000000000000000000000000000000000000000000000002")
	g := Derive(mustScalar(t, oneHex))

	got, err := Mult(two, g)
	require.NoError(t, err)
	assert.Equal(t, Derive(two), got)

	var offCurve PublicPoint
	offCurve.b[0] = uncompressedPointTag
	offCurve.b[32] = 1
	offCurve.b[64] = 1
	_, err = Mult(two, offCurve)
	require.ErrorIs(t, err, primkit.ErrInvalidPublicKey)

	_, err = Mult(PrivateScalar{}, g)
	require.ErrorIs(t, err, primkit.ErrInvalidKey)
	assert.True(t, Derive(PrivateScalar{}).IsZero())
}

func TestAddressOf(t *testing.T) {
	tests := []struct {
		sk   string
		want string
	}{
		{oneHex, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"},
		{"0000000000000000000000000000000000000000000000000000000000000002", "0x2B5AD5c4795c026514f8317c7a215E218DcCD6cF"},
	}
	for _, test := range tests {
		a := AddressOf(Derive(mustScalar(t, test.sk)))
		assert.Equal(t, test.want, a.Hex())
		assert.Equal(t, test.want, a.String())
	}
}

func BenchmarkDerive(b *testing.B) {
	sk, _ := ParsePrivateScalarHex("4646464646464646464646464646464646464646464646464646464646464646")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Derive(sk)
	}
}
