package curve

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheusHen/primkit/primkit"
)

const (
	generator = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	twoG = "04c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5" +
		"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"

	key46 = "4646464646464646464646464646464646464646464646464646464646464646"
	// x coordinate of key46 * 2G, odd y.
	shared46x = "a88e33b95606c74dbe777cee32688d21f915dc7a4b2bef1440d3ecb575561623"

	eip155Digest = "daf5a779ae972f972197303d7b574746c7ef83eadac0f2791ad23db92e4c8e53"
	eip155Sig    = "28ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276" +
		"67cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d83" + "00"
)

func scalar(t *testing.T, s string) *[ScalarSize]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return (*[ScalarSize]byte)(b)
}

func point(t *testing.T, s string) *[PointSize]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return (*[PointSize]byte)(b)
}

func TestBaseMult(t *testing.T) {
	one := new([ScalarSize]byte)
	one[31] = 1
	got, err := BaseMult(one)
	require.NoError(t, err)
	assert.Equal(t, generator, hex.EncodeToString(got[:]))

	two := new([ScalarSize]byte)
	two[31] = 2
	got, err = BaseMult(two)
	require.NoError(t, err)
	assert.Equal(t, twoG, hex.EncodeToString(got[:]))
}

func TestMult(t *testing.T) {
	got, err := Mult(scalar(t, key46), point(t, twoG))
	require.NoError(t, err)
	assert.Equal(t, shared46x, hex.EncodeToString(got[1:33]))
	assert.Equal(t, byte(1), got[64]&1)

	one := new([ScalarSize]byte)
	one[31] = 1
	got, err = Mult(one, point(t, generator))
	require.NoError(t, err)
	assert.Equal(t, generator, hex.EncodeToString(got[:]))
}

func TestSignRecoverable(t *testing.T) {
	digest, err := hex.DecodeString(eip155Digest)
	require.NoError(t, err)
	sig, err := SignRecoverable(scalar(t, key46), digest)
	require.NoError(t, err)
	assert.Equal(t, eip155Sig, hex.EncodeToString(sig[:]))
}

func TestZeroScalar(t *testing.T) {
	zero := new([ScalarSize]byte)

	_, err := BaseMult(zero)
	require.ErrorIs(t, err, primkit.ErrInvalidKey)

	_, err = Mult(zero, point(t, generator))
	require.ErrorIs(t, err, primkit.ErrInvalidKey)

	_, err = SignRecoverable(zero, make([]byte, 32))
	require.ErrorIs(t, err, primkit.ErrInvalidKey)
}

func TestBackend(t *testing.T) {
	assert.NotEmpty(t, Backend)
	if Backend == "libsecp256k1" {
		assert.True(t, ConstantTime)
	}
}
