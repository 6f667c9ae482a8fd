package keys

import (
	"github.com/TheusHen/primkit/primkit/hexcodec"
	"github.com/TheusHen/primkit/primkit/keccak"
)

// AddressSize is the length of an account address.
const AddressSize = 20

// Address is an Ethereum style account address: the last 20 bytes of the
// Keccak-256 digest of x || y.
type Address [AddressSize]byte

// AddressOf returns the address for p.
func AddressOf(p PublicPoint) Address {
	sum := keccak.Sum256(p.b[1:])
	return Address(sum[keccak.Size-AddressSize:])
}

// Hex returns the EIP-55 mixed-case checksum encoding with a 0x prefix.
func (a Address) Hex() string {
	lower := hexcodec.EncodeAppend(nil, a[:])
	sum := keccak.Sum256(lower)
	out := make([]byte, 2, 2+len(lower))
	out[0], out[1] = '0', 'x'
	for i, c := range lower {
		nibble := sum[i/2] >> 4
		if i%2 == 1 {
			nibble = sum[i/2] & 0x0f
		}
		if c >= 'a' && nibble >= 8 {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Hex()
}
