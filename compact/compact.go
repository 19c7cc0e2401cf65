// Package compact implements the Bitcoin-derived 32-bit "compact"
// encoding of a non-negative arbitrary-precision integer, plus the
// integer nth-root used by the consensus retarget algorithm.
package compact

import (
	"math/big"

	"primecore/perrors"
)

// Bits is a 32-bit compact-encoded non-negative integer: byte 0 (MSB)
// is an unsigned exponent, bytes 1..3 a big-endian 24-bit mantissa.
// Bit 0x00800000 of the mantissa is a sign flag, always clear for
// consensus values.
type Bits uint32

const signBit uint32 = 0x00800000

// maxCompactValue is 0x007fffff << (8*(255-3)), the largest integer a
// canonical compact encoding can represent without saturating.
var maxCompactValue = new(big.Int).Lsh(big.NewInt(0x007fffff), 8*(255-3))

// saturated is the compact encoding returned when Encode's input
// exceeds maxCompactValue.
const saturated Bits = 0xff7fffff

// Decode returns the integer a compact value represents. It is total:
// malformed exponents and a set sign bit are accepted, matching the
// reference decoder's behavior on-chain. Use DecodeStrict at
// wire boundaries that must reject a set sign bit.
func Decode(c Bits) *big.Int {
	mantissa := uint32(c) & 0x007fffff
	exponent := uint(uint32(c) >> 24)

	if mantissa == 0 {
		return big.NewInt(0)
	}

	result := big.NewInt(int64(mantissa))
	if exponent <= 3 {
		result.Rsh(result, 8*(3-exponent))
	} else {
		result.Lsh(result, 8*(exponent-3))
	}
	return result
}

// DecodeStrict behaves like Decode but rejects a set sign bit, per
// spec.md §3 ("the sign bit must be rejected as InvalidCompact").
func DecodeStrict(c Bits) (*big.Int, error) {
	if uint32(c)&signBit != 0 {
		return nil, perrors.NewInvalidCompact("compact value 0x%08x has sign bit set", uint32(c))
	}
	return Decode(c), nil
}

// Encode returns the canonical compact encoding of n: the smallest
// exponent such that the mantissa fits in 23 bits, no leading zero
// byte. Inputs exceeding the representable range saturate to
// 0xff7fffff rather than overflowing the exponent byte.
func Encode(n *big.Int) Bits {
	if n.Sign() <= 0 {
		return 0
	}
	if n.Cmp(maxCompactValue) > 0 {
		return saturated
	}

	exponent := len(n.Bytes())

	var mantissaBig *big.Int
	if exponent <= 3 {
		mantissaBig = new(big.Int).Lsh(n, uint(8*(3-exponent)))
	} else {
		mantissaBig = new(big.Int).Rsh(n, uint(8*(exponent-3)))
	}
	mantissa := uint32(mantissaBig.Uint64())

	// Mantissa already has the sign bit set: it's too large for 23
	// bits, so shift right a byte and bump the exponent.
	if mantissa&signBit != 0 {
		mantissa >>= 8
		exponent++
	}

	return Bits(uint32(exponent)<<24 | mantissa)
}
