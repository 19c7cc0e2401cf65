package consensus

import (
	"math/big"

	"primecore/compact"
)

// GeneratePrimeBase derives the integer a candidate's offset is added
// to, plus the number of low bits that offset may occupy. The base
// packs a leading 1 bit, ZeroesBeforeHash zero bits, and the 256 hash
// bits consumed LSB-first, then left-shifts by however many bits the
// decoded difficulty calls for beyond that fixed prefix.
func GeneratePrimeBase(hash [32]byte, bits compact.Bits) (base *big.Int, trailingZeros uint32) {
	base = big.NewInt(1)
	base.Lsh(base, ZeroesBeforeHash)

	// hash.GetLow32() & 1 walks the hash LSB-first: bit 0 of byte 0 is
	// consumed before bit 0 of byte 1, matching the reference's
	// little-endian uint256 right-shift loop.
	h := new(big.Int).SetBytes(reverse(hash))
	for i := 0; i < 256; i++ {
		bit := new(big.Int).And(h, big.NewInt(1))
		base.Lsh(base, 1)
		base.Or(base, bit)
		h.Rsh(h, 1)
	}

	diff := compact.Decode(bits)
	maxU32 := new(big.Int).SetUint64(1<<32 - 1)
	if diff.Cmp(maxU32) > 0 {
		diff = maxU32
	}

	if diff.Cmp(big.NewInt(significantDigits)) < 0 {
		return base, 0
	}

	tz := new(big.Int).Sub(diff, big.NewInt(significantDigits))
	base.Lsh(base, uint(tz.Uint64()))
	return base, uint32(tz.Uint64())
}

// reverse returns a copy of hash with byte order flipped, so
// SetBytes (big-endian) interprets it the way the reference's
// little-endian uint256 does when read LSB-first.
func reverse(hash [32]byte) []byte {
	out := make([]byte, len(hash))
	for i, b := range hash {
		out[len(hash)-1-i] = b
	}
	return out
}
