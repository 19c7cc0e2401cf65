package consensus

import "primecore/compact"

const (
	// MinPrimeBits is the minimum target size in bits; no retargeted
	// difficulty may fall below it.
	MinPrimeBits = 304

	// ConstellationSize is the number of primes a valid candidate must
	// produce.
	ConstellationSize = 6

	// ZeroesBeforeHash is the count of zero bits prepended before the
	// 256-bit block hash when building a candidate base.
	ZeroesBeforeHash = 8

	// RootExponent is the root nth_root is taken to during retarget:
	// 3 fixed bits plus one bit per constellation member.
	RootExponent = 3 + ConstellationSize

	// significantDigits is 1 (leading bit) + ZeroesBeforeHash + 256
	// (hash bits): the bit-length generate_prime_base's un-shifted
	// base always has.
	significantDigits = 1 + ZeroesBeforeHash + 256
)

// MinPrimeCompact is the compact encoding of MinPrimeBits, returned
// whenever retargeting bottoms out (genesis, testnet min-difficulty,
// or a target that would otherwise fall below the floor).
const MinPrimeCompact compact.Bits = 0x02013000

// ConstellationOffsets are the six fixed offsets from a candidate base
// that must all be simultaneously prime.
var ConstellationOffsets = [ConstellationSize]int{0, 4, 6, 10, 12, 16}

// GrandfatheredHash is a specific historical block hash that bypasses
// the constellation check entirely, preserved for backward chain
// validity.
var GrandfatheredHash = [32]byte{
	0x26, 0xd0, 0x46, 0x6d, 0x5a, 0x0e, 0xab, 0x0e,
	0xbf, 0x17, 0x1e, 0xac, 0xb9, 0x81, 0x46, 0xb2,
	0x61, 0x43, 0xd1, 0x43, 0x46, 0x35, 0x14, 0xf2,
	0x6b, 0x28, 0xd3, 0xcd, 0xed, 0x81, 0xc1, 0xbb,
}
