package consensus

import (
	"math/big"
	"testing"

	"primecore/compact"
)

func TestGeneratePrimeBaseShortCircuitsBelowSignificantDigits(t *testing.T) {
	var hash [32]byte
	base, tz := GeneratePrimeBase(hash, compact.Encode(big.NewInt(significantDigits-1)))
	if tz != 0 {
		t.Fatalf("tz = %d, want 0 for diff below significant digits", tz)
	}
	if base.Sign() <= 0 {
		t.Fatalf("base should still be the un-shifted hash-derived value")
	}
}

func TestGeneratePrimeBaseShiftsBySurplus(t *testing.T) {
	var hash [32]byte
	surplus := uint32(40)
	bits := compact.Encode(big.NewInt(significantDigits + int64(surplus)))

	baseShort, _ := GeneratePrimeBase(hash, compact.Encode(big.NewInt(significantDigits)))
	baseLong, tz := GeneratePrimeBase(hash, bits)

	if tz != surplus {
		t.Fatalf("tz = %d, want %d", tz, surplus)
	}
	want := new(big.Int).Lsh(baseShort, uint(surplus))
	if baseLong.Cmp(want) != 0 {
		t.Fatalf("base = %v, want %v", baseLong, want)
	}
}

func TestGeneratePrimeBaseSaturatesDiffAtUint32(t *testing.T) {
	var hash [32]byte
	huge := new(big.Int).Lsh(big.NewInt(1), 40)
	_, tzHuge := GeneratePrimeBase(hash, compact.Encode(huge))

	// No compact value decodes to exactly 2^32-1 (that needs a 32-bit
	// mantissa), so the tz of the saturated diff is written out directly.
	tzMax := uint32(1<<32 - 1 - significantDigits)

	if tzHuge != tzMax {
		t.Fatalf("tz for diff > 2^32-1 should saturate: got %d vs %d", tzHuge, tzMax)
	}
}
