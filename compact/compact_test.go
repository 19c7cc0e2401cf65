package compact

import (
	"math/big"
	"testing"
)

func TestDecodePins(t *testing.T) {
	cases := []struct {
		name string
		bits Bits
		want *big.Int
	}{
		{"min-prime-compact", 0x02013000, big.NewInt(304)},
		{"zero-mantissa", 0x04000000, big.NewInt(0)},
		{"exponent-three-identity", 0x03123456, big.NewInt(0x123456)},
		{"exponent-below-three-shifts-right", 0x01120000, big.NewInt(0x12)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Decode(c.bits)
			if got.Cmp(c.want) != 0 {
				t.Fatalf("Decode(0x%08x) = %v, want %v", uint32(c.bits), got, c.want)
			}
		})
	}
}

func TestDecodeStrictRejectsSignBit(t *testing.T) {
	_, err := DecodeStrict(0x04800000)
	if err == nil {
		t.Fatalf("expected error for set sign bit")
	}
}

func TestDecodeStrictAcceptsCleared(t *testing.T) {
	n, err := DecodeStrict(0x02013000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Cmp(big.NewInt(304)) != 0 {
		t.Fatalf("got %v, want 304", n)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []string{
		"1",
		"255",
		"65535",
		"8388607",
		"1152921504606846976",
	}

	for _, v := range values {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			t.Fatalf("bad test value %q", v)
		}
		got := Decode(Encode(n))
		if got.Cmp(n) != 0 {
			t.Fatalf("round trip %v got %v", n, got)
		}
	}
}

func TestEncodeZeroAndNegative(t *testing.T) {
	if Encode(big.NewInt(0)) != 0 {
		t.Fatalf("Encode(0) must be 0")
	}
	if Encode(big.NewInt(-5)) != 0 {
		t.Fatalf("Encode(negative) must be 0")
	}
}

func TestEncodeSaturatesOnOverflow(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 4000)
	if got := Encode(huge); got != saturated {
		t.Fatalf("Encode(huge) = 0x%08x, want 0x%08x", uint32(got), uint32(saturated))
	}
}

func TestNthRootPerfectSquares(t *testing.T) {
	for base := int64(2); base < 50; base++ {
		n := new(big.Int).Mul(big.NewInt(base), big.NewInt(base))
		got := NthRoot(n, 2, big.NewInt(1))
		if got.Cmp(big.NewInt(base)) != 0 {
			t.Fatalf("NthRoot(%v, 2) = %v, want %v", n, got, base)
		}
	}
}

func TestNthRootFloorsNonPerfectPowers(t *testing.T) {
	n := big.NewInt(99)
	got := NthRoot(n, 2, big.NewInt(1))
	if got.Cmp(big.NewInt(9)) != 0 {
		t.Fatalf("floor(sqrt(99)) = %v, want 9", got)
	}
}

func TestNthRootBoundsCheckedByCaller(t *testing.T) {
	// The bisection assumes lowerBound^root <= n and only ever grows
	// the result, so a tight lower bound converges to the same
	// answer as a loose one.
	n := big.NewInt(1 << 20)
	loose := NthRoot(n, 9, big.NewInt(1))
	tight := NthRoot(n, 9, big.NewInt(2))
	if loose.Cmp(tight) != 0 {
		t.Fatalf("loose=%v tight=%v, want equal", loose, tight)
	}
}
