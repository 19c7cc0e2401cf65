package consensus

import (
	"math/big"

	"primecore/compact"
	"primecore/perrors"
	"primecore/plog"
	"primecore/primality"
)

// CheckProofOfWork validates a candidate block: hash and bits locate
// the base a prime sextuplet must start from, offset is added to it,
// and the resulting six numbers must all be prime. A nil error means
// the candidate is accepted.
func CheckProofOfWork(hash [32]byte, bits compact.Bits, offset *big.Int, params *Params, logger plog.Logger) error {
	log := plog.OrNop(logger)

	if hash == GrandfatheredHash {
		log.Infof("grandfathered hash, accepting unconditionally")
		return nil
	}

	base, trailingZeros := GeneratePrimeBase(hash, bits)

	if trailingZeros < 256 {
		deltaLimit := new(big.Int).Lsh(big.NewInt(1), uint(trailingZeros))
		if offset.Cmp(deltaLimit) >= 0 {
			return perrors.NewOffsetTooLarge("offset %v exceeds allowed span 2^%d", offset, trailingZeros)
		}
	}

	n := new(big.Int).Add(base, offset)
	return verifySextuplet(n, log)
}

// sextupletForward is the one-round-then-four-round pass, with trial
// division, that fails fast on most bogus candidates.
var sextupletForward = []struct {
	pos    int
	rounds int
}{
	{0, 1},
	{4, 1},
	{6, 1},
	{10, 1},
	{12, 1},
	{16, 4},
}

// sextupletBackward re-verifies every member but the last at three
// rounds each, without trial division, strengthening confidence on
// primes the forward pass already accepted.
var sextupletBackward = []int{12, 10, 6, 4, 0}

// verifySextuplet checks n mod 210 == 97 and that n, n+4, n+6, n+10,
// n+12, n+16 are all prime, by the reference's exact forward-then-
// backward sequence. It is the part of proof-of-work validation that
// depends only on the candidate integer, not on how it was derived
// from a hash and offset.
func verifySextuplet(n *big.Int, log plog.Logger) error {
	mod := new(big.Int).Mod(n, big.NewInt(210))
	if mod.Cmp(big.NewInt(97)) != 0 {
		return perrors.NewWrongResidue("base+offset mod 210 = %v, want 97", mod)
	}

	candidate := new(big.Int).Set(n)
	prevPos := 0
	for _, step := range sextupletForward {
		candidate.Add(candidate, big.NewInt(int64(step.pos-prevPos)))
		prevPos = step.pos
		if !primality.IsProbablePrime(candidate, step.rounds, true) {
			log.Warnf("candidate at offset %d failed forward primality test", step.pos)
			return perrors.NewNotPrime(step.pos)
		}
	}

	for _, pos := range sextupletBackward {
		candidate.Sub(candidate, big.NewInt(int64(prevPos-pos)))
		prevPos = pos
		if !primality.IsProbablePrime(candidate, 3, false) {
			log.Warnf("candidate at offset %d failed backward primality test", pos)
			return perrors.NewNotPrime(pos)
		}
	}

	return nil
}
