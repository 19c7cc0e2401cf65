// Package primality implements the probabilistic primality test the
// consensus core runs against constellation candidates: a small-prime
// trial division pre-filter followed by Miller-Rabin rounds, mirroring
// OpenSSL's BN_is_prime_fasttest as used by the reference client.
package primality

import (
	"crypto/rand"
	"math/big"
)

var smallPrimes = sieve(10000)

func sieve(limit int) []int64 {
	composite := make([]bool, limit+1)
	var primes []int64
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, int64(i))
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

// trialDivide reports whether n is divisible by a small prime other
// than n itself.
func trialDivide(n *big.Int) bool {
	rem := new(big.Int)
	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		if n.Cmp(bp) == 0 {
			return false
		}
		rem.Mod(n, bp)
		if rem.Sign() == 0 {
			return true
		}
	}
	return false
}

// IsProbablePrime reports whether n is prime with error probability
// at most 4^-rounds, the same bound Miller-Rabin gives per round. When
// requireTrialDivision is true, n is first checked against the small
// prime table and rejected outright on a hit; the reference client
// only skips this pre-filter on its fast backward pass once a
// candidate has already survived the slower forward one.
func IsProbablePrime(n *big.Int, rounds int, requireTrialDivision bool) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.Cmp(big.NewInt(2)) == 0 || n.Cmp(big.NewInt(3)) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	if n.Cmp(big.NewInt(1)) == 0 {
		return false
	}

	if requireTrialDivision && trialDivide(n) {
		return false
	}

	return millerRabin(n, rounds)
}

// millerRabin runs rounds independent witness rounds with bases drawn
// uniformly from [2, n-2].
func millerRabin(n *big.Int, rounds int) bool {
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	d := new(big.Int).Set(nMinus1)
	s := uint(0)
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	nMinus3 := new(big.Int).Sub(n, big.NewInt(3))
	one := big.NewInt(1)
	two := big.NewInt(2)

	for i := 0; i < rounds; i++ {
		a, err := rand.Int(rand.Reader, nMinus3)
		if err != nil {
			return false
		}
		a.Add(a, two)

		x := new(big.Int).Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		witness := true
		for j := uint(1); j < s; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}

	return true
}
