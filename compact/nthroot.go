package compact

import "math/big"

// NthRoot returns floor(n^(1/root)), computed by the same
// doubling/halving bisection as the reference implementation: start
// from lowerBound (which must be at least 2 and already satisfy
// lowerBound^root <= n) with a step of lowerBound/2, doubling the step
// after each accepted move and halving it after each overshoot, until
// the step reaches zero. A lowerBound below 2 gives a first step of
// zero, so it is returned unchanged.
// The loop is ported statement-for-statement rather than rewritten
// against big.Int's own (nonexistent) nth-root helper, so that the
// result matches the reference bit-for-bit, not merely numerically.
func NthRoot(n *big.Int, root uint, lowerBound *big.Int) *big.Int {
	result := new(big.Int).Set(lowerBound)
	delta := new(big.Int).Rsh(lowerBound, 1)
	one := big.NewInt(1)
	aux := new(big.Int)

	for delta.Cmp(one) >= 0 {
		result.Add(result, delta)

		aux.Set(result)
		for i := uint(1); i < root; i++ {
			aux.Mul(aux, result)
		}

		if aux.Cmp(n) > 0 {
			result.Sub(result, delta)
			delta.Rsh(delta, 1)
		} else {
			delta.Lsh(delta, 1)
		}
	}

	return result
}
