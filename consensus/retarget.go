package consensus

import (
	"math/big"

	"primecore/compact"
	"primecore/plog"
)

// isSuperblock reports whether height is a superblock under the
// fork-1 rule: at or past Fork1Height and an exact multiple of
// SuperblockInterval.
func isSuperblock(height uint32, params *Params) bool {
	return height >= params.Fork1Height && params.SuperblockInterval != 0 && height%params.SuperblockInterval == 0
}

// windowContainsSuperblock reports whether the retargetInterval-wide
// window ending at height contains a superblock height, with the
// window additionally bounded below by Fork1Height (superblocks never
// occur before the fork activates). The compensation check below calls
// this once with the current retarget height and once with the
// previous retarget height (height-interval), so the two windows it
// compares are adjacent and non-overlapping -- which is what makes the
// *68/75 and *75/68 branches mutually exclusive and exactly reversible
// one retarget later.
func windowContainsSuperblock(height, retargetInterval uint32, params *Params) bool {
	if height < params.Fork1Height || params.SuperblockInterval == 0 {
		return false
	}

	lo := params.Fork1Height
	if height >= retargetInterval {
		if windowLo := height - retargetInterval + 1; windowLo > lo {
			lo = windowLo
		}
	}
	if lo > height {
		return false
	}

	si := params.SuperblockInterval
	firstMultiple := (lo + si - 1) / si * si
	return firstMultiple <= height
}

// minDifficultyAncestorBits walks back from last, returning the bits
// of the first ancestor that breaks the "still a special min-difficulty
// block" chain: it has no parent, sits on a retarget boundary, or its
// bits decode to something other than MinPrimeBits. The comparison is
// against the *decoded* value of MinPrimeCompact, not its raw compact
// bytes — see the decoded-integer comparison decision recorded
// alongside this package.
func minDifficultyAncestorBits(last IndexNode, retargetInterval uint32) compact.Bits {
	pindex := last
	minPrimeBits := big.NewInt(MinPrimeBits)

	for {
		prev, ok := pindex.Prev()
		if !ok {
			break
		}
		if pindex.Height()%retargetInterval == 0 {
			break
		}
		if compact.Decode(pindex.Bits()).Cmp(minPrimeBits) != 0 {
			break
		}
		pindex = prev
	}
	return pindex.Bits()
}

// NextWorkRequired computes the difficulty the block at last.Height()+1
// must meet. last == nil requests the genesis difficulty.
func NextWorkRequired(last IndexNode, nextHeaderTime int64, params *Params, logger plog.Logger) compact.Bits {
	log := plog.OrNop(logger)

	if last == nil {
		log.Infof("genesis block, returning minimum difficulty")
		return MinPrimeCompact
	}

	interval := params.RetargetInterval()
	h := last.Height() + 1

	if h%interval != 0 {
		return nextWorkRequiredNonRetarget(last, h, interval, nextHeaderTime, params, log)
	}
	return nextWorkRequiredRetarget(last, h, interval, params, log)
}

func nextWorkRequiredNonRetarget(last IndexNode, h, interval uint32, nextHeaderTime int64, params *Params, log plog.Logger) compact.Bits {
	if h >= params.Fork1Height {
		if isSuperblock(h, params) {
			log.Infof("height %d is a superblock, scaling last difficulty", h)
			newPow := compact.Decode(last.Bits())
			newPow.Mul(newPow, big.NewInt(95859))
			newPow.Rsh(newPow, 16)
			return compact.Encode(newPow)
		}
		if isSuperblock(h-1, params) {
			log.Infof("height %d follows a superblock, restoring pre-superblock bits", h)
			prev, ok := last.Prev()
			if ok {
				return prev.Bits()
			}
			return last.Bits()
		}
	}

	if params.AllowMinDifficultyBlocks && nextHeaderTime > last.Time()+2*params.PowTargetSpacing {
		log.Debugf("height %d: timestamp gap triggers minimum difficulty", h)
		return MinPrimeCompact
	}

	if params.AllowMinDifficultyBlocks {
		return minDifficultyAncestorBits(last, interval)
	}

	return last.Bits()
}

// clampRetargetActual bounds the raw elapsed time of a retarget window to
// [timespan/4, timespan*4], but only once the window is fully past the
// second retarget (h >= 2*interval) -- before that, the window's ancestor
// count is still ramping up (see the steps adjustment in
// nextWorkRequiredRetarget) and the reference leaves actual unclamped.
func clampRetargetActual(actual int64, h, interval uint32, params *Params) int64 {
	if h < 2*interval {
		return actual
	}
	if actual < params.PowTargetTimespan/4 {
		return params.PowTargetTimespan / 4
	}
	if actual > params.PowTargetTimespan*4 {
		return params.PowTargetTimespan * 4
	}
	return actual
}

// applySuperblockCompensation scales scaled by 68/75 if the retarget window
// ending at h contains a superblock, or by 75/68 if the window ending at
// the previous retarget (h-interval) did and the current one doesn't --
// reverting the prior compensation exactly one retarget later.
func applySuperblockCompensation(scaled *big.Int, h, interval uint32, params *Params, log plog.Logger) *big.Int {
	if h < params.Fork1Height {
		return scaled
	}
	if windowContainsSuperblock(h, interval, params) {
		log.Infof("retarget window ending at %d contains a superblock, compensating *68/75", h)
		scaled.Mul(scaled, big.NewInt(68))
		scaled.Quo(scaled, big.NewInt(75))
	} else if windowContainsSuperblock(h-interval, interval, params) {
		log.Infof("retarget window preceding %d contained a superblock, compensating *75/68", h)
		scaled.Mul(scaled, big.NewInt(75))
		scaled.Quo(scaled, big.NewInt(68))
	}
	return scaled
}

func nextWorkRequiredRetarget(last IndexNode, h, interval uint32, params *Params, log plog.Logger) compact.Bits {
	steps := interval - 1
	if h == interval {
		steps = interval - 2
	}
	first, ok := ancestor(last, steps)
	if !ok {
		panic("consensus: retarget window deeper than available chain index")
	}

	actual := clampRetargetActual(last.Time()-first.Time(), h, interval, params)

	// Quo, not Div: spec.md mandates truncating division (matching the
	// original's C-style integer division), and actual can go negative
	// here when h < 2*interval, before the bounding clamp engages --
	// Div's Euclidean floor would diverge from that on a negative
	// divisor.
	scaled := new(big.Int).Set(last.Work())
	scaled.Mul(scaled, big.NewInt(params.PowTargetTimespan))
	scaled.Quo(scaled, big.NewInt(actual))

	scaled = applySuperblockCompensation(scaled, h, interval, params, log)

	lastTarget := compact.Decode(last.Bits())
	lowerBound := new(big.Int).Rsh(lastTarget, 1)
	if lowerBound.Sign() == 0 {
		lowerBound = big.NewInt(1)
	}
	newTarget := compact.NthRoot(scaled, RootExponent, lowerBound)

	minBits := big.NewInt(MinPrimeBits)
	if newTarget.Cmp(minBits) < 0 {
		newTarget = minBits
	} else {
		maxU64 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
		if newTarget.Cmp(maxU64) > 0 {
			newTarget = maxU64
		}
	}

	log.Debugf("retarget at height %d: actual=%d new target bit-length %v", h, actual, newTarget.BitLen())
	return compact.Encode(newTarget)
}
