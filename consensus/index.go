package consensus

import (
	"math/big"

	"primecore/compact"
)

// IndexNode is a borrowed view onto one indexed block, supplied by the
// environment's chain index. The core never mutates or retains these
// beyond a single call; it walks Prev() chains no deeper than one
// retarget interval.
type IndexNode interface {
	Height() uint32
	Bits() compact.Bits
	Time() int64

	// Work is the block's contribution to cumulative chain work. The
	// core treats it as opaque: callers typically derive it from Bits
	// as 2^k for some k related to the decoded target, but nothing
	// here depends on that relationship.
	Work() *big.Int

	// Prev returns the parent node and true, or (nil, false) at the
	// root of whatever window the caller exposed.
	Prev() (IndexNode, bool)
}

// ancestor walks steps nodes back from n, returning ok=false if the
// chain runs out first.
func ancestor(n IndexNode, steps uint32) (IndexNode, bool) {
	cur := n
	for i := uint32(0); i < steps; i++ {
		prev, ok := cur.Prev()
		if !ok {
			return nil, false
		}
		cur = prev
	}
	return cur, true
}
