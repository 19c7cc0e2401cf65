package consensus

import (
	"math/big"

	"primecore/compact"
)

// mockNode is a minimal IndexNode backed by a slice: index 0 is the
// genesis block, and Prev walks toward lower indices.
type mockNode struct {
	chain []*mockNode
	idx   int

	height uint32
	bits   compact.Bits
	time   int64
	work   *big.Int
}

func (n *mockNode) Height() uint32       { return n.height }
func (n *mockNode) Bits() compact.Bits   { return n.bits }
func (n *mockNode) Time() int64          { return n.time }
func (n *mockNode) Work() *big.Int       { return n.work }

func (n *mockNode) Prev() (IndexNode, bool) {
	if n.idx == 0 {
		return nil, false
	}
	return n.chain[n.idx-1], true
}

// buildChain constructs a chain of length count with constant spacing
// and bits, each block's work set to 2^(decoded bits bit-length) as a
// stand-in for the usual "work scales with difficulty" relationship.
func buildChain(count int, spacing int64, bits compact.Bits) []*mockNode {
	chain := make([]*mockNode, count)
	target := compact.Decode(bits)
	work := new(big.Int).Lsh(big.NewInt(1), uint(target.BitLen()))

	for i := 0; i < count; i++ {
		chain[i] = &mockNode{
			chain:  chain,
			idx:    i,
			height: uint32(i),
			bits:   bits,
			time:   int64(i) * spacing,
			work:   work,
		}
	}
	return chain
}
