// Package ordering enumerates the deal orders of a hand and drops the ones a
// player would never have finished drawing.
package ordering

import (
	"github.com/bytecamp2019d/drawtable/pkg/combo"
	"gonum.org/v1/gonum/stat/combin"
)

// Permutations iterates every positional ordering of a hand. Cards of equal
// value are treated as distinct, so a hand of n cards yields n! orders.
type Permutations struct {
	hand  combo.Hand
	gen   *combin.PermutationGenerator
	index []int
	order []int
}

// New returns an iterator positioned before the first ordering of h.
func New(h combo.Hand) *Permutations {
	p := &Permutations{
		hand:  h,
		index: make([]int, h.Len()),
		order: make([]int, h.Len()),
	}
	p.Reset()
	return p
}

// Reset rewinds the iterator to before the first ordering.
func (p *Permutations) Reset() {
	p.gen = nil
	if n := p.hand.Len(); n > 0 {
		p.gen = combin.NewPermutationGenerator(n, n)
	}
}

// Next advances to the next ordering and reports whether there is one.
func (p *Permutations) Next() bool {
	if p.gen == nil {
		return false
	}
	if !p.gen.Next() {
		p.gen = nil
		return false
	}
	p.index = p.gen.Permutation(p.index)
	for i, j := range p.index {
		p.order[i] = p.hand.At(j)
	}
	return true
}

// Order returns the card values of the current ordering. The slice is reused
// by the next call to Next.
func (p *Permutations) Order() []int {
	return p.order
}

// Keep reports whether a player drawing the cards of order one at a time
// would still draw the last one. The first Ace (valued 1) is counted as 11
// while tallying. If the running total hits target before the last card, the
// player would have stopped and the order is dropped.
func Keep(order []int, target int) bool {
	soft := -1
	for i, v := range order {
		if v == 1 {
			soft = i
			break
		}
	}
	if soft < 0 {
		return true
	}

	subtotal := 0
	for i := 0; i < len(order)-1; i++ {
		if i == soft {
			subtotal += 11
		} else {
			subtotal += order[i]
		}
		if subtotal == target {
			return false
		}
	}
	return true
}

// CountKept returns how many orderings of h survive Keep.
func CountKept(h combo.Hand, target int) int64 {
	var kept int64
	for p := New(h); p.Next(); {
		if Keep(p.Order(), target) {
			kept++
		}
	}
	return kept
}
