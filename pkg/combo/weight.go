package combo

import (
	"github.com/bytecamp2019d/drawtable/pkg/deck"
	"gonum.org/v1/gonum/stat/combin"
)

// DuplicateWeight returns how many ways the multiset of cards can be dealt
// from one deck, ignoring order. Each value other than Ten appearing m times
// contributes C(4, m): one card of a kind can be any of 4 suits, a pair any
// of 6 suit pairs, and so on.
//
// Tens contribute a flat factor of 16 however many appear. A pair of tens is
// therefore weighted like a single ten rather than C(16, 2).
//
// A multiset that cannot come out of one deck (five of a kind) weighs 0.
func DuplicateWeight(cards []deck.Value) int64 {
	var counts [deck.Ten + 1]int
	for _, v := range cards {
		counts[v]++
	}

	total := int64(1)
	for v := deck.Ace; v < deck.Ten; v++ {
		m := counts[v]
		if m == 0 {
			continue
		}
		if m > deck.Suits {
			return 0
		}
		total *= int64(combin.Binomial(deck.Suits, m))
	}
	if counts[deck.Ten] > 0 {
		total *= deck.Suits * deck.TenRanks
	}
	return total
}
