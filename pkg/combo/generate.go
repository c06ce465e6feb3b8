// Package combo enumerates the card combinations that reach a point total and
// weighs them by how many ways one deck can deal them.
package combo

import (
	"fmt"

	"github.com/bytecamp2019d/drawtable/pkg/deck"
)

// Entry is one resolved combination reaching a target.
type Entry struct {
	Hand Hand
	// Cards is the unresolved combination the hand was resolved from.
	Cards []deck.Value
	// Weight is the DuplicateWeight of Cards, computed when the hand was first found.
	Weight int64
}

// generator holds the state of one Generate pass.
type generator struct {
	alphabet []deck.Value
	target   int
	seen     map[Hand]struct{}
	entries  []Entry
}

// Generate returns every distinct resolved combination of 1 to MaxLength cards
// from d whose values sum to target. A combination holding Aces is resolved
// twice: all Aces low, and exactly one Ace high. Both resolutions are kept
// when they hit the target.
func Generate(d deck.Deck, target int) ([]Entry, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: target %d is negative", ErrInvariantViolation, target)
	}
	g := &generator{
		alphabet: d.Alphabet(),
		target:   target,
		seen:     make(map[Hand]struct{}),
	}
	g.search(0, make([]deck.Value, 0, MaxLength+1))

	for _, e := range g.entries {
		if len(e.Cards) > MaxLength || e.Hand.Len() > MaxLength {
			return nil, fmt.Errorf("%w: combination %v has %d cards", ErrInvariantViolation, e.Hand, len(e.Cards))
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: combination %v has weight %d", ErrInvariantViolation, e.Hand, e.Weight)
		}
	}
	return g.entries, nil
}

// search extends partial with alphabet cards from start on. Each position is
// used at most once, and equal values at the same depth are tried only once,
// so every multiset is visited in ascending order exactly one time.
func (g *generator) search(start int, partial []deck.Value) {
	if len(partial) > MaxLength {
		return
	}
	low := 0
	if len(partial) > 0 {
		var more bool
		if low, more = g.visit(partial); !more {
			return
		}
	}
	for i := start; i < len(g.alphabet); i++ {
		v := g.alphabet[i]
		if i > start && v == g.alphabet[i-1] {
			continue
		}
		if low+v.Low() > g.target {
			break // alphabet is sorted, later cards only go higher
		}
		g.search(i+1, append(partial, v))
	}
}

// visit records partial if it reaches the target and reports whether adding
// cards could still reach it.
func (g *generator) visit(partial []deck.Value) (low int, more bool) {
	aces := 0
	for _, v := range partial {
		low += v.Low()
		if v.IsAce() {
			aces++
		}
	}

	if aces > 0 {
		// one Ace high adds 10 to the low total
		if low+10 == g.target {
			g.record(resolve(partial, true), partial)
		}
	}
	if low == g.target {
		g.record(resolve(partial, false), partial)
		return low, false
	}
	return low, low < g.target
}

func (g *generator) record(h Hand, partial []deck.Value) {
	if _, ok := g.seen[h]; ok {
		return
	}
	g.seen[h] = struct{}{}
	cards := make([]deck.Value, len(partial))
	copy(cards, partial)
	g.entries = append(g.entries, Entry{
		Hand:   h,
		Cards:  cards,
		Weight: DuplicateWeight(cards),
	})
}

// resolve converts cards to numbers with every Ace low. With soft set, the
// first Ace is dropped and re-added at the end valued 11.
func resolve(cards []deck.Value, soft bool) Hand {
	var h Hand
	promoted := !soft
	for _, v := range cards {
		if v.IsAce() && !promoted {
			promoted = true
			continue
		}
		h.values[h.n] = uint8(v.Low())
		h.n++
	}
	if soft {
		h.values[h.n] = uint8(deck.Ace.High())
		h.n++
	}
	return h
}
