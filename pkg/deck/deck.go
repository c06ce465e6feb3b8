package deck

import "strconv"

const (
	// Size of one pack of cards (exclude jokers)
	Size = 52
	// Suits per rank, ♤♡♢♧.
	Suits = 4
	// TenRanks is the number of ranks scoring 10: 10, J, Q, K.
	TenRanks = 4
)

// Value is the point value of a card. Ace is a tag rather than a number,
// it resolves to 1 (low) or 11 (high).
type Value uint8

const (
	Ace Value = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten // 10, J, Q, K
)

// IsAce reports whether v is the dual-valued card.
func (v Value) IsAce() bool { return v == Ace }

// Low is the numeric value of v with an Ace counted as 1.
func (v Value) Low() int { return int(v) }

// High is the numeric value of v with an Ace counted as 11.
func (v Value) High() int {
	if v == Ace {
		return 11
	}
	return int(v)
}

func (v Value) String() string {
	if v == Ace {
		return "A"
	}
	return strconv.Itoa(int(v))
}

// Deck is the sorted multiset of the 52 card values. It is immutable once built.
type Deck struct {
	cards [Size]Value
}

// New builds a standard deck sorted ascending, Aces first.
func New() Deck {
	var d Deck
	// we got 4 cards for every rank, J, Q and K score 10
	for i := 0; i < Size; i++ {
		rank := i/Suits + 1
		if rank > int(Ten) {
			rank = int(Ten)
		}
		d.cards[i] = Value(rank)
	}
	return d
}

// Alphabet returns a copy of the sorted card values used as the enumeration alphabet.
func (d Deck) Alphabet() []Value {
	out := make([]Value, Size)
	copy(out, d.cards[:])
	return out
}

// Count returns how many cards of value v the deck holds.
func (d Deck) Count(v Value) int {
	n := 0
	for _, c := range d.cards {
		if c == v {
			n++
		}
	}
	return n
}

// Len is always Size.
func (d Deck) Len() int { return len(d.cards) }
