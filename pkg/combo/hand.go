package combo

import (
	"strconv"
	"strings"
)

// MaxLength is the longest hand the search will build.
const MaxLength = 7

// Hand is a resolved combination: every Ace already converted to 1 or 11.
// Hands compare by their numeric sequence and can be used as map keys.
type Hand struct {
	n      uint8
	values [MaxLength]uint8
}

// NewHand builds a Hand from numeric card values. It panics on more than
// MaxLength values.
func NewHand(values ...int) Hand {
	if len(values) > MaxLength {
		panic("combo: hand longer than " + strconv.Itoa(MaxLength))
	}
	var h Hand
	for _, v := range values {
		h.values[h.n] = uint8(v)
		h.n++
	}
	return h
}

// Len is the number of cards in the hand.
func (h Hand) Len() int { return int(h.n) }

// At returns the i-th card value.
func (h Hand) At(i int) int { return int(h.values[i]) }

// Values returns the card values as a new slice.
func (h Hand) Values() []int {
	out := make([]int, h.n)
	for i := range out {
		out[i] = int(h.values[i])
	}
	return out
}

// Sum of the card values.
func (h Hand) Sum() int {
	s := 0
	for i := 0; i < int(h.n); i++ {
		s += int(h.values[i])
	}
	return s
}

// HasLowAce reports whether some card is valued 1.
func (h Hand) HasLowAce() bool {
	for i := 0; i < int(h.n); i++ {
		if h.values[i] == 1 {
			return true
		}
	}
	return false
}

func (h Hand) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < int(h.n); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(h.values[i])))
	}
	b.WriteByte(']')
	return b.String()
}
