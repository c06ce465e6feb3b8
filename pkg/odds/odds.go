// Package odds turns weighted draw counts into probabilities.
package odds

import (
	"fmt"

	"github.com/bytecamp2019d/drawtable/pkg/combo"
	"github.com/bytecamp2019d/drawtable/pkg/deck"
	"github.com/bytecamp2019d/drawtable/pkg/drawtable"
)

// Reach : probability that drawing exactly length cards, one at a time from a
// full deck, ends on row.Target without touching it earlier. It is the row's
// weighted total divided by the number of ordered draws of length cards.
func Reach(row drawtable.Row, length int64) (numerator, denominator int64, err error) {
	// validate length ~ [1, 7]
	if length < 1 || length > combo.MaxLength {
		return 0, 0, fmt.Errorf("hand length must be in [1, %d], but parameter length is %d", combo.MaxLength, length)
	}
	if int(length) > len(row.Totals) {
		return 0, 0, fmt.Errorf("row for target %d has no total for length %d", row.Target, length)
	}
	possible := row.Total(int(length))
	total := arrangements(deck.Size, length)
	// reduction of a fraction
	gcd := GCD(possible, total)
	return possible / gcd, total / gcd, nil
}

// arrangements refers to P(x,y), ordered draws of y out of x
func arrangements(totalNum, subSetNum int64) (result int64) {
	result = 1
	for i := int64(0); i < subSetNum; i++ {
		result *= totalNum - i
	}
	return
}

// GCD : greatest common divisor
func GCD(x, y int64) int64 {
	z := x % y
	if z > 0 {
		return GCD(y, z)
	}
	return y
}
