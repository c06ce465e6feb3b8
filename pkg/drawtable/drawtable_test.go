package drawtable

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bytecamp2019d/drawtable/pkg/combo"
	"github.com/bytecamp2019d/drawtable/pkg/deck"
	"github.com/bytecamp2019d/drawtable/pkg/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietBuilder() *Builder {
	return NewBuilder(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func totals(r Row) []int64 {
	out := make([]int64, len(r.Totals))
	for i, lt := range r.Totals {
		out[i] = lt.WeightedTotal
	}
	return out
}

func TestRow(t *testing.T) {
	b := quietBuilder()
	for _, tc := range []struct {
		target int
		want   []int64
	}{
		{0, []int64{0, 0, 0, 0, 0, 0, 0}},
		{1, []int64{4, 0, 0, 0, 0, 0, 0}},
		{4, []int64{4, 44, 144, 24, 0, 0, 0}},
		{10, []int64{16, 140, 2112, 15936, 58080, 89280, 20160}},
		{11, []int64{4, 192, 2112, 16416, 67584, 122880, 63360}},
		{12, []int64{0, 248, 3528, 31752, 169248, 449568, 449280}},
		{19, []int64{0, 160, 9328, 199552, 2353728, 16787712, 72477504}},
	} {
		row, err := b.Row(tc.target)
		require.NoError(t, err)
		assert.Equal(t, tc.target, row.Target)
		assert.Equal(t, tc.want, totals(row), "target %d", tc.target)
		for i, lt := range row.Totals {
			assert.Equal(t, i+1, lt.Length)
		}
	}
}

func TestRowOutOfRange(t *testing.T) {
	b := quietBuilder()
	for _, target := range []int{-1, 20, 21} {
		row, err := b.Row(target)
		assert.True(t, errors.Is(err, ErrInvariantViolation), "target %d", target)
		assert.Empty(t, row.Totals)
	}
}

// A natural: any of 4 Aces with any of 16 tens, in either order.
func TestBlackjackTwoCards(t *testing.T) {
	row, err := quietBuilder().row(21)
	require.NoError(t, err)
	assert.Equal(t, int64(4*16*2), row.Total(2))

	entries, err := combo.Generate(deck.New(), 21)
	require.NoError(t, err)
	var want int64
	for _, e := range entries {
		if e.Hand.Len() == 2 {
			want += e.Weight * ordering.CountKept(e.Hand, 21)
		}
	}
	assert.Equal(t, want, row.Total(2))
}

func TestAggregate(t *testing.T) {
	a := combo.NewHand(1, 10)
	b := combo.NewHand(10, 1)
	c := combo.NewHand(11)
	row := Aggregate(11, []combo.Entry{
		{Hand: a, Weight: 64},
		{Hand: b, Weight: 2},
		{Hand: c, Weight: 4},
	}, map[combo.Hand]int64{a: 1, b: 3, c: 1})

	assert.Equal(t, 11, row.Target)
	require.Len(t, row.Totals, combo.MaxLength)
	assert.Equal(t, int64(4), row.Total(1))
	assert.Equal(t, int64(64+6), row.Total(2))
	assert.Equal(t, int64(0), row.Total(7))
	assert.Equal(t, int64(0), row.Total(8))
}

func TestNonAceHandsKeepEveryOrdering(t *testing.T) {
	entries, err := combo.Generate(deck.New(), 15)
	require.NoError(t, err)
	for _, e := range entries {
		if e.Hand.HasLowAce() {
			continue
		}
		want := int64(1)
		for i := 2; i <= e.Hand.Len(); i++ {
			want *= int64(i)
		}
		assert.Equal(t, want, ordering.CountKept(e.Hand, 15), "hand %v", e.Hand)
	}
}

func TestTable(t *testing.T) {
	jobStart := time.Now()
	rows, err := quietBuilder().Table()
	require.NoError(t, err)
	t.Logf("table built in %v", time.Since(jobStart))

	require.Len(t, rows, Targets)
	for i, r := range rows {
		assert.Equal(t, MinTarget+i, r.Target)
		assert.Len(t, r.Totals, combo.MaxLength)
	}
	assert.Equal(t, []int64{0, 172, 8728, 166240, 1739424, 10955328, 42100416}, totals(rows[18]))
}

func TestEachStops(t *testing.T) {
	stop := errors.New("stop")
	var seen []int
	err := quietBuilder().Each(func(r Row) error {
		seen = append(seen, r.Target)
		if r.Target == 2 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestZeroBuilder(t *testing.T) {
	row, err := (&Builder{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}).Row(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 32, 24, 0, 0, 0, 0}, totals(row))
}
