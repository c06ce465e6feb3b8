// Package drawtable builds the table of weighted draw counts: for every target
// total and hand length, how many deals from one deck reach the total with
// exactly that many cards.
package drawtable

import (
	"fmt"
	"log/slog"

	"github.com/bytecamp2019d/drawtable/pkg/combo"
	"github.com/bytecamp2019d/drawtable/pkg/deck"
	"github.com/bytecamp2019d/drawtable/pkg/ordering"
)

const (
	// MinTarget and MaxTarget bound the targets covered by the table.
	MinTarget = 0
	MaxTarget = 19
	// Targets is the number of rows in a table.
	Targets = MaxTarget - MinTarget + 1
)

// ErrInvariantViolation is returned when the pipeline is asked for something
// that can only come from a programming error.
var ErrInvariantViolation = combo.ErrInvariantViolation

// LengthTotal is the weighted count of hands of one length.
type LengthTotal struct {
	Length        int
	WeightedTotal int64
}

// Row holds the weighted totals of one target for lengths 1 to combo.MaxLength.
type Row struct {
	Target int
	Totals []LengthTotal
}

// Total returns the weighted total for hands of the given length, 0 when the
// length is out of range.
func (r Row) Total(length int) int64 {
	if length < 1 || length > len(r.Totals) {
		return 0
	}
	return r.Totals[length-1].WeightedTotal
}

// Aggregate folds the weights and kept-ordering counts of one target's
// entries into totals by hand length.
func Aggregate(target int, entries []combo.Entry, kept map[combo.Hand]int64) Row {
	row := Row{Target: target, Totals: make([]LengthTotal, combo.MaxLength)}
	for i := range row.Totals {
		row.Totals[i].Length = i + 1
	}
	for _, e := range entries {
		n := e.Hand.Len()
		if n < 1 || n > combo.MaxLength {
			continue
		}
		row.Totals[n-1].WeightedTotal += e.Weight * kept[e.Hand]
	}
	return row
}

// Builder runs the per-target pipeline. The zero value uses a standard deck
// and the default logger.
type Builder struct {
	Deck   deck.Deck
	Logger *slog.Logger
}

// NewBuilder returns a Builder over a standard deck.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{Deck: deck.New(), Logger: logger}
}

func (b *Builder) deck() deck.Deck {
	if b.Deck == (deck.Deck{}) {
		return deck.New()
	}
	return b.Deck
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}

// Row computes the row of one target in [MinTarget, MaxTarget].
func (b *Builder) Row(target int) (Row, error) {
	if target < MinTarget || target > MaxTarget {
		return Row{}, fmt.Errorf("%w: target %d outside [%d,%d]", ErrInvariantViolation, target, MinTarget, MaxTarget)
	}
	return b.row(target)
}

// row runs generate, enumerate, filter and aggregate for one target. Nothing
// but the returned row outlives the call.
func (b *Builder) row(target int) (Row, error) {
	log := b.logger().With("target", target)

	entries, err := combo.Generate(b.deck(), target)
	if err != nil {
		return Row{}, fmt.Errorf("generate target %d: %w", target, err)
	}
	log.Debug("combinations generated", "entries", len(entries))

	kept := make(map[combo.Hand]int64, len(entries))
	var survivors int64
	for _, e := range entries {
		n := ordering.CountKept(e.Hand, target)
		kept[e.Hand] = n
		survivors += n
	}
	log.Debug("orderings filtered", "kept", survivors)

	row := Aggregate(target, entries, kept)
	log.Debug("row aggregated")
	return row, nil
}

// Each computes the rows for every target in ascending order and hands each
// one to fn as soon as it is done. It stops at the first error.
func (b *Builder) Each(fn func(Row) error) error {
	for target := MinTarget; target <= MaxTarget; target++ {
		row, err := b.row(target)
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	b.logger().Info("table complete", "targets", Targets)
	return nil
}

// Table computes every row.
func (b *Builder) Table() ([]Row, error) {
	rows := make([]Row, 0, Targets)
	err := b.Each(func(r Row) error {
		rows = append(rows, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ProduceTable computes the table with a standard deck.
func ProduceTable() ([]Row, error) {
	return NewBuilder(nil).Table()
}
