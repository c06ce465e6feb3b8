// Package wire converts draw table rows to and from their gRPC messages.
package wire

import (
	pb "github.com/bytecamp2019d/drawtable/api/drawtable"
	"github.com/bytecamp2019d/drawtable/pkg/drawtable"
)

// ToProto converts a row to its message.
func ToProto(r drawtable.Row) *pb.TargetRow {
	out := &pb.TargetRow{
		Target: int32(r.Target),
		Totals: make([]*pb.LengthTotal, 0, len(r.Totals)),
	}
	for _, lt := range r.Totals {
		out.Totals = append(out.Totals, &pb.LengthTotal{
			Length:        int32(lt.Length),
			WeightedTotal: lt.WeightedTotal,
		})
	}
	return out
}

// FromProto converts a row message back. Nil totals are skipped.
func FromProto(m *pb.TargetRow) drawtable.Row {
	r := drawtable.Row{Target: int(m.GetTarget())}
	for _, lt := range m.GetTotals() {
		if lt == nil {
			continue
		}
		r.Totals = append(r.Totals, drawtable.LengthTotal{
			Length:        int(lt.GetLength()),
			WeightedTotal: lt.GetWeightedTotal(),
		})
	}
	return r
}

// RowsFromProto converts every row of a table response.
func RowsFromProto(resp *pb.TableResponse) []drawtable.Row {
	rows := make([]drawtable.Row, 0, len(resp.GetRows()))
	for _, m := range resp.GetRows() {
		rows = append(rows, FromProto(m))
	}
	return rows
}
