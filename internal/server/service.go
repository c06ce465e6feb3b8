package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	pb "github.com/bytecamp2019d/drawtable/api/drawtable"
	"github.com/bytecamp2019d/drawtable/internal/wire"
	"github.com/bytecamp2019d/drawtable/pkg/drawtable"
	"github.com/bytecamp2019d/drawtable/pkg/odds"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service implements the DrawTableService over a table built once on first use.
type Service struct {
	builder *drawtable.Builder
	log     *slog.Logger

	once sync.Once
	rows []drawtable.Row
	err  error
}

// NewService returns a Service computing rows with b.
func NewService(b *drawtable.Builder, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{builder: b, log: log}
}

// Rows returns the table, building it on the first call.
func (s *Service) Rows() ([]drawtable.Row, error) {
	s.once.Do(func() {
		s.rows, s.err = s.builder.Table()
		if s.err != nil {
			s.log.Error("build table", "error", s.err)
		}
	})
	return s.rows, s.err
}

// Table implement gRPC service
func (s *Service) Table(ctx context.Context, req *pb.TableRequest) (*pb.TableResponse, error) {
	rows, err := s.Rows()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build table: %v", err)
	}
	resp := &pb.TableResponse{Rows: make([]*pb.TargetRow, 0, len(rows))}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, wire.ToProto(r))
	}
	return resp, nil
}

// StreamTable sends each row as soon as it is computed.
func (s *Service) StreamTable(req *pb.TableRequest, stream pb.DrawTableService_StreamTableServer) error {
	ctx := stream.Context()
	err := s.builder.Each(func(r drawtable.Row) error {
		if err := ctx.Err(); err != nil {
			return status.Error(codes.Canceled, err.Error())
		}
		return stream.Send(wire.ToProto(r))
	})
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Errorf(codes.Internal, "stream table: %v", err)
}

// Reach implement gRPC service. Bad parameters are reported in the response.
func (s *Service) Reach(ctx context.Context, req *pb.ReachRequest) (*pb.ReachResponse, error) {
	resp := &pb.ReachResponse{}
	target := int(req.GetTarget())
	if target < drawtable.MinTarget || target > drawtable.MaxTarget {
		resp.Error = fmt.Sprintf("target must be in [%d, %d], but parameter target is %d",
			drawtable.MinTarget, drawtable.MaxTarget, target)
		return resp, nil
	}
	rows, err := s.Rows()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build table: %v", err)
	}
	numerator, denominator, err := odds.Reach(rows[target-drawtable.MinTarget], int64(req.GetLength()))
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Probability = &pb.Fraction{
			Numerator:   numerator,
			Denominator: denominator,
		}
	}
	return resp, nil
}
