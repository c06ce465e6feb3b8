// Package server wires the draw table service into a gRPC server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	pb "github.com/bytecamp2019d/drawtable/api/drawtable"
	"github.com/bytecamp2019d/drawtable/pkg/drawtable"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name health checks report the draw table service under.
const ServiceName = "drawtable.DrawTableService"

// Server hosts the draw table gRPC API.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	service    *Service
	log        *slog.Logger
}

// New creates a server listening on addr.
func New(addr string, log *slog.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return NewWithListener(listener, log), nil
}

// NewWithListener creates a server on an existing listener.
func NewWithListener(listener net.Listener, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	grpcServer := grpc.NewServer()
	service := NewService(drawtable.NewBuilder(log), log)
	healthServer := health.NewServer()
	pb.RegisterDrawTableServiceServer(grpcServer, service)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	// the service answers once the table is built
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		service:    service,
		log:        log,
	}
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve builds the table in the background and serves until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	go s.warm()

	s.log.Info("drawtable server listening", "addr", s.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		s.health.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	}
}

func (s *Server) warm() {
	if _, err := s.service.Rows(); err != nil {
		return
	}
	s.health.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	s.log.Info("draw table ready")
}
