package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	pb "github.com/bytecamp2019d/drawtable/api/drawtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startServer(t *testing.T) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := NewWithListener(lis, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithInsecure(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
		cancel()
		assert.NoError(t, <-done)
	})
	return conn
}

func TestTable(t *testing.T) {
	client := pb.NewDrawTableServiceClient(startServer(t))
	resp, err := client.Table(context.Background(), &pb.TableRequest{})
	require.NoError(t, err)
	require.Len(t, resp.GetRows(), 20)

	row := resp.GetRows()[4]
	assert.Equal(t, int32(4), row.GetTarget())
	var got []int64
	for _, lt := range row.GetTotals() {
		got = append(got, lt.GetWeightedTotal())
	}
	assert.Equal(t, []int64{4, 44, 144, 24, 0, 0, 0}, got)
}

func TestStreamTable(t *testing.T) {
	client := pb.NewDrawTableServiceClient(startServer(t))
	stream, err := client.StreamTable(context.Background(), &pb.TableRequest{})
	require.NoError(t, err)

	var targets []int32
	for {
		row, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Len(t, row.GetTotals(), 7)
		targets = append(targets, row.GetTarget())
	}
	require.Len(t, targets, 20)
	for i, target := range targets {
		assert.Equal(t, int32(i), target)
	}
}

func TestReach(t *testing.T) {
	client := pb.NewDrawTableServiceClient(startServer(t))
	ctx := context.Background()

	resp, err := client.Reach(ctx, &pb.ReachRequest{Target: 4, Length: 2})
	require.NoError(t, err)
	assert.Empty(t, resp.GetError())
	assert.Equal(t, int64(11), resp.GetProbability().GetNumerator())
	assert.Equal(t, int64(663), resp.GetProbability().GetDenominator())

	for _, req := range []*pb.ReachRequest{
		{Target: 20, Length: 2},
		{Target: -1, Length: 2},
		{Target: 4, Length: 0},
		{Target: 4, Length: 8},
	} {
		resp, err := client.Reach(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.GetError(), "request %v", req)
		assert.Nil(t, resp.GetProbability())
	}
}

func TestHealthServingOnceBuilt(t *testing.T) {
	health := grpc_health_v1.NewHealthClient(startServer(t))
	ctx := context.Background()

	resp, err := health.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())

	require.Eventually(t, func() bool {
		resp, err := health.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: ServiceName})
		return err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING
	}, 30*time.Second, 20*time.Millisecond)
}

func TestNewListenError(t *testing.T) {
	_, err := New("256.0.0.1:bad", quietLogger())
	assert.Error(t, err)
}

func TestServeNil(t *testing.T) {
	var s *Server
	assert.Error(t, s.Serve(context.Background()))
	assert.Equal(t, "", s.Addr())
}
