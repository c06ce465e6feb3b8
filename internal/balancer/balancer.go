// Package balancer spreads draw table calls over several servers, preferring
// the one answering fastest.
package balancer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogo/protobuf/sortkeys"
	"google.golang.org/grpc"

	pb "github.com/bytecamp2019d/drawtable/api/drawtable"
	"github.com/bytecamp2019d/drawtable/internal/wire"
	"github.com/bytecamp2019d/drawtable/pkg/drawtable"
)

type clientPool struct {
	addr     string
	clients  []pb.DrawTableServiceClient
	lastUsed int

	hints     int
	errCnt    int
	totalDur  time.Duration
	latencies []int64
}

// weight is the average latency, doubled for every error in two calls.
func (c *clientPool) weight() float64 {
	if c.hints == 0 {
		return 0
	}
	avg := c.totalDur.Seconds() / float64(c.hints)
	return avg * (1 + 2*float64(c.errCnt)/float64(c.hints))
}

// Pool holds a set of connections per server.
type Pool struct {
	mu    sync.Mutex
	pools []*clientPool
	conns []*grpc.ClientConn
	now   func() time.Time
}

// Dial opens connPerServer connections to each address.
func Dial(addrs []string, connPerServer int) (*Pool, error) {
	if len(addrs) == 0 {
		return nil, errors.New("no server address")
	}
	if connPerServer < 1 {
		return nil, fmt.Errorf("connections per server must be positive, got %d", connPerServer)
	}
	p := &Pool{now: time.Now}
	for _, addr := range addrs {
		clients := make([]pb.DrawTableServiceClient, 0, connPerServer)
		for j := 0; j < connPerServer; j++ {
			conn, err := grpc.Dial(addr, grpc.WithInsecure())
			if err != nil {
				p.Close()
				return nil, fmt.Errorf("dial %s: %w", addr, err)
			}
			p.conns = append(p.conns, conn)
			clients = append(clients, pb.NewDrawTableServiceClient(conn))
		}
		p.pools = append(p.pools, &clientPool{addr: addr, clients: clients, lastUsed: -1})
	}
	return p, nil
}

// New builds a pool over ready clients, keyed by the address they talk to.
func New(clients map[string][]pb.DrawTableServiceClient, addrs ...string) *Pool {
	p := &Pool{now: time.Now}
	for _, addr := range addrs {
		p.pools = append(p.pools, &clientPool{addr: addr, clients: clients[addr], lastUsed: -1})
	}
	return p
}

// Close closes every connection opened by Dial.
func (p *Pool) Close() error {
	var first error
	for _, conn := range p.conns {
		if err := conn.Close(); err != nil && first == nil {
			first = err
		}
	}
	p.conns = nil
	return first
}

// getClient picks a server nobody has tried yet, else the lowest weight, and
// rotates through that server's connections.
func (p *Pool) getClient() (pb.DrawTableServiceClient, *clientPool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var best *clientPool
	for _, c := range p.pools {
		if len(c.clients) == 0 {
			continue
		}
		if c.hints == 0 {
			best = c
			break
		}
		if best == nil || c.weight() < best.weight() {
			best = c
		}
	}
	if best == nil {
		return nil, nil, errors.New("no server connection available")
	}
	best.lastUsed = (best.lastUsed + 1) % len(best.clients)
	return best.clients[best.lastUsed], best, nil
}

func (p *Pool) record(c *clientPool, dur time.Duration, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c.hints++
	c.totalDur += dur
	c.latencies = append(c.latencies, int64(dur))
	if err != nil {
		c.errCnt++
	}
}

func (p *Pool) call(fn func(pb.DrawTableServiceClient) error) error {
	client, c, err := p.getClient()
	if err != nil {
		return err
	}
	begin := p.now()
	err = fn(client)
	p.record(c, p.now().Sub(begin), err)
	if err != nil {
		return fmt.Errorf("%s: %w", c.addr, err)
	}
	return nil
}

// Table fetches the whole table from one server.
func (p *Pool) Table(ctx context.Context) ([]drawtable.Row, error) {
	var rows []drawtable.Row
	err := p.call(func(client pb.DrawTableServiceClient) error {
		resp, err := client.Table(ctx, &pb.TableRequest{})
		if err != nil {
			return err
		}
		rows = wire.RowsFromProto(resp)
		return nil
	})
	return rows, err
}

// Reach asks one server for the probability of ending on target after
// exactly length cards. Errors reported by the server come back as errors.
func (p *Pool) Reach(ctx context.Context, target, length int) (numerator, denominator int64, err error) {
	err = p.call(func(client pb.DrawTableServiceClient) error {
		resp, err := client.Reach(ctx, &pb.ReachRequest{Target: int32(target), Length: int32(length)})
		if err != nil {
			return err
		}
		if resp.GetError() != "" {
			return errors.New(resp.GetError())
		}
		numerator = resp.GetProbability().GetNumerator()
		denominator = resp.GetProbability().GetDenominator()
		return nil
	})
	return numerator, denominator, err
}

// Stat summarizes the calls made to one server.
type Stat struct {
	Addr    string
	Hints   int
	Errors  int
	Average time.Duration
	P99     time.Duration
}

// Report returns per-server call statistics in address order of the pool.
func (p *Pool) Report() []Stat {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := make([]Stat, 0, len(p.pools))
	for _, c := range p.pools {
		s := Stat{Addr: c.addr, Hints: c.hints, Errors: c.errCnt}
		if c.hints > 0 {
			s.Average = c.totalDur / time.Duration(c.hints)
			sorted := append([]int64(nil), c.latencies...)
			sortkeys.Int64s(sorted)
			s.P99 = time.Duration(sorted[(len(sorted)*99-1)/100])
		}
		stats = append(stats, s)
	}
	return stats
}
