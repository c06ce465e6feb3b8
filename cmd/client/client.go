package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/bytecamp2019d/drawtable/internal/balancer"
	"github.com/bytecamp2019d/drawtable/internal/config"
	"github.com/bytecamp2019d/drawtable/internal/logging"
	"github.com/bytecamp2019d/drawtable/pkg/drawtable"
	"github.com/bytecamp2019d/drawtable/pkg/odds"
	"github.com/bytecamp2019d/drawtable/pkg/tablefile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	mode := flag.String("mode", "reach", "table: fetch the table and write it to -out; reach: ask for one probability")
	target := flag.Int("target", 11, "point total to end on")
	length := flag.Int("length", 2, "number of cards drawn")
	out := flag.String("out", tablefile.DefaultName, "table file written in table mode")
	from := flag.String("from", "", "answer reach from this table file instead of a server")
	lang := flag.String("lang", "en", "language used to format numbers")
	flag.Parse()

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("invalid -lang: %v", err)
	}
	p := message.NewPrinter(tag)

	if *from != "" {
		if err := reachFromFile(p, *from, *target, *length); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.Setup(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("set up logging: %v", err)
	}

	pool, err := balancer.Dial(cfg.Addrs, cfg.ConnPerServer)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	switch *mode {
	case "table":
		err = fetchTable(ctx, pool, *out)
	case "reach":
		var n, d int64
		n, d, err = pool.Reach(ctx, *target, *length)
		if err == nil {
			printFraction(p, *target, *length, n, d)
		}
	default:
		err = fmt.Errorf("unknown -mode %q", *mode)
	}
	report(logger, pool)
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func fetchTable(ctx context.Context, pool *balancer.Pool, path string) error {
	rows, err := pool.Table(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tablefile.Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func reachFromFile(p *message.Printer, path string, target, length int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	rows, err := tablefile.Read(f)
	if err != nil {
		return err
	}
	i := target - drawtable.MinTarget
	if i < 0 || i >= len(rows) {
		return fmt.Errorf("table %s has no row for target %d", path, target)
	}
	n, d, err := odds.Reach(rows[i], int64(length))
	if err != nil {
		return err
	}
	printFraction(p, target, length, n, d)
	return nil
}

func printFraction(p *message.Printer, target, length int, numerator, denominator int64) {
	p.Printf("P(end on %d with %d cards) = %d/%d ≈ %f\n",
		target, length, numerator, denominator, float64(numerator)/float64(denominator))
}

func report(logger *slog.Logger, pool *balancer.Pool) {
	for _, s := range pool.Report() {
		logger.Info("server calls",
			"addr", s.Addr, "hints", s.Hints, "errors", s.Errors,
			"average", s.Average, "p99", s.P99)
	}
}
