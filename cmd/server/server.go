package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytecamp2019d/drawtable/internal/config"
	"github.com/bytecamp2019d/drawtable/internal/logging"
	"github.com/bytecamp2019d/drawtable/internal/server"
)

// Serve : Bind TCP With gRPC listener
func Serve(ctx context.Context) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	logger, err := logging.Setup(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	srv, err := server.New(cfg.Addr, logger)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Serve(ctx); err != nil {
		log.Fatalf("drawtable server: %v", err)
	}
}
