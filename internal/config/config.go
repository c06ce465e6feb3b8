// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Log holds the logging settings shared by every command.
type Log struct {
	Level  string `env:"DRAWTABLE_LOG_LEVEL" envDefault:"info"`
	Format string `env:"DRAWTABLE_LOG_FORMAT" envDefault:"text"`
}

// Server configures cmd/server.
type Server struct {
	Addr string `env:"DRAWTABLE_ADDR" envDefault:":8080"`
	Log
}

// Client configures cmd/client.
type Client struct {
	Addrs         []string      `env:"DRAWTABLE_SERVERS" envSeparator:"," envDefault:"127.0.0.1:8080"`
	ConnPerServer int           `env:"DRAWTABLE_CONN_PER_SERVER" envDefault:"1"`
	Timeout       time.Duration `env:"DRAWTABLE_TIMEOUT" envDefault:"30s"`
	Log
}

// LoadServer reads the server configuration.
func LoadServer() (Server, error) {
	var cfg Server
	if err := parse(&cfg); err != nil {
		return cfg, err
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return cfg, errors.New("DRAWTABLE_ADDR is empty")
	}
	return cfg, nil
}

// LoadClient reads the client configuration.
func LoadClient() (Client, error) {
	var cfg Client
	if err := parse(&cfg); err != nil {
		return cfg, err
	}
	addrs := cfg.Addrs[:0]
	for _, a := range cfg.Addrs {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	cfg.Addrs = addrs
	if len(cfg.Addrs) == 0 {
		return cfg, errors.New("DRAWTABLE_SERVERS lists no server")
	}
	if cfg.ConnPerServer < 1 {
		return cfg, fmt.Errorf("DRAWTABLE_CONN_PER_SERVER must be positive, got %d", cfg.ConnPerServer)
	}
	if cfg.Timeout <= 0 {
		return cfg, fmt.Errorf("DRAWTABLE_TIMEOUT must be positive, got %v", cfg.Timeout)
	}
	return cfg, nil
}

// LoadLog reads only the logging settings.
func LoadLog() (Log, error) {
	var cfg Log
	err := parse(&cfg)
	return cfg, err
}

func parse(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
