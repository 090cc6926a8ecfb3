package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-stats-gateway/internal/config"
	"github.com/preston-bernstein/nba-stats-gateway/internal/logging"
	"github.com/preston-bernstein/nba-stats-gateway/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "nba-stats-gateway"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logger := logging.NewLogger(logging.Config{Service: serviceName, Version: appVersion, Output: os.Stderr})
		logging.Error(logger, "invalid configuration", err)
		return 1
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
	return 0
}
