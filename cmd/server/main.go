package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-player-stats-service/internal/config"
	"github.com/preston-bernstein/nba-player-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-player-stats-service/internal/server"
)

const serviceName = "nba-player-stats-service"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: version,
	})
	logger.Info("starting", startupAttrs(cfg)...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.New(cfg, logger).Run(ctx, stop)
}

func startupAttrs(cfg config.Config) []any {
	return []any{
		slog.String("port", cfg.Port),
		slog.String(logging.FieldProvider, cfg.Provider),
		slog.String("player", cfg.Player.Name),
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.Duration("cache_ttl", cfg.Cache.TTL),
	}
}
