package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-player-stats-service/internal/app/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/config"
	"github.com/preston-bernstein/nba-player-stats-service/internal/store"
)

const (
	cacheBackendFS     = "fs"
	cacheBackendMemory = "memory"
)

func buildStore(cfg config.Config, logger *slog.Logger) stats.Store {
	switch cfg.Cache.Backend {
	case cacheBackendMemory:
		return store.NewMemoryStore(cfg.Cache.TTL)
	case cacheBackendFS, "":
	default:
		if logger != nil {
			logger.Warn("unknown cache backend, using filesystem", slog.String("backend", cfg.Cache.Backend))
		}
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		dir = "cache"
	}
	return store.NewFSStore(dir, cfg.Cache.TTL)
}
