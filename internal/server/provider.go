package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-player-stats-service/internal/config"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers/nbastats"
)

const (
	providerNBAStats = "nbastats"
	providerFixture  = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case providerNBAStats, "":
		return newNBAStats(cfg)
	case providerFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to nbastats", slog.String("provider", cfg.Provider))
		}
		return newNBAStats(cfg)
	}
}

func newNBAStats(cfg config.Config) *nbastats.Client {
	return nbastats.NewClient(nbastats.Config{
		BaseURL: cfg.NBAStats.BaseURL,
		Timeout: cfg.NBAStats.Timeout,
	})
}
