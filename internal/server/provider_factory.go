package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-player-stats-service/internal/config"
	"github.com/preston-bernstein/nba-player-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)

	var next providers.DataProvider = base
	if cfg.NBAStats.MinInterval > 0 {
		next = providers.NewRateLimitedProvider(base, cfg.NBAStats.MinInterval, f.logger)
	}

	opts := providers.RetryOptions{
		MaxAttempts:    cfg.NBAStats.MaxAttempts,
		AttemptTimeout: cfg.NBAStats.Timeout,
	}
	// The offline provider has nobody to be polite to.
	if cfg.Provider == providerFixture {
		zero := &providers.Window{}
		opts.PoliteDelay = zero
		opts.RetryDelay = zero
	}
	return providers.NewRetryingProvider(next, f.logger, f.metrics, name, opts)
}
