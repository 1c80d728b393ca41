package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/season"
)

// RateLimitedProvider spaces upstream calls at least interval apart across
// all callers. stats.nba.com blocks clients that burst.
type RateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
	sleep    sleepFunc

	mu       sync.Mutex
	nextSlot time.Time
}

// NewRateLimitedProvider returns a provider that waits for its slot before
// each call. A non-positive interval disables spacing.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) *RateLimitedProvider {
	return &RateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

func (p *RateLimitedProvider) FetchGameLog(ctx context.Context, playerID int, seasonID season.ID) ([]GameLogRow, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchGameLog(ctx, playerID, seasonID)
}

func (p *RateLimitedProvider) FetchPlayers(ctx context.Context, seasonID season.ID) ([]players.Player, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx, seasonID)
}

func (p *RateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.interval <= 0 {
		return nil
	}

	delay := p.reserve()
	if delay > 0 {
		logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "waiting for upstream slot",
			slog.Duration("delay", delay))
	}
	return p.sleep(ctx, delay)
}

// reserve claims the next free slot and returns how long to wait for it.
func (p *RateLimitedProvider) reserve() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	slot := p.nextSlot
	if slot.Before(now) {
		slot = now
	}
	p.nextSlot = slot.Add(p.interval)
	return slot.Sub(now)
}
