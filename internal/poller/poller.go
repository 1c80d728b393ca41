package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/logging"
)

const monthLayout = "2006-01"

// MonthResolver is the part of the stats pipeline the poller drives.
type MonthResolver interface {
	MonthlyStats(ctx context.Context, month string) domainstats.StatsResponse
}

// Poller resolves the current month on an interval so the cache entry is
// refreshed before visitors ask for it.
type Poller struct {
	svc      MonthResolver
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the most recent warm cycle.
type Status struct {
	Month       string
	Games       int
	LastAttempt time.Time
	Cycles      int
}

// New constructs a Poller. A non-positive interval disables it: Start is a no-op.
func New(svc MonthResolver, logger *slog.Logger, interval time.Duration) *Poller {
	return &Poller{
		svc:      svc,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Enabled reports whether Start will run the loop.
func (p *Poller) Enabled() bool {
	return p != nil && p.svc != nil && p.interval > 0
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	if !p.Enabled() {
		return
	}
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "cache warmer started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "cache warmer stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "cache warmer stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	if p == nil {
		return nil
	}
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.now()
	month := start.Format(monthLayout)
	resp := p.svc.MonthlyStats(ctx, month)

	p.statusMu.Lock()
	p.status = Status{Month: month, Games: len(resp.Games), LastAttempt: start, Cycles: p.status.Cycles + 1}
	p.statusMu.Unlock()

	logging.Info(p.logger, "cache warmer refreshed month",
		logging.FieldMonth, month,
		logging.FieldCount, len(resp.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

// Status returns a snapshot of the most recent cycle.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
