package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/season"
	"github.com/preston-bernstein/nba-player-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-player-stats-service/internal/metrics"
)

const (
	defaultRetryAttempts  = 3
	defaultAttemptTimeout = 10 * time.Second
)

// Window is an inclusive [Min, Max] range a delay is drawn from uniformly.
type Window struct {
	Min time.Duration
	Max time.Duration
}

var (
	// DefaultPoliteDelay runs before every upstream attempt.
	DefaultPoliteDelay = Window{Min: time.Second, Max: 3 * time.Second}
	// DefaultRetryDelay runs between failed attempts. It does not grow.
	DefaultRetryDelay = Window{Min: 2 * time.Second, Max: 5 * time.Second}
)

// RetryOptions tunes RetryingProvider; zero values take the defaults above.
type RetryOptions struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	PoliteDelay    *Window
	RetryDelay     *Window
	Rand           *rand.Rand
}

type sleepFunc func(ctx context.Context, d time.Duration) error

// RetryingProvider wraps a DataProvider with politeness delays, per-attempt
// timeouts and a bounded number of attempts.
type RetryingProvider struct {
	inner          DataProvider
	logger         *slog.Logger
	metrics        *metrics.Recorder
	providerName   string
	maxAttempts    int
	attemptTimeout time.Duration
	polite         Window
	retry          Window
	sleep          sleepFunc

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, opts RetryOptions) *RetryingProvider {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultRetryAttempts
	}
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = defaultAttemptTimeout
	}
	polite := DefaultPoliteDelay
	if opts.PoliteDelay != nil {
		polite = *opts.PoliteDelay
	}
	retry := DefaultRetryDelay
	if opts.RetryDelay != nil {
		retry = *opts.RetryDelay
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &RetryingProvider{
		inner:          inner,
		logger:         logger,
		metrics:        recorder,
		providerName:   providerName,
		maxAttempts:    opts.MaxAttempts,
		attemptTimeout: opts.AttemptTimeout,
		polite:         polite,
		retry:          retry,
		sleep:          sleepCtx,
		rng:            rng,
	}
}

func (r *RetryingProvider) FetchGameLog(ctx context.Context, playerID int, seasonID season.ID) ([]GameLogRow, error) {
	return withRetry(ctx, r, func(ctx context.Context) ([]GameLogRow, error) {
		return r.inner.FetchGameLog(ctx, playerID, seasonID)
	}, slog.String(logging.FieldSeason, string(seasonID)))
}

func (r *RetryingProvider) FetchPlayers(ctx context.Context, seasonID season.ID) ([]players.Player, error) {
	return withRetry(ctx, r, func(ctx context.Context) ([]players.Player, error) {
		return r.inner.FetchPlayers(ctx, seasonID)
	}, slog.String(logging.FieldSeason, string(seasonID)))
}

func withRetry[T any](ctx context.Context, r *RetryingProvider, call func(context.Context) (T, error), attrs ...any) (T, error) {
	var zero T
	if r == nil || r.inner == nil {
		return zero, &FetchError{Provider: "provider", Attempts: 0, Err: ErrProviderUnavailable}
	}

	attempt := 0
	var lastErr error
	op := func() (T, error) {
		attempt++
		if err := r.sleep(ctx, r.draw(r.polite)); err != nil {
			return zero, backoff.Permanent(err)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout)
		defer cancel()

		start := time.Now()
		out, err := call(attemptCtx)
		r.record(time.Since(start), err)
		if err != nil {
			lastErr = err
			r.log(ctx, slog.LevelWarn, "upstream attempt failed",
				append(attrs, logging.FieldAttempt, attempt, "max_attempts", r.maxAttempts, "error", err)...)
			if ctx.Err() != nil {
				return zero, backoff.Permanent(err)
			}
			return zero, err
		}
		return out, nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&windowBackOff{window: r.retry, draw: r.draw}, uint64(r.maxAttempts-1)),
		ctx,
	)
	out, err := backoff.RetryNotifyWithData(op, policy, nil)
	if err == nil {
		return out, nil
	}
	if lastErr == nil {
		lastErr = err
	}
	if ctxErr := ctx.Err(); ctxErr != nil && lastErr != ctxErr {
		lastErr = ctxErr
	}
	r.log(ctx, slog.LevelWarn, "upstream fetch failed",
		append(attrs, "attempts", attempt, "error", lastErr)...)
	return zero, &FetchError{Provider: r.providerName, Attempts: attempt, Err: lastErr}
}

func (r *RetryingProvider) record(duration time.Duration, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordProviderAttempt(r.providerName, duration, err)
	if rl, ok := AsRateLimitError(err); ok {
		r.metrics.RecordRateLimit(r.providerName, rl.RetryAfter)
	}
}

func (r *RetryingProvider) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	logWithProvider(ctx, r.logger, level, r.providerName, msg, args...)
}

// draw returns a uniform duration within w.
func (r *RetryingProvider) draw(w Window) time.Duration {
	if w.Max <= w.Min {
		return w.Min
	}
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return w.Min + time.Duration(r.rng.Int63n(int64(w.Max-w.Min)+1))
}

// windowBackOff is a backoff.BackOff with a fixed uniform window per retry.
type windowBackOff struct {
	window Window
	draw   func(Window) time.Duration
}

func (b *windowBackOff) NextBackOff() time.Duration {
	return b.draw(b.window)
}

func (b *windowBackOff) Reset() {}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
