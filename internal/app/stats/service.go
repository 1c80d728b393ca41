package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-player-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
)

const defaultRequestTimeout = 2 * time.Minute

// Resolution sources.
const (
	SourceCache    = "cache"
	SourceSample   = "sample"
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// Failure kinds logged at fallback points.
const (
	failureFormat     = "format"
	failureFetch      = "fetch"
	failureStorage    = "storage"
	failureEmpty      = "empty"
	failureCanceled   = "canceled"
	failurePanic      = "panic"
	failureUnexpected = "unexpected"
)

// Store is the month-keyed cache the pipeline reads and writes through.
type Store interface {
	Load(month string) ([]domainstats.GameRecord, bool, error)
	Save(month string, games []domainstats.GameRecord) error
}

// Samples is the bundled dataset used when live data is unavailable.
type Samples interface {
	Lookup(month string) ([]domainstats.GameRecord, bool)
	LookupGame(date string) (domainstats.GameRecord, bool)
}

// Options configures a Service.
type Options struct {
	PlayerID       int
	RequestTimeout time.Duration
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
}

// Service resolves monthly stats for one player: cache, then samples, then
// the upstream game log, falling back to samples or an empty list.
type Service struct {
	store    Store
	samples  Samples
	upstream providers.GameLogProvider
	playerID int
	timeout  time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder

	group singleflight.Group
}

// NewService constructs a Service.
func NewService(store Store, samples Samples, upstream providers.GameLogProvider, opts Options) *Service {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	return &Service{
		store:    store,
		samples:  samples,
		upstream: upstream,
		playerID: opts.PlayerID,
		timeout:  opts.RequestTimeout,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
}

// PlayerID returns the player the service reports on.
func (s *Service) PlayerID() int {
	return s.playerID
}

type resolution struct {
	games  []domainstats.GameRecord
	source string
}

// MonthlyStats returns the games for a YYYY-MM month. It never fails:
// every error degrades to sample data or an empty list.
// Concurrent calls for the same month share one resolution, which runs under
// its own deadline so one caller going away does not cancel the others.
func (s *Service) MonthlyStats(ctx context.Context, month string) domainstats.StatsResponse {
	start := time.Now()
	v, _, shared := s.group.Do(month, func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return s.resolve(runCtx, month), nil
	})
	res := v.(resolution)

	s.metrics.RecordStatsResolution(res.source, time.Since(start))
	logging.Info(logging.FromContext(ctx, s.logger), "monthly stats resolved",
		slog.String(logging.FieldMonth, month),
		slog.String(logging.FieldSource, res.source),
		slog.Int(logging.FieldCount, len(res.games)),
		slog.Bool("shared", shared),
	)
	return domainstats.NewStatsResponse(domainstats.CloneGames(res.games))
}

// GameByDate returns the sample game played on a YYYY-MM-DD date.
func (s *Service) GameByDate(date string) (domainstats.GameRecord, error) {
	if s.samples == nil {
		return domainstats.GameRecord{}, errors.New("sample data not configured")
	}
	game, ok := s.samples.LookupGame(date)
	if !ok {
		return domainstats.GameRecord{}, fmt.Errorf("%w: %s", domainstats.ErrNotFound, date)
	}
	return game, nil
}

func (s *Service) resolve(ctx context.Context, month string) (res resolution) {
	logger := logging.OrDiscard(logging.FromContext(ctx, s.logger)).
		With(slog.String(logging.FieldMonth, month))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("stats resolution panicked",
				slog.String(logging.FieldFailure, failurePanic),
				slog.Any("panic", r),
			)
			res = s.fallback(month)
		}
	}()

	if games, ok := s.loadCache(logger, month); ok {
		return resolution{games: games, source: SourceCache}
	}

	if s.samples != nil {
		if games, ok := s.samples.Lookup(month); ok {
			return resolution{games: games, source: SourceSample}
		}
	}

	key, err := domainstats.ParseMonthKey(month)
	if err != nil {
		logger.Warn("invalid month, using fallback",
			slog.String(logging.FieldFailure, failureFormat),
			slog.Any("error", err),
		)
		return s.fallback(month)
	}

	games, err := s.fetchMonth(ctx, logger, key)
	if err != nil {
		logger.Warn("live fetch failed, using fallback",
			slog.String(logging.FieldFailure, classify(ctx, err)),
			slog.Any("error", err),
		)
		return s.fallback(month)
	}
	if len(games) == 0 {
		logger.Info("no live games for month, using fallback",
			slog.String(logging.FieldFailure, failureEmpty),
		)
		return s.fallback(month)
	}

	if s.store != nil {
		if err := s.store.Save(month, games); err != nil {
			logging.Error(logger, "cache write failed", err,
				slog.String(logging.FieldFailure, failureStorage))
		}
	}
	return resolution{games: games, source: SourceLive}
}

func (s *Service) loadCache(logger *slog.Logger, month string) ([]domainstats.GameRecord, bool) {
	if s.store == nil {
		return nil, false
	}
	games, ok, err := s.store.Load(month)
	if err != nil {
		logger.Warn("cache read failed, treating as miss",
			slog.String(logging.FieldFailure, failureStorage),
			slog.Any("error", err),
		)
		ok = false
	}
	ok = ok && len(games) > 0
	s.metrics.RecordCacheLookup(ok)
	return games, ok
}

func (s *Service) fallback(month string) resolution {
	if s.samples != nil {
		if games, ok := s.samples.Lookup(month); ok {
			return resolution{games: games, source: SourceFallback}
		}
	}
	return resolution{games: []domainstats.GameRecord{}, source: SourceFallback}
}

// classify names why a live fetch produced nothing usable. Only the
// resolution's own deadline counts as canceled; per-attempt timeouts are
// ordinary fetch failures.
func classify(ctx context.Context, err error) string {
	if ctx.Err() != nil {
		return failureCanceled
	}
	if _, ok := providers.AsFetchError(err); ok {
		return failureFetch
	}
	return failureUnexpected
}
