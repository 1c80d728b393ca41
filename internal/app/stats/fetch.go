package stats

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/season"
	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
)

var errNoUpstream = &providers.FetchError{Provider: "none", Err: providers.ErrProviderUnavailable}

// fetchMonth pulls the season containing key and, if that fails, the
// previous season once, then keeps only rows from key's calendar month.
func (s *Service) fetchMonth(ctx context.Context, logger *slog.Logger, key domainstats.MonthKey) ([]domainstats.GameRecord, error) {
	if s.upstream == nil {
		return nil, errNoUpstream
	}

	primary := season.Resolve(key.Year, key.Month)
	rows, err := s.upstream.FetchGameLog(ctx, s.playerID, primary)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		previous := season.Previous(key.Year)
		logger.Warn("primary season fetch failed, trying previous season",
			slog.String(logging.FieldSeason, string(primary)),
			slog.String("previous_season", string(previous)),
			slog.Any("error", err),
		)
		rows, err = s.upstream.FetchGameLog(ctx, s.playerID, previous)
		if err != nil {
			return nil, err
		}
	}
	return FilterMonth(rows, key)
}
