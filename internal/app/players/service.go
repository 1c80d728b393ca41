package players

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/season"
	"github.com/preston-bernstein/nba-player-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
)

// Resolver maps the configured player name to an upstream player ID.
type Resolver struct {
	directory providers.PlayerDirectory
	logger    *slog.Logger
	now       func() time.Time
}

// NewResolver constructs a Resolver backed by the given directory.
func NewResolver(directory providers.PlayerDirectory, logger *slog.Logger) *Resolver {
	return &Resolver{directory: directory, logger: logger, now: time.Now}
}

// Resolve returns configuredID when positive. Otherwise it looks name up in
// the current season's directory, falling back to players.DefaultPlayerID
// when the lookup fails or finds nothing.
func (r *Resolver) Resolve(ctx context.Context, name string, configuredID int) int {
	if configuredID > 0 {
		return configuredID
	}
	if r == nil || r.directory == nil {
		return players.DefaultPlayerID
	}

	now := r.now()
	seasonID := season.Resolve(now.Year(), int(now.Month()))
	items, err := r.directory.FetchPlayers(ctx, seasonID)
	if err != nil {
		logging.Warn(r.logger, "player lookup failed, using default",
			logging.FieldSeason, seasonID,
			logging.FieldError, err,
			logging.FieldPlayerID, players.DefaultPlayerID,
		)
		return players.DefaultPlayerID
	}

	if p, ok := FindByName(items, name); ok {
		logging.Info(r.logger, "player resolved", "name", p.FullName, logging.FieldPlayerID, p.ID)
		return p.ID
	}
	logging.Warn(r.logger, "player not found, using default",
		"name", name,
		logging.FieldPlayerID, players.DefaultPlayerID,
	)
	return players.DefaultPlayerID
}

// FindByName matches a full name case-insensitively, ignoring surrounding space.
func FindByName(items []players.Player, name string) (players.Player, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return players.Player{}, false
	}
	for _, p := range items {
		if strings.EqualFold(strings.TrimSpace(p.FullName), name) {
			return p, true
		}
	}
	return players.Player{}, false
}
